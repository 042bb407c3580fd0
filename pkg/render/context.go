package render

// Context carries the per-row fields available to subject and body templates.
// Today is fixed once per batch run so every row in one run renders the same
// date. Extra holds category-specific fields merged in by the caller.
type Context struct {
	ClientName      string
	CaseCode        string
	CaseManagerName string
	POCDisplayName  string
	Today           string
	Extra           map[string]string
}

// data flattens the context into the map handed to template execution.
// Well-known fields win over Extra entries with the same key.
func (c Context) data() map[string]string {
	m := make(map[string]string, len(c.Extra)+5)
	for k, v := range c.Extra {
		m[k] = v
	}
	m["ClientName"] = c.ClientName
	m["CaseCode"] = c.CaseCode
	m["CaseManagerName"] = c.CaseManagerName
	m["POCDisplayName"] = c.POCDisplayName
	m["Today"] = c.Today
	return m
}
