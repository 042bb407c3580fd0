// Package catalog is the registry of outreach categories and their message
// template variants.
//
// Categories differ only by registered templates and CC rules, never by code:
// a category declares an ordered list of variants (initial, followup,
// escalation), each pointing at a markdown template file, plus CC sources and
// optional extra template fields. CC sources are either literal addresses
// (anything containing "@") or names of row fields to pull addresses from.
//
// A default catalog with four function categories ships embedded; callers may
// load their own from any fs.FS carrying a catalog.yaml.
package catalog
