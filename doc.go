// Package draftgen batch-generates outreach message template artifacts from
// tabular case data: one group of templates per input row, after normalizing
// and validating recipient addresses.
//
// # Pipeline
//
// For every row, the runner normalizes the primary recipient and CC fields
// (pkg/recipient), renders each of the category's template variants with
// escaped substitution (pkg/render), and materializes every rendered message
// as a template artifact through one shared session (pkg/artifact). The
// session is acquired once per batch and released exactly once, regardless of
// row failures.
//
//	fsys := catalog.DefaultFS()
//	cat, _ := catalog.Load(fsys)
//	renderer, _ := render.New(fsys)
//	erd, _ := cat.Category("erd")
//
//	runner := draftgen.NewRunner(emlfile.New("out"), renderer,
//		draftgen.WithLogger(logger.New(logger.RunIDExtractor)),
//	)
//	result, err := runner.Run(ctx, rows, erd)
//
// # Failure isolation
//
// Row problems never abort a batch: an empty recipient set yields a Skipped
// outcome, an artifact-creation error yields a Failed outcome, and processing
// continues with the next row. Only two conditions are fatal: session
// acquisition failure and template configuration bugs, both of which abort the
// run without producing a partial result. Outcomes are index-aligned with the
// input rows; the rendered messages of the first successful row are kept as
// the batch preview.
//
// Execution is single-threaded and synchronous on purpose: the artifact
// session is one stateful external handle that is not safe for concurrent use.
package draftgen
