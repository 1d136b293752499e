/*
Package operation implements the replace and extract jobs.

	+-------------+
	|   Config    |
	|   (Jobs)    |
	+------+------+
	       |
	+------+------+
	|   Runner    |
	| (in order)  |
	+------+------+
	       |
	  +----+-----+
	  |          |
	+-+-------+ ++--------+
	| Replace | | Extract |
	+---------+ +---------+

🎯 Purpose:
- Walks a root with pkg/walk and hands every file to the job
- Replace rewrites a file only when its content changes
- Extract gathers marked literals and writes one JSON key file

🔄 Flow:
1. Runner executes operations sequentially
2. Each file outcome is tracked on a status.Report and logged
3. Per-file failures are recorded and the walk continues
4. Fatal errors (bad rules, unwritable output, cancellation) stop the run

🔍 Example:

	ops := operation.Plan(cfg, operation.Options{Logger: logger})
	reports, err := operation.NewRunner(logger, true).Run(ctx, ops...)
*/
package operation
