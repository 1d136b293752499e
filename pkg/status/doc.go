/*
Package status tracks what happened to every file during a textsweep run.

	            +-------------+
	            |   Report    |
	            | (per run)   |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	| FileInfo  |           |  Table  |
	| (per file)|           | (pterm) |
	+-----------+           +---------+

🎯 Purpose:
- Records one FileInfo per visited file (modified, pending, unchanged, failed)
- Aggregates totals for replacements and extracted matches
- Renders an end-of-run summary table

🔄 Flow:
1. An operation creates a Report for its root
2. Each visited file is tracked with its outcome
3. The command renders the summary once the walk is done

⚡ Key Responsibilities:
- Status bookkeeping
- Summary formatting
- Failure visibility: per-file errors never abort a run, so the report is
  where they surface

🔍 Example:

	report := status.NewReport("replace", "lib/ui")
	report.Track(status.FileInfo{Path: "theme.dart", Status: status.StatusModified, Replacements: 2})
	if err := report.Render(os.Stdout); err != nil {
		return err
	}
*/
package status
