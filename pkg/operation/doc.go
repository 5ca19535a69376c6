/*
Package operation implements the fix and check passes that repair encoding damage.

	+-------------+
	|  Operation  |
	| (Fix/Check) |
	+------+------+
	       |
	+------+------+
	|    Patch    |
	|   (Apply)   |
	+------+------+

🎯 Purpose:
- Orchestrates the remediation of damaged target files
- Applies the ordered substitution table through the patch package
- Coordinates between file I/O (status) and console reporting (log)

🔄 Flow:
1. Loads each target file and rejects anything that is not valid UTF-8
2. Applies the ruleset in table order
3. Delegates atomic rewriting and backups to the status package
4. Reports per-fix lines and summaries via the log package

⚡ Key Responsibilities:
- Target iteration in input order
- Skipping the rewrite when nothing matched
- Dirty detection and diff previews in check mode
- Error context on every failing step

🤝 Interfaces:
- Operation: one pass over the configured targets
- Runner: executes passes synchronously or concurrently

📝 Design Philosophy:
An operation is a pure pipeline step: read, transform, write, report. File
I/O lives in the status package and console formatting in the log package,
so the passes here stay small enough to reason about. The same Options
drive both passes, which keeps fix and check from drifting apart.

🔍 Example:

	op := operation.NewFixOperation(operation.Options{
		Targets: []string{"frontend/PipelineManagement.tsx"},
		Ruleset: patch.Builtin(),
		Logger:  logger,
	})
	err := runner.Run(ctx, op)

💡 Ideal Flow:
1. Resolve targets and ruleset in cmd
2. Build one operation per pass
3. Run through the Runner
4. Summarize results from Results()
*/
package operation
