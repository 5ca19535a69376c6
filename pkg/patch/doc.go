/*
Package patch applies ordered remediation rules to text content.

	            +-------------+
	            |   Ruleset   |
	            |  (ordered)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |           |           |
	+-----+-----+ +---+----+ +----+----+
	|  Literal  | | Append | |  Block  |
	| (replace) | | (close)| | (swap)  |
	+-----------+ +--------+ +---------+

🎯 Purpose:
- Models every fix as data: find text, corrected text, kind
- Applies a ruleset to content in one deterministic pass
- Reports exactly which rules fired and how many fixes each counted
- Stays pure: no I/O, no logging, no globals

🔄 Flow:
1. Rules are normalized (duplicates and no-op entries dropped)
2. Apply walks the rules in order against the content
3. Each match rewrites the working content and is recorded
4. The caller (operation package) persists content and prints the report

⚡ Key Responsibilities:
- Literal substitution with occurrence counting
- Guarded suffix appends that stay idempotent
- Verbatim multi-line block swaps with weighted counts
- Per-rule file globs so a ruleset can scope itself to a target

📝 Design Philosophy:
Every fix lives in the table, including the awkward ones. The original
quote repairs and the template-array swap were one-off branches bolted
beside a replacement loop; modeling them as Rule kinds keeps the whole
pass data-driven, so running it twice is provably the same as running it
once: literal and block rules consume the text they match, and append
rules are guarded on the closed form being absent.

🔍 Example:

	content, report := patch.Apply(path, content, patch.Builtin())
	if report.Changed() {
		fmt.Printf("fixed %d issues\n", report.Total())
	}
*/
package patch
