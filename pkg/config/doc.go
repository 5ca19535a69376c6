/*
Package config loads run settings and substitution tables for encodingfix.

	            +-------------+
	            |   Config    |
	            |   (Rules)   |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |           |           |
	+-----+-----+ +---+----+ +----+----+
	|   YAML    | |  JSON  | |   HCL   |
	|  Parser   | | Parser | | Parser  |
	+-----------+ +--------+ +---------+

🎯 Purpose:
- Resolves which file a run operates on (argument, TARGET_FILE, .env)
- Loads substitution tables from YAML, JSON, or HCL rules files
- Falls back to the built-in table when no rules file is given
- Normalizes and validates tables before they reach an operation

🔄 Flow:
1. Command line settings arrive as Options
2. ResolveTarget picks the file to remediate
3. LoadRules reads and parses the rules file for its extension
4. The parsed document is converted, normalized, and validated
5. The resulting ruleset is handed to the operation

⚡ Key Responsibilities:
- Target discovery with environment fallback
- Format detection by extension
- Strict decoding, unknown fields are rejected in every format
- Rule kind mapping (literal, append, block)

🤝 Interfaces:
- Parser: Format-specific parsing
- Document: The rules file as written
- Options: Run settings from flags

📝 Design Philosophy:
Every format decodes into the same Document and every Document passes
through the same normalize-then-validate funnel, so a table behaves
identically no matter which syntax it was written in. Parsers decode
strictly: a misspelled field name is an error, not silence.

🚧 Current Issues & TODOs:
1. Discovery:
  - TARGET_FILE from process environment ✅
  - TARGET_FILE from .env in the working directory ✅
  - Searching parent directories for .env

2. Formats:
  - YAML, JSON, HCL ✅
  - Rule kind aliases ("add" for append)

🔍 Example:

	rules.yaml:

	    name: my-fixes
	    rules:
	      - find: "閰嶇疆"
	        replace: "配置"
	      - kind: append
	        find: "title=\"执行流水线"
	        suffix: "\""

	code:

	    rs, err := config.LoadRules(ctx, "rules.yaml")
	    if err != nil {
	        return err
	    }
	    fixed, report := patch.Apply(path, content, rs)
*/
package config
