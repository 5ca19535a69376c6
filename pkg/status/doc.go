/*
Package status owns file access and outcome tracking for encodingfix.

	            +-------------+
	            |   Status    |
	            |  (File IO)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|  Storage  |           | Results |
	| (atomic)  |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Reads targets as UTF-8 text and rejects files that do not decode
- Writes repaired content atomically, preserving the original file mode
- Tracks the outcome of each target (fixed, unchanged, missing, failed)
- Formats outcomes for user-friendly reporting

🔄 Flow:
1. Operation asks for the target's content and mode
2. Repaired content comes back and is written via temp file + rename
3. Outcome and fix count are recorded as FileInfo
4. Formatter renders the result for the console

⚡ Key Responsibilities:
- UTF-8 validation with the byte offset of the first bad sequence
- Atomic, mode-preserving writes
- Optional .bak backup and restore
- Checksums for change detection
- Result formatting

📝 Design Philosophy:
The status package owns every touch of the target file so the operation
layer can stay pure. A run either replaces the file wholly or leaves it
untouched; a half-written target is impossible because content lands in
a temp file first and only a rename makes it visible.

🚧 Current Issues & TODOs:
1. Storage:
  - Implement safe atomic writes ✅
  - Preserve file mode on rewrite ✅
  - Add backup/restore capability ✅

2. Reporting:
  - Emoji result lines ✅
  - Aligned multi-target lines ✅
  - Support for different output formats (text, json)

🔍 Example:

	content, mode, err := status.ReadTextFile(ctx, path)
	// ... repair content ...
	err = status.WriteFileAtomic(ctx, path, repaired, mode)

	// Outcome reporting
	line := status.FormatTargetLine(path, "builtin", status.StatusFixed, 12)
*/
package status
