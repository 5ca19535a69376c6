package patch

import (
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Kind selects how a rule is applied to content.
type Kind int

const (
	// KindLiteral replaces every occurrence of Find with Replace.
	KindLiteral Kind = iota

	// KindAppend appends Suffix after Find, guarded so the closed form is
	// never doubled.
	KindAppend

	// KindBlock swaps an exact multi-line block for its corrected form.
	KindBlock
)

// String returns a human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindAppend:
		return "append"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Rule defines a single remediation step
type Rule struct {
	// Kind selects how the rule is applied
	Kind Kind

	// Find is the broken text to locate
	Find string

	// Replace is the corrected text (literal and block rules)
	Replace string

	// Suffix is the text appended immediately after Find (append rules)
	Suffix string

	// Weight overrides the fix count credited to a match; 0 counts
	// naturally (occurrences for literal and block rules, 1 for appends)
	Weight int

	// Files is an optional glob limiting which target paths the rule
	// applies to; empty applies everywhere
	Files string

	// Note is an optional label shown in logs
	Note string
}

// Before returns the text the rule removes, for display.
func (r Rule) Before() string {
	return r.Find
}

// After returns the text the rule produces, for display.
func (r Rule) After() string {
	if r.Kind == KindAppend {
		return r.Find + r.Suffix
	}
	return r.Replace
}

// AppliesTo reports whether the rule is in play for the given target path.
// Matching is slash-normalized and tries the full path first, then the
// basename, so `**/*.tsx` and `*.tsx` both cover a bare filename.
func (r Rule) AppliesTo(targetPath string) bool {
	if r.Files == "" {
		return true
	}
	normalized := filepath.ToSlash(targetPath)
	if matched, err := doublestar.Match(r.Files, normalized); err == nil && matched {
		return true
	}
	if matched, err := doublestar.Match(r.Files, path.Base(normalized)); err == nil && matched {
		return true
	}
	return false
}

// Ruleset is an ordered list of rules. Order is significant: earlier rules
// run first and may consume text that later rules would otherwise match.
type Ruleset struct {
	// Name identifies the ruleset in logs
	Name string

	// Rules are applied in slice order
	Rules []Rule
}

// Application records one applied rule
type Application struct {
	// Rule is the rule that matched
	Rule Rule

	// Count is the number of fixes credited to the rule
	Count int
}

// Report summarizes a single remediation pass
type Report struct {
	// Applied lists the rules that matched, in rule order
	Applied []Application

	// Missed lists the rules that were in play but found nothing
	Missed []Rule
}

// Total returns the fix count summed across all applied rules.
func (r *Report) Total() int {
	total := 0
	for _, app := range r.Applied {
		total += app.Count
	}
	return total
}

// Changed reports whether any rule applied.
func (r *Report) Changed() bool {
	return len(r.Applied) > 0
}
