package patch

import (
	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// Normalize drops rules that cannot change content and deduplicates the
// rest. Removed outright: rules with an empty find, literal and block rules
// whose replacement equals the find text, and append rules without a
// suffix. For rules of the same kind sharing a find text, the first wins.
// The relative order of survivors is preserved.
//
// Hand-maintained tables accumulate copy-paste artifacts over repeated fix
// attempts, including entries where old and new are identical. Those are
// no-ops, not intent, and are stripped here rather than applied.
func Normalize(rules []Rule) []Rule {
	seen := make(map[string]bool, len(rules))
	out := make([]Rule, 0, len(rules))

	for _, rule := range rules {
		if rule.Find == "" {
			continue
		}
		switch rule.Kind {
		case KindAppend:
			if rule.Suffix == "" {
				continue
			}
		default:
			if rule.Replace == rule.Find {
				continue
			}
		}

		key := rule.Kind.String() + "\x00" + rule.Find
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, rule)
	}

	return out
}

// Validate checks every rule, returning an error naming the first
// offending rule index.
func Validate(rules []Rule) error {
	for i, rule := range rules {
		if rule.Find == "" {
			return errors.Errorf("rule %d: find is required", i)
		}
		switch rule.Kind {
		case KindLiteral, KindBlock:
			if rule.Replace == rule.Find {
				return errors.Errorf("rule %d: replace must differ from find", i)
			}
		case KindAppend:
			if rule.Suffix == "" {
				return errors.Errorf("rule %d: suffix is required for append rules", i)
			}
		default:
			return errors.Errorf("rule %d: unknown kind %d", i, int(rule.Kind))
		}
		if rule.Weight < 0 {
			return errors.Errorf("rule %d: weight must not be negative", i)
		}
		if rule.Files != "" && !doublestar.ValidatePattern(rule.Files) {
			return errors.Errorf("rule %d: invalid files glob %q", i, rule.Files)
		}
	}
	return nil
}
