package patch

import (
	"strings"
)

// Apply runs the ruleset against content and returns the remediated text
// together with a report of what matched. It is a pure function: no I/O, no
// logging. targetPath is only consulted by rules that carry a Files glob;
// rules filtered out by their glob are neither applied nor reported missed.
//
// Applying the result again is a no-op: literal and block rules consume the
// broken text they match, and append rules skip once the closed form exists.
func Apply(targetPath string, content string, rs Ruleset) (string, *Report) {
	report := &Report{}
	current := content

	for _, rule := range rs.Rules {
		if rule.Find == "" {
			continue
		}
		if !rule.AppliesTo(targetPath) {
			continue
		}

		next, count, missed := applyRule(current, rule)
		if missed {
			report.Missed = append(report.Missed, rule)
			continue
		}
		if count > 0 {
			report.Applied = append(report.Applied, Application{Rule: rule, Count: count})
			current = next
		}
	}

	return current, report
}

// applyRule applies one rule and reports how many fixes it is credited
// with. missed is true when the rule was in play but its find text was
// absent; an append rule whose closed form already exists is neither a
// match nor a miss.
func applyRule(content string, rule Rule) (next string, count int, missed bool) {
	switch rule.Kind {
	case KindAppend:
		closed := rule.Find + rule.Suffix
		if strings.Contains(content, closed) {
			return content, 0, false
		}
		if !strings.Contains(content, rule.Find) {
			return content, 0, true
		}
		count = 1
		if rule.Weight > 0 {
			count = rule.Weight
		}
		return strings.ReplaceAll(content, rule.Find, closed), count, false

	default:
		if !strings.Contains(content, rule.Find) {
			return content, 0, true
		}
		count = strings.Count(content, rule.Find)
		if rule.Weight > 0 {
			count = rule.Weight
		}
		return strings.ReplaceAll(content, rule.Find, rule.Replace), count, false
	}
}
