package status

import (
	"fmt"
)

// Formatter defines how remediation results and progress should be formatted
type Formatter interface {
	// FormatResult formats the outcome for a single target file
	FormatResult(info FileInfo) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFormatter provides a default implementation of Formatter
type DefaultFormatter struct{}

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// FormatResult formats a target outcome with emojis
func (f *DefaultFormatter) FormatResult(info FileInfo) string {
	switch info.Status {
	case StatusFixed:
		if info.Fixes == 1 {
			return fmt.Sprintf("📝 Fixed %s (1 fix)", info.Path)
		}
		return fmt.Sprintf("📝 Fixed %s (%d fixes)", info.Path, info.Fixes)
	case StatusUnchanged:
		return fmt.Sprintf("👍 Unchanged %s", info.Path)
	case StatusMissing:
		return fmt.Sprintf("❓ Missing %s", info.Path)
	case StatusFailed:
		if info.Error != nil {
			return fmt.Sprintf("❌ Failed %s: %v", info.Path, info.Error)
		}
		return fmt.Sprintf("❌ Failed %s", info.Path)
	default:
		return fmt.Sprintf("❓ Unknown %s", info.Path)
	}
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatError formats an error message with emoji
func (f *DefaultFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
