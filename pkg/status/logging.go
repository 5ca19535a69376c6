// Copyright 2025 the Web-Test authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent   = 4  // spaces to indent target entries
	nameWidth    = 35 // Base width for target path
	rulesetWidth = 15 // Width for ruleset name
	statusWidth  = 15 // Width for status text
)

// 🎯 FormatTargetLine formats a remediated target for display
func FormatTargetLine(path, ruleset string, result FileStatus, fixes int) string {
	// Determine prefix symbol
	var prefix string
	switch result {
	case StatusFixed:
		prefix = color.GreenString("✓")
	case StatusMissing:
		prefix = color.YellowString("?")
	case StatusFailed:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	statusText := result.String()
	if result == StatusFixed {
		statusText = fmt.Sprintf("%s (%d)", statusText, fixes)
	}

	// Format parts with padding
	namePart := fmt.Sprintf("%-*s", nameWidth, path)
	rulesetPart := fmt.Sprintf("%-*s", rulesetWidth, ruleset)
	statusPart := fmt.Sprintf("%-*s", statusWidth, statusText)

	// Build final string with indentation
	return fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
		rulesetPart,
		statusPart,
	)
}
