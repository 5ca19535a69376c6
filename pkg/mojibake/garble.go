// Package mojibake reproduces the corruption that broke the pipeline
// component: UTF-8 Chinese text whose bytes were decoded as GBK. Deriving
// the broken form of a corrected string is how new remediation rules are
// authored without hunting for the garbled text by hand.
package mojibake

import (
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/XiangYd616/Web-Test/pkg/patch"
)

// The misread follows the converter that produced the damage:
//   - ASCII bytes pass through untouched
//   - 0x80 alone becomes the euro sign
//   - a well-formed GBK pair decodes normally; pairs landing in GBK's
//     user-defined regions (private use area) or with no mapping vanish
//   - a malformed pair collapses to a single '?', eating both bytes, which
//     is how closing quotes and angle brackets disappear
//   - a dangling lead byte at end of input becomes '?'

// Garble returns the form s takes after its UTF-8 bytes are misread as
// GBK. The result is not invertible: dropped pairs lose information, which
// is why repair works from a hand-authored table instead of re-decoding.
func Garble(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", errors.Errorf("garbling text: input is not valid UTF-8")
	}

	dec := simplifiedchinese.GBK.NewDecoder()
	src := []byte(s)
	var out strings.Builder

	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c < 0x80:
			out.WriteByte(c)
			i++

		case c == 0x80:
			out.WriteRune('€')
			i++

		case c == 0xFF:
			out.WriteByte('?')
			i++

		default:
			if i+1 >= len(src) {
				out.WriteByte('?')
				i++
				continue
			}
			trail := src[i+1]
			if trail < 0x40 || trail == 0x7F || trail > 0xFE {
				out.WriteByte('?')
				i += 2
				continue
			}
			decoded, err := dec.Bytes(src[i : i+2])
			if err == nil && !droppedPair(decoded) {
				out.Write(decoded)
			}
			i += 2
		}
	}

	return out.String(), nil
}

// droppedPair reports whether a decoded pair vanishes from the output:
// unmapped pairs decode to the replacement rune, and GBK's user-defined
// regions land in the private use area.
func droppedPair(decoded []byte) bool {
	r, _ := utf8.DecodeRune(decoded)
	return r == utf8.RuneError || (r >= 0xE000 && r <= 0xF8FF)
}

// DeriveRule builds the literal remediation rule for a corrected string by
// computing the broken form it acquired in the misread.
func DeriveRule(correct string) (patch.Rule, error) {
	if correct == "" {
		return patch.Rule{}, errors.Errorf("deriving rule: text is empty")
	}
	garbled, err := Garble(correct)
	if err != nil {
		return patch.Rule{}, errors.Errorf("deriving rule: %w", err)
	}
	if garbled == correct {
		return patch.Rule{}, errors.Errorf("deriving rule: %q has no garbled form", correct)
	}
	return patch.Rule{Kind: patch.KindLiteral, Find: garbled, Replace: correct}, nil
}
