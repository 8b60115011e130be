package vault

import "strings"

const (
	// DefaultShowChars is the number of leading and trailing characters kept
	// by Obfuscate.
	DefaultShowChars = 4

	// maskWidth is the fixed width of the masked interior. A fixed width
	// keeps the obfuscated form from tracking the length of the input.
	maskWidth = 4

	maskChar = "*"
)

// Obfuscate masks a secret for safe logging/display, keeping
// DefaultShowChars characters at each end.
//
// See ObfuscateN for the exact policy.
func Obfuscate(secret string) string {
	return ObfuscateN(secret, DefaultShowChars)
}

// ObfuscateN masks a secret for safe logging/display, keeping showChars
// characters at each end and replacing the interior with a fixed-width mask.
//
// The transform is deterministic and one-directional: the output never
// discloses the interior content, and because the mask width is fixed it
// doesn't disclose the length of the interior either. Secrets of showChars*2
// characters or fewer are fully masked; the raw value is never echoed back
// for short inputs.
//
// ObfuscateN performs no lookup and has no side effects. It works on
// arbitrary strings, not only vault-resident secrets. showChars values <= 0
// fall back to DefaultShowChars.
func ObfuscateN(secret string, showChars int) string {
	if showChars <= 0 {
		showChars = DefaultShowChars
	}

	runes := []rune(secret)
	if len(runes) <= showChars*2 {
		return strings.Repeat(maskChar, showChars*2)
	}

	var sb strings.Builder
	sb.Grow(showChars*2 + maskWidth)
	sb.WriteString(string(runes[:showChars]))
	sb.WriteString(strings.Repeat(maskChar, maskWidth))
	sb.WriteString(string(runes[len(runes)-showChars:]))
	return sb.String()
}
