package kernel

import (
	"regexp"
	"strings"
)

// MaxIdentifierLength caps the textual form of every prefixed business
// identifier, including its prefix and separator.
const MaxIdentifierLength = 50

// normalizeIdentifier trims the raw input and checks it against the given
// pattern and the overall length cap. It returns the canonical value and
// whether the input was acceptable.
func normalizeIdentifier(pattern *regexp.Regexp, raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || len(trimmed) > MaxIdentifierLength {
		return "", false
	}
	if !pattern.MatchString(trimmed) {
		return "", false
	}
	return trimmed, true
}
