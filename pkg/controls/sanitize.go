package controls

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy

	colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]{3,20}|rgba?\(\s*[0-9.%]+\s*(,\s*[0-9.%]+\s*){2,3}\))$`)
)

// SanitizeLabel strips markup from a label and returns plain text.
func SanitizeLabel(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := labelSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// SafeColor returns the hint when it is a hex, named or rgb()/rgba() color
// and "" otherwise.
func SafeColor(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !colorPattern.MatchString(trimmed) {
		return ""
	}
	return trimmed
}

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return labelPolicy
}
