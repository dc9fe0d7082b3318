package augment

import (
	"regexp"
	"strings"
)

// Model output sometimes arrives wrapped in a Markdown code fence even when a
// JSON mime type was requested. The fence may carry a language tag after the
// opening backticks.
var fenceRe = regexp.MustCompile("(?s)^```(?:\\w*)?\\s*\\n?(.*?)\\n?\\s*```$")

// StripFence removes one surrounding Markdown code fence from s, if present,
// and trims surrounding whitespace. Content without a fence comes back
// trimmed but otherwise untouched.
func StripFence(s string) string {
	s = strings.TrimSpace(s)
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}
