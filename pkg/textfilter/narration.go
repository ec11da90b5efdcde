package textfilter

import (
	"regexp"
	"strings"
)

var (
	codeFence  = regexp.MustCompile("(?m)^\\s*```[a-zA-Z]*\\s*$")
	speakerTag = regexp.MustCompile(`(?i)^\s*(narrator|assistant|outcome)\s*:\s*`)
)

// Narration tidies model output before it is shown to the player. Only the
// wrapping is touched: the generated wording and line breaks are kept as is.
type Narration struct{}

// NewNarration returns a Narration filter.
func NewNarration() *Narration {
	return &Narration{}
}

// Clean strips markdown fences, a leading speaker label, wrapping quotes and
// surrounding whitespace. An empty result means the model gave nothing usable.
func (n *Narration) Clean(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = codeFence.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)
	text = speakerTag.ReplaceAllString(text, "")
	return trimQuotes(text)
}

func trimQuotes(s string) string {
	for len(s) >= 2 {
		r := []rune(s)
		first, last := r[0], r[len(r)-1]
		if !(first == '"' && last == '"') && !(first == '“' && last == '”') && !(first == '\'' && last == '\'') {
			return s
		}
		s = strings.TrimSpace(string(r[1 : len(r)-1]))
	}
	return s
}
