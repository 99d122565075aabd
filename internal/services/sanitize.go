package services

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// policyEntities are the escapes the strict policy emits for plain punctuation. Angle
// brackets stay escaped so decoded text can never carry markup.
var policyEntities = strings.NewReplacer("&#39;", "'", "&#34;", `"`, "&quot;", `"`, "&amp;", "&")

// cleanText strips markup from authored text and collapses whitespace.
func cleanText(s string) string {
	out := policyEntities.Replace(strictPolicy.Sanitize(s))
	return strings.Join(strings.Fields(out), " ")
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if c := cleanText(s); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return s
}
