package content

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinSteps = 3
	MaxSteps = 6

	// Wash steps sit between "Immediate Response" and "Check Results".
	maxWashSteps = MaxSteps - 2
)

const checkResultsText = "Allow the area to dry completely and check if the stain is fully removed. If traces remain, repeat the process. For stubborn stains that persist after multiple attempts, professional cleaning may be necessary."

var (
	preTreatmentOpeners = []string{"First,", "Right away,", "To start,"}
	openingPhrases      = []string{"first", "right away", "to start", "start by", "begin by", "immediately", "as soon as", "quickly"}

	transitionOpeners = []string{"Next,", "Then,", "After that,", "Now,"}
	transitionPhrases = []string{"next", "then", "after that", "afterwards", "now", "finally", "once"}

	proTips = []string{
		"Pro tip: work from the outside of the stain toward the center so it doesn't spread.",
		"Pro tip: test the solution on a hidden area first to make sure it won't discolor the material.",
		"Pro tip: blot rather than rub; rubbing pushes the stain deeper into the fibers.",
		"Pro tip: place a clean towel underneath the stained area to catch any transfer.",
		"Pro tip: be patient and give the solution a few minutes to work before rinsing.",
	}
)

// SynthesizeSteps turns the authored pre-treatment and wash-method text into 3 to 6 titled steps.
// The seed selects openers and the pro tip; equal inputs and seed give equal output.
func SynthesizeSteps(preTreatment, washMethod string, seed uint64) []Step {
	pre := strings.TrimSpace(preTreatment)
	if !hasLeadingPhrase(pre, openingPhrases) {
		pre = withOpener(preTreatmentOpeners[pick(seed, "pretreatment-opener", len(preTreatmentOpeners))], pre)
	}

	steps := make([]Step, 0, MaxSteps)
	steps = append(steps, Step{Title: "Immediate Response", Description: pre})
	steps = append(steps, washSteps(washMethod, seed)...)

	tipAt := 1 + pick(seed, "tip-step", len(steps)-1)
	steps[tipAt].Description = appendSentence(steps[tipAt].Description, proTips[pick(seed, "tip", len(proTips))])

	steps = append(steps, Step{Title: "Check Results", Description: checkResultsText})
	return steps
}

func washSteps(washMethod string, seed uint64) []Step {
	sentences := splitSentences(washMethod)
	base := pick(seed, "transition", len(transitionOpeners))

	if len(sentences) <= 2 {
		return []Step{{
			Title:       "Cleaning Process",
			Description: withTransition(strings.Join(sentences, " "), base),
		}}
	}

	groupSize := 2
	if (len(sentences)+1)/2 > maxWashSteps {
		groupSize = (len(sentences) + maxWashSteps - 1) / maxWashSteps
	}

	var groups [][]string
	for start := 0; start < len(sentences); start += groupSize {
		end := start + groupSize
		if end > len(sentences) {
			end = len(sentences)
		}
		groups = append(groups, sentences[start:end])
	}

	out := make([]Step, 0, len(groups))
	for i, group := range groups {
		title := "Work the Solution"
		switch {
		case i == 0:
			title = "Apply Cleaning Solution"
		case i == len(groups)-1:
			title = "Final Rinse and Dry"
		}
		lead := withTransition(group[0], base+i)
		desc := strings.Join(append([]string{lead}, group[1:]...), " ")
		out = append(out, Step{Title: title, Description: desc})
	}
	return out
}

// splitSentences splits on a period followed by whitespace, keeping the period.
func splitSentences(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text)-1; i++ {
		if text[i] != '.' || !isSpaceByte(text[i+1]) {
			continue
		}
		if s := strings.TrimSpace(text[start : i+1]); s != "" {
			out = append(out, s)
		}
		start = i + 1
	}
	if tail := strings.TrimSpace(text[start:]); tail != "" {
		out = append(out, tail)
	}
	return out
}

func withTransition(sentence string, idx int) string {
	if sentence == "" || hasLeadingPhrase(sentence, transitionPhrases) {
		return sentence
	}
	return withOpener(transitionOpeners[idx%len(transitionOpeners)], sentence)
}

func withOpener(opener, text string) string {
	if text == "" {
		return text
	}
	return opener + " " + lowerFirst(text)
}

// hasLeadingPhrase reports whether text starts with one of phrases as whole words.
func hasLeadingPhrase(text string, phrases []string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, p := range phrases {
		if !strings.HasPrefix(lower, p) {
			continue
		}
		rest := lower[len(p):]
		if rest == "" {
			return true
		}
		r, _ := utf8.DecodeRuneInString(rest)
		if !unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// lowerFirst lowercases the first letter unless the word looks like an acronym ("UV", "WD-40").
func lowerFirst(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	if next, _ := utf8.DecodeRuneInString(s[size:]); unicode.IsUpper(next) || unicode.IsDigit(next) {
		return s
	}
	return string(unicode.ToLower(first)) + s[size:]
}

func appendSentence(text, sentence string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return sentence
	}
	return text + " " + sentence
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
