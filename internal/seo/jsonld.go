package seo

import (
	"fmt"
	"strings"

	"github.com/stainsolver/stainsolver-backend/internal/content"
)

const SchemaContext = "https://schema.org"

// HowTo is the schema.org HowTo document embedded on guide pages.
type HowTo struct {
	Context     string        `json:"@context"`
	Type        string        `json:"@type"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Supply      []HowToSupply `json:"supply,omitempty"`
	Step        []HowToStep   `json:"step"`
}

type HowToStep struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Text     string `json:"text"`
}

type HowToSupply struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// BuildHowTo renders the HowTo document for a guide, e.g. "How to Remove Coffee from Cotton".
func BuildHowTo(stainDisplay, materialDisplay string, steps []content.Step, supplies []content.Supply) HowTo {
	desc := fmt.Sprintf("Step-by-step guide on removing %s stains from %s.",
		strings.ToLower(stainDisplay), strings.ToLower(materialDisplay))
	doc := HowTo{
		Context:     SchemaContext,
		Type:        "HowTo",
		Name:        fmt.Sprintf("How to Remove %s from %s", stainDisplay, materialDisplay),
		Description: desc,
		Step:        make([]HowToStep, 0, len(steps)),
		Supply:      make([]HowToSupply, 0, len(supplies)),
	}
	for i, s := range steps {
		doc.Step = append(doc.Step, HowToStep{Type: "HowToStep", Position: i + 1, Name: s.Title, Text: s.Description})
	}
	for _, s := range supplies {
		doc.Supply = append(doc.Supply, HowToSupply{Type: "HowToSupply", Name: s.Name})
	}
	return doc
}

func BuildFAQPage(faqs []content.FAQ) FAQPage {
	doc := FAQPage{Context: SchemaContext, Type: "FAQPage", MainEntity: make([]Question, 0, len(faqs))}
	for _, f := range faqs {
		doc.MainEntity = append(doc.MainEntity, Question{
			Type:           "Question",
			Name:           f.Question,
			AcceptedAnswer: Answer{Type: "Answer", Text: f.Answer},
		})
	}
	return doc
}
