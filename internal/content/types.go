package content

import (
	types "github.com/stainsolver/stainsolver-backend/internal/domain"
)

type Step struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Supply struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// EffectivenessData holds success rates in percent; FreshStains >= OldStains >= SetInStains.
type EffectivenessData struct {
	Rating      string `json:"rating"`
	Description string `json:"description"`
	FreshStains int    `json:"freshStains"`
	OldStains   int    `json:"oldStains"`
	SetInStains int    `json:"setInStains"`
}

type GeneratedContent struct {
	Intro         string            `json:"intro"`
	Steps         []Step            `json:"steps"`
	Supplies      []Supply          `json:"supplies"`
	Warnings      []string          `json:"warnings"`
	Effectiveness EffectivenessData `json:"effectiveness"`
	FAQs          []FAQ             `json:"faqs"`
	Difficulty    string            `json:"difficulty"`
	TimeRequired  string            `json:"timeRequired"`
	SuccessRate   int               `json:"successRate"`
}

// RawGuide is the authored input for one stain/material pair.
type RawGuide struct {
	PreTreatment  string
	Products      []string
	WashMethod    string
	Warnings      []string
	Effectiveness types.Effectiveness
}

func RawGuideFrom(g *types.Guide) RawGuide {
	if g == nil {
		return RawGuide{}
	}
	return RawGuide{
		PreTreatment:  g.PreTreatment,
		Products:      append([]string(nil), g.Products...),
		WashMethod:    g.WashMethod,
		Warnings:      append([]string(nil), g.Warnings...),
		Effectiveness: g.Effectiveness,
	}
}
