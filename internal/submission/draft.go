package submission

import (
	"BalaghAPI/internal/constant"
	"time"
)

type Step int

const (
	StepDetails Step = 1
	StepPlace   Step = 2
	StepMedia   Step = 3
	StepReview  Step = 4
)

func (s Step) Valid() bool {
	return s >= StepDetails && s <= StepReview
}

type Details struct {
	Title       string `json:"title" validate:"max=400"`
	Description string `json:"description" validate:"max=4000"`
}

type Place struct {
	Category  string   `json:"category" validate:"omitempty,category"`
	Location  string   `json:"location" validate:"max=500"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Region    string   `json:"region" validate:"omitempty,region"`
}

type Media struct {
	URLs []string `json:"urls" validate:"max=20,dive,url"`
}

type Review struct {
	Priority    string `json:"priority" validate:"omitempty,priority"`
	IsAnonymous bool   `json:"is_anonymous"`
}

// Draft is the persisted, not yet submitted state of the report wizard.
type Draft struct {
	Step      Step      `json:"step" validate:"min=1,max=4"`
	Details   Details   `json:"details"`
	Place     Place     `json:"place"`
	Media     Media     `json:"media"`
	Review    Review    `json:"review"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewDraft() Draft {
	return Draft{
		Step:   StepDetails,
		Media:  Media{URLs: []string{}},
		Review: Review{Priority: string(constant.PriorityMedium), IsAnonymous: true},
	}
}

// Patch replaces exactly one step record; Step names which one.
type Patch struct {
	Step    Step     `json:"step"`
	Details *Details `json:"details,omitempty"`
	Place   *Place   `json:"place,omitempty"`
	Media   *Media   `json:"media,omitempty"`
	Review  *Review  `json:"review,omitempty"`
}

func (p Patch) record() (any, int) {
	var record any
	count := 0
	if p.Details != nil {
		record, count = p.Details, count+1
	}
	if p.Place != nil {
		record, count = p.Place, count+1
	}
	if p.Media != nil {
		record, count = p.Media, count+1
	}
	if p.Review != nil {
		record, count = p.Review, count+1
	}
	return record, count
}

func (p Patch) matchesStep() bool {
	switch p.Step {
	case StepDetails:
		return p.Details != nil
	case StepPlace:
		return p.Place != nil
	case StepMedia:
		return p.Media != nil
	case StepReview:
		return p.Review != nil
	}
	return false
}
