// Package model defines domain types for fincoach profiles, budgets and conversations.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Segment is the two-valued user classification that drives budget
// fractions and advice tone.
type Segment string

const (
	SegmentStudent      Segment = "student"
	SegmentProfessional Segment = "professional"
)

// Segments lists every segment in display order.
var Segments = []Segment{SegmentStudent, SegmentProfessional}

// Title returns the capitalized segment name.
func (s Segment) Title() string {
	switch s {
	case SegmentStudent:
		return "Student"
	case SegmentProfessional:
		return "Professional"
	default:
		return string(s)
	}
}

// Valid reports whether s is a known segment.
func (s Segment) Valid() bool {
	return s == SegmentStudent || s == SegmentProfessional
}

// Experience is the self-reported financial experience level.
type Experience string

const (
	ExperienceBeginner     Experience = "Beginner"
	ExperienceIntermediate Experience = "Intermediate"
	ExperienceAdvanced     Experience = "Advanced"
)

// Experiences lists every experience level in form order.
var Experiences = []Experience{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced}

// Valid reports whether e is a known experience level.
func (e Experience) Valid() bool {
	for _, known := range Experiences {
		if e == known {
			return true
		}
	}
	return false
}

// Profile is the user's financial profile. It is replaced wholesale on
// every submission and never patched in place.
type Profile struct {
	Name       string          `json:"name"`
	Age        int             `json:"age"`
	Occupation string          `json:"occupation"`
	Income     decimal.Decimal `json:"income"`
	Experience Experience      `json:"experience"`
	Goals      string          `json:"goals"`
	Segment    Segment         `json:"type"`
	Budget     Allocation      `json:"budget"`
	CreatedAt  time.Time       `json:"createdAt"`
}
