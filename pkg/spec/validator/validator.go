package validator

import (
	"time"

	"mercator-hq/marketingspec/pkg/spec/model"
)

// Validator runs the rule catalogue against parsed documents.
type Validator struct {
	clock func() time.Time
}

// NewValidator creates a validator that reads the real clock.
func NewValidator() *Validator {
	return &Validator{clock: time.Now}
}

// WithClock sets the clock Validate uses for "now".
func (v *Validator) WithClock(clock func() time.Time) *Validator {
	if clock != nil {
		v.clock = clock
	}
	return v
}

// Validate checks doc against every rule at the validator clock's "now".
func (v *Validator) Validate(doc *model.Document) *Result {
	return v.ValidateAt(doc, v.clock())
}

// ValidateAt checks doc against every rule as of now. The document is
// not modified. A nil document yields an empty, valid result.
func (v *Validator) ValidateAt(doc *model.Document, now time.Time) *Result {
	if doc == nil {
		return newResult()
	}

	s := newSession(doc, now)

	s.validateProject(&doc.Project)
	for i := range doc.Products {
		s.validateProduct(&doc.Products[i])
	}
	for i := range doc.Plans {
		s.validatePlan(&doc.Plans[i])
	}
	for i := range doc.Campaigns {
		s.validateCampaign(&doc.Campaigns[i])
	}
	for i := range doc.Channels {
		s.validateChannel(&doc.Channels[i])
	}
	for i := range doc.Tools {
		s.validateTool(&doc.Tools[i])
	}
	for i := range doc.ContentTemplates {
		s.validateContentTemplate(&doc.ContentTemplates[i])
	}
	for i := range doc.Milestones {
		s.validateMilestone(&doc.Milestones[i])
	}
	for i := range doc.Analytics {
		s.validateAnalytics(&doc.Analytics[i])
	}

	s.result.Valid = len(s.result.Errors) == 0
	return s.result
}
