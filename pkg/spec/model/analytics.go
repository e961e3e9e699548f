package model

// Analytics is a performance report about a campaign or a plan.
type Analytics struct {
	ID            string                   `yaml:"id" json:"id" validate:"required,slug"`
	Type          AnalyticsType            `yaml:"type" json:"type" validate:"required,oneof=campaign plan"`
	EntityID      string                   `yaml:"entity_id" json:"entity_id" validate:"required"`
	Period        AnalyticsPeriod          `yaml:"period" json:"period" validate:"required"`
	Metrics       map[string]float64       `yaml:"metrics" json:"metrics" validate:"required"`
	VsTarget      map[string]KPIComparison `yaml:"vs_target" json:"vs_target" validate:"required,dive"`
	Insights      []Insight                `yaml:"insights" json:"insights" validate:"required,min=1,max=10,dive"`
	Optimizations []Optimization           `yaml:"optimizations,omitempty" json:"optimizations,omitempty" validate:"omitempty,max=10,dive"`
	GeneratedAt   string                   `yaml:"generated_at" json:"generated_at" validate:"required"`
}

type AnalyticsPeriod struct {
	StartDate string `yaml:"start_date" json:"start_date" validate:"required"`
	EndDate   string `yaml:"end_date" json:"end_date" validate:"required"`
}

// KPIComparison compares a measured value against its target.
// Status is one of exceeds, meets, on_track, below_target, far_below.
type KPIComparison struct {
	Target      *float64 `yaml:"target" json:"target" validate:"required"`
	Actual      *float64 `yaml:"actual" json:"actual" validate:"required"`
	Achievement *float64 `yaml:"achievement" json:"achievement" validate:"required"`
	Status      string   `yaml:"status" json:"status" validate:"required"`
}

type Insight struct {
	Type           InsightType `yaml:"type" json:"type" validate:"required,oneof=success concern opportunity"`
	Description    string      `yaml:"description" json:"description" validate:"required"`
	Evidence       string      `yaml:"evidence" json:"evidence" validate:"required"`
	Recommendation string      `yaml:"recommendation" json:"recommendation" validate:"required"`
}

type Optimization struct {
	Priority       Level  `yaml:"priority" json:"priority" validate:"required,oneof=high medium low"`
	Action         string `yaml:"action" json:"action" validate:"required"`
	ExpectedImpact string `yaml:"expected_impact" json:"expected_impact" validate:"required"`
	Effort         Level  `yaml:"effort" json:"effort" validate:"required,oneof=low medium high"`
}
