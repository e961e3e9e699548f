package model

// Campaign is a time-bound marketing activity executed under exactly one
// MarketingPlan.
type Campaign struct {
	ID              string                 `yaml:"id" json:"id" validate:"required,slug"`
	Name            string                 `yaml:"name" json:"name" validate:"required"`
	Goal            CampaignGoal           `yaml:"goal" json:"goal" validate:"required,oneof=awareness consideration conversion"`
	PlanID          string                 `yaml:"plan_id" json:"plan_id" validate:"required"`
	ProjectID       string                 `yaml:"project_id" json:"project_id" validate:"required"`
	ProductIDs      []string               `yaml:"product_ids,omitempty" json:"product_ids,omitempty"`
	TargetAudience  []string               `yaml:"target_audience" json:"target_audience" validate:"required,min=1"`
	Budget          float64                `yaml:"budget" json:"budget" validate:"required,finite,gt=0"`
	StartDate       string                 `yaml:"start_date" json:"start_date" validate:"required"`
	EndDate         string                 `yaml:"end_date" json:"end_date" validate:"required"`
	Channels        []string               `yaml:"channels" json:"channels" validate:"required,min=1"`
	KPIs            map[string]float64     `yaml:"kpis,omitempty" json:"kpis,omitempty"`
	ExpectedKPIs    map[string]float64     `yaml:"expected_kpis,omitempty" json:"expected_kpis,omitempty"`
	ContentCalendar []ContentCalendarEntry `yaml:"content_calendar,omitempty" json:"content_calendar,omitempty" validate:"omitempty,dive"`
	Status          string                 `yaml:"status,omitempty" json:"status,omitempty"`
}

// ContentCalendarEntry is one scheduled piece of content.
type ContentCalendarEntry struct {
	Date        string        `yaml:"date" json:"date" validate:"required"`
	ContentType string        `yaml:"content_type" json:"content_type" validate:"required"`
	ChannelID   string        `yaml:"channel_id" json:"channel_id" validate:"required"`
	Title       string        `yaml:"title" json:"title" validate:"required"`
	Status      ContentStatus `yaml:"status" json:"status" validate:"required,oneof=planned created published"`
}

// KPI keys with a dedicated rule.
const (
	KPITargetCTR  = "target_ctr"
	KPITargetROAS = "target_roas"
)
