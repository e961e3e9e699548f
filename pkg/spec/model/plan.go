package model

// MarketingPlan is a strategic plan that owns a budget and a period within
// which all of its campaigns must run.
type MarketingPlan struct {
	ID             string           `yaml:"id" json:"id" validate:"required,slug"`
	Name           string           `yaml:"name" json:"name" validate:"required,min=3"`
	ProjectID      string           `yaml:"project_id" json:"project_id" validate:"required"`
	Period         PlanPeriod       `yaml:"period" json:"period" validate:"required"`
	Objectives     []string         `yaml:"objectives" json:"objectives" validate:"required,min=1,max=5"`
	TargetAudience []TargetAudience `yaml:"target_audience" json:"target_audience" validate:"required,min=1,dive"`
	Strategies     []Strategy       `yaml:"strategies" json:"strategies" validate:"required,min=1,max=8,dive"`
	Budget         PlanBudget       `yaml:"budget" json:"budget" validate:"required"`
	KPIs           []PlanKPI        `yaml:"kpis" json:"kpis" validate:"required,min=1,max=10,dive"`
	CampaignIDs    []string         `yaml:"campaign_ids,omitempty" json:"campaign_ids,omitempty"`
	Status         PlanStatus       `yaml:"status,omitempty" json:"status,omitempty" validate:"omitempty,oneof=draft approved active completed archived"`
	CreatedAt      string           `yaml:"created_at" json:"created_at" validate:"required"`
	UpdatedAt      string           `yaml:"updated_at" json:"updated_at" validate:"required"`
	Approval       *PlanApproval    `yaml:"approval,omitempty" json:"approval,omitempty" validate:"omitempty"`
}

// PlanPeriod is the inclusive date range of a plan.
type PlanPeriod struct {
	StartDate     string `yaml:"start_date" json:"start_date" validate:"required"`
	EndDate       string `yaml:"end_date" json:"end_date" validate:"required"`
	DurationWeeks int    `yaml:"duration_weeks" json:"duration_weeks" validate:"required,min=4,max=52"`
}

// PlanBudget is the total budget of a plan and its breakdown by category.
type PlanBudget struct {
	Total      float64            `yaml:"total" json:"total" validate:"required,finite,gt=0"`
	Currency   string             `yaml:"currency,omitempty" json:"currency,omitempty"`
	Allocation map[string]float64 `yaml:"allocation" json:"allocation" validate:"required,dive,finite"`
}

type TargetAudience struct {
	Segment      string `yaml:"segment" json:"segment" validate:"required"`
	Description  string `yaml:"description" json:"description" validate:"required"`
	SizeEstimate int    `yaml:"size_estimate" json:"size_estimate" validate:"required,gt=0"`
	Priority     Level  `yaml:"priority" json:"priority" validate:"required,oneof=high medium low"`
}

type Strategy struct {
	Name            string `yaml:"name" json:"name" validate:"required"`
	Description     string `yaml:"description" json:"description" validate:"required"`
	Rationale       string `yaml:"rationale" json:"rationale" validate:"required"`
	SuccessCriteria string `yaml:"success_criteria" json:"success_criteria" validate:"required"`
}

type PlanKPI struct {
	Name        string      `yaml:"name" json:"name" validate:"required"`
	Target      *float64    `yaml:"target" json:"target" validate:"required"`
	Unit        string      `yaml:"unit" json:"unit" validate:"required"`
	Measurement string      `yaml:"measurement" json:"measurement" validate:"required"`
	Priority    KPIPriority `yaml:"priority" json:"priority" validate:"required,oneof=P0 P1 P2"`
}

// PlanApproval records who approved a plan and when.
type PlanApproval struct {
	ApprovedBy string `yaml:"approved_by" json:"approved_by" validate:"required"`
	ApprovedAt string `yaml:"approved_at" json:"approved_at" validate:"required"`
	Comments   string `yaml:"comments,omitempty" json:"comments,omitempty"`
}
