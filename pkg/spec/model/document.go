package model

// Document is the root of a marketing specification.
type Document struct {
	Project          Project           `yaml:"project" json:"project" validate:"required"`
	Products         []Product         `yaml:"products,omitempty" json:"products,omitempty" validate:"dive"`
	Plans            []MarketingPlan   `yaml:"plans,omitempty" json:"plans,omitempty" validate:"dive"`
	Campaigns        []Campaign        `yaml:"campaigns,omitempty" json:"campaigns,omitempty" validate:"dive"`
	Channels         []Channel         `yaml:"channels,omitempty" json:"channels,omitempty" validate:"dive"`
	Tools            []Tool            `yaml:"tools,omitempty" json:"tools,omitempty" validate:"dive"`
	ContentTemplates []ContentTemplate `yaml:"content_templates,omitempty" json:"content_templates,omitempty" validate:"dive"`
	Milestones       []Milestone       `yaml:"milestones,omitempty" json:"milestones,omitempty" validate:"dive"`
	Analytics        []Analytics       `yaml:"analytics,omitempty" json:"analytics,omitempty" validate:"dive"`
}

// Counts returns the number of entities of each kind, keyed by the
// document field name. The project is always counted once.
func (d *Document) Counts() map[string]int {
	return map[string]int{
		"project":           1,
		"products":          len(d.Products),
		"plans":             len(d.Plans),
		"campaigns":         len(d.Campaigns),
		"channels":          len(d.Channels),
		"tools":             len(d.Tools),
		"content_templates": len(d.ContentTemplates),
		"milestones":        len(d.Milestones),
		"analytics":         len(d.Analytics),
	}
}

// Plan returns the first plan with the given ID, or nil.
func (d *Document) Plan(id string) *MarketingPlan {
	for i := range d.Plans {
		if d.Plans[i].ID == id {
			return &d.Plans[i]
		}
	}
	return nil
}

// ApplyDefaults fills optional fields that have a documented default value.
// It is called by the parser after decoding.
func (d *Document) ApplyDefaults() {
	for i := range d.Plans {
		if d.Plans[i].Status == "" {
			d.Plans[i].Status = PlanStatusDraft
		}
		if d.Plans[i].Budget.Currency == "" {
			d.Plans[i].Budget.Currency = DefaultCurrency
		}
	}
	for i := range d.Campaigns {
		if d.Campaigns[i].Status == "" {
			d.Campaigns[i].Status = DefaultCampaignStatus
		}
	}
	for i := range d.Milestones {
		if d.Milestones[i].Status == "" {
			d.Milestones[i].Status = DefaultMilestoneStatus
		}
	}
}

const (
	DefaultCurrency        = "USD"
	DefaultCampaignStatus  = "draft"
	DefaultMilestoneStatus = "planned"
)
