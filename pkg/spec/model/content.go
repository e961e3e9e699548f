package model

// ContentTemplate is a reusable content recipe with brand guidelines.
type ContentTemplate struct {
	ID              string         `yaml:"id" json:"id" validate:"required,slug"`
	Name            string         `yaml:"name" json:"name" validate:"required"`
	Type            string         `yaml:"type" json:"type" validate:"required"`
	Tone            string         `yaml:"tone" json:"tone" validate:"required"`
	StyleGuidelines []string       `yaml:"style_guidelines" json:"style_guidelines" validate:"required,min=1"`
	ProjectID       string         `yaml:"project_id" json:"project_id" validate:"required"`
	Constraints     map[string]any `yaml:"constraints,omitempty" json:"constraints,omitempty"`
	Examples        []string       `yaml:"examples,omitempty" json:"examples,omitempty"`
}

// Milestone is a dated event on the marketing timeline.
type Milestone struct {
	ID          string   `yaml:"id" json:"id" validate:"required,slug"`
	Name        string   `yaml:"name" json:"name" validate:"required"`
	Type        string   `yaml:"type" json:"type" validate:"required"`
	Date        string   `yaml:"date" json:"date" validate:"required"`
	ProjectID   string   `yaml:"project_id" json:"project_id" validate:"required"`
	Status      string   `yaml:"status,omitempty" json:"status,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	ProductIDs  []string `yaml:"product_ids,omitempty" json:"product_ids,omitempty"`
	CampaignIDs []string `yaml:"campaign_ids,omitempty" json:"campaign_ids,omitempty"`
}
