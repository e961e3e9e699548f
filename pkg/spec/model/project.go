package model

// Project is the brand identity at the root of the document.
type Project struct {
	Name              string            `yaml:"name" json:"name" validate:"required"`
	Tagline           string            `yaml:"tagline" json:"tagline" validate:"required,max=100"`
	BrandVoice        BrandVoice        `yaml:"brand_voice" json:"brand_voice" validate:"required,oneof=Technical Friendly Professional Casual Educational"`
	Website           string            `yaml:"website" json:"website" validate:"required,url,startswith=https://"`
	TargetAudience    []string          `yaml:"target_audience" json:"target_audience" validate:"required,min=1"`
	ValuePropositions []string          `yaml:"value_propositions" json:"value_propositions" validate:"required,min=1"`
	LogoURL           string            `yaml:"logo_url,omitempty" json:"logo_url,omitempty" validate:"omitempty,url"`
	SocialHandles     map[string]string `yaml:"social_handles,omitempty" json:"social_handles,omitempty"`
}

// Product is a feature offering within the project.
type Product struct {
	ID             string   `yaml:"id" json:"id" validate:"required,slug"`
	Name           string   `yaml:"name" json:"name" validate:"required"`
	Description    string   `yaml:"description" json:"description" validate:"required,max=500"`
	ProjectID      string   `yaml:"project_id" json:"project_id" validate:"required"`
	TargetAudience []string `yaml:"target_audience" json:"target_audience" validate:"required,min=1"`
	KeyFeatures    []string `yaml:"key_features" json:"key_features" validate:"required,min=1"`
	Positioning    string   `yaml:"positioning,omitempty" json:"positioning,omitempty" validate:"omitempty,max=200"`
	LaunchDate     string   `yaml:"launch_date,omitempty" json:"launch_date,omitempty"`
}
