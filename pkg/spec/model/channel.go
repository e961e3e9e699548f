package model

// Channel is a distribution platform. It may be automated by a Tool.
type Channel struct {
	ID           string         `yaml:"id" json:"id" validate:"required,slug"`
	Name         string         `yaml:"name" json:"name" validate:"required"`
	Type         ChannelType    `yaml:"type" json:"type" validate:"required,oneof=social_media email blog forum video podcast"`
	Platform     string         `yaml:"platform" json:"platform" validate:"required"`
	ContentTypes []string       `yaml:"content_types" json:"content_types" validate:"required,min=1"`
	Audiences    []string       `yaml:"audiences,omitempty" json:"audiences,omitempty"`
	Constraints  map[string]any `yaml:"constraints,omitempty" json:"constraints,omitempty"`
	ToolID       string         `yaml:"tool_id,omitempty" json:"tool_id,omitempty"`
	Config       map[string]any `yaml:"config,omitempty" json:"config,omitempty"`
}

// Tool is an automation integration (MCP server, REST API or manual work).
type Tool struct {
	ID           string         `yaml:"id" json:"id" validate:"required,slug"`
	Name         string         `yaml:"name" json:"name" validate:"required"`
	Type         ToolType       `yaml:"type" json:"type" validate:"required"`
	Capabilities []string       `yaml:"capabilities" json:"capabilities" validate:"required,min=1"`
	Status       string         `yaml:"status" json:"status" validate:"required"`
	MCPConfig    map[string]any `yaml:"mcp_config,omitempty" json:"mcp_config,omitempty"`
	APIConfig    map[string]any `yaml:"api_config,omitempty" json:"api_config,omitempty"`
	ChannelIDs   []string       `yaml:"channel_ids,omitempty" json:"channel_ids,omitempty"`
}

// Constraint keys with a dedicated rule.
const (
	ConstraintMaxTextLength = "max_text_length"
	ConstraintMinLength     = "min_length"
	ConstraintMaxLength     = "max_length"
	APIConfigBaseURL        = "base_url"
)
