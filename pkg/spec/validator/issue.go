package validator

import "fmt"

// Level is the severity of an issue.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Entity kinds as reported in Issue.EntityType.
const (
	EntityProject         = "project"
	EntityProduct         = "product"
	EntityPlan            = "plan"
	EntityCampaign        = "campaign"
	EntityChannel         = "channel"
	EntityTool            = "tool"
	EntityContentTemplate = "content_template"
	EntityMilestone       = "milestone"
	EntityAnalytics       = "analytics"
)

// Issue is one rule outcome.
type Issue struct {
	Code       string `json:"code"`
	Level      Level  `json:"level"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id,omitempty"`
	Field      string `json:"field,omitempty"`
	Message    string `json:"message"`
	Fix        string `json:"fix,omitempty"`
}

// String formats the issue as "[CODE] entity(id).field: message".
func (i Issue) String() string {
	target := i.EntityType
	if i.EntityID != "" {
		target = fmt.Sprintf("%s(%s)", i.EntityType, i.EntityID)
	}
	if i.Field != "" {
		target += "." + i.Field
	}
	return fmt.Sprintf("[%s] %s: %s", i.Code, target, i.Message)
}
