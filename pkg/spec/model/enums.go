package model

// BrandVoice is the personality and tone of a project's brand.
type BrandVoice string

const (
	BrandVoiceTechnical    BrandVoice = "Technical"
	BrandVoiceFriendly     BrandVoice = "Friendly"
	BrandVoiceProfessional BrandVoice = "Professional"
	BrandVoiceCasual       BrandVoice = "Casual"
	BrandVoiceEducational  BrandVoice = "Educational"
)

// CampaignGoal is the funnel stage a campaign targets.
type CampaignGoal string

const (
	CampaignGoalAwareness     CampaignGoal = "awareness"
	CampaignGoalConsideration CampaignGoal = "consideration"
	CampaignGoalConversion    CampaignGoal = "conversion"
)

// ChannelType categorises distribution channels.
type ChannelType string

const (
	ChannelTypeSocialMedia ChannelType = "social_media"
	ChannelTypeEmail       ChannelType = "email"
	ChannelTypeBlog        ChannelType = "blog"
	ChannelTypeForum       ChannelType = "forum"
	ChannelTypeVideo       ChannelType = "video"
	ChannelTypePodcast     ChannelType = "podcast"
)

// PlanStatus is the lifecycle state of a marketing plan.
type PlanStatus string

const (
	PlanStatusDraft     PlanStatus = "draft"
	PlanStatusApproved  PlanStatus = "approved"
	PlanStatusActive    PlanStatus = "active"
	PlanStatusCompleted PlanStatus = "completed"
	PlanStatusArchived  PlanStatus = "archived"
)

// RequiresApproval reports whether a plan in this status must carry
// approval metadata.
func (s PlanStatus) RequiresApproval() bool {
	return s == PlanStatusApproved || s == PlanStatusActive
}

// ToolType selects how a tool is integrated. It is the dispatch key for the
// tool configuration rules.
type ToolType string

const (
	ToolTypeMCP     ToolType = "mcp"
	ToolTypeRESTAPI ToolType = "rest_api"
	ToolTypeManual  ToolType = "manual"
)

// Known reports whether t is one of the supported integration types.
func (t ToolType) Known() bool {
	switch t {
	case ToolTypeMCP, ToolTypeRESTAPI, ToolTypeManual:
		return true
	}
	return false
}

// ToolTypes returns the supported tool types in display order.
func ToolTypes() []ToolType {
	return []ToolType{ToolTypeMCP, ToolTypeRESTAPI, ToolTypeManual}
}

// AnalyticsType selects the kind of entity an analytics report describes.
type AnalyticsType string

const (
	AnalyticsTypeCampaign AnalyticsType = "campaign"
	AnalyticsTypePlan     AnalyticsType = "plan"
)

// Known reports whether t is a supported report type.
func (t AnalyticsType) Known() bool {
	return t == AnalyticsTypeCampaign || t == AnalyticsTypePlan
}

type InsightType string

const (
	InsightTypeSuccess     InsightType = "success"
	InsightTypeConcern     InsightType = "concern"
	InsightTypeOpportunity InsightType = "opportunity"
)

// Level is shared by optimization priority and effort.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

type KPIPriority string

const (
	KPIPriorityP0 KPIPriority = "P0" // critical
	KPIPriorityP1 KPIPriority = "P1" // important
	KPIPriorityP2 KPIPriority = "P2" // nice to have
)

type ContentStatus string

const (
	ContentStatusPlanned   ContentStatus = "planned"
	ContentStatusCreated   ContentStatus = "created"
	ContentStatusPublished ContentStatus = "published"
)
