package validator

// Rule codes. Codes are stable identifiers that tooling uses to filter and
// count issues; renaming one is a breaking change.
const (
	CodeSocialHandles = "VR-P06"

	CodeProductFeatures   = "VR-PR04"
	CodeProductLaunchDate = "VR-PR05"

	CodePlanObjectives     = "PLAN-01"
	CodePlanDuration       = "PLAN-02"
	CodePlanBudget         = "PLAN-03"
	CodePlanApproval       = "PLAN-04"
	CodePlanStrategies     = "PLAN-05"
	CodePlanPeriod         = "PLAN-06"
	CodeCampaignProducts   = "VR-C03"
	CodeCampaignDates      = "VR-C05"
	CodeCampaignPastStart  = "VR-C06"
	CodeCampaignChannels   = "VR-C07"
	CodeCampaignCTR        = "VR-C08"
	CodeCampaignROAS       = "VR-C09"
	CodeCampaignPlan       = "CAMP-08"
	CodeCampaignPlanStart  = "CAMP-09"
	CodeCampaignPlanEnd    = "CAMP-10"
	CodeCampaignPlanBudget = "CAMP-11"

	CodeChannelPlatform   = "VR-CH03"
	CodeChannelTool       = "VR-CH04"
	CodeChannelTextLimit  = "VR-CH06"
	CodeToolMCPConfig     = "VR-T02"
	CodeToolAPIConfig     = "VR-T03"
	CodeToolType          = "VR-T07"
	CodeToolHTTPS         = "VR-T05"
	CodeToolChannels      = "VR-T06"
	CodeTemplateLengths   = "VR-CT04"
	CodeMilestoneProducts = "VR-M03"
	CodeMilestoneCampaign = "VR-M04"
	CodeMilestoneDate     = "VR-M05"
	CodeAnalyticsEntity   = "ANLY-01"
)

// RuleInfo describes one rule of the catalogue.
type RuleInfo struct {
	Code        string `json:"code"`
	Entity      string `json:"entity"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

var catalogue = []RuleInfo{
	{CodeSocialHandles, EntityProject, "warning", "Twitter handles start with '@'; GitHub and GitLab handles do not"},
	{CodeProductFeatures, EntityProduct, "warning", "key_features has 3 to 5 entries"},
	{CodeProductLaunchDate, EntityProduct, "error/info", "launch_date is a valid ISO date; a future launch is reported as info"},
	{CodePlanObjectives, EntityPlan, "error", "objectives contain no blank entries"},
	{CodePlanDuration, EntityPlan, "error", "period.duration_weeks is between 4 and 52"},
	{CodePlanBudget, EntityPlan, "error", "budget.allocation sums to budget.total within 0.01"},
	{CodePlanApproval, EntityPlan, "error", "approved and active plans carry approval metadata"},
	{CodePlanStrategies, EntityPlan, "error", "strategies has 1 to 8 entries"},
	{CodePlanPeriod, EntityPlan, "error", "period dates are valid and start_date is not after end_date"},
	{CodeCampaignProducts, EntityCampaign, "error", "every product_ids entry references a product"},
	{CodeCampaignDates, EntityCampaign, "error", "dates are valid and start_date is before end_date"},
	{CodeCampaignPastStart, EntityCampaign, "warning", "draft and scheduled campaigns do not start in the past"},
	{CodeCampaignChannels, EntityCampaign, "error", "every channels entry references a channel"},
	{CodeCampaignCTR, EntityCampaign, "error", "kpis.target_ctr is between 0 and 1"},
	{CodeCampaignROAS, EntityCampaign, "warning", "kpis.target_roas is at least 3"},
	{CodeCampaignPlan, EntityCampaign, "error", "plan_id references a marketing plan"},
	{CodeCampaignPlanStart, EntityCampaign, "error", "start_date lies within the plan period"},
	{CodeCampaignPlanEnd, EntityCampaign, "error", "end_date lies within the plan period and is not before start_date"},
	{CodeCampaignPlanBudget, EntityCampaign, "warning", "campaign budgets under one plan stay within 105% of the plan total"},
	{CodeChannelPlatform, EntityChannel, "warning", "platform is lowercase with hyphens"},
	{CodeChannelTool, EntityChannel, "error", "tool_id references a tool"},
	{CodeChannelTextLimit, EntityChannel, "error", "constraints.max_text_length is a positive number"},
	{CodeToolMCPConfig, EntityTool, "error", "mcp tools have mcp_config"},
	{CodeToolAPIConfig, EntityTool, "error", "rest_api tools have api_config"},
	{CodeToolType, EntityTool, "error", "type is one of mcp, rest_api, manual"},
	{CodeToolHTTPS, EntityTool, "error", "api_config.base_url uses HTTPS"},
	{CodeToolChannels, EntityTool, "error", "every channel_ids entry references a channel"},
	{CodeTemplateLengths, EntityContentTemplate, "error", "constraints.min_length is less than constraints.max_length"},
	{CodeMilestoneProducts, EntityMilestone, "error", "every product_ids entry references a product"},
	{CodeMilestoneCampaign, EntityMilestone, "error", "every campaign_ids entry references a campaign"},
	{CodeMilestoneDate, EntityMilestone, "error/warning", "date is valid and at most 365 days ahead"},
	{CodeAnalyticsEntity, EntityAnalytics, "error", "entity_id references a campaign or plan according to type"},
}

// Catalogue returns every rule in execution order.
func Catalogue() []RuleInfo {
	return append([]RuleInfo(nil), catalogue...)
}

// LookupRule returns the catalogue entry for code.
func LookupRule(code string) (RuleInfo, bool) {
	for _, r := range catalogue {
		if r.Code == code {
			return r, true
		}
	}
	return RuleInfo{}, false
}
