package validator

import (
	"fmt"

	"mercator-hq/marketingspec/pkg/spec/model"
)

// milestoneHorizonDays is how far ahead a milestone may be before VR-M05
// warns.
const milestoneHorizonDays = 365

func (s *session) validateContentTemplate(t *model.ContentTemplate) {
	e := s.entity(EntityContentTemplate, t.ID)

	minRaw, hasMin := t.Constraints[model.ConstraintMinLength]
	maxRaw, hasMax := t.Constraints[model.ConstraintMaxLength]
	e.runIf(hasMin && hasMax, CodeTemplateLengths, func(r *rule) {
		minLen, okMin := number(minRaw)
		maxLen, okMax := number(maxRaw)
		switch {
		case !okMin || !okMax:
			r.error("constraints",
				fmt.Sprintf("min_length (%v) and max_length (%v) must be numbers", minRaw, maxRaw),
				"Use whole numbers for length constraints")
		case minLen >= maxLen:
			r.error("constraints",
				fmt.Sprintf("min_length (%g) must be < max_length (%g)", minLen, maxLen),
				"Adjust length constraints so min < max")
		}
	})
}

func (s *session) validateMilestone(m *model.Milestone) {
	e := s.entity(EntityMilestone, m.ID)

	e.runIf(len(m.ProductIDs) > 0, CodeMilestoneProducts, func(r *rule) {
		r.checkRefs("product_ids", m.ProductIDs, s.products, "Product", "products")
	})

	e.runIf(len(m.CampaignIDs) > 0, CodeMilestoneCampaign, func(r *rule) {
		r.checkRefs("campaign_ids", m.CampaignIDs, s.campaigns, "Campaign", "campaigns")
	})

	e.run(CodeMilestoneDate, func(r *rule) {
		date, err := s.parseDate(m.Date)
		if err != nil {
			r.error("date",
				fmt.Sprintf("Invalid date format: '%s'", m.Date),
				"Use ISO 8601 format: YYYY-MM-DD")
			return
		}
		if date.After(s.now.AddDate(0, 0, milestoneHorizonDays)) {
			r.warning("date",
				fmt.Sprintf("Milestone date (%s) is more than 1 year in the future", m.Date),
				"Consider breaking into shorter-term milestones")
		}
	})
}

func (s *session) validateAnalytics(a *model.Analytics) {
	e := s.entity(EntityAnalytics, a.ID)

	e.run(CodeAnalyticsEntity, func(r *rule) {
		switch a.Type {
		case model.AnalyticsTypeCampaign:
			if !s.campaigns.has(a.EntityID) {
				r.error("entity_id",
					fmt.Sprintf("Analytics references non-existent campaign '%s'", a.EntityID),
					refFix("", a.EntityID, s.campaigns, "campaigns"))
			}
		case model.AnalyticsTypePlan:
			if !s.plans.has(a.EntityID) {
				r.error("entity_id",
					fmt.Sprintf("Analytics references non-existent plan '%s'", a.EntityID),
					refFix("", a.EntityID, s.plans, "plans"))
			}
		default:
			r.error("type",
				fmt.Sprintf("Unknown analytics type '%s'", a.Type),
				fmt.Sprintf("Use one of: %s, %s", model.AnalyticsTypeCampaign, model.AnalyticsTypePlan))
		}
	})
}
