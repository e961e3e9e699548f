package validator

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"mercator-hq/marketingspec/pkg/spec/model"
)

// planOverrunFactor is the share of a plan's total that the budgets of its
// campaigns may reach before CAMP-11 warns.
var planOverrunFactor = decimal.RequireFromString("1.05")

const minTargetROAS = 3.0

// campaignStatusesBeforeStart are the statuses for which a past start date
// is suspicious.
var campaignStatusesBeforeStart = map[string]bool{"draft": true, "scheduled": true}

func (s *session) validateCampaign(c *model.Campaign) {
	e := s.entity(EntityCampaign, c.ID)

	start, errStart := s.parseDate(c.StartDate)
	end, errEnd := s.parseDate(c.EndDate)

	e.runIf(len(c.ProductIDs) > 0, CodeCampaignProducts, func(r *rule) {
		r.checkRefs("product_ids", c.ProductIDs, s.products, "Product", "products")
	})

	e.run(CodeCampaignDates, func(r *rule) {
		switch {
		case errStart != nil:
			r.error("start_date",
				fmt.Sprintf("Invalid date format: '%s'", c.StartDate),
				"Use ISO 8601 format: YYYY-MM-DD")
		case errEnd != nil:
			r.error("end_date",
				fmt.Sprintf("Invalid date format: '%s'", c.EndDate),
				"Use ISO 8601 format: YYYY-MM-DD")
		case !start.Before(end):
			r.error("start_date",
				fmt.Sprintf("Start date (%s) must be before end date (%s)", c.StartDate, c.EndDate),
				"Adjust dates so start_date < end_date")
		}
	})

	e.runIf(errStart == nil, CodeCampaignPastStart, func(r *rule) {
		if start.Before(s.now) && campaignStatusesBeforeStart[c.Status] {
			r.warning("start_date",
				fmt.Sprintf("Campaign start date (%s) is in the past", c.StartDate),
				"Update start_date or change status to 'active'")
		}
	})

	e.run(CodeCampaignChannels, func(r *rule) {
		r.checkRefs("channels", c.Channels, s.channels, "Channel", "channels")
	})

	ctr, hasCTR := c.KPIs[model.KPITargetCTR]
	e.runIf(hasCTR, CodeCampaignCTR, func(r *rule) {
		if !(ctr >= 0 && ctr <= 1) {
			r.error("kpis."+model.KPITargetCTR,
				fmt.Sprintf("CTR must be between 0 and 1 (got %g)", ctr),
				"Use decimal format: 0.05 for 5% CTR")
		}
	})

	roas, hasROAS := c.KPIs[model.KPITargetROAS]
	e.runIf(hasROAS, CodeCampaignROAS, func(r *rule) {
		if roas < minTargetROAS {
			r.warning("kpis."+model.KPITargetROAS,
				fmt.Sprintf("ROAS of %g is below recommended minimum of %.1f for profitability", roas, minTargetROAS),
				"Consider increasing budget efficiency or raising target ROAS")
		}
	})

	e.run(CodeCampaignPlan, func(r *rule) {
		if !s.plans.has(c.PlanID) {
			r.error("plan_id",
				fmt.Sprintf("Campaign references non-existent plan '%s'", c.PlanID),
				refFix("", c.PlanID, s.plans, "plans"))
		}
	})

	// Containment and budget rules need the plan; an unknown plan was
	// reported above.
	plan := s.doc.Plan(c.PlanID)
	if plan == nil {
		return
	}

	planStart, errPlanStart := s.parseDate(plan.Period.StartDate)
	planEnd, errPlanEnd := s.parseDate(plan.Period.EndDate)
	periodOK := errPlanStart == nil && errPlanEnd == nil
	periodText := fmt.Sprintf("%s to %s", plan.Period.StartDate, plan.Period.EndDate)

	e.runIf(periodOK && errStart == nil, CodeCampaignPlanStart, func(r *rule) {
		if !s.within(start, planStart, planEnd) {
			r.error("start_date",
				fmt.Sprintf("Campaign start (%s) outside plan period (%s)", c.StartDate, periodText),
				fmt.Sprintf("Adjust start_date to be between %s and %s", plan.Period.StartDate, plan.Period.EndDate))
		}
	})

	e.runIf(periodOK && errStart == nil && errEnd == nil, CodeCampaignPlanEnd, func(r *rule) {
		switch {
		case !s.within(end, planStart, planEnd):
			r.error("end_date",
				fmt.Sprintf("Campaign end (%s) outside plan period (%s)", c.EndDate, periodText),
				fmt.Sprintf("Adjust end_date to be between %s and %s", plan.Period.StartDate, plan.Period.EndDate))
		case s.day(end).Before(s.day(start)):
			r.error("end_date",
				fmt.Sprintf("Campaign end (%s) before start (%s)", c.EndDate, c.StartDate),
				"Set end_date to be >= start_date")
		}
	})

	total, okTotal := exact(plan.Budget.Total)
	spend, okSpend := s.planSpend(plan.ID)
	e.runIf(okTotal && okSpend, CodeCampaignPlanBudget, func(r *rule) {
		if spend.GreaterThan(total.Mul(planOverrunFactor)) {
			r.warning("budget",
				fmt.Sprintf("Total campaign budgets ($%s) exceed plan budget ($%s)", spend.StringFixed(2), total.StringFixed(2)),
				"Consider reducing campaign budgets or increasing plan budget")
		}
	})
}

// within reports whether t falls on a calendar day in [from, to].
func (s *session) within(t, from, to time.Time) bool {
	d := s.day(t)
	return !d.Before(s.day(from)) && !d.After(s.day(to))
}

// planSpend is the exact sum of budgets of all campaigns that reference
// planID. Sums are computed once per run. ok is false when one of those
// budgets is not finite.
func (s *session) planSpend(planID string) (spend decimal.Decimal, ok bool) {
	if s.spend == nil {
		s.spend = make(map[string]decimal.Decimal, len(s.doc.Plans))
		s.badSpend = make(map[string]bool)
		for i := range s.doc.Campaigns {
			c := &s.doc.Campaigns[i]
			d, ok := exact(c.Budget)
			if !ok {
				s.badSpend[c.PlanID] = true
				continue
			}
			s.spend[c.PlanID] = s.spend[c.PlanID].Add(d)
		}
	}
	return s.spend[planID], !s.badSpend[planID]
}
