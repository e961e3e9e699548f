package validator

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"mercator-hq/marketingspec/pkg/spec/model"
)

const (
	minPlanWeeks      = 4
	maxPlanWeeks      = 52
	minPlanStrategies = 1
	maxPlanStrategies = 8
)

// allocationTolerance is the absolute difference allowed between the sum
// of a plan's allocation and its total.
var allocationTolerance = decimal.RequireFromString("0.01")

func (s *session) validatePlan(p *model.MarketingPlan) {
	e := s.entity(EntityPlan, p.ID)

	e.run(CodePlanObjectives, func(r *rule) {
		blank := 0
		for _, obj := range p.Objectives {
			if strings.TrimSpace(obj) == "" {
				blank++
			}
		}
		if blank > 0 {
			r.error("objectives",
				fmt.Sprintf("Plan has %d empty objective(s)", blank),
				"Remove empty strings from objectives list")
		}
	})

	e.run(CodePlanDuration, func(r *rule) {
		w := p.Period.DurationWeeks
		if w < minPlanWeeks || w > maxPlanWeeks {
			r.error("period.duration_weeks",
				fmt.Sprintf("Plan duration of %d weeks is outside %d-%d", w, minPlanWeeks, maxPlanWeeks),
				fmt.Sprintf("Set period.duration_weeks between %d and %d", minPlanWeeks, maxPlanWeeks))
		}
	})

	e.runIf(len(p.Budget.Allocation) > 0, CodePlanBudget, func(r *rule) {
		total, okTotal := exact(p.Budget.Total)
		sum, okSum := sumAllocation(p.Budget.Allocation)
		if !okTotal || !okSum {
			r.error("budget",
				"Budget total and allocation amounts must be finite numbers",
				"Replace .nan and .inf values with amounts")
			return
		}
		if sum.Sub(total).Abs().GreaterThan(allocationTolerance) {
			r.error("budget",
				fmt.Sprintf("Budget allocation sum ($%s) != total ($%s)", sum.StringFixed(2), total.StringFixed(2)),
				fmt.Sprintf("Adjust allocation to sum to $%s", total.StringFixed(2)))
		}
	})

	e.run(CodePlanApproval, func(r *rule) {
		if p.Status.RequiresApproval() && p.Approval == nil {
			r.error("approval",
				fmt.Sprintf("Plan status '%s' requires approval metadata", p.Status),
				"Add approval field with approved_by, approved_at, and optional comments")
		}
	})

	e.run(CodePlanStrategies, func(r *rule) {
		n := len(p.Strategies)
		if n < minPlanStrategies || n > maxPlanStrategies {
			r.error("strategies",
				fmt.Sprintf("Plan has %d strategies (allowed: %d-%d)", n, minPlanStrategies, maxPlanStrategies),
				fmt.Sprintf("Keep between %d and %d strategies", minPlanStrategies, maxPlanStrategies))
		}
	})

	e.run(CodePlanPeriod, func(r *rule) {
		start, errStart := s.parseDate(p.Period.StartDate)
		end, errEnd := s.parseDate(p.Period.EndDate)
		switch {
		case errStart != nil:
			r.error("period.start_date",
				fmt.Sprintf("Invalid date format: '%s'", p.Period.StartDate),
				"Use ISO 8601 format: YYYY-MM-DD")
		case errEnd != nil:
			r.error("period.end_date",
				fmt.Sprintf("Invalid date format: '%s'", p.Period.EndDate),
				"Use ISO 8601 format: YYYY-MM-DD")
		case start.After(end):
			r.error("period",
				fmt.Sprintf("Plan period start (%s) is after end (%s)", p.Period.StartDate, p.Period.EndDate),
				"Adjust period so start_date <= end_date")
		}
	})
}

// sumAllocation adds allocation amounts exactly. Keys are visited in
// sorted order. ok is false when an amount is not finite.
func sumAllocation(allocation map[string]float64) (sum decimal.Decimal, ok bool) {
	keys := make([]string, 0, len(allocation))
	for k := range allocation {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		d, ok := exact(allocation[k])
		if !ok {
			return decimal.Zero, false
		}
		sum = sum.Add(d)
	}
	return sum, true
}

// exact converts f to a decimal. decimal.NewFromFloat panics on NaN and
// infinities, so those report false instead.
func exact(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}
