package validator

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	specErrors "mercator-hq/marketingspec/pkg/spec/errors"
	"mercator-hq/marketingspec/pkg/spec/model"
)

// idSet is the set of IDs of one entity kind.
type idSet map[string]struct{}

func newIDSet[T any](items []T, id func(*T) string) idSet {
	s := make(idSet, len(items))
	for i := range items {
		s[id(&items[i])] = struct{}{}
	}
	return s
}

func (s idSet) has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s idSet) sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// session is the state of one validation run.
type session struct {
	doc    *model.Document
	now    time.Time
	result *Result

	products  idSet
	plans     idSet
	campaigns idSet
	channels  idSet
	tools     idSet

	// spend is the campaign budget total per plan ID, built on first use.
	spend map[string]decimal.Decimal
	// badSpend marks plans with a campaign budget that is NaN or infinite.
	badSpend map[string]bool
}

func newSession(doc *model.Document, now time.Time) *session {
	return &session{
		doc:       doc,
		now:       now,
		result:    newResult(),
		products:  newIDSet(doc.Products, func(p *model.Product) string { return p.ID }),
		plans:     newIDSet(doc.Plans, func(p *model.MarketingPlan) string { return p.ID }),
		campaigns: newIDSet(doc.Campaigns, func(c *model.Campaign) string { return c.ID }),
		channels:  newIDSet(doc.Channels, func(c *model.Channel) string { return c.ID }),
		tools:     newIDSet(doc.Tools, func(t *model.Tool) string { return t.ID }),
	}
}

func (s *session) parseDate(v string) (time.Time, error) {
	return parseDate(v, s.now.Location())
}

func (s *session) day(t time.Time) time.Time {
	return calendarDay(t, s.now.Location())
}

// entity scopes rule execution to one entity.
type entity struct {
	s    *session
	kind string
	id   string
}

func (s *session) entity(kind, id string) *entity {
	return &entity{s: s, kind: kind, id: id}
}

// rule is handed to a rule body to report issues under the rule's code.
type rule struct {
	e    *entity
	code string
}

// run executes one applicable rule and records whether it passed.
func (e *entity) run(code string, body func(r *rule)) {
	res := e.s.result
	errorsBefore := len(res.Errors)

	body(&rule{e: e, code: code})

	res.RulesChecked++
	if len(res.Errors) == errorsBefore {
		res.RulesPassed++
	}
}

// runIf runs the rule only when applies is true. Skipped rules are not
// counted.
func (e *entity) runIf(applies bool, code string, body func(r *rule)) {
	if applies {
		e.run(code, body)
	}
}

func (r *rule) report(level Level, field, message, fix string) {
	r.e.s.result.add(Issue{
		Code:       r.code,
		Level:      level,
		EntityType: r.e.kind,
		EntityID:   r.e.id,
		Field:      field,
		Message:    message,
		Fix:        fix,
	})
}

func (r *rule) error(field, message, fix string)   { r.report(LevelError, field, message, fix) }
func (r *rule) warning(field, message, fix string) { r.report(LevelWarning, field, message, fix) }
func (r *rule) info(field, message, fix string)    { r.report(LevelInfo, field, message, fix) }

// checkRefs reports one error per entry of refs missing from known.
func (r *rule) checkRefs(field string, refs []string, known idSet, kind, plural string) {
	for _, ref := range refs {
		if known.has(ref) {
			continue
		}
		r.error(field,
			fmt.Sprintf("%s '%s' does not exist", kind, ref),
			refFix(fmt.Sprintf("Add %s with id='%s' or remove it from %s", kind, ref, field), ref, known, plural))
	}
}

// refFix builds the remediation for a dangling reference. It always lists
// the valid IDs of the target kind, or says none are defined.
func refFix(base, missing string, known idSet, plural string) string {
	parts := make([]string, 0, 3)
	if base != "" {
		parts = append(parts, base)
	}
	ids := known.sorted()
	if len(ids) == 0 {
		parts = append(parts, fmt.Sprintf("(no %s defined)", plural))
	} else {
		parts = append(parts, "Use one of: "+strings.Join(ids, ", "))
		if s := specErrors.Suggest(missing, ids); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ". ")
}

// number converts a decoded YAML or JSON scalar to float64.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
