// Package validator implements the business rules of a marketing
// specification.
//
// The parser guarantees the shape of every field (presence, type, enum,
// pattern). This package checks what the shape cannot express: references
// between entities, date ordering and containment, budget reconciliation,
// and recommended ranges.
//
// # Execution Order
//
// Entity IDs are collected into per-kind lookup sets before any rule runs.
// Entities are then validated kind by kind in document order: project,
// products, plans, campaigns, channels, tools, content templates,
// milestones, analytics. Within an entity, rules run in catalogue order
// (see Catalogue).
//
// # Counting
//
// Each rule that applies to an entity counts once in RulesChecked, and once
// in RulesPassed unless it produced an error-level issue. Warnings and info
// do not make a rule fail. Rules that do not apply (an optional field is
// absent, or a date they depend on was already reported unparsable) are not
// counted.
//
// # Time
//
// Three rules compare dates with "now". Validate reads the validator's
// clock; ValidateAt takes the instant explicitly so results are
// reproducible.
//
// # Concurrency
//
// A Validator holds no per-run state. All lookup sets and counters live in a
// session created by each call, so one Validator may be shared between
// goroutines.
//
// # Basic Usage
//
//	res := validator.NewValidator().Validate(doc)
//	if res.Failed(strict) {
//	    for _, issue := range res.Errors {
//	        fmt.Printf("[%s] %s\n", issue.Code, issue.Message)
//	    }
//	}
package validator
