package validator

// Result is the outcome of one validation run.
type Result struct {
	// Valid is true iff Errors is empty.
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
	Info     []Issue `json:"info"`

	RulesChecked int `json:"rules_checked"`
	RulesPassed  int `json:"rules_passed"`
}

func newResult() *Result {
	return &Result{
		Valid:    true,
		Errors:   make([]Issue, 0),
		Warnings: make([]Issue, 0),
		Info:     make([]Issue, 0),
	}
}

// ErrorCount is the number of error-level issues.
func (r *Result) ErrorCount() int { return len(r.Errors) }

// WarningCount is the number of warnings. They fail a run only in strict
// mode.
func (r *Result) WarningCount() int { return len(r.Warnings) }

// SuccessRate is the percentage of checked rules that passed, or 0 when no
// rule ran.
func (r *Result) SuccessRate() float64 {
	if r.RulesChecked == 0 {
		return 0
	}
	return float64(r.RulesPassed) / float64(r.RulesChecked) * 100
}

// Failed applies the caller's policy: a result fails when it is invalid, or
// in strict mode when it has any warning.
func (r *Result) Failed(strict bool) bool {
	if !r.Valid {
		return true
	}
	return strict && len(r.Warnings) > 0
}

// Issues returns errors, then warnings, then info.
func (r *Result) Issues() []Issue {
	all := make([]Issue, 0, len(r.Errors)+len(r.Warnings)+len(r.Info))
	all = append(all, r.Errors...)
	all = append(all, r.Warnings...)
	all = append(all, r.Info...)
	return all
}

// ByCode returns the issues with the given rule code in severity order.
func (r *Result) ByCode(code string) []Issue {
	var out []Issue
	for _, issue := range r.Issues() {
		if issue.Code == code {
			out = append(out, issue)
		}
	}
	return out
}

func (r *Result) add(issue Issue) {
	switch issue.Level {
	case LevelError:
		r.Errors = append(r.Errors, issue)
	case LevelWarning:
		r.Warnings = append(r.Warnings, issue)
	default:
		r.Info = append(r.Info, issue)
	}
}
