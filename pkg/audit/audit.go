// Package audit checks inventory data against site policies and reports
// what is wrong and what could be repaired. Audits never mutate anything:
// repairs are proposals recorded in the report.
package audit

import "fmt"

// Report results.
const (
	ResultOK       = "OK"
	ResultRepaired = "Repaired"
	ResultError    = "Error"
)

// Report is the outcome of one audit: problems that could not be repaired,
// repairs that were proposed, and an overall result derived from the two.
type Report struct {
	Result  string   `json:"result" yaml:"result"`
	Errors  []string `json:"errors" yaml:"errors"`
	Repairs []string `json:"repairs" yaml:"repairs"`
}

// recorder accumulates error and repair messages while an audit runs and
// derives the final report.
type recorder struct {
	errors  []string
	repairs []string
}

func (r *recorder) errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recorder) repairf(format string, args ...any) {
	r.repairs = append(r.repairs, fmt.Sprintf(format, args...))
}

// report compiles the result: OK when nothing was found, Repaired when
// every finding was repairable, Error otherwise.
func (r *recorder) report() Report {
	result := ResultOK
	switch {
	case len(r.errors) > 0:
		result = ResultError
	case len(r.repairs) > 0:
		result = ResultRepaired
	}
	return Report{
		Result:  result,
		Errors:  r.errors,
		Repairs: r.repairs,
	}
}
