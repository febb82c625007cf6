package suite

import (
	"github.com/coregx/minire"
)

// InputResult is the outcome of one input.
type InputResult struct {
	Input Input
	Got   bool
}

// Passed reports whether the input matched as expected.
func (r InputResult) Passed() bool {
	return r.Got == r.Input.Match
}

// CaseResult is the outcome of one case.
type CaseResult struct {
	Case *Case

	// Err is the compile error, if any.
	Err error

	Inputs []InputResult
}

// Passed reports whether the pattern compiled as expected and every input
// matched as expected.
func (r *CaseResult) Passed() bool {
	if (r.Err == nil) != r.Case.ExpectValid() {
		return false
	}
	for _, in := range r.Inputs {
		if !in.Passed() {
			return false
		}
	}
	return true
}

// Report summarizes a run.
type Report struct {
	Cases  []CaseResult
	Passed int
	Failed int
}

// OK reports whether every case passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Run compiles and checks every case with config.
func Run(s *Suite, config minire.Config) *Report {
	report := &Report{Cases: make([]CaseResult, 0, len(s.Cases))}
	for i := range s.Cases {
		res := runCase(&s.Cases[i], config)
		if res.Passed() {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Cases = append(report.Cases, res)
	}
	return report
}

func runCase(c *Case, config minire.Config) CaseResult {
	res := CaseResult{Case: c}
	re, err := minire.CompileWithConfig(c.Pattern, config)
	if err != nil {
		res.Err = err
		return res
	}
	res.Inputs = make([]InputResult, len(c.Inputs))
	for i, in := range c.Inputs {
		res.Inputs[i] = InputResult{Input: in, Got: re.MatchString(in.Input)}
	}
	return res
}
