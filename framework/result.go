package framework

import (
	"fmt"
	"strings"
	"time"

	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/annotations"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID      TestID
	Errors      []error
	Skipped     bool
	SkipReason  string
	Annotations annotations.List
	Duration    time.Duration
	// Group is true if the test ran subtests of its own.
	Group bool
	// Filtered is true if the test was excluded by the run's filter and never started. Since it
	// never ran, there is no way to tell whether it is a group or a case.
	Filtered bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Cases returns the results of every test that started and did not run subtests.
func (r Results) Cases() []TestResult {
	var ret []TestResult
	for _, t := range r.Tests {
		if !t.Group && !t.Filtered {
			ret = append(ret, t)
		}
	}
	return ret
}

// Skipped returns the results of every test case that skipped itself.
func (r Results) Skipped() []TestResult {
	var ret []TestResult
	for _, t := range r.Cases() {
		if t.Skipped {
			ret = append(ret, t)
		}
	}
	return ret
}

// Filtered returns the results of every test, group or case, that the filter excluded.
func (r Results) Filtered() []TestResult {
	var ret []TestResult
	for _, t := range r.Tests {
		if t.Filtered {
			ret = append(ret, t)
		}
	}
	return ret
}

// Find returns the result for the test with the given path, if any.
func (r Results) Find(path ...string) (TestResult, bool) {
	want := TestID{Path: path}.String()
	for _, t := range r.Tests {
		if t.TestID.String() == want {
			return t, true
		}
	}
	return TestResult{}, false
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Name is the last element of the path.
func (t TestID) Name() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[len(t.Path)-1]
}

// Parent is the path of the enclosing group, joined with "/".
func (t TestID) Parent() string {
	if len(t.Path) < 2 {
		return ""
	}
	return strings.Join(t.Path[:len(t.Path)-1], "/")
}

// PrintResults writes a summary of the run to standard output.
func PrintResults(results Results) {
	skipped := len(results.Skipped())
	if n := len(results.Filtered()); n > 0 {
		fmt.Printf("%d tests or groups excluded by filter\n", n)
	}
	if results.OK() {
		fmt.Printf("All tests passed (%d run, %d skipped)\n", len(results.Cases())-skipped, skipped)
		return
	}
	fmt.Printf("FAILED TESTS (%d):\n", len(results.Failures))
	for _, f := range results.Failures {
		fmt.Printf("  * %s\n", f.TestID)
	}
}
