// Package report writes the results of a suite run as JSON or as JUnit XML.
package report

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/annotations"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/framework"
)

// -------- JSON --------

type jsonReport struct {
	Passed  bool       `json:"passed"`
	Total   int        `json:"total"`
	Failed  int        `json:"failed"`
	Skipped int        `json:"skipped"`
	Tests   []jsonTest `json:"tests"`
}

type jsonTest struct {
	ID          string           `json:"id"`
	Status      string           `json:"status"`
	DurationMs  float64          `json:"durationMs"`
	Errors      []string         `json:"errors,omitempty"`
	SkipReason  string           `json:"skipReason,omitempty"`
	Annotations []jsonAnnotation `json:"annotations,omitempty"`
}

type jsonAnnotation struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Name  string `json:"name,omitempty"`
}

const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

func WriteJSON(w io.Writer, results framework.Results) error {
	cases := results.Cases()
	rep := jsonReport{
		Passed: results.OK(),
		Total:  len(cases),
		Tests:  make([]jsonTest, 0, len(cases)),
	}
	for _, r := range cases {
		t := jsonTest{
			ID:         r.TestID.String(),
			Status:     status(r),
			DurationMs: milliseconds(r.Duration),
			Errors:     errorStrings(r.Errors),
			SkipReason: r.SkipReason,
		}
		for _, a := range r.Annotations {
			t.Annotations = append(t.Annotations, jsonAnnotation{Type: string(a.Type), Value: a.Value, Name: a.Name})
		}
		switch t.Status {
		case StatusFailed:
			rep.Failed++
		case StatusSkipped:
			rep.Skipped++
		}
		rep.Tests = append(rep.Tests, t)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// -------- JUnit XML --------

type junitTestsuite struct {
	XMLName  xml.Name        `xml:"testsuite"`
	Name     string          `xml:"name,attr"`
	Tests    int             `xml:"tests,attr"`
	Failures int             `xml:"failures,attr"`
	Skipped  int             `xml:"skipped,attr"`
	Time     string          `xml:"time,attr"`
	Testcase []junitTestcase `xml:"testcase"`
}

type junitTestcase struct {
	Classname  string           `xml:"classname,attr"`
	Name       string           `xml:"name,attr"`
	Time       string           `xml:"time,attr"`
	Properties *junitProperties `xml:"properties,omitempty"`
	Skipped    *junitSkipped    `xml:"skipped,omitempty"`
	Failure    *junitFailure    `xml:"failure,omitempty"`
}

type junitProperties struct {
	Property []junitProperty `xml:"property"`
}

type junitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type junitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Text    string `xml:",chardata"`
}

// WriteJUnit writes one testcase per test. Annotations become testcase properties; a link
// annotation's property value is "name: url" when the link has a name.
func WriteJUnit(w io.Writer, suiteName string, results framework.Results) error {
	var failures, skipped int
	var total time.Duration
	var cases []junitTestcase

	for _, r := range results.Cases() {
		total += r.Duration
		tc := junitTestcase{
			Classname: classname(suiteName, r.TestID),
			Name:      r.TestID.Name(),
			Time:      seconds(r.Duration),
		}
		if len(r.Annotations) > 0 {
			tc.Properties = &junitProperties{}
			for _, a := range r.Annotations {
				tc.Properties.Property = append(tc.Properties.Property, junitProperty{
					Name:  string(a.Type),
					Value: propertyValue(a),
				})
			}
		}
		switch status(r) {
		case StatusSkipped:
			skipped++
			tc.Skipped = &junitSkipped{Message: r.SkipReason}
		case StatusFailed:
			failures++
			errs := errorStrings(r.Errors)
			msg := "assertion failed"
			if len(errs) > 0 {
				msg = firstLine(errs[0])
			}
			tc.Failure = &junitFailure{
				Message: msg,
				Type:    "AssertionError",
				Text:    strings.Join(errs, "\n"),
			}
		}
		cases = append(cases, tc)
	}

	ts := junitTestsuite{
		Name:     suiteName,
		Tests:    len(cases),
		Failures: failures,
		Skipped:  skipped,
		Time:     seconds(total),
		Testcase: cases,
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(ts)
}

func status(r framework.TestResult) string {
	switch {
	case r.Skipped:
		return StatusSkipped
	case len(r.Errors) > 0:
		return StatusFailed
	}
	return StatusPassed
}

func classname(suiteName string, id framework.TestID) string {
	if parent := id.Parent(); parent != "" {
		return suiteName + "." + strings.ReplaceAll(parent, "/", ".")
	}
	return suiteName
}

func propertyValue(a annotations.Annotation) string {
	if a.Name != "" {
		return a.Name + ": " + a.Value
	}
	return a.Value
}

func errorStrings(errs []error) []string {
	var out []string
	for _, e := range errs {
		out = append(out, e.Error())
	}
	return out
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}

func milliseconds(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
