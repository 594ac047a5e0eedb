package conformance

import (
	"fmt"
	"io"
)

// Report collects the results of one suite.
type Report struct {
	Suite   string
	Results []Result
}

// Passed returns the number of passed cases.
func (r Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed {
			n++
		}
	}
	return n
}

// Failed returns the number of failed cases.
func (r Report) Failed() int {
	return len(r.Results) - r.Passed()
}

// WriteText writes one line per case followed by a summary.
func (r Report) WriteText(w io.Writer) error {
	for _, res := range r.Results {
		var err error
		switch {
		case res.Passed:
			_, err = fmt.Fprintf(w, "PASS %s: %s\n", res.Case.Name, res.Got)
		case res.Got == "":
			_, err = fmt.Fprintf(w, "FAIL %s: %v\n", res.Case.Name, res.Err)
		default:
			_, err = fmt.Fprintf(w, "FAIL %s: got %s, want %s\n", res.Case.Name, res.Got, res.expected())
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s: %d passed, %d failed\n", r.Suite, r.Passed(), r.Failed())
	return err
}

func (r Result) expected() string {
	if r.Case.Error != "" {
		return "error " + r.Case.Error
	}
	return r.Case.Result
}
