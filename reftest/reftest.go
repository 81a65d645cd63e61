// Package reftest provides a conformance harness for the html tokenizer.
//
// Unlike a WPT-style visual reftest (which compares rendered output), a
// scenario here asserts an exact token sequence for a literal input string,
// then re-checks that same assertion against every possible byte-boundary
// split of the input, to guard the suspend/resume path against producing
// different tokens than a single whole-input run would.
package reftest

import (
	"fmt"

	"github.com/lukehoban/htmltok/html"
)

// Scenario is a single conformance case: an input string and the token
// sequence tokenizing it in full is expected to produce.
type Scenario struct {
	Name  string
	Input string
	Want  []html.Token
}

// Status is the outcome of running a Scenario.
type Status int

const (
	// Pass indicates the scenario's tokens matched in every split.
	Pass Status = iota
	// Fail indicates a mismatch between want and got, in either the
	// whole-input run or one of the split runs.
	Fail
	// Error indicates the tokenizer itself reported a fatal error.
	Error
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "PASS"
	case Fail:
		return "FAIL"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Result is the outcome of running a single Scenario.
type Result struct {
	Name    string
	Status  Status
	Message string
}

// Summary aggregates the Results of a full run.
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Errors  int
	Results []Result
}

// PassRate returns the percentage of scenarios that passed.
func (s *Summary) PassRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Total) * 100
}

// Runner executes conformance scenarios.
type Runner struct {
	verbose bool
}

// NewRunner creates a conformance runner.
func NewRunner(verbose bool) *Runner {
	return &Runner{verbose: verbose}
}

// RunScenario tokenizes sc.Input whole and at every byte-boundary split,
// comparing each against sc.Want (modulo character-run coalescing).
func (r *Runner) RunScenario(sc Scenario) Result {
	res := Result{Name: sc.Name}

	whole, err := tokenize(sc.Input, nil)
	if err != nil {
		res.Status = Error
		res.Message = fmt.Sprintf("whole-input run: %v", err)
		return res
	}
	if msg, ok := tokensMatch(coalesce(whole), coalesce(sc.Want)); !ok {
		res.Status = Fail
		res.Message = "whole-input run: " + msg
		return res
	}

	for split := 1; split < len(sc.Input); split++ {
		got, err := tokenize(sc.Input, []int{split})
		if err != nil {
			res.Status = Error
			res.Message = fmt.Sprintf("split at byte %d: %v", split, err)
			return res
		}
		if msg, ok := tokensMatch(coalesce(got), coalesce(sc.Want)); !ok {
			res.Status = Fail
			res.Message = fmt.Sprintf("split at byte %d: %s", split, msg)
			return res
		}
	}

	res.Status = Pass
	return res
}

// RunAll runs every scenario and aggregates the results.
func (r *Runner) RunAll(scenarios []Scenario) Summary {
	var sum Summary
	for _, sc := range scenarios {
		res := r.RunScenario(sc)
		sum.Results = append(sum.Results, res)
		sum.Total++
		switch res.Status {
		case Pass:
			sum.Passed++
		case Fail:
			sum.Failed++
		case Error:
			sum.Errors++
		}
		if r.verbose {
			fmt.Printf("[%s] %s\n", res.Status, res.Name)
			if res.Message != "" {
				fmt.Printf("        %s\n", res.Message)
			}
		}
	}
	return sum
}

// tokenize runs the tokenizer over input, feeding it in one shot unless
// splitAt gives byte offsets to Feed it across instead.
func tokenize(input string, splitAt []int) ([]html.Token, error) {
	tok := html.New()
	var got []html.Token
	tok.SetTokenSink(func(t html.Token) { got = append(got, t) })

	b := []byte(input)
	prev := 0
	for _, at := range splitAt {
		tok.Feed(b[prev:at])
		if _, err := tok.Run(); err != nil {
			return nil, err
		}
		prev = at
	}
	tok.Feed(b[prev:])
	tok.CloseInput()
	if _, err := tok.Run(); err != nil {
		return nil, err
	}
	return got, nil
}

// coalesce merges adjacent CharacterToken runs, since the tokenizer flushes
// the pending run at every '<', including one that opens no tag, so one
// stretch of text can arrive as several runs.
func coalesce(toks []html.Token) []html.Token {
	var out []html.Token
	for _, t := range toks {
		if t.Type == html.CharacterToken && len(out) > 0 && out[len(out)-1].Type == html.CharacterToken {
			out[len(out)-1].Data += t.Data
			continue
		}
		out = append(out, t)
	}
	return out
}

// tokensMatch reports whether got and want are equal, and if not, a
// human-readable description of the first difference.
func tokensMatch(got, want []html.Token) (string, bool) {
	if len(got) != len(want) {
		return fmt.Sprintf("token count mismatch: got %d %#v, want %d %#v", len(got), got, len(want), want), false
	}
	for i := range got {
		if !tokenEqual(got[i], want[i]) {
			return fmt.Sprintf("token %d mismatch: got %#v, want %#v", i, got[i], want[i]), false
		}
	}
	return "", true
}

func tokenEqual(a, b html.Token) bool {
	if a.Type != b.Type || a.Data != b.Data || a.Doctype != b.Doctype {
		return false
	}
	if a.Tag.Name != b.Tag.Name || a.Tag.SelfClosing != b.Tag.SelfClosing {
		return false
	}
	if len(a.Tag.Attr) != len(b.Tag.Attr) {
		return false
	}
	for i := range a.Tag.Attr {
		if a.Tag.Attr[i] != b.Tag.Attr[i] {
			return false
		}
	}
	return true
}

// PrintSummary prints a human-readable summary of a conformance run.
func PrintSummary(summary Summary) {
	fmt.Println("\n========================================")
	fmt.Println("Tokenizer Conformance Summary")
	fmt.Println("========================================")
	fmt.Printf("Total:  %d\n", summary.Total)
	fmt.Printf("Passed: %d (%.1f%%)\n", summary.Passed, summary.PassRate())
	fmt.Printf("Failed: %d\n", summary.Failed)
	fmt.Printf("Errors: %d\n", summary.Errors)
	fmt.Println("========================================")

	if summary.Failed > 0 {
		fmt.Println("\nFailed Scenarios:")
		for _, r := range summary.Results {
			if r.Status == Fail {
				fmt.Printf("  - %s: %s\n", r.Name, r.Message)
			}
		}
	}
	if summary.Errors > 0 {
		fmt.Println("\nScenarios with Errors:")
		for _, r := range summary.Results {
			if r.Status == Error {
				fmt.Printf("  - %s: %s\n", r.Name, r.Message)
			}
		}
	}
}
