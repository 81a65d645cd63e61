// Command tokconform runs the tokenizer's built-in conformance scenarios
// and reports pass/fail, the same reporting shape the teacher's wptrunner
// used for its reftest summary.
//
// Usage:
//
//	tokconform [options]
//
// Options:
//
//	-v        Verbose output
//	-json     Output results as JSON
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/lukehoban/htmltok/reftest"
)

func main() {
	verbose := flag.Bool("v", false, "verbose output")
	jsonOutput := flag.Bool("json", false, "output results as JSON")
	flag.Parse()

	runner := reftest.NewRunner(*verbose)
	summary := runner.RunAll(reftest.Scenarios())

	if *jsonOutput {
		output, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to marshal JSON: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(output))
	} else {
		reftest.PrintSummary(summary)
	}

	if summary.Failed > 0 || summary.Errors > 0 {
		os.Exit(1)
	}
}
