// Command lint-api checks generated OpenAPI documents for AIHub convention
// violations.
//
// Usage:
//
//	go run ./cmd/lint-api [flags] <spec.yaml> [<spec.yaml>...]
//
// Flags:
//
//	-severity  Minimum severity to report: error, warning, info (default: all)
//	-prefixes  Check paths against the compiled-in subsystem prefixes (default: true)
package main

import (
	"flag"
	"fmt"
	"os"

	"aihub-apidocs/internal/docsgen"
	"aihub-apidocs/pkg/apilint"
)

func main() {
	severity := flag.String("severity", "", "minimum severity to report: error, warning, info (default: all)")
	usePrefixes := flag.Bool("prefixes", true, "check paths against the compiled-in subsystem prefixes")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: lint-api [flags] <spec.yaml> [<spec.yaml>...]\n")
		os.Exit(2)
	}

	var prefixes []string
	if *usePrefixes {
		for _, s := range docsgen.Subsystems() {
			prefixes = append(prefixes, s.Prefix)
		}
	}

	var minSev apilint.Severity
	if *severity != "" {
		minSev = apilint.Severity(*severity)
		switch minSev {
		case apilint.SeverityError, apilint.SeverityWarning, apilint.SeverityInfo:
		default:
			fmt.Fprintf(os.Stderr, "error: unknown severity %q (use: error, warning, info)\n", *severity)
			os.Exit(2)
		}
	}

	var all []apilint.Violation
	for _, path := range flag.Args() {
		linter, err := apilint.New(path, prefixes...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
		violations := linter.Run()
		if minSev != "" {
			violations = apilint.Filter(violations, minSev)
		}
		for _, v := range violations {
			fmt.Println(v)
		}
		if len(violations) == 0 {
			fmt.Printf("%s: ok (0 violations)\n", path)
		}
		all = append(all, violations...)
	}

	if len(all) > 0 {
		fmt.Printf("\n%d violation(s) found\n", len(all))
	}
	if apilint.HasErrors(all) {
		os.Exit(1)
	}
}
