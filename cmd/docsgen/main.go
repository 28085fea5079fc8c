// Command docsgen generates the per-subsystem and combined OpenAPI documents
// for AIHub. The subsystem list and output locations are compiled in, so
// every invocation behaves the same apart from whichever subsystems fail to
// resolve. The optional -markdown flag additionally renders a browsable
// markdown reference from the combined document.
//
// Individual subsystem failures are warnings, not errors; the process exits
// non-zero only when the run itself cannot proceed.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"aihub-apidocs/internal/docsgen"
	_ "aihub-apidocs/internal/routers" // registers every subsystem provider
)

func main() {
	markdownDir := flag.String("markdown", "", "also render a markdown reference into this directory")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	sum, err := docsgen.Run(docsgen.Options{MarkdownDir: *markdownDir, Logger: logger})
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: generate API documents: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d/%d subsystems generated\n", sum.Succeeded, sum.Total)
	if !sum.Combined {
		fmt.Println("combined document skipped")
	}
	if *markdownDir != "" && sum.Combined && !sum.Markdown {
		fmt.Println("markdown reference skipped")
	}
}
