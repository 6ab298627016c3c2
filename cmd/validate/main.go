// Command validate runs the validation pipeline against a workbook on
// disk: it prints the summary and, for full runs, writes the annotated
// report next to the input.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"valuecheck/adapters/excel"
	"valuecheck/domain/schema"
	"valuecheck/internal/validation"
)

func main() {
	check := flag.String("check", "", "single check to run (date, mandatory, final, asset_usage, value_base, market_approach, cost_approach, sum); empty runs everything")
	out := flag.String("out", "", "report output path (full runs only; defaults to <input>_report.xlsx)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: validate [-check name] [-out path] <workbook.xlsx|workbook.csv>")
		os.Exit(2)
	}
	input := flag.Arg(0)

	if err := run(input, *check, *out); err != nil {
		fmt.Fprintf(os.Stderr, "validate: %v\n", err)
		os.Exit(1)
	}
}

func run(input, check, out string) error {
	g, err := excel.NewReader(input).ReadGrid()
	if err != nil {
		return err
	}

	if missing := schema.MissingColumns(g.Header); len(missing) > 0 {
		return fmt.Errorf("missing expected columns: %s", strings.Join(missing, ", "))
	}

	res, total := validation.Run(g, check)
	for _, line := range res.Summary {
		fmt.Println(line)
	}
	if total != nil {
		fmt.Printf("final_value total: %v\n", *total)
	}

	// Single checks and sum are preview-style runs; only the full
	// aggregate produces a report file.
	if check != "" {
		return nil
	}

	if out == "" {
		ext := filepath.Ext(input)
		out = strings.TrimSuffix(input, ext) + "_report.xlsx"
	}
	if err := excel.NewReportWriter(excel.DefaultReportConfig()).Write(res, out); err != nil {
		return err
	}
	fmt.Printf("report written to %s\n", out)
	return nil
}
