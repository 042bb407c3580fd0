package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/draftgen"
	"github.com/dmitrymomot/draftgen/pkg/casefilter"
)

func newFilterCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		fromDate   string
		toDate     string
		functions  []string
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Shortlist active cases eligible for data collection",
		Long: "Keeps only active cases (no end date) with data collection allowed,\n" +
			"a start date within the given range, and at least one targeted function.",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.Parse("2006-01-02", fromDate)
			if err != nil {
				return fmt.Errorf("invalid --from date: %w", err)
			}
			to, err := time.Parse("2006-01-02", toDate)
			if err != nil {
				return fmt.Errorf("invalid --to date: %w", err)
			}

			in, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("failed to open input: %w", err)
			}
			defer in.Close()

			reader := csv.NewReader(in)
			reader.TrimLeadingSpace = true
			reader.FieldsPerRecord = -1

			records, err := reader.ReadAll()
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			if len(records) == 0 {
				return fmt.Errorf("input has no header row")
			}

			header := records[0]
			columns := make([]string, len(header))
			for i, h := range header {
				columns[i] = strings.ToLower(strings.TrimSpace(h))
			}

			criteria := casefilter.Criteria{Start: from, End: to, Functions: functions}

			out, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create output: %w", err)
			}
			defer out.Close()

			writer := csv.NewWriter(out)
			if err := writer.Write(header); err != nil {
				return err
			}

			kept := 0
			for _, record := range records[1:] {
				row := make(draftgen.Row, len(columns))
				for i, name := range columns {
					if i < len(record) {
						row[name] = record[i]
					}
				}
				if ok, _ := casefilter.Eligible(row, criteria); !ok {
					continue
				}
				if err := writer.Write(record); err != nil {
					return err
				}
				kept++
			}
			writer.Flush()
			if err := writer.Error(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Kept %d of %d cases\n", kept, len(records)-1)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "case repository CSV file (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "shortlist.csv", "output CSV file")
	cmd.Flags().StringVar(&fromDate, "from", "", "start of the case start date range, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&toDate, "to", "", "end of the case start date range, YYYY-MM-DD (required)")
	cmd.Flags().StringSliceVar(&functions, "functions", nil, "targeted function phrases (defaults to the stock set)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
