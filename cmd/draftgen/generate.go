package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmitrymomot/draftgen"
	"github.com/dmitrymomot/draftgen/pkg/artifact/emlfile"
	"github.com/dmitrymomot/draftgen/pkg/catalog"
	"github.com/dmitrymomot/draftgen/pkg/logger"
	"github.com/dmitrymomot/draftgen/pkg/render"
	"github.com/dmitrymomot/draftgen/pkg/report"
	"github.com/dmitrymomot/draftgen/pkg/tabular"
)

func newGenerateCmd() *cobra.Command {
	var (
		inputPath    string
		categoryKey  string
		outputDir    string
		templatesDir string
		previewPath  string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one set of message template artifacts per input row",
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys := catalog.DefaultFS()
			if templatesDir != "" {
				fsys = os.DirFS(templatesDir)
			}

			cat, err := catalog.Load(fsys)
			if err != nil {
				return err
			}
			renderer, err := newRenderer(fsys)
			if err != nil {
				return err
			}
			// Template bugs surface here, before any row is touched.
			if err := cat.Validate(renderer); err != nil {
				return err
			}

			category, err := cat.Category(categoryKey)
			if err != nil {
				return fmt.Errorf("%w (known: %v)", err, cat.Keys())
			}

			in, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("failed to open input: %w", err)
			}
			defer in.Close()

			rows, err := tabular.ReadRows(in)
			if err != nil {
				return err
			}

			log := logger.NewDiscard()
			if verbose {
				log = logger.NewWithSentry(logger.SentryConfig{
					DSN:         viper.GetString("SENTRY_DSN"),
					Environment: viper.GetString("SENTRY_ENVIRONMENT"),
				}, logger.RunIDExtractor)
			}

			runner := draftgen.NewRunner(emlfile.New(outputDir), renderer,
				draftgen.WithLogger(log),
			)
			result, err := runner.Run(cmd.Context(), rows, category)
			if err != nil {
				return err
			}

			if err := report.WriteLines(cmd.OutOrStdout(), result.Outcomes); err != nil {
				return err
			}

			if previewPath != "" && result.Preview != nil {
				html, err := report.PreviewHTML(result.Preview)
				if err != nil {
					return err
				}
				if err := os.WriteFile(previewPath, []byte(html), 0o644); err != nil {
					return fmt.Errorf("failed to write preview: %w", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Rows processed: %d (ok: %d)\n",
				len(result.Outcomes), result.OKCount())
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "input CSV file (required)")
	cmd.Flags().StringVarP(&categoryKey, "category", "c", "erd", "catalog category key")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "out", "output directory for artifacts")
	cmd.Flags().StringVar(&templatesDir, "templates", "", "template directory overriding the embedded catalog")
	cmd.Flags().StringVar(&previewPath, "preview", "", "write an HTML preview of the first successful row")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log progress as JSON")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// newRenderer builds the renderer, picking up an optional layout.html next to
// the templates.
func newRenderer(fsys fs.FS) (*render.Renderer, error) {
	if _, err := fs.Stat(fsys, "layout.html"); err == nil {
		return render.New(fsys, render.WithLayout("layout.html"))
	}
	return render.New(fsys)
}
