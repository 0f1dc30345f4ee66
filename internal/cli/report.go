package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uaengine/pkg/config"
	"github.com/dmitrymomot/uaengine/pkg/enginestats"
)

func newReportCmd(a *app) *cobra.Command {
	var (
		format       string
		fullVersions bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate user agents from standard input by rendering engine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.ReportFormat
			}
			if !cmd.Flags().Changed("full-versions") {
				fullVersions = a.cfg.FullVersions
			}

			agg := enginestats.NewAggregator(enginestats.WithFullVersions(fullVersions))
			undetected := 0
			err := readLines(cmd.InOrStdin(), func(ua string) {
				engine, err := a.detector.Detect(ua)
				if err != nil {
					undetected++
				}
				agg.Add(engine)
			})
			if err != nil {
				return err
			}

			report := agg.Snapshot()
			a.log.Info("report generated",
				slog.String("report_id", report.ID),
				slog.Int("total", report.Total),
				slog.Int("groups", len(report.Rows)),
				slog.Int("undetected", undetected),
			)

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case config.ReportFormatYAML:
				return report.WriteYAML(out)
			case config.ReportFormatTable:
				report.WriteTable(out)
				return nil
			default:
				return fmt.Errorf("unknown report format %q", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", config.ReportFormatTable, "output format: table or yaml")
	cmd.Flags().BoolVar(&fullVersions, "full-versions", false, "group by full version instead of short version")
	return cmd
}
