package main

import (
	"fmt"

	"github.com/rpgo/projection-engine/internal/logging"
	"github.com/rpgo/projection-engine/internal/output"
	"github.com/rpgo/projection-engine/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd(a *app) *cobra.Command {
	var (
		format   string
		savePlan string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run every projection for the plan and write report files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.FromContext(cmd.Context())
			plan, err := a.loadPlan(logger)
			if err != nil {
				return err
			}
			rep, err := report.NewBuilder(logger).Build(cmd.Context(), plan)
			if err != nil {
				return err
			}
			paths, err := output.GenerateReport(rep, format, a.settings.OutputDir)
			if err != nil {
				return err
			}
			if savePlan != "" {
				if err := output.SaveConfiguration(plan, savePlan); err != nil {
					return err
				}
				paths = append(paths, savePlan)
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "html", "report format, or \"all\"")
	cmd.Flags().StringVar(&savePlan, "save-plan", "", "also write the effective plan (generated ids included) to this YAML file")
	return cmd
}
