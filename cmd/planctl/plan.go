package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Render the markdown project plan",
	Long: `Render the markdown project plan for a configuration file.

Examples:
  planctl plan -f todo.yaml
  planctl plan -f todo.json -o PLAN.md`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, configPath)
	if err != nil {
		return err
	}

	plan, err := newService().GeneratePlan(cfg)
	if err != nil {
		return err
	}

	if outputPath == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), plan)
		return err
	}
	if err := os.WriteFile(outputPath, []byte(plan), 0o644); err != nil {
		return err
	}
	cmd.Printf("wrote %s\n", outputPath)
	return nil
}
