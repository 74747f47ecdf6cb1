package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/domain"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the selectable technologies and features",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

type catalog struct {
	TechStacks domain.TechStack `yaml:"tech_stacks"`
	Features   []string         `yaml:"features"`
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	out, err := yaml.Marshal(catalog{
		TechStacks: domain.DefaultTechStacks(),
		Features:   domain.DefaultFeatures(),
	})
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
