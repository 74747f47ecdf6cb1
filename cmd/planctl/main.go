// Package main implements planctl, an offline CLI that renders project plans
// and scaffold archives from a YAML or JSON configuration file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/planner"
	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/domain"
	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/service"
)

var (
	// configPath is the configuration file, "-" for stdin
	configPath string
	// outputPath is where results are written; empty means stdout for plans
	outputPath string
	// githubUser overrides the username used in repository links
	githubUser string
	version    = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "planctl",
	Short: "Render project plans and starter archives offline",
	Long: `planctl renders the same project plans and starter archives as the
web service, from a configuration file instead of the form.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	for _, cmd := range []*cobra.Command{planCmd, scaffoldCmd} {
		cmd.Flags().StringVarP(&configPath, "file", "f", "", "configuration file (YAML or JSON, - for stdin)")
		cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file")
		cmd.Flags().StringVar(&githubUser, "github-user", domain.DefaultGitHubUsername, "GitHub username for repository links")
		_ = cmd.MarkFlagRequired("file")
	}
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(scaffoldCmd)
	rootCmd.AddCommand(catalogCmd)
}

func newService() *service.ProjectService {
	return service.NewProjectService(nil, service.Options{
		Planner: planner.New(planner.WithDefaultUsername(githubUser)),
	})
}

// loadConfig reads a configuration file. JSON parses as YAML.
func loadConfig(cmd *cobra.Command, path string) (domain.ProjectConfig, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("read config: %w", err)
	}

	var in domain.ProjectInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return in.Config(), nil
}
