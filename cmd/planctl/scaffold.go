package main

import (
	"os"

	"github.com/spf13/cobra"
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Build the starter archive",
	Long: `Materialize the starter files for a configuration and write them as a zip
archive. Without -o the archive is named after the sanitized repository name.

Examples:
  planctl scaffold -f todo.yaml
  planctl scaffold -f todo.yaml -o /tmp/todo.zip`,
	Args: cobra.NoArgs,
	RunE: runScaffold,
}

func runScaffold(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, configPath)
	if err != nil {
		return err
	}

	bundle, err := newService().BuildArchive(cfg)
	if err != nil {
		return err
	}

	out := outputPath
	if out == "" {
		out = bundle.Filename
	}
	if err := os.WriteFile(out, bundle.Data, 0o644); err != nil {
		return err
	}
	cmd.Printf("wrote %s (%d bytes)\n", out, len(bundle.Data))
	return nil
}
