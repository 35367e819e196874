package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutputFlag string

// NewExportCmd creates the export subcommand
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <video-url|video-id>",
		Short: "Export a stored transcript to the envelope file format",
		Long: `Export writes a stored transcript back to the same TITLE:/URL: envelope
format the ingester consumes, so exported files can be re-imported.`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportOutputFlag, "output", "o", "", "Output file path (default: stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	result, err := app.ExportSvc.Export(context.Background(), args[0])
	if err != nil {
		return err
	}

	if exportOutputFlag == "" {
		fmt.Print(result.Content)
		return nil
	}

	if err := os.WriteFile(exportOutputFlag, []byte(result.Content), 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	if !quietFlag {
		fmt.Printf("✓ Exported %s to %s\n", result.Transcript.VideoID, exportOutputFlag)
	}
	return nil
}
