package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devbush/ytscribe/internal/adapters/cli/tui"
)

// NewLibraryCmd creates the library subcommand
func NewLibraryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the stored transcript library",
		RunE:  runLibraryStatus,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored transcripts",
		RunE:  runLibraryList,
	}

	rmCmd := &cobra.Command{
		Use:   "rm <video-url|video-id>",
		Short: "Remove a stored transcript",
		Args:  cobra.ExactArgs(1),
		RunE:  runLibraryRemove,
	}

	cmd.AddCommand(listCmd)
	cmd.AddCommand(rmCmd)

	return cmd
}

func runLibraryStatus(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}
	return printLibraryStats(app)
}

func printLibraryStats(app *App) error {
	stats, err := app.LibrarySvc.Stats(context.Background())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Library Statistics:")
	fmt.Printf("  Transcripts: %d\n", stats.Count)
	fmt.Printf("  Timestamped: %d\n", stats.Timestamped)
	fmt.Printf("  Size:        %s\n", tui.FormatSize(stats.TotalSize))
	fmt.Println()
	return nil
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	transcripts, err := app.LibrarySvc.List(context.Background())
	if err != nil {
		return err
	}

	if len(transcripts) == 0 {
		fmt.Println("Library is empty")
		return nil
	}

	for _, t := range transcripts {
		fmt.Println(tui.FormatTranscriptLine(t, 40))
	}
	return nil
}

func runLibraryRemove(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	if err := app.LibrarySvc.Delete(context.Background(), args[0]); err != nil {
		return err
	}

	if !quietFlag {
		fmt.Printf("✓ Removed %s\n", args[0])
	}
	return nil
}
