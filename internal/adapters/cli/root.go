package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devbush/ytscribe/internal/adapters/cli/tui"
	"github.com/devbush/ytscribe/internal/adapters/inbox"
	"github.com/devbush/ytscribe/internal/application"
	"github.com/devbush/ytscribe/internal/domain"
)

var (
	// Global flags
	quietFlag       bool
	concurrencyFlag int
	titleFlag       string
	bodyFileFlag    string
	sourceFlag      string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ytscribe [video-url|video-id]",
		Short: "Ingest YouTube transcripts into a local library",
		Long: `ytscribe ingests free-form transcript text for YouTube videos.

Run without arguments to process every transcript file dropped into the
inbox folder. Provide a video URL or ID to ingest a single transcript,
with the body read from --body-file or standard input.

Timestamped transcripts always win over plain text: a stored transcript
with timestamps is never overwritten by one without them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRoot,
	}

	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress progress output")
	rootCmd.Flags().IntVarP(&concurrencyFlag, "concurrency", "c", 0, "Max concurrent items (default from config)")
	rootCmd.Flags().StringVarP(&titleFlag, "title", "t", "", "Video title for single-video ingest")
	rootCmd.Flags().StringVar(&bodyFileFlag, "body-file", "", "File with the transcript body for single-video ingest")
	rootCmd.Flags().StringVar(&sourceFlag, "source", "", "Transcript provenance: manual or scraped (default from config)")

	rootCmd.AddCommand(NewExportCmd())
	rootCmd.AddCommand(NewLibraryCmd())

	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	if len(args) == 1 {
		return runDirect(app, args[0])
	}

	summary, err := runInbox(app)
	if err != nil {
		return err
	}

	// Nothing in the inbox and no argument: offer the interactive menu
	if summary.Total == 0 && !quietFlag {
		return runInteractiveMenu(app)
	}
	return nil
}

func runOptions(app *App) (application.RunOptions, error) {
	concurrency := concurrencyFlag
	if concurrency == 0 {
		concurrency = app.Config.Defaults.Concurrency
	}

	source := sourceFlag
	if source == "" {
		source = app.Config.Defaults.Source
	}
	switch domain.Source(source) {
	case domain.SourceManual, domain.SourceScraped:
	default:
		return application.RunOptions{}, fmt.Errorf("unknown source %q (use manual or scraped)", source)
	}

	return application.RunOptions{
		Source:      domain.Source(source),
		Concurrency: concurrency,
	}, nil
}

func runInbox(app *App) (*application.RunSummary, error) {
	opts, err := runOptions(app)
	if err != nil {
		return nil, err
	}

	source := inbox.NewFolderSource(app.Fs, app.Config.InboxDir())
	summary, err := app.IngestSvc.Run(context.Background(), source, opts)
	if err != nil {
		return nil, err
	}

	if summary.Total == 0 {
		if !quietFlag {
			fmt.Printf("No transcript files found in %s\n", app.Config.InboxDir())
		}
		return summary, nil
	}

	printSummary(summary)

	if summary.Failed > 0 {
		return summary, fmt.Errorf("%d of %d items failed", summary.Failed, summary.Total)
	}
	return summary, nil
}

func runDirect(app *App, input string) error {
	opts, err := runOptions(app)
	if err != nil {
		return err
	}

	body, err := readBody()
	if err != nil {
		return err
	}

	source := inbox.NewDirectSource(input, titleFlag, body)
	summary, err := app.IngestSvc.Run(context.Background(), source, opts)
	if err != nil {
		return err
	}

	printSummary(summary)

	if summary.Failed > 0 {
		result := summary.Results[0]
		return fmt.Errorf("failed to ingest %s: %w", input, result.Err)
	}
	return nil
}

// readBody reads the transcript body from --body-file or standard input
func readBody() ([]byte, error) {
	if bodyFileFlag != "" {
		data, err := os.ReadFile(bodyFileFlag)
		if err != nil {
			return nil, fmt.Errorf("failed to read body file: %w", err)
		}
		return data, nil
	}

	if !quietFlag {
		fmt.Println("Enter transcript (end with a line containing only '.' or Ctrl+D):")
	}
	return readBodyLines(os.Stdin)
}

// readBodyLines collects lines until a lone "." or EOF
func readBodyLines(r *os.File) ([]byte, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "." {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return []byte(strings.Join(lines, "\n")), nil
}

func runInteractiveMenu(app *App) error {
	options := []tui.MenuOption{
		{Label: "Add a transcript for a video", Value: "add"},
		{Label: "Show library status", Value: "status"},
		{Label: "Quit", Value: "quit"},
	}

	selected, err := tui.RunMenu("Inbox is empty. What would you like to do?", options)
	if err != nil {
		return err
	}

	switch selected {
	case "add":
		fmt.Print("Enter video URL or ID: ")
		var input string
		fmt.Scanln(&input)
		if strings.TrimSpace(input) == "" {
			fmt.Println("Cancelled")
			return nil
		}
		return runDirect(app, input)
	case "status":
		return printLibraryStats(app)
	}
	return nil
}

func printSummary(summary *application.RunSummary) {
	if quietFlag {
		return
	}

	for _, r := range summary.Results {
		switch {
		case r.Failed():
			fmt.Printf("✗ %s: %v\n", r.Name, r.Err)
		case r.Status == application.StatusRejected:
			fmt.Printf("- %s → %s kept existing timestamped transcript\n", r.Name, r.VideoID)
		default:
			fmt.Printf("✓ %s → %s (%s)\n", r.Name, r.VideoID, r.Status)
		}
	}

	fmt.Printf("\nProcessed %d items: %d accepted, %d replaced, %d rejected, %d failed\n",
		summary.Total, summary.Accepted, summary.Replaced, summary.Rejected, summary.Failed)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
