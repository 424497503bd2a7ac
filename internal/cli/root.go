package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jsdosanj/downloader/internal/crawler"
	"github.com/jsdosanj/downloader/internal/deps"
	"github.com/jsdosanj/downloader/internal/download"
	"github.com/jsdosanj/downloader/internal/extractor"
	"github.com/jsdosanj/downloader/internal/fetch"
	"github.com/jsdosanj/downloader/internal/manifest"
	"github.com/jsdosanj/downloader/internal/router"
	"github.com/jsdosanj/downloader/internal/stats"
	"github.com/jsdosanj/downloader/internal/types"
)

var (
	outputDir  string
	folderName string
	formatName string
	timeoutSec int
	skipProbe  bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "downloader [url]",
	Short: "Download media files from a website or video platform",
	Long: `downloader mirrors media and document files from an HTML site into a local
folder tree that follows the site's own hierarchy, or hands video-platform
URLs straight to yt-dlp.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (prompted for when empty)")
	rootCmd.Flags().StringVarP(&folderName, "folder", "n", "downloads", "Subfolder created under the output directory")
	rootCmd.Flags().StringVarP(&formatName, "format", "f", "all", "File formats to grab: mp3, mp4 or all")
	rootCmd.Flags().IntVar(&timeoutSec, "timeout", 20, "Per-request timeout in seconds")
	rootCmd.Flags().BoolVar(&skipProbe, "no-probe", false, "Skip the yt-dlp probe for non-platform URLs")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if err := deps.Check(); err != nil {
		return err
	}

	startURL := ""
	if len(args) > 0 {
		startURL = args[0]
	}
	if startURL == "" {
		startURL = prompt("Enter the URL to download from: ")
	}
	if startURL == "" {
		return fmt.Errorf("no URL provided")
	}
	if outputDir == "" {
		outputDir = prompt("Enter the output directory: ")
	}
	if outputDir == "" {
		return fmt.Errorf("no output directory provided")
	}

	format, err := types.ParseFormat(formatName)
	if err != nil {
		return err
	}

	cfg := types.Config{
		StartURL:   startURL,
		OutputDir:  outputDir,
		FolderName: folderName,
		Format:     format,
		Timeout:    time.Duration(timeoutSec) * time.Second,
	}

	if err := os.MkdirAll(cfg.DestRoot(), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	runStats := stats.NewRun()
	man, err := manifest.New(cfg.DestRoot())
	if err != nil {
		return err
	}
	defer man.Close()

	client := fetch.New(cfg.Timeout)
	dl := download.NewService(client, runStats, man, logger)
	cr := crawler.New(client, dl, cfg.Format, logger)
	ex := extractor.New(logger)

	rt := router.New(ex, cr, runStats, logger)
	rt.SetSkipProbe(skipProbe)

	if err := rt.Route(cmd.Context(), cfg); err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	fmt.Println(runStats.Snapshot().String())
	return nil
}
