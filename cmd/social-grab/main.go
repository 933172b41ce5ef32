package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yourusername/social-grab-go/internal/app"
	"github.com/yourusername/social-grab-go/internal/domain"
	"github.com/yourusername/social-grab-go/pkg/logger"
)

var (
	configPath string
	rootCmd    = &cobra.Command{
		Use:   "social-grab",
		Short: "Social Grab - Download videos from YouTube, Facebook, Instagram and TikTok",
		Long:  `Paste a social media post URL, preview the media, and download the asset.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(platformsCmd)

	downloadCmd.Flags().String("track", "video", "Track to download: video or audio")
	downloadCmd.Flags().String("quality", "", "Quality label (e.g. 720p, HD)")
	downloadCmd.Flags().String("item", "", "Media item URL for carousel posts")
	downloadCmd.Flags().Bool("dry-run", false, "Resolve the asset URL without saving the file")
}

// buildApp loads configuration and wires the application
func buildApp() *app.App {
	config, err := app.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:      config.Logging.Level,
		Format:     config.Logging.Format,
		OutputPath: config.Logging.OutputPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	return app.New(config, log)
}

var previewCmd = &cobra.Command{
	Use:   "preview [url]",
	Short: "Fetch and print the media preview for a post URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := buildApp()
		rawURL := args[0]

		preview, err := a.Previews.Resolve(context.Background(), rawURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		printPreview(domain.DetectPlatform(rawURL), preview)
	},
}

var downloadCmd = &cobra.Command{
	Use:   "download [url]",
	Short: "Download the selected variant of a post",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := buildApp()
		rawURL := args[0]
		platform := domain.DetectPlatform(rawURL)

		track, _ := cmd.Flags().GetString("track")
		quality, _ := cmd.Flags().GetString("quality")
		item, _ := cmd.Flags().GetString("item")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		ctx := context.Background()
		preview, err := a.Previews.Resolve(ctx, rawURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		selector := buildSelector(track, quality, item)

		if dryRun {
			result, err := a.Downloads.Dispatch(ctx, platform, rawURL, preview, selector)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Asset URL: %s\n", result.AssetURL)
			fmt.Printf("Filename:  %s\n", result.SuggestedFilename)
			return
		}

		path, err := a.Downloads.Download(ctx, platform, rawURL, preview, selector)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved: %s\n", path)
	},
}

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported platforms",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range domain.SupportedPlatforms() {
			fmt.Println(p)
		}
	},
}

// buildSelector maps the CLI flags onto a variant selector
func buildSelector(track, quality, item string) domain.Selector {
	switch {
	case item != "":
		return domain.SelectItem(item)
	case track == "audio":
		return domain.SelectAudio()
	default:
		return domain.SelectVideo(quality)
	}
}

// printPreview renders the normalized preview and its variant choices
func printPreview(platform domain.Platform, preview *domain.MediaPreview) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Platform:\t%s\n", platform)
	fmt.Fprintf(w, "Title:\t%s\n", preview.Title)
	if preview.Author != "" {
		fmt.Fprintf(w, "Author:\t%s\n", preview.Author)
	}
	if preview.Duration != "" {
		fmt.Fprintf(w, "Duration:\t%s\n", preview.Duration)
	}
	if preview.Thumbnail != "" {
		fmt.Fprintf(w, "Thumbnail:\t%s\n", preview.Thumbnail)
	}
	w.Flush()

	switch {
	case platform == domain.PlatformYouTube:
		fmt.Println("\nQualities (use --quality, or --track audio):")
		for _, res := range domain.YouTubeResolutions() {
			fmt.Printf("  %s\n", res.Label)
		}
	case preview.HasResolutions():
		fmt.Println("\nQualities (use --quality):")
		for _, res := range preview.Resolutions {
			fmt.Printf("  %s\n", res.Label)
		}
	case preview.HasMedia():
		fmt.Println("\nMedia items (use --item):")
		for _, item := range preview.Media {
			fmt.Printf("  [%s] %s\n", item.Kind, item.URL)
		}
	case preview.HasTracks():
		fmt.Println("\nTracks (use --track video|audio):")
		if preview.VideoURL != "" {
			fmt.Println("  video")
		}
		if preview.AudioURL != "" {
			fmt.Println("  audio")
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
