package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"squish/internal/processor"
	"squish/internal/tui"
	"squish/pkg/imgformat"
)

var (
	flagFormat   string
	flagQuality  int
	flagWidth    int
	flagHeight   int
	flagAspect   string
	flagFolder   string
	flagPreserve bool
	flagTable    bool
)

var rootCmd = &cobra.Command{
	Use:   "squish [flags] <directory>",
	Short: "squish 🗜 - batch image optimizer",
	Long: "squish 🗜 converts, resizes, and compresses every jpg/png/webp/svg under a directory,\n" +
		"mirroring the directory structure into the output folder and reporting size savings.",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions()
		if err != nil {
			return err
		}

		updates := make(chan processor.ProgressUpdate, 64)
		model := tui.NewModel(updates)
		program := tea.NewProgram(model)

		uiDone := make(chan struct{})
		go func() {
			_, _ = program.Run()
			close(uiDone)
		}()

		outcomes, totals, err := processor.Run(args[0], opts, updates)

		close(updates)
		<-uiDone
		if err != nil {
			return err
		}

		if len(outcomes) == 0 {
			fmt.Fprintln(os.Stdout, "0 images found")
			return nil
		}

		for _, outcome := range outcomes {
			if outcome.Err != nil {
				fmt.Fprintf(os.Stderr, "error: %s: %v\n", outcome.DisplayPath, outcome.Err)
			}
		}

		if opts.ShowTable {
			fmt.Fprintln(os.Stdout, tui.RenderReport(outcomes))
		}

		rows := []tui.SummaryRow{
			{Label: "Images optimized", Value: fmt.Sprintf("%d", totals.Succeeded)},
			{Label: "Original size", Value: tui.FormatBytes(totals.OriginalBytes)},
			{Label: "Optimized size", Value: tui.FormatBytes(totals.OutputBytes)},
			{Label: "Total reduction", Value: fmt.Sprintf("%.2f%%", totals.Reduction())},
			{Label: "Metadata entries removed", Value: fmt.Sprintf("%d", totals.MetaRemoved)},
		}
		if totals.Failed() > 0 {
			rows = append(rows, tui.SummaryRow{Label: "Failed", Value: fmt.Sprintf("%d", totals.Failed())})
		}
		fmt.Fprintln(os.Stdout, tui.RenderSummary(rows))

		outPath := opts.OutputRoot
		if abs, absErr := filepath.Abs(opts.OutputRoot); absErr == nil {
			outPath = abs
		}
		fmt.Fprintf(os.Stdout, "Optimized files written to: %s\n", outPath)
		return nil
	},
}

// buildOptions turns the raw flag values into validated run options.
// Validation failures stop the run before any file is touched.
func buildOptions() (processor.Options, error) {
	var opts processor.Options

	format, err := imgformat.ParseTarget(flagFormat)
	if err != nil {
		return opts, err
	}
	aspect, err := processor.ParseAspect(flagAspect)
	if err != nil {
		return opts, err
	}

	opts = processor.Options{
		TargetFormat:   format,
		Quality:        flagQuality,
		Width:          flagWidth,
		Height:         flagHeight,
		Aspect:         aspect,
		OutputRoot:     flagFolder,
		PreserveFormat: flagPreserve,
		ShowTable:      flagTable,
	}
	return opts, opts.Validate()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Registering --help without a shorthand first frees -h for --height.
	rootCmd.Flags().Bool("help", false, "help for squish")

	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "jpg", "target raster format (jpg, png, webp)")
	rootCmd.Flags().IntVarP(&flagQuality, "quality", "q", 80, "quality 1-100")
	rootCmd.Flags().IntVarP(&flagWidth, "width", "w", 0, "resize width (default: original)")
	rootCmd.Flags().IntVarP(&flagHeight, "height", "h", 0, "resize height (default: original)")
	rootCmd.Flags().StringVarP(&flagAspect, "aspect", "a", "scale", "resize fit mode (scale, crop, false)")
	rootCmd.Flags().StringVarP(&flagFolder, "folder", "o", "optimized_images", "output folder")
	rootCmd.Flags().BoolVar(&flagPreserve, "preserve-format", true, "keep each file's own format when target format is the default")
	rootCmd.Flags().BoolVar(&flagTable, "show-table", false, "print the per-file report table")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}
