package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"furniture-studio/internal/common/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger

	verbose        bool
	specFile       string
	outPath        string
	showDimensions bool
	styleClass     string
	sheetDir       string
	workers        int
)

var rootCmd = &cobra.Command{
	Use:   "furnictl",
	Short: "furnictl - parametric furniture drawings from the command line",
	Long: `furnictl renders furniture specifications (YAML or JSON) into SVG
drawings and HTML preview cards using the same engine as the drawing service.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return nil
		}
		level := "warn"
		if verbose {
			level = "debug"
		}
		var err error
		logger, err = logging.New("development", level)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a spec file to SVG",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a spec file to an HTML preview page",
	Args:  cobra.NoArgs,
	RunE:  runPreview,
}

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Render a list of specs into a directory of SVG files",
	Long: `Reads a YAML/JSON list of specs and writes one numbered SVG per spec
into the output directory. Specs are rendered concurrently.`,
	Args: cobra.NoArgs,
	RunE: runSheet,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print supported furniture types with default options as YAML",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	for _, cmd := range []*cobra.Command{renderCmd, previewCmd, sheetCmd} {
		cmd.Flags().StringVarP(&specFile, "file", "f", "", "Spec file, YAML or JSON (required)")
		cmd.Flags().BoolVar(&showDimensions, "dimensions", false, "Draw the dimension overlay")
		cmd.Flags().StringVar(&styleClass, "class", "", "CSS class for the root element")
		_ = cmd.MarkFlagRequired("file")
	}
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: stdout)")
	previewCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: stdout)")
	sheetCmd.Flags().StringVarP(&sheetDir, "out", "o", "sheet", "Output directory")
	sheetCmd.Flags().IntVar(&workers, "workers", 4, "Concurrent renders")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(sheetCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
