package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cv-extract/internal/batch"
	"cv-extract/internal/cv"
	"cv-extract/internal/extraction"
	"cv-extract/internal/logger"
)

var filesCmd = &cobra.Command{
	Use:   "files [paths...]",
	Short: "Extract profiles from resume files",
	Long:  "Decode each file, extract its profile and print the outcomes as a JSON array in argument order.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFiles,
}

var (
	workers  int
	outFile  string
	verbose  bool
	failFast bool
)

func init() {
	filesCmd.Flags().IntVarP(&workers, "workers", "w", 4, "Number of documents processed in parallel")
	filesCmd.Flags().StringVarP(&outFile, "out", "o", "", "Write JSON to this file instead of stdout")
	filesCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	filesCmd.Flags().BoolVar(&failFast, "strict", false, "Exit with an error when any document fails")

	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, args []string) error {
	log, err := logger.New(false, verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	sources := make([]cv.Source, len(args))
	for i, path := range args {
		sources[i] = fileSource(path)
	}

	docs := cv.NewCVParser(nil).Documents(sources, log)
	outcomes := batch.NewOrchestrator(extraction.NewExtractor(), workers, log).Run(docs)

	var w io.Writer = cmd.OutOrStdout()
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outcomes); err != nil {
		return fmt.Errorf("failed to write outcomes: %w", err)
	}

	succeeded, failed := batch.Summary(outcomes)
	log.Info("extraction finished", zap.Int("succeeded", succeeded), zap.Int("failed", failed))
	if failFast && failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(outcomes))
	}
	return nil
}

func fileSource(path string) cv.Source {
	return cv.Source{
		Filename: filepath.Base(path),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}
