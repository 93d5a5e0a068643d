// Package main provides a CLI that extracts candidate profiles from local resume files.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract candidate profiles from resumes",
	Long:  "Extract name, contact info, total experience, most recent education and skills from PDF, DOCX and plain-text resumes.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
