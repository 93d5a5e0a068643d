// Command upload_resumes posts local resume files to a running extraction API and
// prints the JSON response.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	httpclient "cv-extract/pkg/http"
)

var (
	apiURL  string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "upload_resumes [paths...]",
	Short: "Upload resumes to the extraction API",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runUpload,
}

func init() {
	rootCmd.Flags().StringVar(&apiURL, "api", "http://localhost:8080", "Base URL of the API server")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "Request timeout")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runUpload(cmd *cobra.Command, args []string) error {
	client := httpclient.NewClient(timeout)

	resp, err := client.UploadFiles(strings.TrimRight(apiURL, "/")+"/api/resumes/upload", "files", args)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("upload failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	if id := resp.Header.Get("X-Batch-ID"); id != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "batch %s\n", id)
	}
	_, err = io.Copy(cmd.OutOrStdout(), resp.Body)
	return err
}
