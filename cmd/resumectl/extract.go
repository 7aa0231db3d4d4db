package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file.pdf]",
	Short: "Print the text of a PDF resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if pdfParser == nil {
		return errors.New("pdf parser not configured")
	}

	content, err := pdfParser.ExtractFile(args[0])
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Pages: %d\n\n", content.PageCount)
	fmt.Fprintln(cmd.OutOrStdout(), content.Text)
	return nil
}
