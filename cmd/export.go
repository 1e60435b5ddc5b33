package cmd

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"transcript-server-go/export"
	"transcript-server-go/transcript"
)

var (
	exportOut   string
	exportSheet string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the transcript page's score table to an xlsx workbook",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	t, err := export.Parse(bytes.NewReader(transcript.HTML()))
	if err != nil {
		return err
	}

	if err := export.WriteFile(t, exportOut, exportSheet); err != nil {
		return err
	}

	slog.Info("exported transcript", "path", exportOut, "courses", len(t.Courses))
	fmt.Fprintln(cmd.OutOrStdout(), exportOut)
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "transcript.xlsx", "output workbook path")
	exportCmd.Flags().StringVar(&exportSheet, "sheet", export.DefaultSheet, "worksheet name")
}
