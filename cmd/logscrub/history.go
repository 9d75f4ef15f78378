package logscrub

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/logscrub/logscrub/internal/audit"
)

func init() {
	var output string
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent sanitization runs",
		RunE: func(_ *cobra.Command, _ []string) error {
			records, err := audit.NewLog(output).LoadHistory()
			if err != nil {
				return fmt.Errorf("no run history in %s: %w", output, err)
			}
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}
			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Time", "Source", "Processed", "Unchanged", "Failed", "Duration")
			for _, r := range records {
				_ = table.Append(
					r.Timestamp.Format(time.RFC3339),
					r.SourceDir,
					strconv.Itoa(r.FilesProcessed),
					strconv.Itoa(r.FilesSkipped),
					strconv.Itoa(r.FailureCount),
					r.Duration,
				)
			}
			return table.Render()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "results", "output directory holding the audit log")
	cmd.Flags().IntVar(&limit, "limit", 10, "show at most this many runs")
	rootCmd.AddCommand(cmd)
}
