package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shiftbooks/timeclerk/internal/history"
)

var historyLimit int

// historyCmd lists recent pipeline runs for a client.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent pipeline runs for a client",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireClient(); err != nil {
			return err
		}
		if cfg.HistoryDB == "" {
			return fmt.Errorf("no history ledger configured (set history_db)")
		}

		db, err := history.Open(cfg.HistoryDB)
		if err != nil {
			return err
		}
		defer db.Close()

		runs, err := db.Runs(clientName, historyLimit)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "RAN AT\tSTAGE\tDATASET\tPOLICY\tIN\tOUT\tDUP GROUPS\tINCOMPLETE")
		for _, r := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
				r.RanAt.Format("2006-01-02 15:04"), r.Stage, r.Dataset, r.Policy,
				r.RowsIn, r.RowsOut, r.DuplicateGroups, r.IncompleteRows)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum runs to show")
	rootCmd.AddCommand(historyCmd)
}
