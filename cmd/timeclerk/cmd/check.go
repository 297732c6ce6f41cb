package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shiftbooks/timeclerk/internal/dataio"
	"github.com/shiftbooks/timeclerk/internal/history"
	"github.com/shiftbooks/timeclerk/internal/workspace"
	"github.com/shiftbooks/timeclerk/pkg/logging"
	"github.com/shiftbooks/timeclerk/pkg/pipeline"
)

// checkCmd runs the data quality rules over a cleaned dataset.
var checkCmd = &cobra.Command{
	Use:   "check DATASET",
	Short: "Flag rows missing information required for payroll",
	Long: `Check loads a cleaned dataset, fills missing meal waiver values
with false, evaluates the completeness rules over every row, and
saves the flagged dataset plus an incomplete-rows report for client
review. No row is ever dropped by this stage.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireClient(); err != nil {
			return err
		}
		name := args[0]

		ws := workspace.New(cfg.DataRoot, clientName)
		store := dataio.NewStore(ws)

		opts, err := clientOptions(ws)
		if err != nil {
			return err
		}
		p := pipeline.New(opts)

		ds, err := store.LoadProcessed(name)
		if err != nil {
			return err
		}

		flagged, incomplete := p.Check(ds)

		if err := store.SaveFlagged(name, flagged); err != nil {
			return err
		}
		if err := store.SaveIncompleteReport(name, incomplete); err != nil {
			return err
		}

		logging.Info().
			Str("client", clientName).
			Str("dataset", name).
			Int("rows", flagged.Len()).
			Int("incomplete", incomplete.Len()).
			Msg("Quality check complete")

		recordRun(history.Run{
			Dataset:        name,
			Stage:          "check",
			RowsIn:         ds.Len(),
			RowsOut:        flagged.Len(),
			IncompleteRows: incomplete.Len(),
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
