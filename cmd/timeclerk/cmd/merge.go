package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shiftbooks/timeclerk/internal/dataio"
	"github.com/shiftbooks/timeclerk/internal/history"
	"github.com/shiftbooks/timeclerk/internal/workspace"
	"github.com/shiftbooks/timeclerk/pkg/logging"
	"github.com/shiftbooks/timeclerk/pkg/pipeline"
)

var mergeCorrected string

// mergeCmd merges a corrected extract into a cleaned dataset.
var mergeCmd = &cobra.Command{
	Use:   "merge DATASET",
	Short: "Merge a corrected extract into a cleaned dataset",
	Long: `Merge loads a cleaned dataset and a corrected extract, cleans the
correction with the same rules as raw data, and merges it in with
override semantics: where both carry the same shift, the correction
wins. The merged result replaces the cleaned dataset so downstream
quality checks run without a corrected flag.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireClient(); err != nil {
			return err
		}
		name := args[0]
		corrName := mergeCorrected
		if corrName == "" {
			corrName = name
		}

		ws := workspace.New(cfg.DataRoot, clientName)
		store := dataio.NewStore(ws)

		opts, err := clientOptions(ws)
		if err != nil {
			return err
		}
		p := pipeline.New(opts)

		base, err := store.LoadProcessed(name)
		if err != nil {
			return err
		}
		correction, err := store.LoadCorrected(corrName)
		if err != nil {
			return err
		}

		merged, err := p.MergeCorrected(base, correction)
		if err != nil {
			return err
		}

		if err := store.SaveProcessed(name, merged); err != nil {
			return err
		}

		logging.Info().
			Str("client", clientName).
			Str("dataset", name).
			Int("base_rows", base.Len()).
			Int("merged_rows", merged.Len()).
			Msg("Merged dataset saved")

		recordRun(history.Run{
			Dataset: name,
			Stage:   "merge",
			Policy:  cfg.DedupPolicy,
			RowsIn:  base.Len() + correction.Len(),
			RowsOut: merged.Len(),
		})
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringVar(&mergeCorrected, "corrected", "",
		"corrected dataset name (defaults to DATASET)")
	rootCmd.AddCommand(mergeCmd)
}
