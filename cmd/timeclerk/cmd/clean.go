package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shiftbooks/timeclerk/internal/config"
	"github.com/shiftbooks/timeclerk/internal/dataio"
	"github.com/shiftbooks/timeclerk/internal/history"
	"github.com/shiftbooks/timeclerk/internal/workspace"
	"github.com/shiftbooks/timeclerk/pkg/logging"
	"github.com/shiftbooks/timeclerk/pkg/pipeline"
)

// mappingFile is the per-client text normalization overlay inside the
// mapping folder.
const mappingFile = "text_mappings.yaml"

// cleanCmd standardizes a raw extract and resolves duplicate keys.
var cleanCmd = &cobra.Command{
	Use:   "clean DATASET",
	Short: "Standardize a raw extract and resolve duplicate shifts",
	Long: `Clean loads a raw client extract, standardizes its text and key
columns, audits duplicate composite keys, resolves them under the
configured policy, and saves the cleaned dataset to the processed
folder together with a duplicate-key audit report.

Configuration and duplicate-key failures halt before anything is
written, so partially resolved data is never persisted.`,
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

		raw, err := store.LoadRaw(name)
		if err != nil {
			return err
		}

		cleaned, audit, err := p.Clean("raw", raw)
		if err != nil {
			return err
		}

		if len(audit) > 0 {
			if err := store.SaveDuplicateReport(name, opts.KeyMode, audit); err != nil {
				return err
			}
		}
		if err := store.SaveProcessed(name, cleaned); err != nil {
			return err
		}

		logging.Info().
			Str("client", clientName).
			Str("dataset", name).
			Int("rows_in", raw.Len()).
			Int("rows_out", cleaned.Len()).
			Msg("Cleaned dataset saved")

		recordRun(history.Run{
			Dataset:         name,
			Stage:           "clean",
			Policy:          cfg.DedupPolicy,
			RowsIn:          raw.Len(),
			RowsOut:         cleaned.Len(),
			DuplicateGroups: len(audit),
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

// clientOptions builds pipeline options, overlaying the client's text
// mapping file when present.
func clientOptions(ws workspace.Client) (pipeline.Options, error) {
	c := *cfg
	path := filepath.Join(ws.MappingDir(), mappingFile)
	if _, err := os.Stat(path); err == nil {
		overlay, err := config.LoadMappings(path)
		if err != nil {
			return pipeline.Options{}, err
		}
		c.TextNormalization = config.MergeTables(c.TextNormalization, overlay)
		logging.Debug().Str("path", path).Msg("Loaded client mapping tables")
	}
	return c.PipelineOptions()
}
