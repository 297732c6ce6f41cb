// Package cmd implements the timeclerk CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shiftbooks/timeclerk/internal/config"
	"github.com/shiftbooks/timeclerk/internal/history"
	"github.com/shiftbooks/timeclerk/pkg/logging"
)

var (
	// cfg is the loaded application configuration, available to every
	// subcommand after PersistentPreRunE.
	cfg *config.Config

	// Persistent flag values.
	configFile string
	dataRoot   string
	clientName string
)

// rootCmd is the base command for the timeclerk CLI.
var rootCmd = &cobra.Command{
	Use:   "timeclerk",
	Short: "Reconcile and validate client timecard extracts",
	Long: `timeclerk standardizes raw timecard extracts, resolves duplicate
shifts, merges corrected extracts with override semantics, and flags
rows missing information required for payroll computation.

Each client owns a folder tree under the data root holding raw,
processed and corrected datasets plus generated reports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlag("data_root", cmd.Flags().Lookup("data-root")); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}

		configureLogging(cfg)
		return nil
	},
}

// Execute runs the CLI with the given version information.
func Execute(version, commit, date string) error {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default .timeclerk.yaml in $HOME or .)")
	rootCmd.PersistentFlags().StringVar(&dataRoot, "data-root", "",
		"directory holding per-client folders")
	rootCmd.PersistentFlags().StringVarP(&clientName, "client", "c", "",
		"client folder name")
}

// configureLogging applies the configured log level and format to the
// default logger.
func configureLogging(cfg *config.Config) {
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	switch cfg.LogFormat {
	case "json":
		logging.SetDefault(logging.NewJSON(os.Stderr))
	case "console":
		logging.SetDefault(logging.NewConsole())
	}
}

// requireClient errors unless --client was given.
func requireClient() error {
	if clientName == "" {
		return fmt.Errorf("--client is required")
	}
	return nil
}

// recordRun appends a run to the history ledger when one is
// configured. Ledger problems are logged, never fatal: the data work
// already succeeded.
func recordRun(r history.Run) {
	if cfg.HistoryDB == "" {
		return
	}
	db, err := history.Open(cfg.HistoryDB)
	if err != nil {
		logging.Warn().Err(err).Msg("Could not open history ledger")
		return
	}
	defer db.Close()

	r.Client = clientName
	if err := db.Record(r); err != nil {
		logging.Warn().Err(err).Msg("Could not record run")
	}
}
