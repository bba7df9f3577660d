package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/spf13/cobra"

	"soshiki"
	"soshiki/store/duck"
	"soshiki/util"
)

//go:embed sample.yaml
var sample []byte

const fileMode = os.FileMode(0644)

var (
	cfgFile string
	dbPath  string
	logPath string
)

var cfg = &soshiki.Config{}

func main() {

	err := NewRootCmd().ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "soshiki",
		Short: "Edit the search filters of a source",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {

			err = util.SampleConfig(sample, cfgFile, fileMode)
			if err != nil {
				return
			}

			// flags given on the command line win over the file
			fromFile := &soshiki.Config{}
			err = util.LoadConfig(fromFile, cfgFile)
			if err != nil {
				return
			}
			overlay(cmd, fromFile)
			return
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "soshiki.yaml", "config file, sample written if missing")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "soshiki.duckdb", "duckdb file holding saved filters")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "soshiki.log", "log file")
	rootCmd.Flags().StringVar(&cfg.Filters, "filters", "", "filter definition file")
	rootCmd.Flags().StringVar(&cfg.Source, "source", "", "source name, defaults to the one in the definition file")
	rootCmd.Flags().StringVar(&cfg.Export, "out", "", "export path for ctrl+s")

	rootCmd.AddCommand(NewSourcesCmd())

	return rootCmd
}

// NewSourcesCmd lists the sources with saved filters.
func NewSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List sources with saved filters",
		RunE: func(cmd *cobra.Command, args []string) (err error) {

			ctx, lgr, closeLog := logger(cmd.Context())
			defer closeLog()

			store, err := duck.New(ctx, lgr, dbPath)
			if err != nil {
				return
			}
			defer store.Close()

			sources, err := store.Sources(ctx)
			if err != nil {
				return
			}

			for _, source := range sources {
				fmt.Println(source)
			}
			return
		},
	}
}

func run(ctx context.Context) (err error) {

	ctx, lgr, closeLog := logger(ctx)
	defer closeLog()

	lgr.Info(ctx, "starting up", "config", cfg)

	store, err := duck.New(ctx, lgr, dbPath)
	if err != nil {
		lgr.Error(ctx, "failed to open store", err)
		return
	}
	defer store.Close()

	sess, err := cfg.NewSession(ctx, store, lgr)
	if err != nil {
		lgr.Error(ctx, "failed to start session", err)
		return
	}

	model, err := cfg.NewModel(ctx, sess, store, lgr)
	if err != nil {
		lgr.Error(ctx, "failed to create model", err)
		return
	}

	_, err = tea.NewProgram(model).Run()
	if err != nil {
		lgr.Error(ctx, "program exited with error", err)
		return
	}

	// edits not yet saved: autosave off, or its last attempt failed
	if sess.Dirty() {
		err = store.SaveFilters(ctx, sess.Source, sess.Snapshot())
		if err != nil {
			lgr.Error(ctx, "failed to save filters", err)
			return
		}
		sess.Saved(sess.Updates())
	}

	lgr.Info(ctx, "shutting down", "updates", sess.Updates())
	return
}

func logger(ctx context.Context) (context.Context, *sabot.Sabot, func()) {

	file := util.OpenLog(logPath, fileMode)
	lgr := &sabot.Sabot{Writer: file, MaxLen: 999}
	ctx = lgr.WithFields(ctx, "app_id", "soshiki")

	return ctx, lgr, func() { util.CloseLog(file) }
}

// overlay fills unset flags from the config file.
func overlay(cmd *cobra.Command, fromFile *soshiki.Config) {

	flags := cmd.Flags()
	if !flags.Changed("filters") {
		cfg.Filters = fromFile.Filters
	}
	if !flags.Changed("source") {
		cfg.Source = fromFile.Source
	}
	if !flags.Changed("out") {
		cfg.Export = fromFile.Export
	}
	cfg.Autosave = fromFile.Autosave
	cfg.Editor = fromFile.Editor
}
