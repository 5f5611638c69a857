package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hh-vacancy-search/internal/config"
	"hh-vacancy-search/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	logLevel   string

	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hhsearch",
	Short: "Search hh.ru vacancies from the terminal",
	Long: `hhsearch looks up vacancies through the HeadHunter API, filters them by
salary range and keywords, keeps the best ones and saves them locally.

Run without arguments to start the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		log, err = logger.New(cfg.Logging.Level, cfg.Logging.File)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		log.Info("starting hhsearch",
			zap.String("command", cmd.Name()),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("storage_backend", cfg.Storage.Backend),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Search text")
	searchCmd.Flags().StringVarP(&searchRegion, "region", "r", "", "Region name, for example Москва")
	searchCmd.Flags().IntVar(&searchMin, "min", 0, "Lower salary bound (needs --max)")
	searchCmd.Flags().IntVar(&searchMax, "max", 0, "Upper salary bound (needs --min)")
	searchCmd.Flags().IntVarP(&searchTop, "top", "n", 0, "Keep only the top N vacancies by salary")
	searchCmd.Flags().StringVarP(&searchWords, "words", "w", "", "Space separated keywords, any must match")
	searchCmd.Flags().BoolVar(&searchSave, "save", false, "Save the result")
	searchCmd.MarkFlagRequired("query")
	searchCmd.MarkFlagsRequiredTogether("min", "max")

	savedCmd.Flags().IntVarP(&savedTop, "top", "n", 0, "Show only the top N saved vacancies")

	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(savedCmd)
	rootCmd.AddCommand(deleteCmd)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		if log != nil {
			log.Info("received shutdown signal", zap.String("signal", sig.String()))
		}
		cancel()
		// A second signal falls through to the default handler, which
		// matters while the menu is blocked reading stdin.
		signal.Stop(sigChan)
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
