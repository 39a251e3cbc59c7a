package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpadapter "github.com/bankoffice/bankoffice/internal/adapter/http"
	"github.com/bankoffice/bankoffice/internal/adapter/repository/memory"
	"github.com/bankoffice/bankoffice/internal/domain"
	"github.com/bankoffice/bankoffice/internal/infrastructure/config"
	"github.com/bankoffice/bankoffice/internal/infrastructure/logger"
	"github.com/bankoffice/bankoffice/internal/infrastructure/metrics"
	"github.com/bankoffice/bankoffice/internal/usecase"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "bankoffice",
		Short:        "Banking back office terminal",
		Long:         `An interactive teller terminal. Accounts load from the master file at login, transactions apply under per-session authorization and limits, and the session history is written to the daily transaction file at logout.`,
		RunE:         run,
		SilenceUsage: true,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	m := metrics.New()

	if cfg.MetricsEnabled {
		go func() {
			appLogger.Info().Str("addr", cfg.MetricsAddr).Msg("starting metrics listener")
			if err := http.ListenAndServe(cfg.MetricsAddr, httpadapter.NewRouter()); err != nil {
				appLogger.Error().Err(err).Msg("metrics listener stopped")
			}
		}()
	}

	store := memory.NewAccountStore()
	session := domain.NewSession()
	journal := memory.NewTransactionLog()

	processor := usecase.NewProcessor(store, session, journal, appLogger, m)
	controller := usecase.NewController(usecase.ControllerConfig{
		Store:                store,
		Session:              session,
		Log:                  journal,
		IDGen:                memory.NewULIDGenerator(),
		Logger:               appLogger,
		Metrics:              m,
		AccountsFile:         cfg.AccountsFile,
		JournalFile:          cfg.JournalFile,
		FlushRetryInitial:    cfg.FlushRetryInitial,
		FlushRetryMaxElapsed: cfg.FlushRetryMaxElapsed,
	})

	front := newFrontEnd(os.Stdin, os.Stdout, controller, processor, session)
	return front.run()
}
