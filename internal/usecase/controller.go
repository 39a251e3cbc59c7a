package usecase

import (
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/bankoffice/bankoffice/internal/adapter/repository/memory"
	"github.com/bankoffice/bankoffice/internal/domain"
	"github.com/bankoffice/bankoffice/internal/infrastructure/metrics"
)

// ControllerConfig holds dependencies and settings for the session controller.
type ControllerConfig struct {
	Store   *memory.AccountStore
	Session *domain.Session
	Log     *memory.TransactionLog
	IDGen   IDGenerator
	Logger  zerolog.Logger
	Metrics *metrics.Metrics

	AccountsFile string
	JournalFile  string

	// Journal flush retry bounds. Retrying is a boundary-layer policy; the
	// engine itself never retries.
	FlushRetryInitial    time.Duration
	FlushRetryMaxElapsed time.Duration
}

// Controller owns the session lifecycle: it loads the account master file at
// login, gates commands through the session allow-list, and writes the daily
// transaction file at logout.
type Controller struct {
	store   *memory.AccountStore
	session *domain.Session
	log     *memory.TransactionLog
	idGen   IDGenerator
	logger  zerolog.Logger
	metrics *metrics.Metrics

	accountsFile string
	journalFile  string

	flushRetryInitial    time.Duration
	flushRetryMaxElapsed time.Duration
}

// NewController creates a new Controller.
func NewController(cfg ControllerConfig) *Controller {
	return &Controller{
		store:                cfg.Store,
		session:              cfg.Session,
		log:                  cfg.Log,
		idGen:                cfg.IDGen,
		logger:               cfg.Logger,
		metrics:              cfg.Metrics,
		accountsFile:         cfg.AccountsFile,
		journalFile:          cfg.JournalFile,
		flushRetryInitial:    cfg.FlushRetryInitial,
		flushRetryMaxElapsed: cfg.FlushRetryMaxElapsed,
	}
}

// Login starts a session: it loads the account master file, verifies the
// holder for standard mode, and zeroes the session counters. holder is
// ignored in admin mode.
func (c *Controller) Login(mode domain.Mode, holder string) error {
	if c.session.LoggedIn() {
		return domain.ErrAlreadyLoggedIn
	}

	if err := c.loadAccounts(); err != nil {
		return err
	}

	user := ""
	if mode == domain.ModeStandard {
		if _, ok := c.store.FindByName(holder); !ok {
			return fmt.Errorf("%w: no account held by %q", domain.ErrAccountNotFound, holder)
		}
		user = holder
	}

	id := c.idGen.Generate()
	if err := c.session.Login(id, mode, user); err != nil {
		return err
	}

	c.metrics.SessionsStarted.Inc()
	c.metrics.AccountsLoaded.Set(float64(c.store.Len()))

	c.logger.Info().
		Str("session_id", id).
		Str("mode", string(mode)).
		Int("accounts", c.store.Len()).
		Msg("session started")

	return nil
}

// Logout flushes the daily transaction file, clears the log and ends the
// session. On flush failure the log is retained and the session stays active
// so the caller can retry.
func (c *Controller) Logout() error {
	if !c.session.LoggedIn() {
		return domain.ErrNotLoggedIn
	}

	id := c.session.ID()
	if err := c.flushJournal(); err != nil {
		c.metrics.JournalFlushFailures.Inc()
		c.logger.Error().Str("session_id", id).Err(err).Msg("journal flush failed")
		return err
	}

	c.log.Clear()
	if err := c.session.Logout(); err != nil {
		return err
	}

	c.metrics.SessionsEnded.Inc()
	c.logger.Info().Str("session_id", id).Msg("session ended")

	return nil
}

// Authorize reports whether the active session may run command.
func (c *Controller) Authorize(command domain.Command) error {
	if !c.session.LoggedIn() {
		return domain.ErrNotLoggedIn
	}
	if !c.session.CanExecute(command) {
		return fmt.Errorf("%w: %s", domain.ErrNotAuthorized, command)
	}
	return nil
}

func (c *Controller) loadAccounts() error {
	f, err := os.Open(c.accountsFile)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	defer f.Close()

	return c.store.Load(f)
}

func (c *Controller) flushJournal() error {
	start := time.Now()
	defer func() {
		c.metrics.JournalFlushDuration.Observe(time.Since(start).Seconds())
	}()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.flushRetryInitial
	b.MaxElapsedTime = c.flushRetryMaxElapsed

	return backoff.Retry(func() error {
		err := c.writeJournalFile()
		if err != nil {
			c.logger.Warn().Err(err).Str("file", c.journalFile).Msg("journal write failed, retrying")
		}
		return err
	}, b)
}

func (c *Controller) writeJournalFile() error {
	f, err := os.Create(c.journalFile)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	if err := c.log.Flush(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	return nil
}
