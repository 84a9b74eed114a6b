package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/temptok/internal/app"
	"github.com/llehouerou/temptok/internal/config"
	"github.com/llehouerou/temptok/internal/errmsg"
	"github.com/llehouerou/temptok/internal/journal"
	"github.com/llehouerou/temptok/internal/logging"
	"github.com/llehouerou/temptok/internal/mpris"
	"github.com/llehouerou/temptok/internal/notify"
	"github.com/llehouerou/temptok/internal/player/mpv"
	"github.com/llehouerou/temptok/internal/stderr"
)

func main() {
	if err := run(); err != nil {
		stderr.WriteOriginal(fmt.Sprintf("Error: %v\n", err))
		stderr.Stop()
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := cfg.GetLogFile()
	if err != nil {
		return err
	}
	logCloser, err := logging.Init(logFile, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logCloser.Close()

	// Anything written straight to fd 2 would corrupt the TUI.
	if err := stderr.Start(func(line string) {
		log.Warn().Str("stream", "stderr").Msg(line)
	}); err != nil {
		log.Warn().Err(err).Msg("stderr capture unavailable")
	}
	defer stderr.Stop()

	backend, err := mpv.Start(mpv.Config{
		Executable: cfg.Player.Executable,
		ExtraArgs:  cfg.Player.Args,
		SocketPath: cfg.Player.Socket,
	})
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpPlayerStart, err))
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpPlayerStop, err))
		}
	}()

	notifier, err := notify.New()
	if err != nil {
		log.Warn().Err(err).Msg("desktop notifications unavailable")
	}

	status := mpris.NewController()
	deps := app.Deps{
		Backend:  backend,
		Failures: notify.NewFailureReporter(notifier),
		Status:   status,
	}

	if !cfg.Journal.Disabled {
		if j := openJournal(cfg); j != nil {
			defer j.Close()
			deps.Journal = j
		}
	}

	m, err := app.New(cfg, deps)
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpFeedLoad, err))
	}

	adapter, err := mpris.New(status)
	if err != nil {
		log.Warn().Err(err).Msg("MPRIS unavailable")
	} else {
		defer adapter.Close()
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	status.Attach(p)

	log.Info().
		Str("location", cfg.GetLocation()).
		Int("videos", m.Feed.Len()).
		Msg("starting feed")

	final, err := p.Run()
	if fm, ok := final.(app.Model); ok {
		fm.Close()
	}
	return err
}

// openJournal opens the playback journal. The feed runs without one when the
// database cannot be opened.
func openJournal(cfg *config.Config) *journal.Journal {
	path, err := cfg.GetJournalPath()
	if err != nil {
		log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpJournalOpen, err))
		return nil
	}
	j, err := journal.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg(errmsg.Format(errmsg.OpJournalOpen, err))
		return nil
	}
	if err := j.Prune(journal.DefaultRetention); err != nil {
		log.Warn().Err(err).Msg("prune journal")
	}
	return j
}
