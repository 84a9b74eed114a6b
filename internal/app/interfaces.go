package app

import (
	"github.com/llehouerou/temptok/internal/journal"
	"github.com/llehouerou/temptok/internal/mpris"
	"github.com/llehouerou/temptok/internal/notify"
)

// Compile-time assertions that the production collaborators fit.
var (
	_ Journal         = (*journal.Journal)(nil)
	_ FailureNotifier = (*notify.FailureReporter)(nil)
	_ StatusPublisher = (*mpris.Controller)(nil)
)

// Journal records playback outcomes.
type Journal interface {
	RecordPlayed(source, label string) error
	RecordFailure(source, label string, cause error) error
}

// FailureNotifier surfaces media failures outside the terminal.
type FailureNotifier interface {
	Report(label, source string, cause error) error
}

// StatusPublisher receives a snapshot after every update.
type StatusPublisher interface {
	Publish(s mpris.Status)
}
