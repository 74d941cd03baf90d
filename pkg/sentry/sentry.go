package sentry

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Init sets up Sentry when dsn is non-empty and reports whether it did.
func Init(dsn, environment string) (bool, error) {
	if dsn == "" {
		return false, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		AttachStacktrace: true,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			if event.Tags == nil {
				event.Tags = make(map[string]string)
			}
			event.Tags["app"] = "hotsbot"
			return event
		},
	})
	if err != nil {
		return false, fmt.Errorf("failed to init sentry: %w", err)
	}
	return true, nil
}

// CaptureError sends err to Sentry tagged with the command that produced it.
// It is a no-op when Sentry was never initialised.
func CaptureError(command string, err error, fields map[string]any) {
	hub := sentry.CurrentHub()
	if hub.Client() == nil {
		return
	}

	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelError)
		scope.SetTag("command", command)
		for k, v := range fields {
			scope.SetExtra(k, v)
		}
		hub.CaptureException(err)
	})
}

// Flush waits for pending events before the process exits.
func Flush() {
	sentry.Flush(2 * time.Second)
}
