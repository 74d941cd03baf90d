package service

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

type Logger interface {
	Error(msg string, v ...interface{})
	Warn(msg string, v ...interface{})
	Info(msg string, v ...interface{})
	Debug(msg string, v ...interface{})
}

type (
	Service interface {
		Init() error
		Run(ctx context.Context)
		Stop()
	}
	Services interface {
		AddService(service ...Service)
		Run(ctx context.Context) error
	}
	Manager struct {
		log      Logger
		services []Service
		signals  chan os.Signal
	}
)

func NewManager(log Logger) *Manager {
	return &Manager{log: log}
}

func (s *Manager) AddService(service ...Service) {
	s.services = append(s.services, service...)
}

// Run initialises every service in order and starts each one on its own
// goroutine. If an Init fails, the services already started are stopped and
// the error is returned. Otherwise Run blocks until SIGINT/SIGTERM or ctx is
// done, then stops all services.
func (s *Manager) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.log.Info("going to start services", "count", len(s.services))
	for count, service := range s.services {
		if err := service.Init(); err != nil {
			cancel()
			for _, started := range s.services[:count] {
				started.Stop()
			}
			return err
		}
		go service.Run(ctx)
	}

	c := s.signals
	if c == nil {
		c = make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(c)
	}

	select {
	case <-c:
	case <-ctx.Done():
	}
	cancel()
	s.stop()

	return nil
}

func (s *Manager) stop() {
	s.log.Info("going to stop")
	for _, service := range s.services {
		service.Stop()
	}
}
