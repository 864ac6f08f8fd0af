// Package cardsync settles card payments whose webhook never arrived by
// polling the processor for every pending checkout session.
package cardsync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	workers       = 10

	// sessions younger than this are left to the webhook
	minSessionAge = time.Minute
)

type IntentRepo interface {
	ListPendingByRail(ctx context.Context, rail domain.Rail, createdBefore time.Time) ([]domain.PaymentIntent, error)
}

type Sessions interface {
	GetSession(ctx context.Context, sessionID string) (*clients.CardSession, error)
}

type Reconciler interface {
	ProcessConfirmation(ctx context.Context, c domain.Confirmation) (*domain.ConfirmationResult, error)
	ExpireCardSession(ctx context.Context, sessionID string) (bool, error)
}

type Service struct {
	intents        IntentRepo
	sessions       Sessions
	reconciler     Reconciler
	workerPool     WorkerPoolI
	processing     sync.Map
	updateInterval time.Duration
	retryInterval  time.Duration
	now            func() time.Time
}

func New(intents IntentRepo, sessions Sessions, reconciler Reconciler, updateInterval time.Duration) *Service {
	return &Service{
		intents:        intents,
		sessions:       sessions,
		reconciler:     reconciler,
		workerPool:     NewWorkerPool(workers),
		updateInterval: updateInterval,
		retryInterval:  retryInterval,
		now:            time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Card session sync started", zap.Duration("interval", s.updateInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping card session sync")
			return
		case <-ticker.C:
			if err := s.SyncOnce(ctx); err != nil {
				zap.L().Warn("Card session sync incomplete", zap.Error(err))
			}
		}
	}
}

// SyncOnce checks every pending card intent old enough once and waits until
// all of them were handled.
func (s *Service) SyncOnce(ctx context.Context) error {
	intents, err := s.intents.ListPendingByRail(ctx, domain.RailCard, s.now().Add(-minSessionAge))
	if err != nil {
		zap.L().Error("Failed to fetch pending card intents", zap.Error(err))
		return err
	}

	var g errgroup.Group
	for _, intent := range intents {
		sessionID := intent.ExternalReference
		if _, loaded := s.processing.LoadOrStore(sessionID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			done := make(chan error, 1)
			err := s.workerPool.AddTask(ctx, func() (err error) {
				defer func() {
					s.processing.Delete(sessionID)
					done <- err
				}()
				return s.handleIntent(ctx, intent)
			})
			if err != nil {
				s.processing.Delete(sessionID)
				return err
			}
			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}
	return g.Wait()
}

func (s *Service) handleIntent(ctx context.Context, intent domain.PaymentIntent) error {
	sessionID := intent.ExternalReference

	for attempt := 1; attempt <= maxRetries; attempt++ {
		session, err := s.sessions.GetSession(ctx, sessionID)
		if err == nil {
			return s.apply(ctx, intent, session)
		}

		var rateLimit *clients.RateLimitError
		switch {
		case errors.As(err, &rateLimit):
			zap.L().Warn("Rate limit detected, retrying",
				zap.String("sessionID", sessionID),
				zap.Int("attempt", attempt),
				zap.Duration("retryAfter", rateLimit.RetryAfter),
			)
			if err := s.wait(ctx, rateLimit.RetryAfter); err != nil {
				return err
			}
		case errors.Is(err, clients.ErrSessionNotFound):
			zap.L().Warn("Card session unknown to the processor", zap.String("sessionID", sessionID), zap.Int("intentID", intent.ID))
			return nil
		default:
			if attempt == maxRetries {
				return fmt.Errorf("failed to fetch session %s after %d retries: %w", sessionID, maxRetries, err)
			}
			if err := s.wait(ctx, s.retryInterval*time.Duration(attempt)); err != nil {
				return err
			}
		}
	}
	return fmt.Errorf("session %s still rate limited after %d retries", sessionID, maxRetries)
}

func (s *Service) apply(ctx context.Context, intent domain.PaymentIntent, session *clients.CardSession) error {
	switch {
	case session.Paid():
		result, err := s.reconciler.ProcessConfirmation(ctx, domain.Confirmation{
			Reference:      session.ID,
			ReportedAmount: session.AmountTotal,
			ExternalTxnID:  session.PaymentIntent,
		})
		if err != nil {
			return fmt.Errorf("failed to settle session %s: %w", session.ID, err)
		}
		if !result.AlreadyProcessed {
			zap.L().Info("Card payment settled by sync", zap.Int("intentID", intent.ID), zap.String("sessionID", session.ID))
		}
	case session.Status == clients.SessionExpired:
		if _, err := s.reconciler.ExpireCardSession(ctx, session.ID); err != nil {
			return fmt.Errorf("failed to expire session %s: %w", session.ID, err)
		}
	default:
		zap.L().Debug("Card session still open", zap.String("sessionID", session.ID), zap.String("status", session.Status))
	}
	return nil
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
