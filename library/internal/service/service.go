package service

import (
	"context"
	"time"

	"github.com/Astemirdum/library-management/library/internal/events"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/repository"
	"github.com/Astemirdum/library-management/pkg/auth"
	"github.com/Astemirdum/library-management/pkg/kafka"
	"go.uber.org/zap"
)

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	tokens *auth.TokenManager
	events events.Publisher
	policy model.BorrowPolicy
	now    func() time.Time
}

type Option func(*Service)

func WithPolicy(p model.BorrowPolicy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

func WithPublisher(p events.Publisher) Option {
	return func(s *Service) {
		s.events = p
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo repository.Repository, tokens *auth.TokenManager, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:    log.Named("service"),
		repo:   repo,
		tokens: tokens,
		events: events.NewNopPublisher(),
		policy: model.DefaultBorrowPolicy(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) publish(ctx context.Context, typ kafka.EventType, b model.Borrow) {
	event := kafka.BorrowEvent{
		Type:       typ,
		BorrowID:   b.ID,
		UserID:     b.UserID,
		BookID:     b.BookID,
		DueDate:    b.DueDate,
		FineAmount: b.FineAmount,
		Timestamp:  s.now(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn("publish borrow event",
			zap.String("type", string(typ)),
			zap.Int64("borrow_id", b.ID),
			zap.Error(err))
	}
}
