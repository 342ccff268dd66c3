package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/domain"
)

const cachePrefix = "helpdesk:tickets"

type cachedTicketRepository struct {
	inner  TicketRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedTicketRepository caches List results in Redis. Every successful
// mutation bumps a version counter so stale entries are never read again.
// Redis failures fall through to inner.
func NewCachedTicketRepository(inner TicketRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) TicketRepository {
	return &cachedTicketRepository{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (r *cachedTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	if err := r.inner.Create(ctx, ticket); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedTicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	return r.inner.GetByID(ctx, id)
}

func (r *cachedTicketRepository) List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	key, ok := r.listKey(ctx, filter)
	if !ok {
		return r.inner.List(ctx, filter)
	}

	payload, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached []domain.Ticket
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
		r.logger.Warn("discarding unreadable ticket cache entry", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("ticket cache read failed", zap.Error(err))
		return r.inner.List(ctx, filter)
	}

	tickets, err := r.inner.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if encoded, err := json.Marshal(tickets); err == nil {
		if err := r.client.Set(ctx, key, encoded, r.ttl).Err(); err != nil {
			r.logger.Warn("ticket cache write failed", zap.Error(err))
		}
	}
	return tickets, nil
}

func (r *cachedTicketRepository) UpdateStatus(ctx context.Context, id string, expected, status domain.TicketStatus, at time.Time) error {
	if err := r.inner.UpdateStatus(ctx, id, expected, status, at); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedTicketRepository) AppendMessage(ctx context.Context, id string, msg *domain.Message) error {
	if err := r.inner.AppendMessage(ctx, id, msg); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedTicketRepository) Assign(ctx context.Context, id string, expected domain.TicketStatus, department domain.Department, assigneeName string, at time.Time) error {
	if err := r.inner.Assign(ctx, id, expected, department, assigneeName, at); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedTicketRepository) Resolve(ctx context.Context, id string, expected domain.TicketStatus, msg *domain.Message, at time.Time) error {
	if err := r.inner.Resolve(ctx, id, expected, msg, at); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedTicketRepository) listKey(ctx context.Context, filter TicketFilter) (string, bool) {
	version, err := r.client.Get(ctx, versionKey()).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		r.logger.Warn("ticket cache version read failed", zap.Error(err))
		return "", false
	}
	return fmt.Sprintf("%s:v%d:%s|%s|%s", cachePrefix, version, filter.Status, filter.Department, filter.CreatedBy), true
}

func (r *cachedTicketRepository) invalidate(ctx context.Context) {
	if err := r.client.Incr(ctx, versionKey()).Err(); err != nil {
		r.logger.Warn("ticket cache invalidation failed", zap.Error(err))
	}
}

func versionKey() string {
	return cachePrefix + ":version"
}
