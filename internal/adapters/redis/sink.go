// Package redis implements the result sink on Redis, for watching long
// batches from another machine: each snapshot is pushed onto a list that a
// monitor can poll or LRANGE after the fact.
package redis

import (
	"context"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"
	"github.com/winfrac-dev/winfrac/pkg/domain"
	"github.com/winfrac-dev/winfrac/pkg/ports"
)

// Sink appends snapshot lines to a Redis list.
type Sink struct {
	client *backend.Client
	key    string
	ttl    time.Duration
}

var _ ports.ResultSink = (*Sink)(nil)

// Option configures the sink.
type Option func(*Sink)

// WithKey sets the list key. Default "winfrac:results".
func WithKey(key string) Option {
	return func(s *Sink) { s.key = key }
}

// WithTTL sets an expiration on the list, refreshed on every append. Zero
// (the default) keeps the list forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *Sink) { s.ttl = ttl }
}

// New creates a sink talking to the Redis at address.
func New(address string, opts ...Option) *Sink {
	client := backend.NewClient(&backend.Options{Addr: address})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a sink from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Sink {
	s := &Sink{client: client, key: "winfrac:results"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append pushes one snapshot line onto the list.
func (s *Sink) Append(ctx context.Context, snap domain.Snapshot) error {
	return s.push(ctx, snap.String())
}

// Final pushes the closing "won/total" line.
func (s *Sink) Final(ctx context.Context, a domain.Aggregate) error {
	return s.push(ctx, a.String())
}

func (s *Sink) push(ctx context.Context, line string) error {
	if err := s.client.RPush(ctx, s.key, line).Err(); err != nil {
		return fmt.Errorf("rpush snapshot: %w", err)
	}
	if s.ttl > 0 {
		if err := s.client.Expire(ctx, s.key, s.ttl).Err(); err != nil {
			return fmt.Errorf("refresh ttl: %w", err)
		}
	}
	return nil
}

// Close closes the underlying client.
func (s *Sink) Close() error {
	return s.client.Close()
}
