package services

import (
	"context"
	"fmt"
	"printdoot_server/database"
	"printdoot_server/lib"

	"github.com/MonkyMars/gecho"
)

// allocateCounterSQL advances the shared order counter in a single atomic
// round trip and returns the sequence number that was consumed. The first
// call ever creates the row; there is no separate read-then-write window, so
// concurrent callers can never observe the same value.
const allocateCounterSQL = `INSERT INTO order_counter (id, current_number)
VALUES (1, 1)
ON CONFLICT (id) DO UPDATE SET current_number = order_counter.current_number + 1
RETURNING current_number - 1`

// counterStore is the single-method storage contract of the allocator.
type counterStore interface {
	AllocateNext(ctx context.Context) (int64, error)
}

type pgCounterStore struct {
	db *database.DB
}

func (s *pgCounterStore) AllocateNext(ctx context.Context) (int64, error) {
	var seq int64
	err := s.db.QueryRowContext(ctx, allocateCounterSQL).Scan(&seq)
	if err != nil {
		return 0, lib.MapPgError(err)
	}
	return seq, nil
}

// CounterService hands out monotonically increasing order sequence numbers
// and their rendered public codes. Numbers are never reused; a checkout that
// fails after allocation leaves a gap in the sequence.
type CounterService struct {
	logger *gecho.Logger
	store  counterStore
}

func NewCounterService(logger *gecho.Logger, db *database.DB) *CounterService {
	return &CounterService{
		logger: logger,
		store:  &pgCounterStore{db: db},
	}
}

// AllocateNext consumes the next sequence number and returns it together with
// the rendered order code. The allocation commits independently of any
// enclosing transaction.
func (cs *CounterService) AllocateNext(ctx context.Context) (int64, string, error) {
	seq, err := cs.store.AllocateNext(ctx)
	if err != nil {
		cs.logger.Error("Failed to allocate order number", gecho.Field("error", err))
		return 0, "", fmt.Errorf("failed to allocate order number: %w", err)
	}

	code := lib.RenderOrderCode(seq)

	cs.logger.Debug("Allocated order number",
		gecho.Field("sequence", seq),
		gecho.Field("order_id", code))

	return seq, code, nil
}
