package services

import (
	"context"
	"sync"
	"testing"

	"printdoot_server/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCounterStore mirrors the database allocator with an in-process mutex.
type memCounterStore struct {
	mu   sync.Mutex
	next int64
}

func (s *memCounterStore) AllocateNext(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq := s.next
	s.next++
	return seq, nil
}

func TestCounterServiceAllocatesUniqueCodesConcurrently(t *testing.T) {
	cs := &CounterService{
		logger: gecho.NewDefaultLogger(),
		store:  &memCounterStore{},
	}

	const workers = 50
	const perWorker = 20

	var mu sync.Mutex
	codes := make(map[string]struct{})
	seqs := make(map[int64]struct{})

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				seq, code, err := cs.AllocateNext(context.Background())
				assert.NoError(t, err)

				mu.Lock()
				codes[code] = struct{}{}
				seqs[seq] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, codes, workers*perWorker, "every allocation must yield a distinct code")
	assert.Len(t, seqs, workers*perWorker, "every allocation must yield a distinct sequence")

	// The sequence must be dense: no value skipped, none above the total.
	for seq := range int64(workers * perWorker) {
		assert.Contains(t, seqs, seq)
	}
}

func TestPgCounterStoreAllocateNext(t *testing.T) {
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqldb.Close()

	mock.ExpectQuery("INSERT INTO order_counter").
		WillReturnRows(sqlmock.NewRows([]string{"current_number"}).AddRow(int64(41)))

	store := &pgCounterStore{db: database.NewFromSQL(sqldb)}

	seq, err := store.AllocateNext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(41), seq)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCounterServiceFirstAllocationRendersInitialCode(t *testing.T) {
	cs := &CounterService{
		logger: gecho.NewDefaultLogger(),
		store:  &memCounterStore{},
	}

	seq, code, err := cs.AllocateNext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), seq)
	assert.Equal(t, "PRNTDT-AAA00001", code)
}
