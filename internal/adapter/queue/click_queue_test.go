package queue

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snaplink/internal/config/configs"
	"snaplink/internal/core/domain"
)

func startQueue(t *testing.T, handle ClickHandler) *ClickQueue {
	t.Helper()
	q, err := NewClickQueue(configs.Queue{
		Buffer:          16,
		MaxRetries:      2,
		InitialInterval: time.Millisecond,
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done, err := q.Start(ctx, handle)
	require.NoError(t, err)
	t.Cleanup(func() {
		cancel()
		_ = q.Close()
		<-done
	})
	return q
}

func TestClickQueueDelivers(t *testing.T) {
	var (
		mu       sync.Mutex
		received []domain.ClickEvent
	)
	q := startQueue(t, func(_ context.Context, e domain.ClickEvent) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, e)
		return nil
	})

	referrer := "https://news.example"
	sent := domain.ClickEvent{
		LinkID:    uuid.New(),
		IP:        "8.8.8.8",
		UserAgent: "curl/8.0",
		Referrer:  &referrer,
		ClickedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	for i := 0; i < 5; i++ {
		require.NoError(t, q.PublishClick(context.Background(), sent))
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == 5
	}, 5*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, sent, received[0])
}

func TestClickQueueRetriesThenDrops(t *testing.T) {
	var attempts, delivered atomic.Int32
	failing := uuid.New()

	q := startQueue(t, func(_ context.Context, e domain.ClickEvent) error {
		if e.LinkID == failing {
			attempts.Add(1)
			return errors.New("database unavailable")
		}
		delivered.Add(1)
		return nil
	})

	require.NoError(t, q.PublishClick(context.Background(), domain.ClickEvent{LinkID: failing}))
	require.NoError(t, q.PublishClick(context.Background(), domain.ClickEvent{LinkID: uuid.New()}))

	assert.Eventually(t, func() bool {
		return delivered.Load() == 1 && attempts.Load() == 3
	}, 5*time.Second, 10*time.Millisecond)

	// dropped, not redelivered
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestClickQueueStartSubscribesBeforeReturning(t *testing.T) {
	var got atomic.Int32
	q := startQueue(t, func(context.Context, domain.ClickEvent) error {
		got.Add(1)
		return nil
	})

	// published straight after Start, with no extra wait
	require.NoError(t, q.PublishClick(context.Background(), domain.ClickEvent{LinkID: uuid.New(), IP: "8.8.8.8"}))

	assert.Eventually(t, func() bool { return got.Load() == 1 }, 5*time.Second, 10*time.Millisecond)
}
