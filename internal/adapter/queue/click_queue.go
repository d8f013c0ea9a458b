package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"snaplink/internal/config/configs"
	"snaplink/internal/core/domain"
	"snaplink/internal/core/port"
)

// ClicksTopic carries raw visits from the redirect path to the enrichment
// worker.
const ClicksTopic = "clicks.recorded"

const (
	handlerName      = "click_recorder"
	maxRetryInterval = 5 * time.Second
)

// ClickHandler consumes one raw visit.
type ClickHandler func(ctx context.Context, event domain.ClickEvent) error

// ClickQueue is an in-process queue of visits awaiting enrichment, built on
// a watermill go-channel pub/sub and router.
type ClickQueue struct {
	pubsub *gochannel.GoChannel
	router *message.Router
	cfg    configs.Queue
	logger *slog.Logger
}

var _ port.ClickPublisher = (*ClickQueue)(nil)

// NewClickQueue creates the queue. Nothing is consumed until Run is called.
func NewClickQueue(cfg configs.Queue, logger *slog.Logger) (*ClickQueue, error) {
	wmLogger := watermill.NewSlogLogger(logger)
	router, err := message.NewRouter(message.RouterConfig{}, wmLogger)
	if err != nil {
		return nil, err
	}
	return &ClickQueue{
		pubsub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: cfg.Buffer}, wmLogger),
		router: router,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// PublishClick enqueues a visit.
func (q *ClickQueue) PublishClick(_ context.Context, event domain.ClickEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal click event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("link_id", event.LinkID.String())
	return q.pubsub.Publish(ClicksTopic, msg)
}

// Run consumes visits with handle until ctx is cancelled or Close is called.
// A visit that still fails after the configured retries is logged and
// dropped so it never blocks the ones behind it.
func (q *ClickQueue) Run(ctx context.Context, handle ClickHandler) error {
	q.router.AddMiddleware(
		q.dropFailed,
		middleware.Retry{
			MaxRetries:      q.cfg.MaxRetries,
			InitialInterval: q.cfg.InitialInterval,
			MaxInterval:     maxRetryInterval,
			Multiplier:      2,
			Logger:          q.router.Logger(),
		}.Middleware,
		middleware.Recoverer,
	)
	q.router.AddNoPublisherHandler(handlerName, ClicksTopic, q.pubsub, func(msg *message.Message) error {
		var event domain.ClickEvent
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			q.logger.Error("malformed click event", slog.String("message_uuid", msg.UUID), slog.Any("error", err))
			return nil
		}
		return handle(msg.Context(), event)
	})
	return q.router.Run(ctx)
}

// Start runs the consumer in the background and returns once it is
// subscribed. The go-channel pub/sub keeps nothing for absent subscribers, so
// visits must not be published before Start returns. The channel receives
// the result of Run.
func (q *ClickQueue) Start(ctx context.Context, handle ClickHandler) (<-chan error, error) {
	done := make(chan error, 1)
	go func() {
		done <- q.Run(ctx, handle)
	}()
	select {
	case <-q.Running():
		return done, nil
	case err := <-done:
		if err == nil {
			err = errors.New("click queue stopped before subscribing")
		}
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Running is closed once the consumer is subscribed.
func (q *ClickQueue) Running() chan struct{} {
	return q.router.Running()
}

// Close stops consuming and releases the pub/sub.
func (q *ClickQueue) Close() error {
	if err := q.router.Close(); err != nil {
		return err
	}
	return q.pubsub.Close()
}

func (q *ClickQueue) dropFailed(h message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		msgs, err := h(msg)
		if err != nil {
			q.logger.Error("click dropped after retries",
				slog.String("message_uuid", msg.UUID),
				slog.String("link_id", msg.Metadata.Get("link_id")),
				slog.Any("error", err),
			)
			return nil, nil
		}
		return msgs, nil
	}
}
