package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"snaplink/internal/core/domain"
	"snaplink/internal/core/port"
)

// Redirect resolves the link, counts the visit with the repository's atomic
// increment and queues the raw visit for enrichment. Only a missing link or
// a storage failure stops the redirect; the click record is a best-effort
// side effect.
func (u *LinkUseCase) Redirect(ctx context.Context, req port.RedirectReq) (string, error) {
	if req.LinkID == "" {
		return "", domain.ErrMissingID
	}
	id, err := uuid.Parse(req.LinkID)
	if err != nil {
		return "", domain.ErrNotFound
	}

	link, err := u.lookupLink(ctx, id)
	if err != nil {
		return "", err
	}

	if _, err = u.repo.IncrementClickCount(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// deleted after it was cached or read
			u.invalidate(ctx, id)
			return "", err
		}
		return "", fmt.Errorf("increment click count: %w", err)
	}

	event := domain.ClickEvent{
		LinkID:    id,
		IP:        req.IP,
		UserAgent: req.UserAgent,
		ClickedAt: u.now().UTC(),
	}
	if event.UserAgent == "" {
		event.UserAgent = domain.UnknownUserAgent
	}
	if req.Referrer != "" {
		referrer := req.Referrer
		event.Referrer = &referrer
	}
	if err = u.publisher.PublishClick(ctx, event); err != nil {
		u.logger.Error("click event dropped",
			slog.String("link_id", id.String()),
			slog.Any("error", err),
		)
	}

	return link.OriginalURL, nil
}

// lookupLink reads through the cache. Cache failures degrade to a database
// read.
func (u *LinkUseCase) lookupLink(ctx context.Context, id uuid.UUID) (*domain.Link, error) {
	link, err := u.cache.Get(ctx, id)
	if err != nil {
		u.logger.Warn("link cache read failed", slog.String("link_id", id.String()), slog.Any("error", err))
	}
	if link != nil {
		return link, nil
	}

	link, err = u.repo.GetLink(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get link: %w", err)
	}
	if err = u.cache.Set(ctx, link); err != nil {
		u.logger.Warn("link cache write failed", slog.String("link_id", id.String()), slog.Any("error", err))
	}
	return link, nil
}
