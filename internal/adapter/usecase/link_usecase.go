package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"snaplink/internal/core/domain"
	"snaplink/internal/core/port"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100

	defaultGeoRetries      = 2
	defaultGeoRetryBackoff = 200 * time.Millisecond
)

// LinkUseCase provides business logic for link management, redirects and
// click analytics. It orchestrates the domain rules and outbound ports to
// implement port.LinkUseCase.
type LinkUseCase struct {
	repo      port.LinkRepository
	cache     port.LinkCache
	publisher port.ClickPublisher
	geo       port.GeoLocator
	device    port.DeviceDetector
	logger    *slog.Logger

	now             func() time.Time
	geoRetries      uint64
	geoRetryBackoff time.Duration
}

var _ port.LinkUseCase = (*LinkUseCase)(nil)

// Option customises a LinkUseCase.
type Option func(*LinkUseCase)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(u *LinkUseCase) { u.now = now }
}

// WithGeoRetry sets how many times a failed geo lookup is retried and the
// initial wait between attempts.
func WithGeoRetry(retries uint64, backoff time.Duration) Option {
	return func(u *LinkUseCase) {
		u.geoRetries = retries
		u.geoRetryBackoff = backoff
	}
}

// NewLinkUseCase creates a new usecase over the given ports.
func NewLinkUseCase(
	repo port.LinkRepository,
	cache port.LinkCache,
	publisher port.ClickPublisher,
	geo port.GeoLocator,
	device port.DeviceDetector,
	logger *slog.Logger,
	opts ...Option,
) *LinkUseCase {
	u := &LinkUseCase{
		repo:            repo,
		cache:           cache,
		publisher:       publisher,
		geo:             geo,
		device:          device,
		logger:          logger,
		now:             time.Now,
		geoRetries:      defaultGeoRetries,
		geoRetryBackoff: defaultGeoRetryBackoff,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateLink gates the request on the tenant's subscription and credits,
// then stores the link. The credit, when one is due, is taken by the
// repository after the link row is written, so a failed insert never costs
// the tenant anything.
func (u *LinkUseCase) CreateLink(ctx context.Context, actor domain.Actor, fields domain.LinkFields) (uuid.UUID, error) {
	tenantID, err := domain.ResolveOwner(actor)
	if err != nil {
		return uuid.Nil, err
	}
	tenant, err := u.repo.GetAccount(ctx, tenantID)
	if errors.Is(err, domain.ErrNotFound) {
		return uuid.Nil, domain.ErrInvalidActor
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("get tenant account: %w", err)
	}
	if tenant.Role != domain.RoleAdmin {
		return uuid.Nil, domain.ErrInvalidActor
	}

	decision := domain.AuthorizeCreation(*tenant, u.now())
	if !decision.Approved {
		return uuid.Nil, domain.ErrInsufficientFunds
	}

	link := &domain.Link{
		ID:            uuid.New(),
		CampaignTitle: fields.CampaignTitle,
		OriginalURL:   fields.OriginalURL,
		Category:      fields.Category,
		TenantID:      tenantID,
	}
	if fields.Thumbnail != nil {
		link.Thumbnail = *fields.Thumbnail
	}
	if err = u.repo.CreateLink(ctx, link, decision.ChargeCredit); err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return uuid.Nil, err
		}
		return uuid.Nil, fmt.Errorf("create link: %w", err)
	}

	u.logger.Info("link created",
		slog.String("link_id", link.ID.String()),
		slog.String("tenant_id", tenantID.String()),
		slog.Bool("credit_charged", decision.ChargeCredit),
	)
	return link.ID, nil
}

// ListLinks returns a page of the tenant's links.
func (u *LinkUseCase) ListLinks(ctx context.Context, actor domain.Actor, params port.ListParams) (*port.LinkPage, error) {
	tenantID, err := domain.ResolveOwner(actor)
	if err != nil {
		return nil, err
	}

	page, size := params.Page, params.PageSize
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	sortField := params.SortField
	if sortField == "" {
		sortField = port.SortByCreatedAt
	}
	sortOrder := params.SortOrder
	if sortOrder == "" {
		sortOrder = port.SortDesc
	}

	links, total, err := u.repo.ListLinks(ctx, port.LinkQuery{
		TenantID:  tenantID,
		Search:    params.Search,
		SortField: sortField,
		SortOrder: sortOrder,
		Offset:    page * size,
		Limit:     size,
	})
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	if links == nil {
		links = []domain.Link{}
	}
	return &port.LinkPage{Links: links, Total: total}, nil
}

// GetLink returns a link owned by the actor's tenant.
func (u *LinkUseCase) GetLink(ctx context.Context, actor domain.Actor, id string) (*domain.Link, error) {
	tenantID, err := domain.ResolveOwner(actor)
	if err != nil {
		return nil, err
	}
	return u.ownedLink(ctx, tenantID, id)
}

// UpdateLink edits an owned link. Title, URL and category are always
// written; the thumbnail only when supplied.
func (u *LinkUseCase) UpdateLink(ctx context.Context, actor domain.Actor, id string, fields domain.LinkFields) (*domain.Link, error) {
	tenantID, err := domain.ResolveOwner(actor)
	if err != nil {
		return nil, err
	}
	link, err := u.ownedLink(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	updated, err := u.repo.UpdateLink(ctx, link.ID, fields)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update link: %w", err)
	}
	u.invalidate(ctx, link.ID)
	return updated, nil
}

// DeleteLink removes an owned link. Recorded clicks stay in place.
func (u *LinkUseCase) DeleteLink(ctx context.Context, actor domain.Actor, id string) error {
	tenantID, err := domain.ResolveOwner(actor)
	if err != nil {
		return err
	}
	link, err := u.ownedLink(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err = u.repo.DeleteLink(ctx, link.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete link: %w", err)
	}
	u.invalidate(ctx, link.ID)
	u.logger.Info("link deleted",
		slog.String("link_id", link.ID.String()),
		slog.String("tenant_id", tenantID.String()),
	)
	return nil
}

// ownedLink loads a link and checks it belongs to tenantID. Ids that are not
// UUIDs cannot exist and are reported as not found.
func (u *LinkUseCase) ownedLink(ctx context.Context, tenantID uuid.UUID, rawID string) (*domain.Link, error) {
	if rawID == "" {
		return nil, domain.ErrMissingID
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	link, err := u.repo.GetLink(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get link: %w", err)
	}
	if link.TenantID != tenantID {
		return nil, domain.ErrForbidden
	}
	return link, nil
}

func (u *LinkUseCase) invalidate(ctx context.Context, id uuid.UUID) {
	if err := u.cache.Invalidate(ctx, id); err != nil {
		u.logger.Warn("link cache invalidation failed",
			slog.String("link_id", id.String()),
			slog.Any("error", err),
		)
	}
}
