package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"snaplink/internal/core/domain"
)

// LinkRepository defines the persistence layer for accounts, links and
// clicks. It is an outbound port in hexagonal architecture. Implementations
// must be concurrency-safe, report missing rows as domain.ErrNotFound and
// increment click counters atomically.
type LinkRepository interface {
	// GetAccount returns an account by id.
	GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// CreateLink stores link and, when chargeCredit is set, deducts one
	// credit from the link's tenant after the insert and in the same
	// transaction. A tenant without credit left yields
	// domain.ErrInsufficientFunds and nothing is stored.
	CreateLink(ctx context.Context, link *domain.Link, chargeCredit bool) error
	// GetLink returns a link by id regardless of tenant.
	GetLink(ctx context.Context, id uuid.UUID) (*domain.Link, error)
	// ListLinks returns a page of links and the total number of matches.
	ListLinks(ctx context.Context, q LinkQuery) ([]domain.Link, int64, error)
	// UpdateLink applies fields and returns the stored result.
	UpdateLink(ctx context.Context, id uuid.UUID, fields domain.LinkFields) (*domain.Link, error)
	// DeleteLink removes a link.
	DeleteLink(ctx context.Context, id uuid.UUID) error
	// IncrementClickCount adds one to the link's counter at the storage
	// layer and returns the new value.
	IncrementClickCount(ctx context.Context, id uuid.UUID) (int64, error)

	// CreateClick stores an enriched click.
	CreateClick(ctx context.Context, click *domain.Click) error
	// ListClicks returns clicks of a link ordered by clicked_at descending.
	ListClicks(ctx context.Context, q ClickQuery) ([]domain.Click, error)
}

// LinkQuery selects a tenant's links.
type LinkQuery struct {
	TenantID  uuid.UUID
	Search    string
	SortField LinkSortField
	SortOrder SortOrder
	Offset    int
	Limit     int
}

// ClickQuery selects the clicks of a link. From and To are inclusive and only
// applied together.
type ClickQuery struct {
	LinkID uuid.UUID
	From   *time.Time
	To     *time.Time
}
