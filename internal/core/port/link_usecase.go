package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"snaplink/internal/core/domain"
)

// LinkUseCase defines the business operations exposed by the link service.
// It is the primary port into the application domain; every operation that
// takes an Actor scopes its work by the actor's resolved tenant.
type LinkUseCase interface {
	// CreateLink runs the billing gate for the actor's tenant, stores the
	// link and settles the credit. It returns domain.ErrInsufficientFunds
	// when the gate rejects the request.
	CreateLink(ctx context.Context, actor domain.Actor, fields domain.LinkFields) (uuid.UUID, error)

	// ListLinks returns one page of the tenant's links and the total number
	// of links matching the search.
	ListLinks(ctx context.Context, actor domain.Actor, params ListParams) (*LinkPage, error)

	// GetLink returns a link owned by the actor's tenant.
	GetLink(ctx context.Context, actor domain.Actor, id string) (*domain.Link, error)

	// UpdateLink applies fields to an owned link and returns the result.
	UpdateLink(ctx context.Context, actor domain.Actor, id string, fields domain.LinkFields) (*domain.Link, error)

	// DeleteLink removes an owned link. Its clicks are kept.
	DeleteLink(ctx context.Context, actor domain.Actor, id string) error

	// Redirect counts a visit and returns the URL to redirect to. Click
	// enrichment happens asynchronously and never fails the redirect.
	Redirect(ctx context.Context, req RedirectReq) (string, error)

	// RecordClick enriches a visit and persists it as a Click.
	RecordClick(ctx context.Context, event domain.ClickEvent) error

	// GetAnalytics returns the clicks of an owned link, newest first.
	GetAnalytics(ctx context.Context, actor domain.Actor, req AnalyticsReq) ([]domain.Click, error)
}

// ListParams describes a page request over a tenant's links. Page is zero
// based.
type ListParams struct {
	Page      int
	PageSize  int
	Search    string
	SortField LinkSortField
	SortOrder SortOrder
}

// LinkPage is one page of links plus the pre-pagination total.
type LinkPage struct {
	Links []domain.Link `json:"links"`
	Total int64         `json:"total"`
}

// RedirectReq is the transport-independent view of a redirect request. IP is
// already resolved by the caller.
type RedirectReq struct {
	LinkID    string
	IP        string
	UserAgent string
	Referrer  string
}

// AnalyticsReq selects the clicks of a link. The time range only applies
// when both bounds are set.
type AnalyticsReq struct {
	LinkID string
	From   *time.Time
	To     *time.Time
}

// LinkSortField is a field links may be ordered by.
type LinkSortField string

const (
	SortByCreatedAt     LinkSortField = "createdAt"
	SortByUpdatedAt     LinkSortField = "updatedAt"
	SortByCampaignTitle LinkSortField = "campaignTitle"
	SortByCategory      LinkSortField = "category"
	SortByOriginalURL   LinkSortField = "originalUrl"
	SortByClickCount    LinkSortField = "clickCount"
)

// ParseLinkSortField maps a client supplied field name to a LinkSortField.
// Unknown or empty names fall back to SortByCreatedAt.
func ParseLinkSortField(s string) LinkSortField {
	switch f := LinkSortField(s); f {
	case SortByCreatedAt, SortByUpdatedAt, SortByCampaignTitle, SortByCategory, SortByOriginalURL, SortByClickCount:
		return f
	default:
		return SortByCreatedAt
	}
}

// SortOrder is the direction of a sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder returns SortAsc only for "asc"; anything else sorts
// descending.
func ParseSortOrder(s string) SortOrder {
	if s == string(SortAsc) {
		return SortAsc
	}
	return SortDesc
}

// UploadSignature is a time-boxed credential for direct client-side asset
// upload.
type UploadSignature struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
}
