package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"snaplink/internal/core/domain"
	"snaplink/internal/core/port"
)

// LinkRepository implements port.LinkRepository using pgxpool for PostgreSQL.
type LinkRepository struct {
	pool *pgxpool.Pool
}

var _ port.LinkRepository = (*LinkRepository)(nil)

// NewLinkRepository returns a new repository instance.
func NewLinkRepository(pool *pgxpool.Pool) *LinkRepository {
	return &LinkRepository{pool: pool}
}

const linkColumns = `id, tenant_id, campaign_title, original_url, category, thumbnail, click_count, created_at, updated_at`

var sortColumns = map[port.LinkSortField]string{
	port.SortByCreatedAt:     "created_at",
	port.SortByUpdatedAt:     "updated_at",
	port.SortByCampaignTitle: "campaign_title",
	port.SortByCategory:      "category",
	port.SortByOriginalURL:   "original_url",
	port.SortByClickCount:    "click_count",
}

// GetAccount returns an account with its billing state.
func (r *LinkRepository) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var (
		acc       domain.Account
		role      string
		subStatus *string
		subStart  *time.Time
		subEnd    *time.Time
	)
	err := r.pool.QueryRow(ctx, `
        SELECT id, role, parent_id, credits, subscription_status, subscription_start, subscription_end, created_at, updated_at
        FROM accounts WHERE id = $1`, id).
		Scan(&acc.ID, &role, &acc.ParentID, &acc.Credits, &subStatus, &subStart, &subEnd, &acc.CreatedAt, &acc.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if acc.Role, err = domain.ParseRole(role); err != nil {
		return nil, fmt.Errorf("account %s: %w", id, err)
	}
	if subStatus != nil {
		acc.Subscription = &domain.Subscription{
			Status: domain.SubscriptionStatus(*subStatus),
			Start:  subStart,
			End:    subEnd,
		}
	}
	return &acc, nil
}

// CreateLink inserts the link and settles the credit in one transaction. The
// tenant row is locked first so concurrent creations cannot spend the same
// credit twice.
func (r *LinkRepository) CreateLink(ctx context.Context, link *domain.Link, chargeCredit bool) error {
	return pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		var credits int64
		err := tx.QueryRow(ctx, `SELECT credits FROM accounts WHERE id = $1 FOR UPDATE`, link.TenantID).Scan(&credits)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		if chargeCredit && credits < 1 {
			return domain.ErrInsufficientFunds
		}

		err = tx.QueryRow(ctx, `
            INSERT INTO links (id, tenant_id, campaign_title, original_url, category, thumbnail)
            VALUES ($1, $2, $3, $4, $5, $6)
            RETURNING click_count, created_at, updated_at`,
			link.ID, link.TenantID, link.CampaignTitle, link.OriginalURL, link.Category, link.Thumbnail).
			Scan(&link.ClickCount, &link.CreatedAt, &link.UpdatedAt)
		if err != nil {
			return err
		}

		if chargeCredit {
			_, err = tx.Exec(ctx, `UPDATE accounts SET credits = credits - 1, updated_at = now() WHERE id = $1`, link.TenantID)
		}
		return err
	})
}

// GetLink returns a link by id.
func (r *LinkRepository) GetLink(ctx context.Context, id uuid.UUID) (*domain.Link, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+linkColumns+` FROM links WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	link, err := pgx.CollectExactlyOneRow(rows, scanLink)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// ListLinks returns one page of a tenant's links. The search term is matched
// case-insensitively as a substring of title, category or URL.
func (r *LinkRepository) ListLinks(ctx context.Context, q port.LinkQuery) ([]domain.Link, int64, error) {
	where := `tenant_id = $1`
	args := []any{q.TenantID}
	if q.Search != "" {
		args = append(args, "%"+escapeLike(q.Search)+"%")
		where += ` AND (campaign_title ILIKE $2 OR category ILIKE $2 OR original_url ILIKE $2)`
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM links WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[q.SortField]
	if !ok {
		column = sortColumns[port.SortByCreatedAt]
	}
	order := "DESC"
	if q.SortOrder == port.SortAsc {
		order = "ASC"
	}
	query := fmt.Sprintf(`SELECT %s FROM links WHERE %s ORDER BY %s %s, id %s LIMIT $%d OFFSET $%d`,
		linkColumns, where, column, order, order, len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	links, err := pgx.CollectRows(rows, scanLink)
	if err != nil {
		return nil, 0, err
	}
	return links, total, nil
}

// UpdateLink overwrites title, URL and category and keeps the stored
// thumbnail unless a new one is given.
func (r *LinkRepository) UpdateLink(ctx context.Context, id uuid.UUID, fields domain.LinkFields) (*domain.Link, error) {
	rows, err := r.pool.Query(ctx, `
        UPDATE links
        SET campaign_title = $2, original_url = $3, category = $4,
            thumbnail = COALESCE($5, thumbnail), updated_at = now()
        WHERE id = $1
        RETURNING `+linkColumns,
		id, fields.CampaignTitle, fields.OriginalURL, fields.Category, fields.Thumbnail)
	if err != nil {
		return nil, err
	}
	link, err := pgx.CollectExactlyOneRow(rows, scanLink)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// DeleteLink removes a link. Clicks reference links without a foreign key and
// are left untouched.
func (r *LinkRepository) DeleteLink(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM links WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IncrementClickCount bumps the counter in a single statement so concurrent
// redirects never lose an update.
func (r *LinkRepository) IncrementClickCount(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `UPDATE links SET click_count = click_count + 1 WHERE id = $1 RETURNING click_count`, id).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	return count, err
}

// CreateClick inserts an enriched click.
func (r *LinkRepository) CreateClick(ctx context.Context, c *domain.Click) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO clicks (id, link_id, ip, city, country, region, latitude, longitude, isp, referrer, user_agent, device_type, browser, clicked_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		c.ID, c.LinkID, c.IP, c.City, c.Country, c.Region, c.Latitude, c.Longitude, c.ISP,
		c.Referrer, c.UserAgent, c.DeviceType, c.Browser, c.ClickedAt)
	return err
}

// ListClicks returns the clicks of a link, newest first.
func (r *LinkRepository) ListClicks(ctx context.Context, q port.ClickQuery) ([]domain.Click, error) {
	query := `
        SELECT id, link_id, ip, city, country, region, latitude, longitude, isp, referrer, user_agent, device_type, browser, clicked_at
        FROM clicks WHERE link_id = $1`
	args := []any{q.LinkID}
	if q.From != nil && q.To != nil {
		query += ` AND clicked_at BETWEEN $2 AND $3`
		args = append(args, *q.From, *q.To)
	}
	query += ` ORDER BY clicked_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Click, error) {
		var c domain.Click
		err := row.Scan(&c.ID, &c.LinkID, &c.IP, &c.City, &c.Country, &c.Region, &c.Latitude, &c.Longitude,
			&c.ISP, &c.Referrer, &c.UserAgent, &c.DeviceType, &c.Browser, &c.ClickedAt)
		return c, err
	})
}

func scanLink(row pgx.CollectableRow) (domain.Link, error) {
	var l domain.Link
	err := row.Scan(&l.ID, &l.TenantID, &l.CampaignTitle, &l.OriginalURL, &l.Category, &l.Thumbnail,
		&l.ClickCount, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
