package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"snaplink/internal/core/domain"
)

// Demo account ids are fixed so tokens issued for them survive restarts.
var (
	DemoAdminID     = uuid.MustParse("00000000-0000-4000-8000-000000000001")
	DemoDeveloperID = uuid.MustParse("00000000-0000-4000-8000-000000000002")
	DemoViewerID    = uuid.MustParse("00000000-0000-4000-8000-000000000003")
)

// DemoActors returns the actors matching the seeded accounts.
func DemoActors() []domain.Actor {
	parent := DemoAdminID
	return []domain.Actor{
		{ID: DemoAdminID, Role: domain.RoleAdmin},
		{ID: DemoDeveloperID, Role: domain.RoleDeveloper, ParentID: &parent},
		{ID: DemoViewerID, Role: domain.RoleViewer, ParentID: &parent},
	}
}

// Seed inserts a demo tenant with two operators, a few links and their
// clicks. It is idempotent: existing rows are left alone.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO accounts (id, role, credits) VALUES ($1, 'admin', 10)
ON CONFLICT DO NOTHING`, DemoAdminID)
		if err != nil {
			return err
		}
		for id, role := range map[uuid.UUID]string{DemoDeveloperID: "developer", DemoViewerID: "viewer"} {
			_, err = tx.Exec(ctx, `INSERT INTO accounts (id, role, parent_id) VALUES ($1, $2, $3)
ON CONFLICT DO NOTHING`, id, role, DemoAdminID)
			if err != nil {
				return err
			}
		}

		var existing int
		if err = tx.QueryRow(ctx, `SELECT count(*) FROM links WHERE tenant_id = $1`, DemoAdminID).Scan(&existing); err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		categories := []string{"retail", "content", "events"}
		countries := []string{"Germany", "United States", "Armenia", "Japan"}
		devices := []string{domain.DeviceDesktop, domain.DeviceMobile, domain.DeviceTablet}
		browsers := []string{"Chrome", "Safari", "Firefox"}

		for i := 1; i <= 5; i++ {
			linkID := uuid.New()
			clicks := 5 + r.Intn(20)
			_, err = tx.Exec(ctx, `INSERT INTO links
(id, tenant_id, campaign_title, original_url, category, click_count)
VALUES ($1,$2,$3,$4,$5,$6)`,
				linkID, DemoAdminID, fmt.Sprintf("Campaign %d", i), fmt.Sprintf("https://example.com/landing/%d", i),
				categories[r.Intn(len(categories))], clicks)
			if err != nil {
				return err
			}
			for j := 0; j < clicks; j++ {
				_, err = tx.Exec(ctx, `INSERT INTO clicks
(id, link_id, ip, country, user_agent, device_type, browser, clicked_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
					uuid.New(), linkID, fmt.Sprintf("203.0.113.%d", r.Intn(250)+1),
					countries[r.Intn(len(countries))], domain.UnknownUserAgent,
					devices[r.Intn(len(devices))], browsers[r.Intn(len(browsers))],
					time.Now().Add(-time.Duration(r.Intn(14*24))*time.Hour))
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}
