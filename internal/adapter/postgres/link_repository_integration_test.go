//go:build integration

package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"snaplink/internal/core/domain"
	"snaplink/internal/core/port"
	"snaplink/internal/db"
)

type LinkRepositorySuite struct {
	suite.Suite
	ctx       context.Context
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	repo      *LinkRepository
	adminID   uuid.UUID
}

func (s *LinkRepositorySuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcpostgres.Run(s.ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("snaplink"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)
	s.Require().NoError(db.Migrate(dsn))

	s.pool, err = pgxpool.New(s.ctx, dsn)
	s.Require().NoError(err)
	s.repo = NewLinkRepository(s.pool)
}

func (s *LinkRepositorySuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *LinkRepositorySuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE clicks, links, accounts CASCADE`)
	s.Require().NoError(err)

	s.adminID = uuid.New()
	_, err = s.pool.Exec(s.ctx, `INSERT INTO accounts (id, role, credits) VALUES ($1, 'admin', 3)`, s.adminID)
	s.Require().NoError(err)
}

func (s *LinkRepositorySuite) newLink(title, url, category string) *domain.Link {
	return &domain.Link{
		ID:            uuid.New(),
		TenantID:      s.adminID,
		CampaignTitle: title,
		OriginalURL:   url,
		Category:      category,
	}
}

func (s *LinkRepositorySuite) credits() int64 {
	acc, err := s.repo.GetAccount(s.ctx, s.adminID)
	s.Require().NoError(err)
	return acc.Credits
}

func (s *LinkRepositorySuite) TestCreateLinkChargesCredit() {
	link := s.newLink("Spring", "https://example.com/spring", "retail")
	s.Require().NoError(s.repo.CreateLink(s.ctx, link, true))
	s.Equal(int64(2), s.credits())
	s.False(link.CreatedAt.IsZero())

	free := s.newLink("Free", "https://example.com/free", "retail")
	s.Require().NoError(s.repo.CreateLink(s.ctx, free, false))
	s.Equal(int64(2), s.credits())

	got, err := s.repo.GetLink(s.ctx, link.ID)
	s.Require().NoError(err)
	s.Equal(s.adminID, got.TenantID)
	s.Zero(got.ClickCount)
}

func (s *LinkRepositorySuite) TestCreateLinkWithoutCredits() {
	_, err := s.pool.Exec(s.ctx, `UPDATE accounts SET credits = 0 WHERE id = $1`, s.adminID)
	s.Require().NoError(err)

	link := s.newLink("Spring", "https://example.com/spring", "retail")
	s.ErrorIs(s.repo.CreateLink(s.ctx, link, true), domain.ErrInsufficientFunds)

	_, err = s.repo.GetLink(s.ctx, link.ID)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *LinkRepositorySuite) TestCreateLinkReportsCommitFailure() {
	_, err := s.pool.Exec(s.ctx, `
        CREATE FUNCTION reject_link() RETURNS trigger LANGUAGE plpgsql AS $$
        BEGIN RAISE EXCEPTION 'rejected at commit'; END $$;
        CREATE CONSTRAINT TRIGGER reject_link_on_commit AFTER INSERT ON links
            DEFERRABLE INITIALLY DEFERRED FOR EACH ROW EXECUTE FUNCTION reject_link();`)
	s.Require().NoError(err)
	defer func() {
		_, err := s.pool.Exec(s.ctx, `
            DROP TRIGGER reject_link_on_commit ON links;
            DROP FUNCTION reject_link();`)
		s.Require().NoError(err)
	}()

	link := s.newLink("Spring", "https://example.com/spring", "retail")
	err = s.repo.CreateLink(s.ctx, link, true)
	s.Require().Error(err)
	s.Contains(err.Error(), "rejected at commit")

	_, err = s.repo.GetLink(s.ctx, link.ID)
	s.ErrorIs(err, domain.ErrNotFound)
	s.Equal(int64(3), s.credits())
}

func (s *LinkRepositorySuite) TestCreateLinkCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	link := s.newLink("Spring", "https://example.com/spring", "retail")
	s.Require().ErrorIs(s.repo.CreateLink(ctx, link, true), context.Canceled)

	_, err := s.repo.GetLink(s.ctx, link.ID)
	s.ErrorIs(err, domain.ErrNotFound)
	s.Equal(int64(3), s.credits())
}

func (s *LinkRepositorySuite) TestConcurrentCreationsNeverOverspend() {
	wg := sync.WaitGroup{}
	n := 6
	errs := make([]error, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			errs[i] = s.repo.CreateLink(s.ctx, s.newLink("x", "https://example.com", "c"), true)
		}()
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
		} else {
			s.ErrorIs(err, domain.ErrInsufficientFunds)
		}
	}
	s.Equal(3, created)
	s.Zero(s.credits())
}

func (s *LinkRepositorySuite) TestConcurrentIncrements() {
	link := s.newLink("Spring", "https://example.com/spring", "retail")
	s.Require().NoError(s.repo.CreateLink(s.ctx, link, false))

	wg := sync.WaitGroup{}
	n := 50
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := s.repo.IncrementClickCount(s.ctx, link.ID)
			s.NoError(err)
		}()
	}
	wg.Wait()

	got, err := s.repo.GetLink(s.ctx, link.ID)
	s.Require().NoError(err)
	s.Equal(int64(n), got.ClickCount)

	_, err = s.repo.IncrementClickCount(s.ctx, uuid.New())
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *LinkRepositorySuite) TestListLinksSearchSortAndTotal() {
	s.Require().NoError(s.repo.CreateLink(s.ctx, s.newLink("Summer Sale", "https://shop.example/summer", "retail"), false))
	s.Require().NoError(s.repo.CreateLink(s.ctx, s.newLink("Winter", "https://shop.example/winter", "SALE_items"), false))
	s.Require().NoError(s.repo.CreateLink(s.ctx, s.newLink("Blog", "https://blog.example/post", "content"), false))
	s.Require().NoError(s.repo.CreateLink(s.ctx, s.newLink("100% off", "https://shop.example/promo", "retail"), false))

	other := uuid.New()
	_, err := s.pool.Exec(s.ctx, `INSERT INTO accounts (id, role, credits) VALUES ($1, 'admin', 0)`, other)
	s.Require().NoError(err)
	foreign := s.newLink("Sale elsewhere", "https://other.example", "retail")
	foreign.TenantID = other
	s.Require().NoError(s.repo.CreateLink(s.ctx, foreign, false))

	links, total, err := s.repo.ListLinks(s.ctx, port.LinkQuery{
		TenantID: s.adminID, Search: "sale",
		SortField: port.SortByCampaignTitle, SortOrder: port.SortAsc, Limit: 1,
	})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Require().Len(links, 1)
	s.Equal("Summer Sale", links[0].CampaignTitle)

	links, total, err = s.repo.ListLinks(s.ctx, port.LinkQuery{
		TenantID: s.adminID, Search: "%", SortField: port.SortByCreatedAt, SortOrder: port.SortDesc, Limit: 10,
	})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal("100% off", links[0].CampaignTitle)

	_, total, err = s.repo.ListLinks(s.ctx, port.LinkQuery{
		TenantID: s.adminID, SortField: "bogus", Limit: 10, Offset: 10,
	})
	s.Require().NoError(err)
	s.Equal(int64(4), total)
}

func (s *LinkRepositorySuite) TestUpdateKeepsThumbnail() {
	link := s.newLink("Spring", "https://example.com/spring", "retail")
	link.Thumbnail = "thumb.png"
	s.Require().NoError(s.repo.CreateLink(s.ctx, link, false))

	got, err := s.repo.UpdateLink(s.ctx, link.ID, domain.LinkFields{
		CampaignTitle: "Autumn", OriginalURL: "https://example.com/autumn", Category: "retail",
	})
	s.Require().NoError(err)
	s.Equal("thumb.png", got.Thumbnail)
	s.Equal("Autumn", got.CampaignTitle)

	thumb := "new.png"
	got, err = s.repo.UpdateLink(s.ctx, link.ID, domain.LinkFields{
		CampaignTitle: "Autumn", OriginalURL: "https://example.com/autumn", Category: "retail", Thumbnail: &thumb,
	})
	s.Require().NoError(err)
	s.Equal("new.png", got.Thumbnail)

	_, err = s.repo.UpdateLink(s.ctx, uuid.New(), domain.LinkFields{})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *LinkRepositorySuite) TestDeleteKeepsClicks() {
	link := s.newLink("Spring", "https://example.com/spring", "retail")
	s.Require().NoError(s.repo.CreateLink(s.ctx, link, false))

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.repo.CreateClick(s.ctx, &domain.Click{
			ID: uuid.New(), LinkID: link.ID, IP: "8.8.8.8", UserAgent: "Unknown",
			DeviceType: domain.DeviceUnknown, Browser: "Unknown",
			ClickedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	clicks, err := s.repo.ListClicks(s.ctx, port.ClickQuery{LinkID: link.ID})
	s.Require().NoError(err)
	s.Require().Len(clicks, 3)
	s.True(clicks[0].ClickedAt.After(clicks[1].ClickedAt))
	s.Nil(clicks[0].Referrer)

	from, to := base, base.Add(time.Hour)
	clicks, err = s.repo.ListClicks(s.ctx, port.ClickQuery{LinkID: link.ID, From: &from, To: &to})
	s.Require().NoError(err)
	s.Len(clicks, 2)

	s.Require().NoError(s.repo.DeleteLink(s.ctx, link.ID))
	s.ErrorIs(s.repo.DeleteLink(s.ctx, link.ID), domain.ErrNotFound)

	clicks, err = s.repo.ListClicks(s.ctx, port.ClickQuery{LinkID: link.ID})
	s.Require().NoError(err)
	s.Len(clicks, 3)
}

func TestLinkRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(LinkRepositorySuite))
}
