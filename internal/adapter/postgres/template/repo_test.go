package template_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-bots/internal/adapter/postgres/template"
	"github.com/heartmarshall/community-bots/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/community-bots/internal/domain"
)

func TestRepo_ListActive_ExcludesInactive(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := template.New(pool)

	active := testhelper.SeedTemplate(t, pool, "Salut din {city}!", true)
	inactive := testhelper.SeedTemplate(t, pool, "Nu apare {city}", false)

	list, err := repo.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive: unexpected error: %v", err)
	}

	var sawActive bool
	for _, tpl := range list {
		if tpl.ID == inactive.ID {
			t.Errorf("inactive template %s listed", inactive.ID)
		}
		if tpl.ID == active.ID {
			sawActive = true
		}
		if !tpl.IsActive {
			t.Errorf("template %s is not active", tpl.ID)
		}
	}
	if !sawActive {
		t.Errorf("active template %s not listed", active.ID)
	}
}

func TestRepo_IncrementUsage(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := template.New(pool)
	ctx := context.Background()

	tpl := testhelper.SeedTemplate(t, pool, "Caut {service} în {city}", true)

	for range 2 {
		if err := repo.IncrementUsage(ctx, tpl.ID); err != nil {
			t.Fatalf("IncrementUsage: unexpected error: %v", err)
		}
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT usage_count FROM content_templates WHERE id = $1`, tpl.ID).Scan(&count); err != nil {
		t.Fatalf("select usage_count: %v", err)
	}
	if count != 2 {
		t.Errorf("usage_count = %d, want 2", count)
	}
}

func TestRepo_IncrementUsage_NotFound(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := template.New(pool)

	err := repo.IncrementUsage(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
