package memory

import (
	"context"
	"testing"
	"time"

	"cookbook/internal/domain"
)

func TestUserCreate_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	db := New()

	first := &domain.User{Username: "alice"}
	if err := first.Password.Set("pass1234"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if _, err := db.Create(ctx, first); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := db.Create(ctx, &domain.User{Username: "alice"})
	if err != domain.ErrDuplicateUsername {
		t.Errorf("expected ErrDuplicateUsername, got %v", err)
	}

	// The losing insert must not disturb the existing row.
	got, err := db.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ID != first.ID {
		t.Errorf("expected original user to survive, got %+v", got)
	}
	if !got.Password.Verify("pass1234") {
		t.Error("original credential no longer verifies")
	}
}

func TestUserLookups_MissReturnsNil(t *testing.T) {
	ctx := context.Background()
	db := New()

	u, err := db.GetByUsername(ctx, "ghost")
	if err != nil || u != nil {
		t.Errorf("expected (nil, nil), got (%v, %v)", u, err)
	}
	u, err = db.GetByID(ctx, 99)
	if err != nil || u != nil {
		t.Errorf("expected (nil, nil), got (%v, %v)", u, err)
	}
}

func TestRecipesScopedToOwner(t *testing.T) {
	ctx := context.Background()
	db := New()
	repo := db.NewRecipeRepo()

	alice, _ := db.Create(ctx, &domain.User{Username: "alice"})
	bob, _ := db.Create(ctx, &domain.User{Username: "bob"})

	for _, r := range []*domain.Recipe{
		{Title: "Soup", Instructions: "stir", UserID: alice.ID},
		{Title: "Bread", Instructions: "knead", UserID: alice.ID},
		{Title: "Tea", Instructions: "steep", UserID: bob.ID},
	} {
		if _, err := repo.Create(ctx, r); err != nil {
			t.Fatalf("create %s: %v", r.Title, err)
		}
	}

	got, err := repo.ListByUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 recipes for alice, got %d", len(got))
	}
	for _, r := range got {
		if r.UserID != alice.ID {
			t.Errorf("recipe %q owned by %d, want %d", r.Title, r.UserID, alice.ID)
		}
	}

	got, err = repo.ListByUser(ctx, bob.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Tea" {
		t.Errorf("unexpected recipes for bob: %+v", got)
	}
}

func TestRecipeCreate_AssignsID(t *testing.T) {
	ctx := context.Background()
	repo := New().NewRecipeRepo()

	a, err := repo.Create(ctx, &domain.Recipe{Title: "One", UserID: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, err := repo.Create(ctx, &domain.Recipe{Title: "Two", UserID: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID == 0 || b.ID == 0 || a.ID == b.ID {
		t.Errorf("expected distinct non-zero IDs, got %d and %d", a.ID, b.ID)
	}
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := New().NewSessionRepo()

	if err := repo.Create(ctx, 1, "tok", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("create: %v", err)
	}

	s, err := repo.GetByToken(ctx, "tok")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s == nil || s.UserID != 1 {
		t.Fatalf("unexpected session: %+v", s)
	}

	if err := repo.Delete(ctx, "tok"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	s, err = repo.GetByToken(ctx, "tok")
	if err != nil || s != nil {
		t.Errorf("expected (nil, nil) after delete, got (%v, %v)", s, err)
	}
}

func TestSessionDeleteExpired(t *testing.T) {
	ctx := context.Background()
	repo := New().NewSessionRepo()

	if err := repo.Create(ctx, 1, "live", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, 1, "stale", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.DeleteExpired(ctx); err != nil {
		t.Fatalf("delete expired: %v", err)
	}

	if s, _ := repo.GetByToken(ctx, "stale"); s != nil {
		t.Error("expected expired session to be removed")
	}
	if s, _ := repo.GetByToken(ctx, "live"); s == nil {
		t.Error("expected live session to survive")
	}
}
