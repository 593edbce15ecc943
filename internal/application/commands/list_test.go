package commands

import (
	"context"
	"testing"

	"nestlist/internal/domain"
)

func TestListNamesAndLoad(t *testing.T) {
	ctx := context.Background()
	work := &domain.Outline{Name: "work", Items: []domain.Item{{Key: "w1", Title: "Report"}}}
	repo := newMemRepo(groceries(), work)

	names, err := NewListNamesCommand(repo).Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "groceries" || names[1] != "work" {
		t.Errorf("names = %v", names)
	}

	o, err := NewLoadOutlineCommand(repo, "groceries").Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if o.Len() != 7 {
		t.Errorf("Len() = %d, want 7", o.Len())
	}

	if _, err := NewLoadOutlineCommand(repo, "").Execute(ctx); err == nil {
		t.Error("expected error for empty list name")
	}
}

func TestDeleteListCommand(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo(groceries())

	msg, err := NewDeleteListCommand(repo, "groceries").Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !contains(msg, "groceries") {
		t.Errorf("message = %q", msg)
	}
	if _, ok := repo.lists["groceries"]; ok {
		t.Error("list should be gone")
	}

	if _, err := NewDeleteListCommand(repo, "../etc").Execute(ctx); err == nil {
		t.Error("expected validation error for bad list name")
	}
}
