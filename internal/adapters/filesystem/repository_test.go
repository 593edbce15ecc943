package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"nestlist/internal/adapters/yamlfile"
	"nestlist/internal/domain"
)

func setupTestDir(t *testing.T) *Repository {
	t.Helper()

	repo := NewRepository(filepath.Join(t.TempDir(), "lists"), yamlfile.NewCodec(), nil)
	if err := repo.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return repo
}

func groceries() *domain.Outline {
	return &domain.Outline{
		Name: "groceries",
		Items: []domain.Item{
			{Key: "milk", Title: "Milk", Note: "oat"},
			{Key: "fruit", Title: "Fruit", Children: []domain.Child{
				{Key: "apples", Title: "Apples"},
				{Key: "pears", Title: "Pears", Note: "ripe ones"},
			}},
			{Key: "bread", Title: "Bread"},
		},
	}
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	repo := setupTestDir(t)

	if err := repo.Save(ctx, groceries()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.Load(ctx, "groceries")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Len() != 5 || got.Items[1].Children[1].Note != "ripe ones" {
		t.Errorf("unexpected outline %+v", got)
	}

	// No temp files left behind
	entries, _ := os.ReadDir(repo.Dir())
	if len(entries) != 1 || entries[0].Name() != "groceries.yaml" {
		t.Errorf("unexpected directory contents %v", entries)
	}
}

func TestLoad_MissingListIsEmpty(t *testing.T) {
	repo := setupTestDir(t)

	got, err := repo.Load(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Name != "nothing" || len(got.Items) != 0 {
		t.Errorf("expected empty outline, got %+v", got)
	}
}

func TestSave_RejectsInvalidOutline(t *testing.T) {
	repo := setupTestDir(t)

	o := groceries()
	o.Items[2].Key = "milk"
	if err := repo.Save(context.Background(), o); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(repo.Dir(), "groceries.yaml")); !os.IsNotExist(err) {
		t.Error("invalid outline should not be written")
	}
}

func TestListNamesAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := setupTestDir(t)

	for _, name := range []string{"work", "groceries"} {
		o := groceries()
		o.Name = name
		if err := repo.Save(ctx, o); err != nil {
			t.Fatal(err)
		}
	}
	// Unrelated files are ignored
	os.WriteFile(filepath.Join(repo.Dir(), "README.md"), []byte("hi"), 0644)

	names, err := repo.ListNames(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "groceries" || names[1] != "work" {
		t.Errorf("ListNames = %v", names)
	}

	if err := repo.DeleteList(ctx, "work"); err != nil {
		t.Fatal(err)
	}
	if err := repo.DeleteList(ctx, "work"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	repo := setupTestDir(t)
	if err := repo.Save(ctx, groceries()); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		query string
		want  []domain.Key
	}{
		{"APPLE", []domain.Key{"apples"}},
		{"oat", []domain.Key{"milk"}},
		{"ripe", []domain.Key{"pears"}},
		{"r", []domain.Key{"fruit", "bread", "pears"}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results, err := repo.Search(ctx, tt.query)
			if err != nil {
				t.Fatal(err)
			}
			if len(results) != len(tt.want) {
				t.Fatalf("Search(%q) = %+v, want keys %v", tt.query, results, tt.want)
			}
			for i, r := range results {
				if r.Key != tt.want[i] {
					t.Errorf("result %d = %s, want %s", i, r.Key, tt.want[i])
				}
			}
		})
	}

	results, _ := repo.Search(ctx, "pears")
	if len(results) != 1 || results[0].Parent != "fruit" || results[0].List != "groceries" {
		t.Errorf("child result should carry list and parent: %+v", results)
	}
}
