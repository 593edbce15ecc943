package commands

import (
	"context"
	"sort"
	"strings"

	"nestlist/internal/domain"
)

// memRepo is an in-memory ports.ListRepository for command tests
type memRepo struct {
	lists map[string]*domain.Outline
	saves int
}

func newMemRepo(outlines ...*domain.Outline) *memRepo {
	r := &memRepo{lists: map[string]*domain.Outline{}}
	for _, o := range outlines {
		r.lists[o.Name] = copyOutline(o)
	}
	return r
}

func copyOutline(o *domain.Outline) *domain.Outline {
	out := &domain.Outline{Name: o.Name}
	for _, it := range o.Items {
		it.Children = append([]domain.Child(nil), it.Children...)
		out.Items = append(out.Items, it)
	}
	return out
}

func (r *memRepo) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	for n := range r.lists {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (r *memRepo) Load(ctx context.Context, name string) (*domain.Outline, error) {
	if o, ok := r.lists[name]; ok {
		return copyOutline(o), nil
	}
	return &domain.Outline{Name: name}, nil
}

func (r *memRepo) Save(ctx context.Context, o *domain.Outline) error {
	r.saves++
	r.lists[o.Name] = copyOutline(o)
	return nil
}

func (r *memRepo) DeleteList(ctx context.Context, name string) error {
	delete(r.lists, name)
	return nil
}

func (r *memRepo) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	var out []domain.SearchResult
	q := strings.ToLower(query)
	for _, o := range r.lists {
		for _, row := range o.Flatten() {
			if strings.Contains(strings.ToLower(row.Title), q) {
				out = append(out, domain.SearchResult{List: o.Name, Key: row.Key, Parent: row.Ref.Parent, Title: row.Title})
			}
		}
	}
	return out, nil
}

func (r *memRepo) Close() error { return nil }

// shape renders a stored list as "a b[c d] e"
func (r *memRepo) shape(name string) string {
	o, ok := r.lists[name]
	if !ok {
		return ""
	}
	var parts []string
	for _, it := range o.Items {
		s := string(it.Key)
		if it.HasChildren() {
			var ks []string
			for _, ch := range it.Children {
				ks = append(ks, string(ch.Key))
			}
			s += "[" + strings.Join(ks, " ") + "]"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func groceries() *domain.Outline {
	return &domain.Outline{
		Name: "groceries",
		Items: []domain.Item{
			{Key: "milk", Title: "Milk"},
			{Key: "fruit", Title: "Fruit", Children: []domain.Child{
				{Key: "apples", Title: "Apples"},
				{Key: "pears", Title: "Pears"},
			}},
			{Key: "bread", Title: "Bread"},
			{Key: "veg", Title: "Vegetables", Children: []domain.Child{
				{Key: "leeks", Title: "Leeks"},
			}},
		},
	}
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
