package catalog

import (
	"context"
	"errors"
	"testing"
)

func testProducts() []Product {
	return []Product{
		{ID: "1", Name: "iPhone 12 Pro 128GB", Price: 7500000, Category: "Electronics", Location: "Jakarta Selatan"},
		{ID: "2", Name: "Nike Air Max 270 React", Price: 850000, Category: "Fashion", Location: "Bandung"},
		{ID: "3", Name: "IKEA Sofa 3 Seater", Price: 2500000, Category: "Furniture", Location: "Tangerang"},
	}
}

func TestGet(t *testing.T) {
	repo := NewMemoryRepository(testProducts())

	t.Run("found", func(t *testing.T) {
		p, err := repo.Get(context.Background(), "2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Nike Air Max 270 React" {
			t.Fatalf("unexpected product %+v", p)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.Get(context.Background(), "999")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	repo := NewMemoryRepository(testProducts())

	tests := map[string]struct {
		filter  Filter
		wantIDs []string
	}{
		"no filter":           {Filter{}, []string{"1", "2", "3"}},
		"category All":        {Filter{Category: "All"}, []string{"1", "2", "3"}},
		"category Fashion":    {Filter{Category: "Fashion"}, []string{"2"}},
		"category unknown":    {Filter{Category: "Sports"}, []string{}},
		"query by name":       {Filter{Query: "sofa"}, []string{"3"}},
		"query by location":   {Filter{Query: "bandung"}, []string{"2"}},
		"query plus category": {Filter{Category: "Electronics", Query: "iphone"}, []string{"1"}},
		"query no match":      {Filter{Query: "piano"}, []string{}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := repo.List(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("expected %d products, got %d", len(tc.wantIDs), len(got))
			}
			for i, p := range got {
				if p.ID != tc.wantIDs[i] {
					t.Fatalf("expected ids %v, got %+v at %d", tc.wantIDs, p.ID, i)
				}
			}
		})
	}
}

func TestCategories(t *testing.T) {
	repo := NewMemoryRepository(testProducts())
	cats, err := repo.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"All", "Electronics", "Fashion", "Furniture"}
	if len(cats) != len(want) {
		t.Fatalf("expected %v, got %v", want, cats)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, cats)
		}
	}
}
