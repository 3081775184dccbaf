package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"phone-assistant/internal/phone"
	repo "phone-assistant/internal/phone/repository"
)

func names(phones []phone.Phone) []string {
	out := make([]string, len(phones))
	for i, p := range phones {
		out[i] = p.Name
	}
	return out
}

func TestGetOnePhone(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "exact", input: "OnePlus 12R", want: "OnePlus 12R"},
		{name: "case-insensitive partial", input: "oneplus", want: "OnePlus 12R"},
		{name: "surrounding spaces", input: "  pixel 8 ", want: "Pixel 8"},
		{name: "not found", input: "Nokia 3310", want: ""},
		{name: "wildcards are literal", input: "%", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := r.GetOnePhone(ctx, repo.GetOnePhoneOptions{NameContains: tt.input})
			if err != nil {
				t.Fatalf("GetOnePhone: %v", err)
			}
			if p.Name != tt.want {
				t.Errorf("got %q, want %q", p.Name, tt.want)
			}
		})
	}

	p, _ := r.GetOnePhone(ctx, repo.GetOnePhoneOptions{NameContains: "OnePlus 12R"})
	if p.RAMGB != 8 || p.Rating != 4.5 || len(p.Features) != 3 || p.Cons[0] != "No wireless charging" {
		t.Errorf("record not fully round-tripped: %+v", p)
	}
	q, _ := r.GetOnePhone(ctx, repo.GetOnePhoneOptions{NameContains: "Pixel 8"})
	if q.Pros == nil || len(q.Pros) != 0 {
		t.Errorf("missing list should decode as empty, got %#v", q.Pros)
	}
}

func TestListPhones(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	tests := []struct {
		name string
		opt  repo.ListPhonesOptions
		want []string
	}{
		{
			name: "ordering by popularity then rating",
			opt:  repo.ListPhonesOptions{Limit: 3},
			want: []string{"iPhone 15", "OnePlus 12R", "Pixel 8"},
		},
		{
			name: "numeric comparison",
			opt:  repo.ListPhonesOptions{Filters: []repo.Filter{{Column: "price", Op: repo.OpLte, Value: 40000}}},
			want: []string{"OnePlus 12R", "iQOO Neo 9 Pro", "Redmi Note 13"},
		},
		{
			name: "text partial match",
			opt:  repo.ListPhonesOptions{Filters: []repo.Filter{{Column: "processor", Op: repo.OpLike, Value: "snapdragon"}}},
			want: []string{"OnePlus 12R", "iQOO Neo 9 Pro"},
		},
		{
			name: "feature containment",
			opt:  repo.ListPhonesOptions{Features: []string{"Fast Charging", "gaming processor"}},
			want: []string{"iQOO Neo 9 Pro"},
		},
		{
			name: "features OR use cases",
			opt:  repo.ListPhonesOptions{Features: []string{"night mode"}, UseCases: []string{"budget friendly"}},
			want: []string{"Pixel 8", "Redmi Note 13"},
		},
		{
			name: "no match",
			opt:  repo.ListPhonesOptions{Filters: []repo.Filter{{Column: "price", Op: repo.OpLt, Value: 100}}},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ListPhones(ctx, tt.opt)
			if err != nil {
				t.Fatalf("ListPhones: %v", err)
			}
			gotNames := names(got)
			if len(gotNames) != len(tt.want) {
				t.Fatalf("got %v, want %v", gotNames, tt.want)
			}
			for i := range gotNames {
				if gotNames[i] != tt.want[i] {
					t.Errorf("got %v, want %v", gotNames, tt.want)
					break
				}
			}
		})
	}
}

func TestListPhones_RejectsUnknownColumn(t *testing.T) {
	r := newTestRepo(t)
	_, err := r.ListPhones(context.Background(), repo.ListPhonesOptions{
		Filters: []repo.Filter{{Column: "name; DROP TABLE phones", Op: repo.OpEq, Value: 1}},
	})
	if !errors.Is(err, repo.ErrInvalidColumn) {
		t.Fatalf("expected ErrInvalidColumn, got %v", err)
	}
}

func TestUpsertPhones_UpdatesByName(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	if _, err := r.UpsertPhones(ctx, []phone.Phone{{Name: "Pixel 8", Brand: "Google", Price: 59999, PopularityScore: 90}}); err != nil {
		t.Fatalf("UpsertPhones: %v", err)
	}
	n, err := r.CountPhones(ctx)
	if err != nil || n != 5 {
		t.Fatalf("CountPhones = %d, %v; want 5", n, err)
	}
	p, _ := r.GetOnePhone(ctx, repo.GetOnePhoneOptions{NameContains: "Pixel 8"})
	if p.Price != 59999 || p.Processor != "" {
		t.Errorf("expected replaced record, got %+v", p)
	}
}

func TestLoadSeedFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(rel, body string) {
		path := filepath.Join(dir, rel)
		os.MkdirAll(filepath.Dir(path), 0o755)
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	write("a/base.yaml", "phones:\n  - {name: Pixel 8, brand: Google, price: 1}\n")
	write("b/override.yaml", "phones:\n  - {name: pixel 8, brand: Google, price: 2}\n  - {name: iPhone 15, brand: Apple}\n")
	write("empty.yaml", "")

	phones, err := LoadSeedFiles(filepath.Join(dir, "**", "*.yaml"))
	if err != nil {
		t.Fatalf("LoadSeedFiles: %v", err)
	}
	if len(phones) != 2 || phones[0].Price != 2 {
		t.Errorf("expected later file to override by name, got %+v", phones)
	}

	write("bad/unknown.yaml", "phones:\n  - {name: X, brand: Y, colour: red}\n")
	if _, err := LoadSeedFiles(filepath.Join(dir, "**", "*.yaml")); err == nil {
		t.Error("expected unknown field to be rejected")
	}
}
