package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"phone-assistant/internal/phone/repository"
	"phone-assistant/pkg/log"
	pkgsqlite "phone-assistant/pkg/sqlite"
)

const catalogYAML = `
phones:
  - name: OnePlus 12R
    brand: OnePlus
    price: 39999
    os: Android
    display_size_inch: 6.78
    display_type: AMOLED
    refresh_rate: 120
    processor: Snapdragon 8 Gen 2
    ram_gb: 8
    storage_gb: 128
    battery_mah: 5500
    rating: 4.5
    popularity_score: 92
    features: [fast charging, amoled display, flagship processor]
    use_cases: [gaming, photography]
    pros: [Fast performance]
    cons: [No wireless charging]
    released_year: 2024
  - name: iQOO Neo 9 Pro
    brand: iQOO
    price: 36999
    os: Android
    display_size_inch: 6.78
    display_type: AMOLED
    processor: Snapdragon 8 Gen 2
    battery_mah: 5160
    rating: 4.4
    popularity_score: 88
    features: [fast charging, gaming processor]
    use_cases: [gaming, mobile esports]
    released_year: 2024
  - name: Pixel 8
    brand: Google
    price: 75999
    os: Android
    display_size_inch: 6.2
    display_type: OLED
    processor: Tensor G3
    rating: 4.6
    popularity_score: 88
    features: [night mode, ai features]
    use_cases: [photography, daily use]
    released_year: 2023
  - name: iPhone 15
    brand: Apple
    price: 79900
    os: iOS
    display_size_inch: 6.1
    display_type: OLED
    processor: A16 Bionic
    rating: 4.7
    popularity_score: 95
    features: [dual camera, face unlock]
    use_cases: [photography, premium experience]
    released_year: 2023
  - name: Redmi Note 13
    brand: Xiaomi
    price: 16999
    os: Android
    display_size_inch: 6.67
    display_type: AMOLED
    battery_mah: 5000
    rating: 4.1
    popularity_score: 80
    features: [long battery life]
    use_cases: [budget friendly, daily use]
    released_year: 2024
`

// newTestRepo opens a temp-dir database seeded with catalogYAML.
func newTestRepo(t *testing.T) repository.Repository {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	db, err := pkgsqlite.Open(ctx, filepath.Join(dir, "phones.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	r, err := New(ctx, db, log.NewNop())
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	seedDir := filepath.Join(dir, "phones", "android")
	if err := os.MkdirAll(seedDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(seedDir, "catalog.yaml"), []byte(catalogYAML), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	n, err := Seed(ctx, r, filepath.Join(dir, "phones", "**", "*.yaml"))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 5 {
		t.Fatalf("seeded %d phones, want 5", n)
	}
	return r
}
