package sqlite

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"phone-assistant/internal/phone"
	"phone-assistant/internal/phone/repository"
)

// seedFile is the layout of a catalog YAML file.
type seedFile struct {
	Phones []phone.Phone `yaml:"phones"`
}

// LoadSeedFiles reads every YAML file matching pattern (doublestar syntax, e.g. data/phones/**/*.yaml).
// Files are read in lexical order; a later file overrides an earlier entry with the same name.
func LoadSeedFiles(pattern string) ([]phone.Phone, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("seed: bad pattern %q: %w", pattern, err)
	}
	sort.Strings(paths)

	byName := make(map[string]int)
	var phones []phone.Phone
	for _, path := range paths {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("seed: read %s: %w", path, err)
		}
		f, err := decodeSeedFile(b)
		if err != nil {
			return nil, fmt.Errorf("seed: decode %s: %w", path, err)
		}
		for _, p := range f.Phones {
			if err := validateSeedPhone(p); err != nil {
				return nil, fmt.Errorf("seed: %s: %w", path, err)
			}
			key := strings.ToLower(strings.TrimSpace(p.Name))
			if i, ok := byName[key]; ok {
				phones[i] = p
				continue
			}
			byName[key] = len(phones)
			phones = append(phones, p)
		}
	}
	return phones, nil
}

func decodeSeedFile(b []byte) (seedFile, error) {
	var f seedFile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return seedFile{}, nil
		}
		return seedFile{}, err
	}
	return f, nil
}

func validateSeedPhone(p phone.Phone) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("phone without name")
	}
	if strings.TrimSpace(p.Brand) == "" {
		return fmt.Errorf("phone %q: brand is required", p.Name)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("phone %q: rating %.1f out of range 0-5", p.Name, p.Rating)
	}
	return nil
}

// Seed loads the YAML catalog files matching pattern into repo.
func Seed(ctx context.Context, repo repository.PhoneRepository, pattern string) (int, error) {
	phones, err := LoadSeedFiles(pattern)
	if err != nil {
		return 0, err
	}
	if len(phones) == 0 {
		return 0, nil
	}
	return repo.UpsertPhones(ctx, phones)
}
