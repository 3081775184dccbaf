package usecase

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"phone-assistant/internal/phone"
	repo "phone-assistant/internal/phone/repository"
)

var numericComparison = regexp.MustCompile(`^(<=|>=|<|>)\s*(\d+(?:\.\d+)?)$`)

var allowedKeys = func() map[string]bool {
	m := make(map[string]bool, len(phone.CriteriaKeys))
	for _, k := range phone.CriteriaKeys {
		m[k] = true
	}
	return m
}()

// Recommend returns the best ranked phones matching the criteria.
func (uc *implUseCase) Recommend(ctx context.Context, input phone.RecommendInput) ([]phone.Phone, error) {
	opt := buildListOptions(input.Criteria)
	opt.Limit = uc.limit(input.Limit)

	phones, err := uc.repo.ListPhones(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "phone.usecase.Recommend ListPhones: %v", err)
		return nil, phone.ErrLookupFailed
	}
	if len(phones) == 0 {
		return nil, phone.ErrNoRecommendations
	}
	return phones, nil
}

func (uc *implUseCase) limit(n int) int {
	if n <= 0 {
		return uc.defaultLimit
	}
	if n > maxRecommendationLimit {
		return maxRecommendationLimit
	}
	return n
}

// buildListOptions turns model-produced criteria into repository filters.
// Unknown keys and unusable values are dropped.
func buildListOptions(criteria phone.Criteria) repo.ListPhonesOptions {
	var opt repo.ListPhonesOptions

	for key, value := range criteria {
		if !allowedKeys[key] || value == nil {
			continue
		}

		if phone.TagKeys[key] {
			tags := toStringList(value)
			if key == "features" {
				opt.Features = append(opt.Features, tags...)
			} else {
				opt.UseCases = append(opt.UseCases, tags...)
			}
			continue
		}

		if s, ok := value.(string); ok {
			s = strings.TrimSpace(s)
			if m := numericComparison.FindStringSubmatch(s); m != nil {
				num, err := strconv.ParseFloat(m[2], 64)
				if err != nil {
					continue
				}
				var v any = num
				if !phone.FloatKeys[key] {
					v = int64(math.Trunc(num))
				}
				opt.Filters = append(opt.Filters, repo.Filter{Column: key, Op: m[1], Value: v})
				continue
			}
			if phone.TextKeys[key] {
				if s == "" {
					continue
				}
				opt.Filters = append(opt.Filters, repo.Filter{Column: key, Op: repo.OpLike, Value: s})
				continue
			}
			opt.Filters = append(opt.Filters, repo.Filter{Column: key, Op: repo.OpEq, Value: s})
			continue
		}

		switch v := value.(type) {
		case float64, int, int64, bool:
			opt.Filters = append(opt.Filters, repo.Filter{Column: key, Op: repo.OpEq, Value: v})
		default:
			// Lists and objects have no meaning for scalar columns.
		}
	}

	sortFilters(opt.Filters)
	return opt
}

// toStringList accepts a single string or a list of strings.
func toStringList(v any) []string {
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			} else if item != nil {
				out = append(out, fmt.Sprint(item))
			}
		}
		return out
	}
	return nil
}

// sortFilters orders filters by column so the generated SQL does not depend on map order.
func sortFilters(filters []repo.Filter) {
	sort.SliceStable(filters, func(i, j int) bool { return filters[i].Column < filters[j].Column })
}
