package sqlite

import (
	"fmt"
	"strings"

	repo "phone-assistant/internal/phone/repository"
)

const selectColumns = `id, name, brand,
	COALESCE(price, 0), COALESCE(os, ''), COALESCE(display_size_inch, 0), COALESCE(display_type, ''),
	COALESCE(refresh_rate, 0), COALESCE(processor, ''), COALESCE(ram_gb, 0), COALESCE(storage_gb, 0),
	COALESCE(battery_mah, 0), COALESCE(charging_speed_w, 0), COALESCE(rear_camera_mp, 0),
	COALESCE(front_camera_mp, 0), COALESCE(camera_features, ''), COALESCE(network, ''),
	COALESCE(weight_g, 0), COALESCE(rating, 0), popularity_score,
	features, use_cases, pros, cons, COALESCE(released_year, 0)`

// filterColumns lists the columns a Filter may reference.
var filterColumns = map[string]bool{
	"brand": true, "price": true, "os": true, "display_size_inch": true, "display_type": true,
	"refresh_rate": true, "processor": true, "ram_gb": true, "storage_gb": true,
	"battery_mah": true, "charging_speed_w": true, "rear_camera_mp": true,
	"front_camera_mp": true, "camera_features": true, "network": true, "released_year": true,
}

var filterOps = map[string]bool{
	repo.OpEq: true, repo.OpLike: true, repo.OpLt: true, repo.OpLte: true, repo.OpGt: true, repo.OpGte: true,
}

// likePattern escapes LIKE wildcards and wraps s for a case-insensitive substring match.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}

// buildGetOneQuery builds WHERE + ORDER clause and args for GetOnePhone.
// An exact (case-insensitive) name match wins over substring matches.
func (r *implRepository) buildGetOneQuery(opt repo.GetOnePhoneOptions) (string, []any) {
	name := strings.TrimSpace(opt.NameContains)
	query := `WHERE lower(name) LIKE ? ESCAPE '\' ORDER BY (lower(name) = ?) DESC, popularity_score DESC, id ASC LIMIT 1`
	return query, []any{likePattern(name), strings.ToLower(name)}
}

// tagCondition matches rows whose JSON list column contains every value, case-insensitively.
func tagCondition(column string, values []string) (string, []any) {
	var conds []string
	var args []any
	for _, v := range values {
		conds = append(conds, fmt.Sprintf("EXISTS (SELECT 1 FROM json_each(%s) WHERE lower(json_each.value) = ?)", column))
		args = append(args, strings.ToLower(strings.TrimSpace(v)))
	}
	return "(" + strings.Join(conds, " AND ") + ")", args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT clause for ListPhones.
func (r *implRepository) buildListQuery(opt repo.ListPhonesOptions) (string, []any, error) {
	var parts []string
	var conditions []string
	var args []any

	for _, f := range opt.Filters {
		if !filterColumns[f.Column] {
			return "", nil, fmt.Errorf("%w: %s", repo.ErrInvalidColumn, f.Column)
		}
		if !filterOps[f.Op] {
			return "", nil, fmt.Errorf("%w: operator %s", repo.ErrInvalidColumn, f.Op)
		}
		if f.Op == repo.OpLike {
			conditions = append(conditions, fmt.Sprintf(`lower(%s) LIKE ? ESCAPE '\'`, f.Column))
			args = append(args, likePattern(fmt.Sprint(f.Value)))
			continue
		}
		conditions = append(conditions, fmt.Sprintf("%s %s ?", f.Column, f.Op))
		args = append(args, f.Value)
	}

	var tagConds []string
	if len(opt.Features) > 0 {
		c, a := tagCondition("features", opt.Features)
		tagConds = append(tagConds, c)
		args = append(args, a...)
	}
	if len(opt.UseCases) > 0 {
		c, a := tagCondition("use_cases", opt.UseCases)
		tagConds = append(tagConds, c)
		args = append(args, a...)
	}
	if len(tagConds) > 0 {
		conditions = append(conditions, "("+strings.Join(tagConds, " OR ")+")")
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	parts = append(parts, "ORDER BY popularity_score DESC, rating DESC, id ASC")

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
	}

	return strings.Join(parts, " "), args, nil
}
