package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"phone-assistant/internal/phone"
	repo "phone-assistant/internal/phone/repository"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPhone(s rowScanner) (phone.Phone, error) {
	var p phone.Phone
	var features, useCases, pros, cons string
	err := s.Scan(
		&p.ID, &p.Name, &p.Brand,
		&p.Price, &p.OS, &p.DisplaySizeInch, &p.DisplayType,
		&p.RefreshRate, &p.Processor, &p.RAMGB, &p.StorageGB,
		&p.BatteryMAh, &p.ChargingSpeedW, &p.RearCameraMP,
		&p.FrontCameraMP, &p.CameraFeatures, &p.Network,
		&p.WeightG, &p.Rating, &p.PopularityScore,
		&features, &useCases, &pros, &cons, &p.ReleasedYear,
	)
	if err != nil {
		return phone.Phone{}, err
	}
	for _, f := range []struct {
		raw string
		dst *[]string
	}{{features, &p.Features}, {useCases, &p.UseCases}, {pros, &p.Pros}, {cons, &p.Cons}} {
		if err := json.Unmarshal([]byte(f.raw), f.dst); err != nil {
			return phone.Phone{}, fmt.Errorf("decode list column: %w", err)
		}
		if *f.dst == nil {
			*f.dst = []string{}
		}
	}
	return p, nil
}

// GetOnePhone retrieves the best name match. Returns zero-value Phone (ID == 0) when not found.
func (r *implRepository) GetOnePhone(ctx context.Context, opt repo.GetOnePhoneOptions) (phone.Phone, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM phones %s", selectColumns, mods)

	p, err := scanPhone(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return phone.Phone{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOnePhone"), err)
		return phone.Phone{}, repo.ErrFailedToGet
	}
	return p, nil
}

// ListPhones returns phones matching every filter, best ranked first.
func (r *implRepository) ListPhones(ctx context.Context, opt repo.ListPhonesOptions) ([]phone.Phone, error) {
	mods, args, err := r.buildListQuery(opt)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT %s FROM phones %s", selectColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPhones"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var phones []phone.Phone
	for rows.Next() {
		p, err := scanPhone(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListPhones"), err)
			return nil, repo.ErrFailedToList
		}
		phones = append(phones, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListPhones"), err)
		return nil, repo.ErrFailedToList
	}
	return phones, nil
}

// UpsertPhones inserts or replaces phones keyed by name in a single transaction.
func (r *implRepository) UpsertPhones(ctx context.Context, phones []phone.Phone) (int, error) {
	const query = `
		INSERT INTO phones (
			name, brand, price, os, display_size_inch, display_type, refresh_rate, processor,
			ram_gb, storage_gb, battery_mah, charging_speed_w, rear_camera_mp, front_camera_mp,
			camera_features, network, weight_g, rating, popularity_score,
			features, use_cases, pros, cons, released_year
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			brand = excluded.brand, price = excluded.price, os = excluded.os,
			display_size_inch = excluded.display_size_inch, display_type = excluded.display_type,
			refresh_rate = excluded.refresh_rate, processor = excluded.processor,
			ram_gb = excluded.ram_gb, storage_gb = excluded.storage_gb,
			battery_mah = excluded.battery_mah, charging_speed_w = excluded.charging_speed_w,
			rear_camera_mp = excluded.rear_camera_mp, front_camera_mp = excluded.front_camera_mp,
			camera_features = excluded.camera_features, network = excluded.network,
			weight_g = excluded.weight_g, rating = excluded.rating,
			popularity_score = excluded.popularity_score, features = excluded.features,
			use_cases = excluded.use_cases, pros = excluded.pros, cons = excluded.cons,
			released_year = excluded.released_year`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpsertPhones"), err)
		return 0, repo.ErrFailedToUpsert
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s prepare: %v", r.dsn("UpsertPhones"), err)
		return 0, repo.ErrFailedToUpsert
	}
	defer stmt.Close()

	for _, p := range phones {
		_, err := stmt.ExecContext(ctx,
			p.Name, p.Brand, nullInt(p.Price), nullString(p.OS), nullFloat(p.DisplaySizeInch),
			nullString(p.DisplayType), nullInt(p.RefreshRate), nullString(p.Processor),
			nullInt(p.RAMGB), nullInt(p.StorageGB), nullInt(p.BatteryMAh), nullInt(p.ChargingSpeedW),
			nullInt(p.RearCameraMP), nullInt(p.FrontCameraMP), nullString(p.CameraFeatures),
			nullString(p.Network), nullInt(p.WeightG), nullFloat(p.Rating), p.PopularityScore,
			jsonList(p.Features), jsonList(p.UseCases), jsonList(p.Pros), jsonList(p.Cons),
			nullInt(p.ReleasedYear),
		)
		if err != nil {
			r.l.Errorf(ctx, "%s %q: %v", r.dsn("UpsertPhones"), p.Name, err)
			return 0, repo.ErrFailedToUpsert
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("UpsertPhones"), err)
		return 0, repo.ErrFailedToUpsert
	}
	return len(phones), nil
}

// CountPhones returns the number of catalog rows.
func (r *implRepository) CountPhones(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM phones`).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountPhones"), err)
		return 0, repo.ErrFailedToGet
	}
	return n, nil
}

func nullInt(v int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(v), Valid: v != 0}
}

func nullFloat(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: v != 0}
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func jsonList(v []string) string {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}
