package postgres

import (
	"context"
	"fmt"

	"portfolio-site/backend/internal/model"
	"portfolio-site/backend/internal/store"

	"github.com/jackc/pgx/v5"
)

const skillColumns = `id::text, name, category, proficiency, created_at`

func (s *Store) CreateSkill(ctx context.Context, sk model.Skill) (model.Skill, error) {
	var out model.Skill
	err := s.pool.QueryRow(ctx, `
		insert into public.skills (name, category, proficiency)
		values ($1, $2, $3)
		returning `+skillColumns+`
	`, sk.Name, sk.Category, string(sk.Proficiency)).Scan(
		&out.ID, &out.Name, &out.Category, &out.Proficiency, &out.CreatedAt,
	)
	if err != nil {
		return model.Skill{}, mapPgErr(err)
	}
	return out, nil
}

// CreateSkills inserts the batch in one transaction; any uniqueness
// conflict rolls the whole batch back.
func (s *Store) CreateSkills(ctx context.Context, sks []model.Skill) (int, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, sk := range sks {
		if _, err := tx.Exec(ctx, `
			insert into public.skills (name, category, proficiency)
			values ($1, $2, $3)
		`, sk.Name, sk.Category, string(sk.Proficiency)); err != nil {
			return 0, mapPgErr(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, mapPgErr(err)
	}
	return len(sks), nil
}

func (s *Store) ListSkills(ctx context.Context) ([]model.Skill, error) {
	rows, err := s.pool.Query(ctx, `
		select `+skillColumns+`
		from public.skills
		order by category asc, name asc
	`)
	if err != nil {
		return nil, mapPgErr(err)
	}
	defer rows.Close()

	out := []model.Skill{}
	for rows.Next() {
		var sk model.Skill
		if err := rows.Scan(&sk.ID, &sk.Name, &sk.Category, &sk.Proficiency, &sk.CreatedAt); err != nil {
			return nil, mapPgErr(err)
		}
		out = append(out, sk)
	}
	return out, rows.Err()
}

func (s *Store) GetSkill(ctx context.Context, id string) (*model.Skill, error) {
	var sk model.Skill
	err := s.pool.QueryRow(ctx, `
		select `+skillColumns+`
		from public.skills
		where id = $1::uuid
	`, id).Scan(&sk.ID, &sk.Name, &sk.Category, &sk.Proficiency, &sk.CreatedAt)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return &sk, nil
}

func (s *Store) UpdateSkill(ctx context.Context, id string, u store.SkillUpdate) error {
	var prof *string
	if u.Proficiency != nil {
		p := string(*u.Proficiency)
		prof = &p
	}

	tag, err := s.pool.Exec(ctx, `
		update public.skills set
			name        = coalesce($2, name),
			category    = coalesce($3, category),
			proficiency = coalesce($4, proficiency)
		where id = $1::uuid
	`, id, u.Name, u.Category, prof)
	if err != nil {
		return mapPgErr(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteSkill(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `delete from public.skills where id = $1::uuid`, id)
	if err != nil {
		return mapPgErr(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
