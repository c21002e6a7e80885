package postgres

import (
	"context"

	"portfolio-site/backend/internal/model"
)

func (s *Store) CreateAdmin(ctx context.Context, a model.Admin) (model.Admin, error) {
	var out model.Admin
	err := s.pool.QueryRow(ctx, `
		insert into public.admins (username, password_hash)
		values ($1, $2)
		returning id::text, username, password_hash, is_active, created_at
	`, a.Username, a.PasswordHash).Scan(
		&out.ID, &out.Username, &out.PasswordHash, &out.IsActive, &out.CreatedAt,
	)
	if err != nil {
		return model.Admin{}, mapPgErr(err)
	}
	return out, nil
}

func (s *Store) GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var a model.Admin
	err := s.pool.QueryRow(ctx, `
		select id::text, username, password_hash, is_active, created_at
		from public.admins
		where lower(username) = lower($1)
	`, username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.IsActive, &a.CreatedAt)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return &a, nil
}
