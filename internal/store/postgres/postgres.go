package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolio-site/backend/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	// Ping to fail fast.
	ctxPing, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.ensureSchema(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) ensureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	stmts := []string{
		`create table if not exists public.contacts (
			id uuid primary key default gen_random_uuid(),
			name text not null,
			email text not null,
			message text not null,
			read boolean not null default false,
			created_at timestamptz not null default now()
		)`,
		`create index if not exists contacts_created_at_idx on public.contacts (created_at desc)`,
		`create index if not exists contacts_read_idx on public.contacts (read)`,
		`create index if not exists contacts_email_idx on public.contacts (email)`,

		`create table if not exists public.projects (
			id uuid primary key default gen_random_uuid(),
			title text not null,
			description text not null,
			tech_stack text[] not null default '{}',
			github_link text not null default '',
			live_link text not null default '',
			image_url text not null default '',
			sort_order integer not null default 999,
			created_at timestamptz not null default now()
		)`,
		`create index if not exists projects_sort_order_idx on public.projects (sort_order)`,
		`create index if not exists projects_created_at_idx on public.projects (created_at desc)`,

		`create table if not exists public.skills (
			id uuid primary key default gen_random_uuid(),
			name text not null,
			category text not null,
			proficiency text not null,
			created_at timestamptz not null default now()
		)`,
		`create unique index if not exists skills_name_key on public.skills (lower(name))`,
		`create index if not exists skills_category_idx on public.skills (category)`,

		`create table if not exists public.analytics_events (
			id uuid primary key default gen_random_uuid(),
			type text not null,
			page text not null default '',
			referrer text not null default '',
			user_agent text not null default '',
			project_id text not null default '',
			project_title text not null default '',
			created_at timestamptz not null default now()
		)`,
		`create index if not exists analytics_created_at_idx on public.analytics_events (created_at desc)`,
		`create index if not exists analytics_type_created_at_idx on public.analytics_events (type, created_at desc)`,

		`create table if not exists public.admins (
			id uuid primary key default gen_random_uuid(),
			username text not null,
			password_hash text not null,
			is_active boolean not null default true,
			created_at timestamptz not null default now()
		)`,
		`create unique index if not exists admins_username_key on public.admins (lower(username))`,
	}

	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func mapPgErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return store.ErrConflict
		case "22P02": // invalid uuid text; ids are opaque, treat as unknown
			return store.ErrNotFound
		}
	}
	return err
}
