package postgres

import (
	"context"

	"portfolio-site/backend/internal/model"
	"portfolio-site/backend/internal/store"
)

const projectColumns = `id::text, title, description, tech_stack, github_link, live_link, image_url, sort_order, created_at`

func (s *Store) CreateProject(ctx context.Context, p model.Project) (model.Project, error) {
	order := p.Order
	if order == 0 {
		order = model.DefaultProjectOrder
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}

	var out model.Project
	err := s.pool.QueryRow(ctx, `
		insert into public.projects (title, description, tech_stack, github_link, live_link, image_url, sort_order)
		values ($1, $2, $3, $4, $5, $6, $7)
		returning `+projectColumns+`
	`, p.Title, p.Description, p.TechStack, p.GithubLink, p.LiveLink, p.ImageURL, order).Scan(
		&out.ID, &out.Title, &out.Description, &out.TechStack,
		&out.GithubLink, &out.LiveLink, &out.ImageURL, &out.Order, &out.CreatedAt,
	)
	if err != nil {
		return model.Project{}, mapPgErr(err)
	}
	return out, nil
}

func (s *Store) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := s.pool.Query(ctx, `
		select `+projectColumns+`
		from public.projects
		order by sort_order asc, created_at asc
	`)
	if err != nil {
		return nil, mapPgErr(err)
	}
	defer rows.Close()

	out := []model.Project{}
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.TechStack,
			&p.GithubLink, &p.LiveLink, &p.ImageURL, &p.Order, &p.CreatedAt); err != nil {
			return nil, mapPgErr(err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) GetProject(ctx context.Context, id string) (*model.Project, error) {
	var p model.Project
	err := s.pool.QueryRow(ctx, `
		select `+projectColumns+`
		from public.projects
		where id = $1::uuid
	`, id).Scan(&p.ID, &p.Title, &p.Description, &p.TechStack,
		&p.GithubLink, &p.LiveLink, &p.ImageURL, &p.Order, &p.CreatedAt)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return &p, nil
}

func (s *Store) UpdateProject(ctx context.Context, id string, u store.ProjectUpdate) error {
	tag, err := s.pool.Exec(ctx, `
		update public.projects set
			title       = coalesce($2, title),
			description = coalesce($3, description),
			tech_stack  = coalesce($4, tech_stack),
			github_link = coalesce($5, github_link),
			live_link   = coalesce($6, live_link),
			image_url   = coalesce($7, image_url),
			sort_order  = coalesce($8, sort_order)
		where id = $1::uuid
	`, id, u.Title, u.Description, u.TechStack, u.GithubLink, u.LiveLink, u.ImageURL, u.Order)
	if err != nil {
		return mapPgErr(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteProject(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `delete from public.projects where id = $1::uuid`, id)
	if err != nil {
		return mapPgErr(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
