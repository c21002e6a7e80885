package postgres

import (
	"context"

	"portfolio-site/backend/internal/model"
	"portfolio-site/backend/internal/store"
)

func (s *Store) CreateContact(ctx context.Context, c model.Contact) (model.Contact, error) {
	var out model.Contact
	err := s.pool.QueryRow(ctx, `
		insert into public.contacts (name, email, message)
		values ($1, $2, $3)
		returning id::text, name, email, message, read, created_at
	`, c.Name, c.Email, c.Message).Scan(
		&out.ID, &out.Name, &out.Email, &out.Message, &out.Read, &out.CreatedAt,
	)
	if err != nil {
		return model.Contact{}, mapPgErr(err)
	}
	return out, nil
}

func (s *Store) ListContacts(ctx context.Context) ([]model.Contact, error) {
	rows, err := s.pool.Query(ctx, `
		select id::text, name, email, message, read, created_at
		from public.contacts
		order by created_at desc
	`)
	if err != nil {
		return nil, mapPgErr(err)
	}
	defer rows.Close()

	out := []model.Contact{}
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.Read, &c.CreatedAt); err != nil {
			return nil, mapPgErr(err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) MarkContactRead(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `
		update public.contacts set read = true where id = $1::uuid
	`, id)
	if err != nil {
		return mapPgErr(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
