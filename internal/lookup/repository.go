package lookup

import (
	"context"
	"database/sql"
	"fmt"
)

// Option is one entry of a pick-list: the id the data layer needs and the
// name the user sees.
type Option struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

type Repository interface {
	ListPatients(ctx context.Context) ([]Option, error)
	ListDoctors(ctx context.Context) ([]Option, error)
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) ListPatients(ctx context.Context) ([]Option, error) {
	return r.list(ctx, `SELECT id_paciente, nome FROM paciente ORDER BY nome`)
}

// ListDoctors returns only the professionals that are doctors; the inner
// join is what restricts the pick-list to the medico subset.
func (r *postgresRepo) ListDoctors(ctx context.Context) ([]Option, error) {
	return r.list(ctx, `SELECT pr.id_profissional, pr.nome
FROM profissional pr
JOIN medico m ON m.id_profissional = pr.id_profissional
ORDER BY pr.nome`)
}

func (r *postgresRepo) list(ctx context.Context, query string) ([]Option, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load pick-list: %w", err)
	}
	defer rows.Close()

	out := make([]Option, 0)
	for rows.Next() {
		var opt Option
		if err := rows.Scan(&opt.ID, &opt.Name); err != nil {
			return nil, fmt.Errorf("scan pick-list row: %w", err)
		}
		out = append(out, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load pick-list: %w", err)
	}
	return out, nil
}
