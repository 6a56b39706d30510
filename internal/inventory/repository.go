package inventory

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository interface {
	Search(ctx context.Context, name string) ([]Item, error)
	Create(ctx context.Context, item Item) error
	DeleteByName(ctx context.Context, name string) (int64, error)
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

// Search matches the name anywhere, case-insensitively; an empty name
// returns the whole stock. Always ordered by name.
func (r *postgresRepo) Search(ctx context.Context, name string) ([]Item, error) {
	query := `SELECT id_itemestoque, nome,
       COALESCE(to_char(data_fabricacao, 'YYYY-MM-DD'), ''),
       COALESCE(to_char(data_validade, 'YYYY-MM-DD'), ''),
       COALESCE(lote, ''), COALESCE(fabricante, '')
FROM item_estoque`
	args := []interface{}{}
	if name != "" {
		query += ` WHERE nome ILIKE $1`
		args = append(args, "%"+name+"%")
	}
	query += ` ORDER BY nome ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search stock: %w", err)
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID, &item.Name, &item.ManufactureDate, &item.ExpiryDate,
			&item.Batch, &item.Manufacturer,
		); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search stock: %w", err)
	}
	return out, nil
}

func (r *postgresRepo) Create(ctx context.Context, item Item) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO item_estoque (nome, data_fabricacao, data_validade, lote, fabricante)
VALUES ($1, NULLIF($2, '')::date, NULLIF($3, '')::date, $4, $5)`,
		item.Name, item.ManufactureDate, item.ExpiryDate, item.Batch, item.Manufacturer)
	if err != nil {
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// DeleteByName removes items by exact name and reports how many rows went
// away; zero is "not found", not an error.
func (r *postgresRepo) DeleteByName(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM item_estoque WHERE nome = $1`, name)
	if err != nil {
		return 0, fmt.Errorf("delete stock item: %w", err)
	}
	return res.RowsAffected()
}
