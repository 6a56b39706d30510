package patient

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository interface {
	Search(ctx context.Context, cpf string) ([]Patient, error)
	Create(ctx context.Context, p Patient) error
	UpdateByCPF(ctx context.Context, p Patient) (int64, error)
	DeleteByCPF(ctx context.Context, cpf string) (int64, error)
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

// Search returns all patients when cpf is empty, otherwise the patient
// with that exact CPF.
func (r *postgresRepo) Search(ctx context.Context, cpf string) ([]Patient, error) {
	query := `SELECT id_paciente, nome, COALESCE(cpf, ''), COALESCE(rg, ''),
       COALESCE(to_char(data_nascimento, 'YYYY-MM-DD'), ''), COALESCE(genero, ''),
       COALESCE(endereco_rua, ''), COALESCE(endereco_numero, ''),
       COALESCE(endereco_bairro, ''), COALESCE(endereco_cidade, '')
FROM paciente`
	args := []interface{}{}
	if cpf != "" {
		query += ` WHERE cpf = $1`
		args = append(args, cpf)
	}
	query += ` ORDER BY nome`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}
	defer rows.Close()

	out := make([]Patient, 0)
	for rows.Next() {
		var p Patient
		if err := rows.Scan(
			&p.ID, &p.Name, &p.CPF, &p.RG, &p.BirthDate, &p.Gender,
			&p.Street, &p.Number, &p.District, &p.City,
		); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}
	return out, nil
}

func (r *postgresRepo) Create(ctx context.Context, p Patient) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO paciente (nome, cpf, rg, data_nascimento, genero, endereco_rua, endereco_numero, endereco_bairro, endereco_cidade)
VALUES ($1, $2, $3, NULLIF($4, '')::date, $5, $6, $7, $8, $9)`,
		p.Name, p.CPF, p.RG, p.BirthDate, p.Gender, p.Street, p.Number, p.District, p.City)
	if err != nil {
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

// UpdateByCPF rewrites the mutable fields of the patient carrying the
// given CPF and reports how many rows matched. CPF itself is the key and
// is never changed.
func (r *postgresRepo) UpdateByCPF(ctx context.Context, p Patient) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE paciente
SET nome = $1, data_nascimento = NULLIF($2, '')::date, genero = $3,
    endereco_rua = $4, endereco_numero = $5, endereco_bairro = $6, endereco_cidade = $7
WHERE cpf = $8`,
		p.Name, p.BirthDate, p.Gender, p.Street, p.Number, p.District, p.City, p.CPF)
	if err != nil {
		return 0, fmt.Errorf("update patient: %w", err)
	}
	return res.RowsAffected()
}

func (r *postgresRepo) DeleteByCPF(ctx context.Context, cpf string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM paciente WHERE cpf = $1`, cpf)
	if err != nil {
		return 0, fmt.Errorf("delete patient: %w", err)
	}
	return res.RowsAffected()
}
