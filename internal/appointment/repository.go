package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type Repository interface {
	List(ctx context.Context, f Filter) ([]Row, error)
	Get(ctx context.Context, id int64) (*Row, error)
	PrescriptionFor(ctx context.Context, appointmentID int64) ([]LineView, error)
	Create(ctx context.Context, d Draft) (int64, error)
	Update(ctx context.Context, id int64, d Draft) error
	Delete(ctx context.Context, id int64) error
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

// The read view inlines patient and doctor names and renders date/time
// columns as text so the presentation layer never sees a NULL. A doctor
// missing its medico row drops out of the inner join.
const listProjection = `SELECT c.id_consulta, p.id_paciente, p.nome AS paciente_nome,
       m.id_profissional AS id_medico, pr.nome AS medico_nome,
       COALESCE(to_char(c.data, 'YYYY-MM-DD'), '') AS data,
       COALESCE(to_char(c.hora_inicio, 'HH24:MI:SS'), '') AS hora_inicio,
       COALESCE(to_char(c.hora_fim, 'HH24:MI:SS'), '') AS hora_fim,
       COALESCE(c.diagnostico, '') AS diagnostico
FROM consulta c
JOIN paciente p ON p.id_paciente = c.id_paciente
JOIN medico m ON m.id_profissional = c.id_medico
JOIN profissional pr ON pr.id_profissional = m.id_profissional`

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]Row, error) {
	query := listProjection
	args := []interface{}{}
	conds := []string{}
	argIndex := 1

	if f.Patient.Set {
		conds = append(conds, fmt.Sprintf("c.id_paciente = $%d", argIndex))
		args = append(args, f.Patient.ID)
		argIndex++
	}
	if f.Doctor.Set {
		conds = append(conds, fmt.Sprintf("c.id_medico = $%d", argIndex))
		args = append(args, f.Doctor.ID)
		argIndex++
	}
	if f.Date != "" {
		conds = append(conds, fmt.Sprintf("c.data = $%d", argIndex))
		args = append(args, f.Date)
		argIndex++
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY c.data DESC, c.hora_inicio DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &PersistenceError{Op: "list appointments", Err: err}
	}
	defer rows.Close()

	// Never nil: an empty filter result is a valid, empty table.
	out := make([]Row, 0)
	for rows.Next() {
		var row Row
		if err := rows.Scan(
			&row.ID, &row.PatientID, &row.PatientName,
			&row.DoctorID, &row.DoctorName,
			&row.Date, &row.StartTime, &row.EndTime, &row.Diagnosis,
		); err != nil {
			return nil, &PersistenceError{Op: "scan appointment", Err: err}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: "list appointments", Err: err}
	}
	return out, nil
}

func (r *postgresRepo) Get(ctx context.Context, id int64) (*Row, error) {
	var row Row
	err := r.db.QueryRowContext(ctx, listProjection+" WHERE c.id_consulta = $1", id).Scan(
		&row.ID, &row.PatientID, &row.PatientName,
		&row.DoctorID, &row.DoctorName,
		&row.Date, &row.StartTime, &row.EndTime, &row.Diagnosis,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, &PersistenceError{Op: "load appointment", Err: err}
	}
	return &row, nil
}

func (r *postgresRepo) PrescriptionFor(ctx context.Context, appointmentID int64) ([]LineView, error) {
	query := `SELECT pl.id_medicamento, ie.nome AS nome_medicamento,
       COALESCE(pl.dosagem, '') AS dosagem,
       COALESCE(pl.frequencia, '') AS frequencia
FROM prescricao pl
JOIN medicamento md ON md.id_medicamento = pl.id_medicamento
JOIN item_estoque ie ON ie.id_itemestoque = md.id_itemestoque
WHERE pl.id_consulta = $1`

	rows, err := r.db.QueryContext(ctx, query, appointmentID)
	if err != nil {
		return nil, &PersistenceError{Op: "load prescription", Err: err}
	}
	defer rows.Close()

	out := make([]LineView, 0)
	for rows.Next() {
		var line LineView
		if err := rows.Scan(&line.MedicationID, &line.MedicationName, &line.Dosage, &line.Frequency); err != nil {
			return nil, &PersistenceError{Op: "scan prescription line", Err: err}
		}
		out = append(out, line)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: "load prescription", Err: err}
	}
	return out, nil
}

func (r *postgresRepo) Create(ctx context.Context, d Draft) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, &PersistenceError{Op: "begin insert", Err: err}
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `INSERT INTO consulta (id_paciente, id_medico, data, hora_inicio, hora_fim, diagnostico)
VALUES ($1, $2, NULLIF($3, '')::date, NULLIF($4, '')::time, NULLIF($5, '')::time, $6)
RETURNING id_consulta`,
		d.Patient.ID, d.Doctor.ID, d.Date, d.StartTime, d.EndTime, d.Diagnosis,
	).Scan(&id)
	if err != nil {
		return 0, &PersistenceError{Op: "insert appointment", Err: err}
	}

	if err := insertLines(ctx, tx, id, d.Lines); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, &PersistenceError{Op: "commit insert", Err: err}
	}
	return id, nil
}

func (r *postgresRepo) Update(ctx context.Context, id int64, d Draft) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &PersistenceError{Op: "begin update", Err: err}
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE consulta
SET id_paciente = $1, id_medico = $2, data = NULLIF($3, '')::date,
    hora_inicio = NULLIF($4, '')::time, hora_fim = NULLIF($5, '')::time, diagnostico = $6
WHERE id_consulta = $7`,
		d.Patient.ID, d.Doctor.ID, d.Date, d.StartTime, d.EndTime, d.Diagnosis, id)
	if err != nil {
		return &PersistenceError{Op: "update appointment", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return &PersistenceError{Op: "update appointment", Err: err}
	}
	if n == 0 {
		return &PersistenceError{Op: "update appointment", Err: sql.ErrNoRows}
	}

	// Full replace of the line set: the persisted lines always match
	// exactly what the editor presented.
	if _, err := tx.ExecContext(ctx, `DELETE FROM prescricao WHERE id_consulta = $1`, id); err != nil {
		return &PersistenceError{Op: "clear prescription", Err: err}
	}
	if err := insertLines(ctx, tx, id, d.Lines); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return &PersistenceError{Op: "commit update", Err: err}
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &PersistenceError{Op: "begin delete", Err: err}
	}
	defer tx.Rollback()

	// The schema cascades prescricao on delete; clearing the lines here
	// as well keeps the invariant inside the engine's own transaction.
	if _, err := tx.ExecContext(ctx, `DELETE FROM prescricao WHERE id_consulta = $1`, id); err != nil {
		return &PersistenceError{Op: "clear prescription", Err: err}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM consulta WHERE id_consulta = $1`, id); err != nil {
		return &PersistenceError{Op: "delete appointment", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &PersistenceError{Op: "commit delete", Err: err}
	}
	return nil
}

func insertLines(ctx context.Context, tx *sql.Tx, appointmentID int64, lines []LineEdit) error {
	for _, l := range lines {
		if !l.Medication.Set {
			continue
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO prescricao (id_consulta, id_medicamento, dosagem, frequencia)
VALUES ($1, $2, $3, $4)`,
			appointmentID, l.Medication.ID, l.Dosage, l.Frequency); err != nil {
			return &PersistenceError{Op: "insert prescription line", Err: err}
		}
	}
	return nil
}
