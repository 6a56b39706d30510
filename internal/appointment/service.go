package appointment

import (
	"context"

	"github.com/rs/zerolog"
)

type Service interface {
	List(ctx context.Context, f Filter) ([]Row, error)
	Get(ctx context.Context, id int64) (*Row, error)
	Prescription(ctx context.Context, appointmentID int64) ([]LineView, error)
	Create(ctx context.Context, d Draft) (int64, error)
	Update(ctx context.Context, id int64, d Draft) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) List(ctx context.Context, f Filter) ([]Row, error) {
	return s.repo.List(ctx, f)
}

func (s *service) Get(ctx context.Context, id int64) (*Row, error) {
	if id <= 0 {
		return nil, ErrNoSelection
	}
	return s.repo.Get(ctx, id)
}

func (s *service) Prescription(ctx context.Context, appointmentID int64) ([]LineView, error) {
	if appointmentID <= 0 {
		return nil, ErrNoSelection
	}
	return s.repo.PrescriptionFor(ctx, appointmentID)
}

func (s *service) Create(ctx context.Context, d Draft) (int64, error) {
	if !d.Patient.Set {
		return 0, ErrMissingPatient
	}
	if !d.Doctor.Set {
		return 0, ErrMissingDoctor
	}
	d.Lines = filledLines(d.Lines)

	id, err := s.repo.Create(ctx, d)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int64("id_consulta", id).Msg("appointment created")
	return id, nil
}

func (s *service) Update(ctx context.Context, id int64, d Draft) error {
	if id <= 0 {
		return ErrNoSelection
	}
	if !d.Patient.Set {
		return ErrMissingPatient
	}
	if !d.Doctor.Set {
		return ErrMissingDoctor
	}
	d.Lines = filledLines(d.Lines)

	if err := s.repo.Update(ctx, id, d); err != nil {
		return err
	}
	s.log.Info().Int64("id_consulta", id).Msg("appointment updated")
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNoSelection
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("id_consulta", id).Msg("appointment deleted")
	return nil
}

// filledLines drops the editor rows the user never gave a medication.
func filledLines(lines []LineEdit) []LineEdit {
	out := make([]LineEdit, 0, len(lines))
	for _, l := range lines {
		if l.Medication.Set {
			out = append(out, l)
		}
	}
	return out
}
