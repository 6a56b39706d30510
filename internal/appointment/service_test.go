package appointment

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// Compile-time check to ensure MockRepository implements Repository
var _ Repository = (*MockRepository)(nil)

// MockRepository is a hand-written mock of Repository.
type MockRepository struct {
	ListFunc            func(ctx context.Context, f Filter) ([]Row, error)
	GetFunc             func(ctx context.Context, id int64) (*Row, error)
	PrescriptionForFunc func(ctx context.Context, appointmentID int64) ([]LineView, error)
	CreateFunc          func(ctx context.Context, d Draft) (int64, error)
	UpdateFunc          func(ctx context.Context, id int64, d Draft) error
	DeleteFunc          func(ctx context.Context, id int64) error

	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

func (m *MockRepository) List(ctx context.Context, f Filter) ([]Row, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return []Row{}, nil
}

func (m *MockRepository) Get(ctx context.Context, id int64) (*Row, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, ErrNotFound
}

func (m *MockRepository) PrescriptionFor(ctx context.Context, appointmentID int64) ([]LineView, error) {
	if m.PrescriptionForFunc != nil {
		return m.PrescriptionForFunc(ctx, appointmentID)
	}
	return []LineView{}, nil
}

func (m *MockRepository) Create(ctx context.Context, d Draft) (int64, error) {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	return 1, nil
}

func (m *MockRepository) Update(ctx context.Context, id int64, d Draft) error {
	m.UpdateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, d)
	}
	return nil
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	m.DeleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func newTestService(repo Repository) Service {
	return NewService(repo, zerolog.New(os.Stdout))
}

func validDraft() Draft {
	return Draft{
		Patient:   RefTo(3),
		Doctor:    RefTo(9),
		Date:      "2024-05-01",
		StartTime: "09:00:00",
		EndTime:   "09:30:00",
		Diagnosis: "checkup",
	}
}

func TestService_Create_MissingPatient(t *testing.T) {
	repo := &MockRepository{}
	svc := newTestService(repo)

	d := validDraft()
	d.Patient = Ref{}

	_, err := svc.Create(context.Background(), d)
	assert.ErrorIs(t, err, ErrMissingPatient)
	assert.Equal(t, 0, repo.CreateCalls, "validation must happen before any statement")
}

func TestService_Create_MissingDoctor(t *testing.T) {
	repo := &MockRepository{}
	svc := newTestService(repo)

	d := validDraft()
	d.Doctor = Ref{}

	_, err := svc.Create(context.Background(), d)
	assert.ErrorIs(t, err, ErrMissingDoctor)
	assert.Equal(t, 0, repo.CreateCalls)
}

func TestService_Create_SkipsBlankLines(t *testing.T) {
	var got Draft
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, d Draft) (int64, error) {
			got = d
			return 42, nil
		},
	}
	svc := newTestService(repo)

	d := validDraft()
	d.Lines = []LineEdit{
		{Medication: RefTo(5), Dosage: "500mg", Frequency: "1x/day"},
		{Dosage: "10mg", Frequency: "2x/day"}, // blank editor row, no medication
		{Medication: RefTo(2), Dosage: "10mg", Frequency: "2x/day"},
	}

	id, err := svc.Create(context.Background(), d)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Len(t, got.Lines, 2)
	assert.Equal(t, int64(5), got.Lines[0].Medication.ID)
	assert.Equal(t, int64(2), got.Lines[1].Medication.ID)
}

func TestService_Create_PropagatesRepositoryError(t *testing.T) {
	boom := &PersistenceError{Op: "insert appointment", Err: errors.New("connection reset")}
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, d Draft) (int64, error) { return 0, boom },
	}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), validDraft())
	assert.Equal(t, boom, err)
}

func TestService_Update_NoSelection(t *testing.T) {
	repo := &MockRepository{}
	svc := newTestService(repo)

	err := svc.Update(context.Background(), 0, validDraft())
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Equal(t, 0, repo.UpdateCalls)
}

func TestService_Update_ValidatesSelections(t *testing.T) {
	repo := &MockRepository{}
	svc := newTestService(repo)

	d := validDraft()
	d.Doctor = Ref{}

	err := svc.Update(context.Background(), 7, d)
	assert.ErrorIs(t, err, ErrMissingDoctor)
	assert.Equal(t, 0, repo.UpdateCalls)
}

func TestService_Update_SkipsBlankLines(t *testing.T) {
	var got Draft
	repo := &MockRepository{
		UpdateFunc: func(ctx context.Context, id int64, d Draft) error {
			got = d
			return nil
		},
	}
	svc := newTestService(repo)

	d := validDraft()
	d.Lines = []LineEdit{
		{Dosage: "orphan", Frequency: "orphan"},
		{Medication: RefTo(3), Dosage: "2mg", Frequency: "3x/day"},
	}

	assert.NoError(t, svc.Update(context.Background(), 7, d))
	assert.Equal(t, 1, repo.UpdateCalls)
	assert.Len(t, got.Lines, 1)
	assert.Equal(t, int64(3), got.Lines[0].Medication.ID)
}

func TestService_Delete_NoSelection(t *testing.T) {
	repo := &MockRepository{}
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Equal(t, 0, repo.DeleteCalls)
}

func TestService_Delete_Delegates(t *testing.T) {
	repo := &MockRepository{}
	svc := newTestService(repo)

	assert.NoError(t, svc.Delete(context.Background(), 12))
	assert.Equal(t, 1, repo.DeleteCalls)
}

func TestService_Prescription_NoSelection(t *testing.T) {
	svc := newTestService(&MockRepository{})

	_, err := svc.Prescription(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNoSelection)
}
