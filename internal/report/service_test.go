package report

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-records/internal/appointment"
)

// Compile-time check to ensure MockSource implements AppointmentSource
var _ AppointmentSource = (*MockSource)(nil)

// MockSource is a hand-written mock of AppointmentSource.
type MockSource struct {
	GetFunc          func(ctx context.Context, id int64) (*appointment.Row, error)
	PrescriptionFunc func(ctx context.Context, appointmentID int64) ([]appointment.LineView, error)
}

func (m *MockSource) Get(ctx context.Context, id int64) (*appointment.Row, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, appointment.ErrNotFound
}

func (m *MockSource) Prescription(ctx context.Context, appointmentID int64) ([]appointment.LineView, error) {
	if m.PrescriptionFunc != nil {
		return m.PrescriptionFunc(ctx, appointmentID)
	}
	return []appointment.LineView{}, nil
}

func fontAvailable() bool {
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}

func TestService_Generate_NotFound(t *testing.T) {
	svc := NewService(&MockSource{})

	_, err := svc.Generate(context.Background(), 99)
	assert.ErrorIs(t, err, appointment.ErrNotFound)
}

func TestService_Generate_RendersPDF(t *testing.T) {
	if !fontAvailable() {
		t.Skip("no DejaVuSans font installed")
	}

	src := &MockSource{
		GetFunc: func(ctx context.Context, id int64) (*appointment.Row, error) {
			return &appointment.Row{
				ID:          7,
				PatientName: "Maria Silva",
				DoctorName:  "Dr. Souza",
				Date:        "2024-05-01",
				StartTime:   "09:00:00",
				Diagnosis:   "Faringite aguda",
			}, nil
		},
		PrescriptionFunc: func(ctx context.Context, appointmentID int64) ([]appointment.LineView, error) {
			return []appointment.LineView{
				{MedicationID: 5, MedicationName: "Amoxicilina", Dosage: "500mg", Frequency: "8/8h"},
			}, nil
		},
	}
	svc := NewService(src)

	doc, err := svc.Generate(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc.FileName, "prescricao_7_"))
	assert.True(t, strings.HasSuffix(doc.FileName, ".pdf"))
	assert.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF")), "output must be a PDF document")
}

func TestService_Generate_UniqueFileNames(t *testing.T) {
	if !fontAvailable() {
		t.Skip("no DejaVuSans font installed")
	}

	src := &MockSource{
		GetFunc: func(ctx context.Context, id int64) (*appointment.Row, error) {
			return &appointment.Row{ID: 1, PatientName: "A", DoctorName: "B"}, nil
		},
	}
	svc := NewService(src)

	first, err := svc.Generate(context.Background(), 1)
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), 1)
	require.NoError(t, err)
	assert.NotEqual(t, first.FileName, second.FileName)
}
