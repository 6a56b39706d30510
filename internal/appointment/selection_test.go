package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Ref
	}{
		{"empty", "", Ref{}},
		{"valid", "7 - Jane Doe", Ref{ID: 7, Set: true}},
		{"valid large id", "1042 - Maria da Silva", Ref{ID: 1042, Set: true}},
		{"name contains separator", "3 - Dr. House - MD", Ref{ID: 3, Set: true}},
		{"non-numeric prefix", "abc - x", Ref{}},
		{"no separator", "Jane Doe", Ref{}},
		{"separator without spaces", "7-Jane", Ref{}},
		{"zero id", "0 - Nobody", Ref{}},
		{"negative id", "-1 - Nobody", Ref{}},
		{"placeholder", "Nenhum", Ref{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSelection(tt.input))
		})
	}
}
