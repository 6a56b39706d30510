package appointment

import (
	"strconv"
	"strings"
)

const selectionSeparator = " - "

// ParseSelection extracts the id from a pick-list label of the form
// "<id> - <name>". Empty input, a missing separator or a non-numeric
// prefix all mean "nothing selected" — malformed labels are never an
// error, they are indistinguishable from an empty picker.
func ParseSelection(value string) Ref {
	if value == "" || !strings.Contains(value, selectionSeparator) {
		return Ref{}
	}
	prefix := strings.SplitN(value, selectionSeparator, 2)[0]
	id, err := strconv.ParseInt(strings.TrimSpace(prefix), 10, 64)
	if err != nil || id <= 0 {
		return Ref{}
	}
	return Ref{ID: id, Set: true}
}
