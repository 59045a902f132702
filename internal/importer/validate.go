package importer

import (
	"fmt"
	"strings"
)

// MissingFieldsError reports which required schema fields a column mapping
// failed to locate. It aborts the whole batch before any row is
// materialized or sent anywhere.
type MissingFieldsError struct {
	Missing []Field
}

func (e *MissingFieldsError) Error() string {
	names := make([]string, len(e.Missing))
	for i, field := range e.Missing {
		names[i] = string(field)
	}
	return fmt.Sprintf("required columns could not be located: %s", strings.Join(names, ", "))
}

// ValidateRequired checks that every required schema field was resolved by
// the mapping. A single missing required column rejects the entire import;
// this is a fail-fast precondition, not a per-row check.
func ValidateRequired(mapping ColumnMapping) error {
	mapped := mapping.MappedFields()

	var missing []Field
	for _, field := range RequiredFields() {
		if !mapped[field] {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return &MissingFieldsError{Missing: missing}
	}
	return nil
}
