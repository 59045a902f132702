package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildColumnMapping(t *testing.T) {
	headers := []string{"Name", "Phone", "Blood Grou", "Favorite Color", "Batch Num"}

	mapping := BuildColumnMapping(headers)

	assert.Len(t, mapping, len(headers))
	assert.Equal(t, ColumnMapping{
		FieldFullName,
		FieldMobile,
		FieldBloodGroup,
		Unmapped,
		FieldBadgeID,
	}, mapping)
}

func TestBuildColumnMapping_PreservesPositions(t *testing.T) {
	// The mapping is positional: unmapped columns hold their slot so data
	// columns to their right still line up.
	mapping := BuildColumnMapping([]string{"Remarks", "Name", "Remarks", "Mobile"})

	assert.Equal(t, ColumnMapping{Unmapped, FieldFullName, Unmapped, FieldMobile}, mapping)
}

func TestMappedFields(t *testing.T) {
	mapping := ColumnMapping{FieldFullName, Unmapped, FieldMobile, FieldFullName}

	fields := mapping.MappedFields()

	assert.Len(t, fields, 2)
	assert.True(t, fields[FieldFullName])
	assert.True(t, fields[FieldMobile])
	assert.False(t, fields[Unmapped])
}

func TestMaterialize(t *testing.T) {
	mapping := ColumnMapping{FieldFullName, FieldMobile, Unmapped}
	rows := [][]string{
		{"  Ravi Kumar  ", "9876543210", "ignored"},
		{"Meera", "", "also ignored"},
	}

	records := Materialize(rows, mapping)

	assert.Len(t, records, 2)
	assert.Equal(t, "Ravi Kumar", records[0][FieldFullName])
	assert.Equal(t, "9876543210", records[0][FieldMobile])

	// A mapped column with a blank cell still sets the key.
	value, ok := records[1][FieldMobile]
	assert.True(t, ok)
	assert.Equal(t, "", value)

	// Unmapped columns contribute no key at all.
	_, ok = records[0]["remarks"]
	assert.False(t, ok)
}

func TestMaterialize_RaggedRows(t *testing.T) {
	mapping := ColumnMapping{FieldFullName, FieldMobile, FieldLocality}
	rows := [][]string{
		{"Ravi"},
	}

	records := Materialize(rows, mapping)

	assert.Len(t, records, 1)
	assert.Equal(t, "Ravi", records[0][FieldFullName])
	// Cells past the end of a short row materialize as empty strings.
	assert.Equal(t, "", records[0][FieldMobile])
	assert.Equal(t, "", records[0][FieldLocality])
}

func TestMaterialize_DuplicateTargetLastWriteWins(t *testing.T) {
	// "Name" and "Full Name" both resolve to fullName; the later column wins.
	mapping := BuildColumnMapping([]string{"Name", "Full Name"})
	assert.Equal(t, ColumnMapping{FieldFullName, FieldFullName}, mapping)

	records := Materialize([][]string{{"Alice", "Alicia"}}, mapping)

	assert.Len(t, records, 1)
	assert.Equal(t, "Alicia", records[0][FieldFullName])
}
