package importer

import "strings"

// ColumnMapping is purely positional: element i maps header i to a schema
// field, or to Unmapped. It always has the same length as the header row it
// was built from.
type ColumnMapping []Field

// Record is one candidate prospect record: a mapping from schema field to
// trimmed cell value. Unmapped columns contribute nothing, so absent keys
// and empty values are distinguishable.
type Record map[Field]string

// BuildColumnMapping applies the matcher independently to every header,
// order and position preserved. Duplicate target fields across columns are
// allowed and not reconciled here; the materializer resolves them
// last-write-wins.
func BuildColumnMapping(headers []string) ColumnMapping {
	mapping := make(ColumnMapping, len(headers))
	for i, header := range headers {
		field, ok := Match(header)
		if !ok {
			mapping[i] = Unmapped
			continue
		}
		mapping[i] = field
	}
	return mapping
}

// MappedFields returns the set of distinct fields the mapping resolved,
// ignoring unmapped columns.
func (m ColumnMapping) MappedFields() map[Field]bool {
	fields := make(map[Field]bool)
	for _, field := range m {
		if field != Unmapped {
			fields[field] = true
		}
	}
	return fields
}

// Materialize builds one candidate record per data row by applying the
// column mapping. Cells are coerced to trimmed strings; a mapped column
// whose cell is missing or blank still sets the key (to ""). When two
// columns map to the same field, the later column index overwrites the
// earlier one: ordinary left-to-right iteration, last write wins.
func Materialize(rows [][]string, mapping ColumnMapping) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		record := make(Record)
		for i, field := range mapping {
			if field == Unmapped {
				continue
			}
			value := ""
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			record[field] = value
		}
		records = append(records, record)
	}
	return records
}
