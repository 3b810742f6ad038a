package core

import "fmt"

// BuildWarnings derives the non-fatal diagnostics for a parsed table:
// dropped ragged rows, per-column missing values, stray text inside
// numeric columns, and the absence of any numeric column at all.
func BuildWarnings(cols []ColumnDescriptor, rows [][]any, droppedRows int) []Warning {
	var warnings []Warning

	if droppedRows > 0 {
		warnings = append(warnings, Warning{
			Code:    WarnRaggedRows,
			Column:  -1,
			Count:   droppedRows,
			Message: fmt.Sprintf("%d row(s) dropped: field count did not match the header", droppedRows),
		})
	}

	hasNumeric := false
	for _, col := range cols {
		if missing := len(rows) - col.NonNullCount; missing > 0 {
			warnings = append(warnings, Warning{
				Code:    WarnMissingValues,
				Column:  col.Index,
				Count:   missing,
				Message: fmt.Sprintf("column %q has %d missing value(s)", col.Name, missing),
			})
		}
		if col.Type == TypeNumeric {
			hasNumeric = true
			if stray := col.NonNullCount - col.NumericCount; stray > 0 {
				warnings = append(warnings, Warning{
					Code:    WarnNonNumericCells,
					Column:  col.Index,
					Count:   stray,
					Message: fmt.Sprintf("numeric column %q has %d non-numeric value(s)", col.Name, stray),
				})
			}
		}
	}

	if !hasNumeric {
		warnings = append(warnings, Warning{
			Code:    WarnNoNumericColumn,
			Column:  -1,
			Count:   0,
			Message: "no numeric column found; nothing to plot on a value axis",
		})
	}

	return warnings
}
