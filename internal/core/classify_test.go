package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyColumns(t *testing.T) {
	tests := []struct {
		name string
		rows [][]any
		want ColumnType
	}{
		{
			name: "all numeric",
			rows: [][]any{{1.0}, {2.0}, {3.0}},
			want: TypeNumeric,
		},
		{
			name: "all strings",
			rows: [][]any{{"a"}, {"b"}, {"c"}},
			want: TypeString,
		},
		{
			name: "iso dates",
			rows: [][]any{{"2024-01-15"}, {"2024-02-20"}, {"2024-03-25"}},
			want: TypeDate,
		},
		{
			name: "iso datetimes",
			rows: [][]any{{"2024-01-15T10:30:00"}, {"2024-01-16 08:00"}},
			want: TypeDate,
		},
		{
			name: "slash dates",
			rows: [][]any{{"1/15/2024"}, {"2/20/2024"}, {"12/1/24"}},
			want: TypeDate,
		},
		{
			name: "dot dates classify as strings",
			rows: [][]any{{"15.01.2024"}, {"20.02.2024"}},
			want: TypeString,
		},
		{
			name: "impossible calendar dates are strings",
			rows: [][]any{{"13/45/2024"}, {"99/99/99"}},
			want: TypeString,
		},
		{
			name: "all null is string",
			rows: [][]any{{nil}, {nil}},
			want: TypeString,
		},
		{
			name: "nulls excluded from ratio",
			rows: [][]any{{1.0}, {nil}, {2.0}, {nil}, {3.0}},
			want: TypeNumeric,
		},
		{
			name: "date mix above threshold",
			rows: [][]any{
				{"2024-01-01"}, {"2024-01-02"}, {"2024-01-03"}, {"2024-01-04"}, {"n/a"},
			},
			want: TypeDate,
		},
		{
			name: "date mix below threshold",
			rows: [][]any{
				{"2024-01-01"}, {"2024-01-02"}, {"2024-01-03"}, {"n/a"}, {"n/a"},
			},
			want: TypeString,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols := ClassifyColumns([]string{"col"}, tt.rows)
			require.Len(t, cols, 1)
			assert.Equal(t, tt.want, cols[0].Type)
		})
	}
}

func TestClassifyColumns_NumericThresholdBoundary(t *testing.T) {
	// Exactly 90% numeric qualifies; 89% does not.
	makeRows := func(numeric, text int) [][]any {
		var rows [][]any
		for i := 0; i < numeric; i++ {
			rows = append(rows, []any{float64(i)})
		}
		for i := 0; i < text; i++ {
			rows = append(rows, []any{fmt.Sprintf("s%d", i)})
		}
		return rows
	}

	cols := ClassifyColumns([]string{"v"}, makeRows(90, 10))
	assert.Equal(t, TypeNumeric, cols[0].Type)

	cols = ClassifyColumns([]string{"v"}, makeRows(89, 11))
	assert.Equal(t, TypeString, cols[0].Type)
}

func TestClassifyColumns_Counts(t *testing.T) {
	rows := [][]any{
		{1.0, "a"},
		{2.0, nil},
		{"oops", "b"},
		{nil, "c"},
	}
	cols := ClassifyColumns([]string{"x", "label"}, rows)
	require.Len(t, cols, 2)

	assert.Equal(t, 3, cols[0].NonNullCount)
	assert.Equal(t, 2, cols[0].NumericCount)
	assert.Equal(t, TypeString, cols[0].Type) // 2/3 numeric is below 90%

	assert.Equal(t, 3, cols[1].NonNullCount)
	assert.Equal(t, 0, cols[1].NumericCount)
	assert.Equal(t, TypeString, cols[1].Type)
}
