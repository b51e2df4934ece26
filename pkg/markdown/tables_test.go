package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepairTables(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "three cells become header and separator",
			input: "| A | B | C |",
			want:  "| A | B | C |\n| --- | --- | --- |",
		},
		{
			name:  "six cells add one data row",
			input: "| A | B | C | 1 | 2 | 3 |",
			want:  "| A | B | C |\n| --- | --- | --- |\n| 1 | 2 | 3 |",
		},
		{
			name:  "partial trailing row is padded",
			input: "| Tool | Use | Range | Multimeter | Voltage |",
			want:  "| Tool | Use | Range |\n| --- | --- | --- |\n| Multimeter | Voltage |  |",
		},
		{
			name:  "two cells are left alone",
			input: "| A | B |",
			want:  "| A | B |",
		},
		{
			name:  "multi-line table is left alone",
			input: "| A | B |\n| --- | --- |\n| 1 | 2 |",
			want:  "| A | B |\n| --- | --- |\n| 1 | 2 |",
		},
		{
			name:  "multi-line table without separator is left alone",
			input: "| A | B | C |\n| 1 | 2 | 3 |",
			want:  "| A | B | C |\n| 1 | 2 | 3 |",
		},
		{
			name:  "text without tables",
			input: "Step 1: Disconnect the battery.\nStep 2: Test the fuse.",
			want:  "Step 1: Disconnect the battery.\nStep 2: Test the fuse.",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RepairTables(tt.input))
		})
	}
}

func TestRepairTables_SurroundingText(t *testing.T) {
	input := "## Readings\n| Component | Value | Unit | Battery | 12.6 | V |\n\nCheck the **alternator** next."

	got := RepairTables(input)

	want := "## Readings\n| Component | Value | Unit |\n| --- | --- | --- |\n| Battery | 12.6 | V |\n\nCheck the **alternator** next."
	assert.Equal(t, want, got)
}

func TestRepairTables_KeepsWellFormedAlongsideRepaired(t *testing.T) {
	wellFormed := "| A | B |\n| --- | --- |\n| 1 | 2 |"
	input := wellFormed + "\n\nSummary below\n\n| X | Y | Z | 7 | 8 | 9 |"

	got := RepairTables(input)

	assert.True(t, strings.HasPrefix(got, wellFormed))
	assert.True(t, strings.HasSuffix(got, "| X | Y | Z |\n| --- | --- | --- |\n| 7 | 8 | 9 |"))
}
