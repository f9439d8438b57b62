package debug

import "testing"

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "Summary", nil, "Summary\n"},
		{"depth 1", 1, "Tokens", nil, "  Tokens\n"},
		{"depth 2 with formatting", 2, "Resolved: %d", []any{42}, "    Resolved: 42\n"},
		{"multiple args", 0, "%s = %q", []any{"key", "noun"}, "key = \"noun\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{"empty value", 0, "Key", "", "Key: \n"},
		{"value", 1, "Key", "noun", "  Key: \"noun\"\n"},
		{"whitespace is visible", 0, "Line", "dog runs.  ", "Line: \"dog runs.  \"\n"},
		{"newline", 2, "Break", "\n", "    Break: \"\\n\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Counts(t *testing.T) {
	tw := NewTreeWriter()
	tw.Counts(1, "Keys", map[string]int{"noun10": 1, "noun2": 3, "adj": 2})
	want := "  Keys (3)\n" +
		"    \"adj\": 2\n" +
		"    \"noun2\": 3\n" +
		"    \"noun10\": 1\n"
	if got := tw.String(); got != want {
		t.Errorf("Counts() = %q, want %q", got, want)
	}

	empty := NewTreeWriter()
	empty.Counts(0, "Keys", nil)
	if empty.String() != "" {
		t.Errorf("Counts() with empty map = %q", empty.String())
	}
}

func TestTreeWriter_Accumulates(t *testing.T) {
	tw := NewTreeWriter()
	if tw.String() != "" {
		t.Error("Expected empty string from new TreeWriter")
	}
	tw.Line(0, "a")
	tw.TextBlock(1, "b", "c")
	if got, want := tw.String(), "a\n  b: \"c\"\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
