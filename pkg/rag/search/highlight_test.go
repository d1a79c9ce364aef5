package search

import "testing"

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  string
	}{
		{
			name:  "single word match",
			text:  "The cat sat",
			query: "cat",
			want:  "The [highlight]cat[/highlight] sat",
		},
		{
			name:  "case insensitive, original case kept",
			text:  "Physical AI combines AI with physical systems",
			query: "physical",
			want:  "[highlight]Physical[/highlight] AI combines AI with [highlight]physical[/highlight] systems",
		},
		{
			name:  "multiple query words",
			text:  "sensors and actuators",
			query: "sensors actuators",
			want:  "[highlight]sensors[/highlight] and [highlight]actuators[/highlight]",
		},
		{
			name:  "whole word only",
			text:  "category cat",
			query: "cat",
			want:  "category [highlight]cat[/highlight]",
		},
		{
			name:  "no match leaves text untouched",
			text:  "The cat sat",
			query: "dog",
			want:  "The cat sat",
		},
		{
			name:  "empty query",
			text:  "The cat sat",
			query: "",
			want:  "The cat sat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Highlight(tt.text, tt.query); got != tt.want {
				t.Errorf("Highlight() = %q, want %q", got, tt.want)
			}
		})
	}
}
