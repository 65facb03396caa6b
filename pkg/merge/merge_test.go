package merge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		fields   map[string]string
		want     string
	}{
		{
			name:     "simple substitution",
			template: "Hello {{Name}}",
			fields:   map[string]string{"Name": "Ann"},
			want:     "Hello Ann",
		},
		{
			name:     "unknown placeholder left verbatim",
			template: "{{X}}",
			fields:   map[string]string{},
			want:     "{{X}}",
		},
		{
			name:     "multiple occurrences all replaced",
			template: "{{Name}} and {{Name}} again, {{Name}}",
			fields:   map[string]string{"Name": "Bob"},
			want:     "Bob and Bob again, Bob",
		},
		{
			name:     "several fields",
			template: "Dear {{FirstName}} {{LastName}}, season {{Season}}",
			fields: map[string]string{
				"FirstName": "Ann",
				"LastName":  "Peeters",
				"Season":    "2025-2026",
			},
			want: "Dear Ann Peeters, season 2025-2026",
		},
		{
			name:     "no recursive substitution",
			template: "{{A}}",
			fields:   map[string]string{"A": "{{B}}", "B": "nope"},
			want:     "{{B}}",
		},
		{
			name:     "empty template",
			template: "",
			fields:   map[string]string{"Name": "Ann"},
			want:     "",
		},
		{
			name:     "nil fields",
			template: "Hello {{Name}}",
			fields:   nil,
			want:     "Hello {{Name}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Render(tt.template, tt.fields))
		})
	}
}
