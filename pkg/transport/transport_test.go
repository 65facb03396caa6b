package transport

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecipients(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field string
		want  []string
	}{
		{
			name:  "single address",
			field: "a@x.com",
			want:  []string{"a@x.com"},
		},
		{
			name:  "fan out with uneven whitespace",
			field: "a@x.com; b@x.com ;c@x.com",
			want:  []string{"a@x.com", "b@x.com", "c@x.com"},
		},
		{
			name:  "line breaks stripped",
			field: "a@x.com;\r\nb@x.com\n",
			want:  []string{"a@x.com", "b@x.com"},
		},
		{
			name:  "empty entries dropped",
			field: "a@x.com;; ;b@x.com;",
			want:  []string{"a@x.com", "b@x.com"},
		},
		{
			name:  "empty field",
			field: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Recipients(tt.field))
		})
	}
}
