package main

import "testing"

func TestResolveDSN(t *testing.T) {
	tests := []struct {
		name    string
		flagDSN string
		envDSN  string
		want    string
	}{
		{
			name:    "flag wins over env",
			flagDSN: "postgres://flag@localhost:5432/bistro",
			envDSN:  "postgres://env@localhost:5432/bistro",
			want:    "postgres://flag@localhost:5432/bistro",
		},
		{
			name:   "env fallback",
			envDSN: "postgres://env@localhost:5432/bistro",
			want:   "postgres://env@localhost:5432/bistro",
		},
		{
			name:    "blank flag falls back to env",
			flagDSN: "   ",
			envDSN:  "postgres://env@localhost:5432/bistro",
			want:    "postgres://env@localhost:5432/bistro",
		},
		{
			name: "nothing set",
			want: "",
		},
		{
			name:    "flag is trimmed",
			flagDSN: "  postgres://flag@localhost:5432/bistro  ",
			want:    "postgres://flag@localhost:5432/bistro",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BISTRO_POSTGRES_DSN", tt.envDSN)

			if got := resolveDSN(tt.flagDSN); got != tt.want {
				t.Errorf("resolveDSN(%q) = %q, want %q", tt.flagDSN, got, tt.want)
			}
		})
	}
}
