package pagination

import "testing"

func TestDefaultLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero falls back to default", 0, 20},
		{"negative falls back to default", -5, 20},
		{"explicit limit wins", 50, 50},
		{"one is respected", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{Limit: tt.limit}
			if got := p.DefaultLimit(); got != tt.want {
				t.Fatalf("DefaultLimit() = %d, want %d", got, tt.want)
			}
		})
	}
}
