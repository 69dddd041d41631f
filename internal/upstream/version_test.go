package upstream

import "testing"

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"0.3.0", "0.3.0", false},
		{"v1.2.0", "1.2.0", false},
		{" 0.1 ", "0.1.0", false},
		{"0.5.0-alpha.1", "0.5.0-alpha.1", false},
		{"latest", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeVersion(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("normalizeVersion(%q) expected error, got %q", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizeVersion(%q) error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("normalizeVersion(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
