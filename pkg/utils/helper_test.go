package utils

import (
	"testing"
)

func TestParseInt64(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"1.5", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseInt64(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseInt64(%q): expected error, got %d", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseInt64(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseInt64(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
