package main

import (
	"strings"
	"testing"
)

func TestReadData(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"single arg", []string{"hello"}, "", "hello"},
		{"args joined with space", []string{"hello", "world"}, "", "hello world"},
		{"stdin fallback", nil, "from stdin\n", "from stdin\n"},
		{"args win over stdin", []string{"args"}, "ignored", "args"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readData(tt.args, strings.NewReader(tt.stdin))
			if err != nil {
				t.Fatalf("readData error: %v", err)
			}
			if got != tt.want {
				t.Errorf("readData = %q, want %q", got, tt.want)
			}
		})
	}
}
