package utils

import (
	"encoding/json"
	"testing"
)

func TestIsJSONArray(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`[]`, true},
		{`[{"id":"1"}]`, true},
		{`  [1, 2] `, true},
		{``, false},
		{`null`, false},
		{`{"id":"1"}`, false},
		{`"[]"`, false},
		{`[1,`, false},
	}
	for _, tt := range tests {
		if got := IsJSONArray(json.RawMessage(tt.raw)); got != tt.want {
			t.Errorf("IsJSONArray(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{``, false},
		{`null`, false},
		{`false`, false},
		{`0`, false},
		{`-0`, false},
		{`0.0`, false},
		{`""`, false},
		{`1`, true},
		{`3`, true},
		{`-2`, true},
		{`"0"`, true},
		{`"three"`, true},
		{`true`, true},
		{`[]`, true},
		{`{}`, true},
	}
	for _, tt := range tests {
		if got := IsTruthy(json.RawMessage(tt.raw)); got != tt.want {
			t.Errorf("IsTruthy(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
