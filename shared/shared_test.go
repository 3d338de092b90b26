package shared_test

import (
	"testing"

	"rentello/shared"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "rentello:session",
			parts:    nil,
			expected: "rentello:session",
		},
		{
			name:     "single part",
			prefix:   "rentello:session",
			parts:    []string{"abc-123"},
			expected: "rentello:session:abc-123",
		},
		{
			name:     "multiple parts",
			prefix:   "limiter",
			parts:    []string{"10.0.0.1", "v1"},
			expected: "limiter:10.0.0.1:v1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.BuildCacheKey(tt.prefix, tt.parts...)
			if got != tt.expected {
				t.Errorf("BuildCacheKey() = %q, want %q", got, tt.expected)
			}
		})
	}
}
