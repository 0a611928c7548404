package domain

import (
	"strings"
	"testing"
)

func TestEstimateReadTime(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{
			name:     "empty content floors at one minute",
			content:  "",
			expected: 1,
		},
		{
			name:     "whitespace only floors at one minute",
			content:  "   \n\t  ",
			expected: 1,
		},
		{
			name:     "single word",
			content:  "hello",
			expected: 1,
		},
		{
			name:     "exactly 200 words",
			content:  strings.Repeat("word ", 200),
			expected: 1,
		},
		{
			name:     "201 words rounds up",
			content:  strings.Repeat("word ", 201),
			expected: 2,
		},
		{
			name:     "1000 words",
			content:  strings.Repeat("word ", 1000),
			expected: 5,
		},
		{
			name:     "markup counts as words",
			content:  "<p>just three words</p>",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateReadTime(tt.content)
			if got != tt.expected {
				t.Errorf("EstimateReadTime(%d words) = %d, want %d",
					len(strings.Fields(tt.content)), got, tt.expected)
			}
		})
	}
}

func TestEstimateReadTime_Monotonic(t *testing.T) {
	// Read time must never decrease as word count grows.
	prev := 0
	for words := 0; words <= 2000; words += 50 {
		content := strings.Repeat("word ", words)
		got := EstimateReadTime(content)
		if got < 1 {
			t.Fatalf("EstimateReadTime(%d words) = %d, below floor", words, got)
		}
		if got < prev {
			t.Fatalf("EstimateReadTime(%d words) = %d, decreased from %d", words, got, prev)
		}
		prev = got
	}
}
