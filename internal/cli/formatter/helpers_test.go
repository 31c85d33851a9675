package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.AddDate(0, 0, 1), "Tomorrow"},
		{"yesterday", now.AddDate(0, 0, -1), "Yesterday"},
		{"in days", now.AddDate(0, 0, 5), "In 5d"},
		{"in weeks", now.AddDate(0, 0, 21), "In 3w"},
		{"in months", now.AddDate(0, 0, 90), "In 3mo"},
		{"days ago", now.AddDate(0, 0, -5), "5d ago"},
		{"weeks ago", now.AddDate(0, 0, -21), "3w ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.t, now))
		})
	}
}

func TestShortDate(t *testing.T) {
	d := time.Date(2026, 6, 1, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-06-01", ShortDate(d))
}

func TestRenderBox(t *testing.T) {
	out := RenderBox("Details", "line one")
	assert.Contains(t, out, "DETAILS")
	assert.Contains(t, out, "line one")

	untitled := RenderBox("", "just content")
	assert.Contains(t, untitled, "just content")
}
