package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"watch url", "https://www.youtube.com/watch?v=ABC123", "ABC123"},
		{"no equals", "https://youtu.be/ABC123", ""},
		{"empty", "", ""},
		{"extra query params keep equals", "https://www.youtube.com/watch?v=ABC123&t=42", "ABC123&t=42"},
		{"many equals", "a=b=c==d", "b=c==d"},
		{"trailing equals", "watch?v=", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractVideoID(tt.in))
		})
	}
}

func TestThumbnailURL(t *testing.T) {
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/0.jpg", ThumbnailURL("dQw4w9WgXcQ"))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PT10M30S", "0:10:30"},
		{"PT1H2M3S", "1:02:03"},
		{"PT45S", "0:00:45"},
		{"P0D", "0:00:00"},
		{"P1DT2H", "1 day, 2:00:00"},
		{"P3DT0H0M5S", "3 days, 0:00:05"},
		{"not-a-duration", "not-a-duration"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.in))
		})
	}
}
