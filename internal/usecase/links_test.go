package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkLabel(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                                   "",
		"https://www.mathis.example.co.uk/a": "example.co.uk",
		"portal.example.com":                 "example.com",
		"http://blog.example.org/x?y=1":      "example.org",
		"www.example.de":                     "example.de",
	}
	for in, want := range cases {
		assert.Equal(t, want, linkLabel(in), in)
	}
}

func TestAbsoluteURL(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                     "",
		"example.com":          "https://example.com",
		" example.com/x ":      "https://example.com/x",
		"http://example.com":   "http://example.com",
		"mailto:a@example.com": "mailto:a@example.com",
		"tel:+4940123":         "tel:+4940123",
		"/export/cv.pdf":       "/export/cv.pdf",
	}
	for in, want := range cases {
		assert.Equal(t, want, absoluteURL(in), in)
	}
}

func TestFillPercent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		level, max float64
		want       int
	}{
		{4.5, 5, 90},
		{1, 3, 33},
		{2, 3, 67},
		{6, 5, 100},
		{0, 5, 0},
		{-1, 5, 0},
		{3, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, fillPercent(tc.level, tc.max), "%v/%v", tc.level, tc.max)
	}
}
