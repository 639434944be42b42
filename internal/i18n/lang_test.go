package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveInitialPriority(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  Sources
		want Lang
	}{
		{"query wins", Sources{Query: "en", Persisted: "de", Browser: "de-DE"}, EN},
		{"query is case-insensitive", Sources{Query: " EN "}, EN},
		{"unsupported query falls through to persisted", Sources{Query: "fr", Persisted: "en"}, EN},
		{"persisted beats browser", Sources{Persisted: "de", Browser: "en-US"}, DE},
		{"browser primary subtag", Sources{Browser: "en-GB"}, EN},
		{"browser underscore form", Sources{Browser: "en_US"}, EN},
		{"unsupported browser", Sources{Browser: "fr-FR"}, DE},
		{"nothing set", Sources{}, DE},
		{"garbage everywhere", Sources{Query: "xx", Persisted: "??", Browser: "!!"}, DE},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ResolveInitial(tc.src))
		})
	}
}

func TestPrimarySubtag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "en", PrimarySubtag("en-US"))
	assert.Equal(t, "de", PrimarySubtag("de-CH"))
	assert.Equal(t, "en", PrimarySubtag("en_GB"))
	assert.Equal(t, "", PrimarySubtag("  "))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	l, ok := Normalize("De")
	assert.True(t, ok)
	assert.Equal(t, DE, l)

	_, ok = Normalize("fr")
	assert.False(t, ok)

	assert.True(t, IsSupported("en"))
	assert.Equal(t, DE, OrDefault("xx"))
	assert.Equal(t, EN, OrDefault("en"))
}
