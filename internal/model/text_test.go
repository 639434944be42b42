package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextDecode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  string
		plain  bool
		value  string
		byLang map[string]string
		zero   bool
	}{
		{name: "plain string", input: `"Figma"`, plain: true, value: "Figma"},
		{name: "bilingual", input: `{"de":"Profil","en":"Profile"}`, byLang: map[string]string{"de": "Profil", "en": "Profile"}},
		{name: "only de", input: `{"de":"Nur deutsch"}`, byLang: map[string]string{"de": "Nur deutsch"}},
		{name: "non-string value dropped", input: `{"de":"ok","en":5}`, byLang: map[string]string{"de": "ok"}},
		{name: "null", input: `null`, zero: true},
		{name: "number kept verbatim", input: `2021`, plain: true, value: "2021"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var got Text
			require.NoError(t, json.Unmarshal([]byte(tc.input), &got))
			assert.Equal(t, tc.zero, got.IsZero())
			assert.Equal(t, tc.plain, got.IsPlain())
			if tc.plain {
				assert.Equal(t, tc.value, got.Plain)
			}
			if tc.byLang != nil {
				assert.Equal(t, tc.byLang, got.ByLang)
			}
		})
	}
}

func TestTextAbsentFieldIsZero(t *testing.T) {
	t.Parallel()

	var m Meta
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Mathis Thomsen"}`), &m))
	assert.True(t, m.Title.IsZero())
	assert.True(t, m.Location.IsZero())
}

func TestTextListDecode(t *testing.T) {
	t.Parallel()

	var plain TextList
	require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &plain))
	assert.True(t, plain.IsPlain())
	assert.Equal(t, []string{"a", "b"}, plain.Plain)

	var single TextList
	require.NoError(t, json.Unmarshal([]byte(`"only"`), &single))
	assert.Equal(t, []string{"only"}, single.Plain)

	var byLang TextList
	require.NoError(t, json.Unmarshal([]byte(`{"de":["eins","zwei"],"en":"one"}`), &byLang))
	assert.False(t, byLang.IsPlain())
	assert.Equal(t, []string{"eins", "zwei"}, byLang.ByLang["de"])
	assert.Equal(t, []string{"one"}, byLang.ByLang["en"])

	var bad TextList
	assert.Error(t, json.Unmarshal([]byte(`true`), &bad))
}

func TestScalar(t *testing.T) {
	t.Parallel()

	var doc struct {
		A Scalar `json:"a"`
		B Scalar `json:"b"`
		C Scalar `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":2023,"b":"-34%","c":null}`), &doc))
	assert.Equal(t, "2023", doc.A.String())
	assert.Equal(t, "-34%", doc.B.String())
	assert.Equal(t, "", doc.C.String())

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2023,"b":"-34%","c":""}`, string(out))
}
