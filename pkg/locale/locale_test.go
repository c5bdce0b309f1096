package locale

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		code string
		want language.Tag
	}{
		{code: "en", want: language.English},
		{code: "de", want: language.German},
		{code: "de-AT", want: language.German},
		{code: "fr-CA", want: language.French},
		{code: "ja-JP", want: language.Japanese},
		{code: "xx-invalid-!!", want: language.English},
		{code: "", want: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.code))
		})
	}
}

func TestSupported(t *testing.T) {
	langs := Supported()
	require.Len(t, langs, 5)
	assert.Equal(t, "en", langs[0].Code)
	assert.Equal(t, "English", langs[0].NativeName)

	byCode := map[string]Language{}
	for _, l := range langs {
		byCode[l.Code] = l
	}
	assert.Equal(t, "Deutsch", byCode["de"].NativeName)
	assert.Equal(t, "German", byCode["de"].EnglishName)
	assert.Equal(t, "日本語", byCode["ja"].NativeName)
}

func TestTranslator(t *testing.T) {
	tr, err := NewTranslator("de")
	require.NoError(t, err)

	assert.Equal(t, language.German, tr.Language())
	assert.Equal(t, "Zurücksetzen", tr.T("reset"))
	assert.Equal(t, "Sprache: Deutsch", tr.TData("language", map[string]any{"Language": "Deutsch"}))

	tr.SetLanguage("en-GB")
	assert.Equal(t, "Reset", tr.T("reset"))
	assert.Equal(t, "no.such.message", tr.T("no.such.message"))
}

func TestCatalogsHaveTheSameKeys(t *testing.T) {
	load := func(name string) map[string]string {
		data, err := fs.ReadFile(localeFS, "locales/"+name)
		require.NoError(t, err)
		out := map[string]string{}
		require.NoError(t, yaml.Unmarshal(data, &out))
		return out
	}

	reference := load("en.yaml")
	entries, err := localeFS.ReadDir("locales")
	require.NoError(t, err)

	for _, entry := range entries {
		if entry.Name() == "en.yaml" {
			continue
		}
		t.Run(strings.TrimSuffix(entry.Name(), ".yaml"), func(t *testing.T) {
			catalog := load(entry.Name())
			for key := range reference {
				assert.NotEmpty(t, catalog[key], "missing %s", key)
			}
			assert.Len(t, catalog, len(reference))
		})
	}
}
