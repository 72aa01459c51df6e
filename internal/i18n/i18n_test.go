package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedManagerLoadsLocales(t *testing.T) {
	manager, err := NewEmbeddedManager("en")
	require.NoError(t, err)

	assert.Equal(t, []string{LangEN, LangRU}, manager.SupportedLanguages())
	assert.Equal(t, LangEN, manager.DefaultLanguage())
	assert.Equal(t, "Incorrect passcode.", manager.Translate("en", "error.invalid_passcode"))
	assert.Equal(t, "Неверный код-пароль.", manager.Translate("ru-RU", "error.invalid_passcode"))
}

func TestManagerUnsupportedDefaultFallsBackToEnglish(t *testing.T) {
	manager, err := NewEmbeddedManager("fr")
	require.NoError(t, err)
	assert.Equal(t, LangEN, manager.DefaultLanguage())
}

func TestManagerSupports(t *testing.T) {
	manager, err := NewEmbeddedManager("en")
	require.NoError(t, err)

	assert.True(t, manager.Supports("ru"))
	assert.True(t, manager.Supports(" RU_ru "))
	assert.False(t, manager.Supports("xx"))
	assert.False(t, manager.Supports(""))
}

func TestDetectFromAcceptLanguage(t *testing.T) {
	manager, err := NewEmbeddedManager("en")
	require.NoError(t, err)

	cases := map[string]string{
		"":                        LangEN,
		"ru-RU,ru;q=0.9,en;q=0.8": LangRU,
		"de-DE, ru;q=0.5":         LangRU,
		"en-GB":                   LangEN,
		"fr-FR, de;q=0.7":         LangEN,
		";;;":                     LangEN,
	}
	for header, want := range cases {
		assert.Equal(t, want, manager.DetectFromAcceptLanguage(header), "header %q", header)
	}
}

func TestTranslateFallsBack(t *testing.T) {
	locales := fstest.MapFS{
		"en.json": {Data: []byte(`{"greeting":"Hello","only.en":"English only"}`)},
		"ru.json": {Data: []byte(`{"greeting":"Привет","only.en":"  "}`)},
	}
	manager, err := NewManager("ru", locales)
	require.NoError(t, err)

	assert.Equal(t, "Привет", manager.Translate("", "greeting"))
	assert.Equal(t, "English only", manager.Translate("ru", "only.en"))
	assert.Equal(t, "missing.key", manager.Translate("ru", "missing.key"))
	assert.Equal(t, "Hello", manager.Messages("en")["greeting"])
}

func TestNewManagerRequiresCoreLocales(t *testing.T) {
	_, err := NewManager("en", fstest.MapFS{
		"en.json": {Data: []byte(`{"a":"b"}`)},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"ru"`)

	_, err = NewManager("en", fstest.MapFS{
		"en.json": {Data: []byte(`{}`)},
		"ru.json": {Data: []byte(`{"a":"b"}`)},
	})
	require.Error(t, err)
}
