package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnglish(t *testing.T) {
	tr := New("en")
	assert.Equal(t, "Could not open the file", tr.T(OpenFailed))
	assert.Equal(t, "2006-01-02 15:04", tr.T(TimeLayout))
}

func TestJapanese(t *testing.T) {
	for _, tag := range []string{"ja", "ja-JP"} {
		tr := New(tag)
		assert.Equal(t, "ファイルが開けませんでした", tr.T(OpenFailed), tag)
		assert.Equal(t, "可能", tr.T(Yes), tag)
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	tr := New("fr")
	assert.Equal(t, "unavailable", tr.T(Unavailable))
}

func TestUnknownMessageID(t *testing.T) {
	tr := New("en")
	assert.Equal(t, "does_not_exist", tr.T("does_not_exist"))
}

func TestEmptyTagUsesLang(t *testing.T) {
	t.Setenv("LANG", "ja_JP.UTF-8")
	assert.Equal(t, "不可", New("").T(No))

	t.Setenv("LANG", "C")
	assert.Equal(t, "no", New("").T(No))
}

func TestFromEnv(t *testing.T) {
	assert.Equal(t, "ja-JP", fromEnv("ja_JP.UTF-8"))
	assert.Equal(t, "en-US", fromEnv("en_US"))
	assert.Equal(t, "de-DE", fromEnv("de_DE@euro"))
	assert.Equal(t, "", fromEnv("POSIX"))
}
