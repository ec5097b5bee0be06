package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsLine_GroupsDigits(t *testing.T) {
	t.Cleanup(func() { SetLocale(LocaleEnglish) })
	SetLocale(LocaleEnglish)

	assert.Equal(t, "12 / 28,431 Watched • 1,204 results", StatsLine(12, 28431, 1204))
}

func TestSetLocale(t *testing.T) {
	t.Cleanup(func() { SetLocale(LocaleEnglish) })

	assert.False(t, SetLocale(Locale("fr")))
	assert.Equal(t, LocaleEnglish, CurrentLocale())

	assert.True(t, SetLocale(LocaleChinese))
	assert.Equal(t, "动画清单", Active().Header.Title)
	assert.Equal(t, "12 集", Episodes(12))
}

func TestEveryLocaleIsComplete(t *testing.T) {
	for _, loc := range AvailableLocales() {
		s := translations[loc]
		assert.NotEmpty(t, s.Header.StatsTemplate, loc)
		assert.NotEmpty(t, s.Export.EmptyWatched, loc)
		assert.NotEmpty(t, s.Tags.AllTags, loc)
		assert.NotEmpty(t, s.Hint.Browse, loc)
	}
}

func TestThemeChanged(t *testing.T) {
	t.Cleanup(func() { SetLocale(LocaleEnglish) })
	SetLocale(LocaleEnglish)

	assert.Equal(t, "Theme: green", ThemeChanged(true))
	assert.Equal(t, "Theme: dark", ThemeChanged(false))
}
