package analytics

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osupdater/internal/app/console"
	"osupdater/internal/domain/analytics"
)

func TestScale(t *testing.T) {
	assert.Equal(t, 0, scale(0, 10))
	assert.Equal(t, 0, scale(5, 0))
	assert.Equal(t, barWidth, scale(10, 10))
	assert.Equal(t, barWidth/2, scale(5, 10))
	assert.Equal(t, 1, scale(1, 1000))
}

func TestRender(t *testing.T) {
	color.NoColor = true

	view := console.AnalyticsView{
		AppName:  "HidupBanjaran",
		Selected: analytics.AllVersions,
		Options:  []string{analytics.AllVersions, "1.0.0"},
		Bars: []analytics.Bar{
			{Label: "3 Maret 2024", Version: "1.0.0", Count: 4},
			{Label: "4 Maret 2024", Version: "1.0.0", Count: 2},
		},
		Total: 6,
		Max:   4,
	}

	var buf bytes.Buffer
	require.NoError(t, render(&buf, view))

	out := buf.String()
	assert.Contains(t, out, "Приложение: HidupBanjaran")
	assert.Contains(t, out, "3 Maret 2024")
	assert.Contains(t, out, "Всего установок: 6")
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, console.AnalyticsView{AppName: "app", Selected: analytics.AllVersions}))
	assert.Contains(t, buf.String(), "Установок нет")
}
