package plot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", FormatPNG},
		{"PNG", FormatPNG},
		{" svg ", FormatSVG},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
		})
	}

	_, err := ParseFormat("gif")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gif")
}

func TestSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "chart.png")

	c, err := TemperatureChart(sampleWeather(), TemperatureOptions{Title: "t", Width: 400, Height: 300})
	require.NoError(t, err)
	require.NoError(t, Save(path, FormatPNG, c))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")), "output is not a PNG")
}
