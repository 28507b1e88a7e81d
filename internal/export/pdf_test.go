package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF("We're no strangers to love. You know the rules and so do I.")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.True(t, bytes.Contains(data, []byte("%%EOF")))
}

func TestRenderPDF_Latin1(t *testing.T) {
	_, err := RenderPDF("Café crème, naïve façade")
	assert.NoError(t, err)
}

func TestRenderPDF_LongTextWraps(t *testing.T) {
	data, err := RenderPDF(strings.Repeat("A long sentence that keeps going. ", 400))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRenderPDF_EncodingViolation(t *testing.T) {
	for _, s := range []string{"日本", "smart “quotes”", "emoji 🎥"} {
		data, err := RenderPDF(s)
		assert.ErrorIs(t, err, ErrEncoding, s)
		assert.Nil(t, data)
	}
}

func TestRenderText(t *testing.T) {
	assert.Equal(t, []byte("日本 summary"), RenderText("日本 summary"))
}
