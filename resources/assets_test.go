package resources

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeepIsWav(t *testing.T) {
	beep, err := Beep()
	require.NoError(t, err)

	data := beep.Content()
	require.Greater(t, len(data), 44)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, uint32(len(data)-8), binary.LittleEndian.Uint32(data[4:8]))
	assert.Equal(t, uint32(len(data)-44), binary.LittleEndian.Uint32(data[40:44]))
	assert.Equal(t, "beep.wav", beep.Name())
}

func TestBeepIsCached(t *testing.T) {
	assert.Same(t, MustBeep(), MustBeep())
}

func TestLogoVariantsDecode(t *testing.T) {
	for _, variant := range []LogoVariant{LogoActive, LogoPaused} {
		t.Run(string(variant), func(t *testing.T) {
			logo := MustLogo(variant)
			img, err := png.Decode(bytes.NewReader(logo.Content()))
			require.NoError(t, err)
			assert.Equal(t, logoSize, img.Bounds().Dx())
			assert.Equal(t, logoSize, img.Bounds().Dy())
		})
	}

	assert.NotEqual(t, MustLogo(LogoActive).Content(), MustLogo(LogoPaused).Content())
}
