package resources

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"sync"

	"fyne.io/fyne/v2"
)

// LogoVariant selects the tray and window icon colour.
type LogoVariant string

const (
	LogoActive LogoVariant = "active"
	LogoPaused LogoVariant = "paused"
)

const (
	beepName       = "beep.wav"
	beepSampleRate = 22050
	beepFrequency  = 880
	beepDuration   = 0.6
	logoSize       = 64
)

var resourceCache sync.Map

// Beep returns the mode change cue as a WAV resource.
func Beep() (fyne.Resource, error) {
	return loadResource(beepName, func() ([]byte, error) {
		return encodeBeep(), nil
	})
}

// MustBeep returns the cue or panics on error.
func MustBeep() fyne.Resource {
	resource, err := Beep()
	if err != nil {
		panic(err)
	}
	return resource
}

// Logo returns the application icon for the given variant.
func Logo(variant LogoVariant) (fyne.Resource, error) {
	return loadResource(fmt.Sprintf("logo_%s.png", variant), func() ([]byte, error) {
		return encodeLogo(variant)
	})
}

// MustLogo returns the icon or panics on error.
func MustLogo(variant LogoVariant) fyne.Resource {
	resource, err := Logo(variant)
	if err != nil {
		panic(err)
	}
	return resource
}

func loadResource(name string, build func() ([]byte, error)) (fyne.Resource, error) {
	if cached, ok := resourceCache.Load(name); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := build()
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", name, err)
	}

	resource := fyne.NewStaticResource(name, data)
	resourceCache.Store(name, resource)
	return resource, nil
}

// encodeBeep renders a short sine tone as 16-bit mono PCM in a RIFF container.
func encodeBeep() []byte {
	samples := int(beepSampleRate * beepDuration)
	dataSize := samples * 2

	var buf bytes.Buffer
	buf.Grow(44 + dataSize)
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(beepSampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(beepSampleRate*2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(dataSize))

	for i := 0; i < samples; i++ {
		t := float64(i) / beepSampleRate
		envelope := 1 - float64(i)/float64(samples)
		value := math.Sin(2*math.Pi*beepFrequency*t) * envelope * 0.6
		_ = binary.Write(&buf, binary.LittleEndian, int16(value*math.MaxInt16))
	}
	return buf.Bytes()
}

func encodeLogo(variant LogoVariant) ([]byte, error) {
	fill := color.NRGBA{R: 107, G: 22, B: 187, A: 255}
	if variant == LogoPaused {
		fill = color.NRGBA{R: 140, G: 140, B: 150, A: 255}
	}

	img := image.NewNRGBA(image.Rect(0, 0, logoSize, logoSize))
	center := float64(logoSize-1) / 2
	radius := float64(logoSize) / 2
	for y := 0; y < logoSize; y++ {
		for x := 0; x < logoSize; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			distance := math.Hypot(dx, dy)
			switch {
			case distance <= radius*0.55:
				img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			case distance <= radius:
				img.SetNRGBA(x, y, fill)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode logo: %w", err)
	}
	return buf.Bytes(), nil
}
