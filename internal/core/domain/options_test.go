package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConvertOptions(t *testing.T) {
	opts := DefaultConvertOptions()

	assert.Equal(t, LittleEndian, opts.Endianness)
	assert.Zero(t, opts.Depth)
	assert.False(t, opts.TrimChecksum)
	assert.NoError(t, opts.Validate())
}

func TestConvertOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    ConvertOptions
		wantErr bool
	}{
		{"big endian with depth", ConvertOptions{Endianness: BigEndian, Depth: 1024}, false},
		{"negative depth", ConvertOptions{Endianness: LittleEndian, Depth: -1}, true},
		{"empty endianness", ConvertOptions{}, true},
		{"unknown endianness", ConvertOptions{Endianness: "mixed"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidOption))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckDepth(t *testing.T) {
	img := MemoryImage{Words: make([]uint32, 5)}

	assert.Nil(t, CheckDepth(img, 0), "zero depth never warns")
	assert.Nil(t, CheckDepth(img, 5), "equal depth does not warn")
	assert.Nil(t, CheckDepth(img, 8))

	w := CheckDepth(img, 2)
	if assert.NotNil(t, w) {
		assert.Equal(t, 5, w.Depth)
		assert.Equal(t, 2, w.MaxDepth)
	}
}

func TestDepthExceededWarning_String(t *testing.T) {
	w := DepthExceededWarning{Depth: 5, MaxDepth: 2}

	assert.Equal(t, "warning: Memory depth (5) exceeds maximum memory depth (2)", w.String())
}

func TestPaddingWords(t *testing.T) {
	img := MemoryImage{Words: make([]uint32, 2)}

	assert.Equal(t, 3, PaddingWords(img, 5))
	assert.Equal(t, 0, PaddingWords(img, 2))
	assert.Equal(t, 0, PaddingWords(img, 1))
	assert.Equal(t, 0, PaddingWords(img, 0))
}
