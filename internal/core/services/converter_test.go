package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimushu/altera-bootloader/internal/adapters/driven/digest"
	"github.com/kimushu/altera-bootloader/internal/adapters/driven/intelhex"
	"github.com/kimushu/altera-bootloader/internal/core/domain"
	"github.com/kimushu/altera-bootloader/internal/core/ports/driven"
	"github.com/kimushu/altera-bootloader/internal/core/ports/driving"
)

// mockEmitter implements driven.RecordEmitter for testing.
type mockEmitter struct {
	err   error
	image domain.MemoryImage
	depth int
	calls int
}

func (m *mockEmitter) Emit(_ io.Writer, image domain.MemoryImage, depth int) (*driven.EmitResult, error) {
	m.calls++
	m.image = image
	m.depth = depth
	if m.err != nil {
		return nil, m.err
	}
	return &driven.EmitResult{DataRecords: image.Len()}, nil
}

func newConverter() *ConverterService {
	return NewConverterService(intelhex.NewParser(), intelhex.NewEmitter(), digest.NewBlake3Hasher())
}

func convert(t *testing.T, input string, opts domain.ConvertOptions) ([]string, *driving.ConversionReport) {
	t.Helper()
	var out bytes.Buffer
	report, err := newConverter().Convert(context.Background(), strings.NewReader(input), &out, opts)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"), report
}

func TestConverterService_EndToEnd(t *testing.T) {
	lines, report := convert(t, ":0400000001020304F4\n", domain.DefaultConvertOptions())

	assert.Equal(t, []string{
		":020000020000FC",
		":0400000004030201F2",
		":00000001FF",
	}, lines)
	assert.Equal(t, 1, report.Records)
	assert.Equal(t, 5, report.Bytes)
	assert.Equal(t, 1, report.Words)
	assert.Equal(t, 1, report.DroppedBytes)
	assert.Nil(t, report.Warning)
	assert.NotEmpty(t, report.Digest)
}

func TestConverterService_BigEndian(t *testing.T) {
	opts := domain.ConvertOptions{Endianness: domain.BigEndian}

	lines, report := convert(t, ":0400000001020304F4\n:00000001FF\n", opts)

	assert.Equal(t, ":0400000001020304F2", lines[1])
	assert.Equal(t, domain.BigEndian, report.Endianness)
	assert.True(t, report.SawEOF)
}

func TestConverterService_RecordCount(t *testing.T) {
	input := strings.Join([]string{
		":1000000000112233445566778899AABBCCDDEEFF78",
		":10001000000102030405060708090A0B0C0D0E0F68",
		":00000001FF",
	}, "\n")

	opts := domain.DefaultConvertOptions()
	opts.TrimChecksum = true
	lines, report := convert(t, input, opts)

	assert.Equal(t, 32, report.Bytes)
	assert.Equal(t, 8, report.Words)
	assert.Len(t, lines, 8+2)
	assert.Equal(t, ":040000003322110096", lines[1])
}

func TestConverterService_DepthPadding(t *testing.T) {
	input := ":0800000001020304050607082C\n:00000001FF\n"
	opts := domain.ConvertOptions{Endianness: domain.LittleEndian, Depth: 5, TrimChecksum: true}

	lines, report := convert(t, input, opts)

	require.Len(t, lines, 7)
	assert.Equal(t, 2, report.Words)
	assert.Equal(t, 3, report.PaddingWords)
	assert.Nil(t, report.Warning)
	for _, line := range lines[3:6] {
		assert.Equal(t, "00000000", line[9:17])
	}
}

func TestConverterService_DepthWarning(t *testing.T) {
	input := ":14000000" + strings.Repeat("00", 20) + "EC\n:00000001FF\n"
	opts := domain.ConvertOptions{Endianness: domain.LittleEndian, Depth: 2, TrimChecksum: true}

	lines, report := convert(t, input, opts)

	assert.Len(t, lines, 5+2, "no truncation")
	require.NotNil(t, report.Warning)
	assert.Equal(t, "warning: Memory depth (5) exceeds maximum memory depth (2)", report.Warning.String())
	assert.Zero(t, report.PaddingWords)
}

func TestConverterService_InvalidRecordIsFatal(t *testing.T) {
	var out bytes.Buffer

	_, err := newConverter().Convert(context.Background(), strings.NewReader(":0100000001F\n"), &out, domain.DefaultConvertOptions())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRecordFormat))
	assert.Zero(t, out.Len(), "nothing written before the failure")
}

func TestConverterService_InvalidOptions(t *testing.T) {
	var out bytes.Buffer
	opts := domain.ConvertOptions{Endianness: domain.LittleEndian, Depth: -3}

	_, err := newConverter().Convert(context.Background(), strings.NewReader(""), &out, opts)

	assert.True(t, errors.Is(err, domain.ErrInvalidOption))
}

func TestConverterService_NotConfigured(t *testing.T) {
	service := NewConverterService(nil, nil, nil)

	_, err := service.Inspect(context.Background(), strings.NewReader(""), domain.DefaultConvertOptions())

	assert.EqualError(t, err, "converter not configured")
}

func TestConverterService_EmitError(t *testing.T) {
	emitter := &mockEmitter{err: errors.New("broken pipe")}
	service := NewConverterService(intelhex.NewParser(), emitter, nil)

	_, err := service.Convert(context.Background(), strings.NewReader(":0400000001020304F4\n"), io.Discard, domain.DefaultConvertOptions())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "emit failed")
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestConverterService_PassesImageToEmitter(t *testing.T) {
	emitter := &mockEmitter{}
	service := NewConverterService(intelhex.NewParser(), emitter, nil)
	opts := domain.ConvertOptions{Endianness: domain.BigEndian, Depth: 16}

	report, err := service.Convert(context.Background(), strings.NewReader(":04000000CAFEBABE00\n"), io.Discard, opts)

	require.NoError(t, err)
	assert.Equal(t, 1, emitter.calls)
	assert.Equal(t, []uint32{0xCAFEBABE}, emitter.image.Words)
	assert.Equal(t, 16, emitter.depth)
	assert.Empty(t, report.Digest, "no hasher configured")
}

func TestConverterService_Inspect(t *testing.T) {
	input := "junk\n:0400000001020304F4\n:00000001FF\n"

	report, err := newConverter().Inspect(context.Background(), strings.NewReader(input), domain.DefaultConvertOptions())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Records)
	assert.Equal(t, 1, report.SkippedLines)
	assert.Equal(t, 1, report.Words)
}

func TestConverterService_DigestIgnoresInputEndianness(t *testing.T) {
	service := newConverter()

	le, err := service.Inspect(context.Background(), strings.NewReader(":0400000004030201F2\n"), domain.DefaultConvertOptions())
	require.NoError(t, err)
	be, err := service.Inspect(context.Background(), strings.NewReader(":0400000001020304F2\n"),
		domain.ConvertOptions{Endianness: domain.BigEndian})
	require.NoError(t, err)

	assert.Equal(t, le.Digest, be.Digest)
}

// sixteenByteRecords holds two full records whose trailing checksum byte
// sits in the data field.
const sixteenByteRecords = ":10000000000102030405060708090A0B0C0D0E0F78\n" +
	":10001000101112131415161718191A1B1C1D1E1F68\n" +
	":00000001FF\n"

// shortRecords holds records of 6 and 2 data bytes.
const shortRecords = ":06000000010203040506E5\n:020006000708E9\n:00000001FF\n"

func TestConverterService_RecordGrouping(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		opts        domain.ConvertOptions
		wantWords   []uint32
		wantDropped int
	}{
		{
			name:  "per record by default",
			input: sixteenByteRecords,
			opts:  domain.DefaultConvertOptions(),
			wantWords: []uint32{
				0x03020100, 0x07060504, 0x0B0A0908, 0x0F0E0D0C,
				0x13121110, 0x17161514, 0x1B1A1918, 0x1F1E1D1C,
			},
			wantDropped: 2,
		},
		{
			name:  "per record big endian",
			input: sixteenByteRecords,
			opts:  domain.ConvertOptions{Endianness: domain.BigEndian},
			wantWords: []uint32{
				0x00010203, 0x04050607, 0x08090A0B, 0x0C0D0E0F,
				0x10111213, 0x14151617, 0x18191A1B, 0x1C1D1E1F,
			},
			wantDropped: 2,
		},
		{
			name:  "joined stream",
			input: sixteenByteRecords,
			opts:  domain.ConvertOptions{Endianness: domain.LittleEndian, JoinRecords: true},
			wantWords: []uint32{
				0x03020100, 0x07060504, 0x0B0A0908, 0x0F0E0D0C,
				0x12111078, 0x16151413, 0x1A191817, 0x1E1D1C1B,
			},
			wantDropped: 2,
		},
		{
			name:        "sizes not a multiple of four",
			input:       shortRecords,
			opts:        domain.DefaultConvertOptions(),
			wantWords:   []uint32{0x04030201},
			wantDropped: 6,
		},
		{
			name:        "sizes not a multiple of four trimmed",
			input:       shortRecords,
			opts:        domain.ConvertOptions{Endianness: domain.LittleEndian, TrimChecksum: true},
			wantWords:   []uint32{0x04030201},
			wantDropped: 4,
		},
		{
			name:        "sizes not a multiple of four trimmed and joined",
			input:       shortRecords,
			opts:        domain.ConvertOptions{Endianness: domain.LittleEndian, TrimChecksum: true, JoinRecords: true},
			wantWords:   []uint32{0x04030201, 0x08070605},
			wantDropped: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emitter := &mockEmitter{}
			service := NewConverterService(intelhex.NewParser(), emitter, nil)

			report, err := service.Convert(context.Background(), strings.NewReader(tt.input), io.Discard, tt.opts)

			require.NoError(t, err)
			assert.Equal(t, tt.wantWords, emitter.image.Words)
			assert.Equal(t, tt.wantDropped, report.DroppedBytes)
			assert.Equal(t, len(tt.wantWords), report.Words)
			assert.Equal(t, tt.opts.JoinRecords, report.JoinRecords)
		})
	}
}

func TestConverterService_PerRecordOutput(t *testing.T) {
	lines, report := convert(t, sixteenByteRecords, domain.DefaultConvertOptions())

	require.Len(t, lines, 8+2)
	assert.Equal(t, 34, report.Bytes)
	assert.Equal(t, ":0400040013121110B2", lines[5])
	assert.Equal(t, ":040007001F1E1D1C7F", lines[8])
}
