package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kimushu/altera-bootloader/internal/core/domain"
	"github.com/kimushu/altera-bootloader/internal/core/ports/driven"
	"github.com/kimushu/altera-bootloader/internal/core/ports/driving"
	"github.com/kimushu/altera-bootloader/internal/logger"
)

// Ensure ConverterService implements the interface.
var _ driving.Converter = (*ConverterService)(nil)

// ConverterService runs the parse, assemble and emit pipeline.
type ConverterService struct {
	parser  driven.RecordParser
	emitter driven.RecordEmitter
	hasher  driven.ImageHasher // Optional: can be nil
}

// NewConverterService creates a new converter service.
// hasher may be nil, in which case reports carry no digest.
func NewConverterService(parser driven.RecordParser, emitter driven.RecordEmitter, hasher driven.ImageHasher) *ConverterService {
	return &ConverterService{
		parser:  parser,
		emitter: emitter,
		hasher:  hasher,
	}
}

// Convert reads records from in and writes the word-addressed stream to out.
// A depth warning is returned on the report, never as an error.
func (s *ConverterService) Convert(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	opts domain.ConvertOptions,
) (*driving.ConversionReport, error) {
	image, report, err := s.assemble(ctx, in, opts)
	if err != nil {
		return nil, err
	}

	if report.Warning != nil {
		logger.Warn("memory depth %d exceeds configured depth %d", report.Warning.Depth, report.Warning.MaxDepth)
	}

	logger.Section("Emit")
	if _, err := s.emitter.Emit(out, image, opts.Depth); err != nil {
		return nil, fmt.Errorf("emit failed: %w", err)
	}

	return report, nil
}

// Inspect parses and assembles in without writing any records.
func (s *ConverterService) Inspect(
	ctx context.Context,
	in io.Reader,
	opts domain.ConvertOptions,
) (*driving.ConversionReport, error) {
	_, report, err := s.assemble(ctx, in, opts)
	return report, err
}

func (s *ConverterService) assemble(
	ctx context.Context,
	in io.Reader,
	opts domain.ConvertOptions,
) (domain.MemoryImage, *driving.ConversionReport, error) {
	if s.parser == nil || s.emitter == nil {
		return domain.MemoryImage{}, nil, errors.New("converter not configured")
	}
	if err := opts.Validate(); err != nil {
		return domain.MemoryImage{}, nil, err
	}

	logger.Section("Parse")
	parsed, err := s.parser.Parse(ctx, in, opts.TrimChecksum)
	if err != nil {
		return domain.MemoryImage{}, nil, fmt.Errorf("parse failed: %w", err)
	}
	logger.Debug("%d records, %d skipped lines, %d bytes", parsed.Records, parsed.Skipped, len(parsed.Bytes))
	if !parsed.SawEOF {
		logger.Debug("input ended without an end of file record")
	}

	var (
		image   domain.MemoryImage
		dropped int
	)
	if opts.JoinRecords {
		image, dropped = domain.Assemble(parsed.Bytes, opts.Endianness)
	} else {
		image, dropped = domain.AssembleRecords(parsed.Chunks, opts.Endianness)
	}
	if dropped > 0 {
		logger.Debug("dropped %d bytes that do not fill a word", dropped)
	}
	logger.Info("assembled %d words (%s endian)", image.Len(), opts.Endianness)

	report := &driving.ConversionReport{
		Records:      parsed.Records,
		SkippedLines: parsed.Skipped,
		Bytes:        len(parsed.Bytes),
		Words:        image.Len(),
		DroppedBytes: dropped,
		PaddingWords: domain.PaddingWords(image, opts.Depth),
		Depth:        opts.Depth,
		Endianness:   opts.Endianness,
		JoinRecords:  opts.JoinRecords,
		SawEOF:       parsed.SawEOF,
		Warning:      domain.CheckDepth(image, opts.Depth),
	}
	if s.hasher != nil {
		report.Digest = s.hasher.Sum(image, opts.Depth)
	}

	return image, report, nil
}
