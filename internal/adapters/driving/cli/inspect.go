package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kimushu/altera-bootloader/internal/adapters/driven/stream"
	"github.com/kimushu/altera-bootloader/internal/core/ports/driving"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarise the memory image without converting",
	Long: `Parses the input exactly as a conversion would and prints record, byte and
word counts, the padding needed for --depth and a BLAKE3 digest of the
image that would be written.`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, _ []string) error {
	if converter == nil {
		return errors.New("converter not configured")
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	in, err := stream.OpenInput(inputPath, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close()

	report, err := converter.Inspect(cmd.Context(), in, opts)
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}

	name := inputPath
	if stream.IsStdio(name) {
		name = "(stdin)"
	}
	renderReport(cmd.OutOrStdout(), name, report)
	return nil
}

// reportStyles holds the lipgloss styles used by the summary. Colours are
// dropped automatically when the writer is not a terminal.
type reportStyles struct {
	title   lipgloss.Style
	key     lipgloss.Style
	value   lipgloss.Style
	warning lipgloss.Style
	ok      lipgloss.Style
}

func newReportStyles(w io.Writer) reportStyles {
	r := lipgloss.NewRenderer(w)
	return reportStyles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		key:     r.NewStyle().Width(12).Foreground(lipgloss.Color("#6C7086")),
		value:   r.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
		warning: r.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		ok:      r.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
	}
}

func renderReport(w io.Writer, name string, report *driving.ConversionReport) {
	s := newReportStyles(w)

	depth := "none"
	if report.Depth > 0 {
		depth = fmt.Sprintf("%d words", report.Depth)
	}
	grouping := "per record"
	if report.JoinRecords {
		grouping = "joined"
	}
	eof := s.ok.Render("yes")
	if !report.SawEOF {
		eof = s.warning.Render("missing")
	}

	rows := [][2]string{
		{"Input", s.value.Render(name)},
		{"Records", s.value.Render(fmt.Sprint(report.Records))},
		{"Skipped", s.value.Render(fmt.Sprint(report.SkippedLines))},
		{"Bytes", s.value.Render(fmt.Sprint(report.Bytes))},
		{"Words", s.value.Render(fmt.Sprint(report.Words))},
		{"Dropped", s.value.Render(fmt.Sprintf("%d bytes", report.DroppedBytes))},
		{"Endian", s.value.Render(report.Endianness.String())},
		{"Grouping", s.value.Render(grouping)},
		{"Depth", s.value.Render(depth)},
		{"Padding", s.value.Render(fmt.Sprintf("%d words", report.PaddingWords))},
		{"EOF record", eof},
	}
	if report.Digest != "" {
		rows = append(rows, [2]string{"BLAKE3", s.value.Render(report.Digest)})
	}

	var b strings.Builder
	b.WriteString(s.title.Render("Memory image"))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(s.key.Render(row[0]))
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	if report.Warning != nil {
		b.WriteString(s.warning.Render(report.Warning.String()))
		b.WriteString("\n")
	}
	fmt.Fprint(w, b.String())
}
