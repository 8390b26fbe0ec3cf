package dockerline

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"regexp"
	"strings"
)

const (
	// ChunkSize is the number of base64 characters echoed per line.
	ChunkSize = 76

	// FieldWidth is the padded width of a quoted chunk. It is derived from
	// ChunkSize so a full chunk plus its two quotes never needs padding.
	FieldWidth = ChunkSize + 2

	// DefaultVariable names the environment variable holding the target
	// filename inside the build script.
	DefaultVariable = "ZIG_ARCHIVE_SIGNATURE_BASE64_FILENAME"

	// DefaultIndent is the leading whitespace of every rendered line.
	DefaultIndent = "    "

	// Continuation ends every line so the echoes chain in one RUN block.
	Continuation = `&& \`

	redirectCreate = " >"
	redirectAppend = ">>"
)

var variablePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateVariable reports whether name can be used as a shell variable name.
func ValidateVariable(name string) error {
	if !variablePattern.MatchString(name) {
		return fmt.Errorf("invalid shell variable name %q", name)
	}
	return nil
}

// Encode returns the standard base64 encoding of data without line breaks.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Chunk splits s into consecutive pieces of ChunkSize characters.
// The last piece may be shorter. Empty input yields no chunks.
func Chunk(s string) []string {
	chunks := make([]string, 0, (len(s)+ChunkSize-1)/ChunkSize)
	for i := 0; i < len(s); i += ChunkSize {
		end := min(i+ChunkSize, len(s))
		chunks = append(chunks, s[i:end])
	}
	return chunks
}

// Formatter renders chunks as shell echo lines.
type Formatter struct {
	Indent   string
	Variable string
}

// NewFormatter returns a Formatter using DefaultIndent and DefaultVariable.
func NewFormatter() *Formatter {
	return &Formatter{
		Indent:   DefaultIndent,
		Variable: DefaultVariable,
	}
}

// Line renders a single chunk. The first line truncates the target file,
// later ones append to it.
func (f *Formatter) Line(chunk string, first bool) string {
	redirect := redirectAppend
	if first {
		redirect = redirectCreate
	}
	quoted := "'" + chunk + "'"
	return fmt.Sprintf("%secho %-*s %s %s", f.Indent, FieldWidth, quoted, redirect, f.tail())
}

// Lines renders every chunk of the already encoded text in order.
func (f *Formatter) Lines(encoded string) []string {
	chunks := Chunk(encoded)
	lines := make([]string, len(chunks))
	for i, chunk := range chunks {
		lines[i] = f.Line(chunk, i == 0)
	}
	return lines
}

// Render encodes data and writes one newline-terminated line per chunk to w.
// It returns the number of lines written.
func (f *Formatter) Render(w io.Writer, data []byte) (int, error) {
	bw := bufio.NewWriter(w)
	lines := f.Lines(Encode(data))
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return 0, fmt.Errorf("write line: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("flush output: %w", err)
	}
	return len(lines), nil
}

func (f *Formatter) tail() string {
	variable := f.Variable
	if variable == "" {
		variable = DefaultVariable
	}
	var b strings.Builder
	b.WriteString(`"${`)
	b.WriteString(variable)
	b.WriteString(`}" `)
	b.WriteString(Continuation)
	return b.String()
}
