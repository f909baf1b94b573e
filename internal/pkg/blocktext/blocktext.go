// Package blocktext reads the line-oriented "KEY: value" text used by the
// catalog and save files. Records are separated by blank lines.
package blocktext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Field is one "KEY: value" line
type Field struct {
	Key   string
	Value string
	Line  int
}

// Block is a run of non-blank lines
type Block []Field

// Lookup returns the value of the first field named key
func (b Block) Lookup(key string) (string, bool) {
	for _, f := range b {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// SyntaxError reports a non-blank line without a colon
type SyntaxError struct {
	Line int
	Text string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: expected KEY: value, got %q", e.Line, e.Text)
}

// AsSyntaxError unwraps err to a *SyntaxError
func AsSyntaxError(err error) (*SyntaxError, bool) {
	var syntaxErr *SyntaxError
	ok := errors.As(err, &syntaxErr)
	return syntaxErr, ok
}

// SplitField splits a line on its first colon, trimming both halves
func SplitField(line string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}

// ReadBlocks parses r into blank-line separated blocks. A malformed line
// yields a *SyntaxError; read failures are returned unchanged.
func ReadBlocks(r io.Reader) ([]Block, error) {
	var (
		blocks  []Block
		current Block
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}

		key, value, ok := SplitField(line)
		if !ok {
			return nil, &SyntaxError{Line: lineNo, Text: line}
		}
		current = append(current, Field{Key: key, Value: value, Line: lineNo})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks, nil
}

// Writer emits "KEY: value" lines
type Writer struct {
	sb strings.Builder
}

// Field writes one line
func (w *Writer) Field(key, value string) {
	w.sb.WriteString(key)
	w.sb.WriteString(": ")
	w.sb.WriteString(value)
	w.sb.WriteByte('\n')
}

// Int writes an integer field
func (w *Writer) Int(key string, value int) {
	w.Field(key, strconv.Itoa(value))
}

// List writes a comma-joined list field
func (w *Writer) List(key string, values []string) {
	w.Field(key, strings.Join(values, ","))
}

// EndBlock writes the blank separator line
func (w *Writer) EndBlock() {
	w.sb.WriteByte('\n')
}

func (w *Writer) String() string {
	return w.sb.String()
}
