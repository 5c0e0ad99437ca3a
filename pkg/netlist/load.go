package netlist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"
)

// ErrUnknownFormat is returned when the input is neither XML nor an
// s-expression netlist.
var ErrUnknownFormat = errors.New("netlist: unknown format")

// LoadFile opens and parses a netlist file.
func LoadFile(filename string) (*Netlist, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open netlist: %w", err)
	}
	defer file.Close()

	nl, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return nl, nil
}

// Load parses a netlist, picking the XML or s-expression reader from the
// first non-blank byte of input.
func Load(r io.Reader) (*Netlist, error) {
	br := bufio.NewReader(r)

	first, err := firstNonSpace(br)
	if err != nil {
		return nil, err
	}

	switch first {
	case '<':
		return ParseXML(br)
	case '(':
		return ParseSexp(br)
	default:
		return nil, fmt.Errorf("%w: unexpected leading %q", ErrUnknownFormat, first)
	}
}

// firstNonSpace skips a UTF-8 byte order mark and leading whitespace, then
// returns the next byte without consuming it.
func firstNonSpace(br *bufio.Reader) (byte, error) {
	if bom, err := br.Peek(3); err == nil && bytes.Equal(bom, utf8BOM) {
		br.Discard(3)
	}
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return 0, fmt.Errorf("%w: empty input", ErrUnknownFormat)
		}
		if err != nil {
			return 0, err
		}
		if unicode.IsSpace(rune(b)) {
			continue
		}
		return b, br.UnreadByte()
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}
