package stats

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// DefaultChunkSize is the number of source bytes requested per block
const DefaultChunkSize = 64 * 1024

// maxEmptyReads bounds consecutive (0, nil) reads before the source is declared stuck
const maxEmptyReads = 100

var errTruncated = errors.New("truncated multi-byte sequence at end of input")

// ChunkReader pulls bounded blocks of UTF-8 text from a source.
//
// A block never ends inside a multi-byte sequence: trailing bytes of an incomplete
// sequence are kept and prepended to the next read, so callers only ever see whole
// code points. At most one block plus utf8.UTFMax-1 bytes is held in memory.
type ChunkReader struct {
	// StripBOM drops a single leading U+FEFF from the first block.
	StripBOM bool

	src        io.Reader
	size       int
	buf        []byte
	carry      int   // bytes of an incomplete sequence held at buf[:carry]
	offset     int64 // source bytes already handed out in blocks
	eof        bool
	bomChecked bool
	err        error
}

// NewChunkReader creates a ChunkReader that requests up to size bytes per read.
// A non-positive size selects DefaultChunkSize.
func NewChunkReader(r io.Reader, size int) *ChunkReader {
	if r == nil {
		panic("stats: chunk reader source cannot be nil")
	}
	if size <= 0 {
		size = DefaultChunkSize
	}

	return &ChunkReader{
		src:  r,
		size: size,
		buf:  make([]byte, size+utf8.UTFMax-1),
	}
}

// Next returns the next non-empty block of text in source order.
// It returns "", io.EOF once the source is exhausted. Read failures are reported
// as ErrSourceUnreadable and invalid input as ErrDecodeFailure; both are sticky.
func (c *ChunkReader) Next() (string, error) {
	if c.err != nil {
		return "", c.err
	}

	empty := 0
	for {
		if c.eof {
			if c.carry > 0 {
				return "", c.fail(decodeFailure(c.offset, errTruncated))
			}
			return "", io.EOF
		}

		n, err := c.src.Read(c.buf[c.carry : c.carry+c.size])
		total := c.carry + n
		if err != nil {
			if err != io.EOF {
				return "", c.fail(&Error{Kind: ErrSourceUnreadable, Offset: c.offset + int64(total), Err: err})
			}
			c.eof = true
		}

		if n == 0 && err == nil {
			empty++
			if empty >= maxEmptyReads {
				return "", c.fail(&Error{Kind: ErrSourceUnreadable, Offset: c.offset + int64(total), Err: io.ErrNoProgress})
			}
			continue
		}
		empty = 0

		end := completeLen(c.buf[:total])
		if i := invalidAt(c.buf[:end]); i >= 0 {
			return "", c.fail(decodeFailure(c.offset+int64(i), fmt.Errorf("invalid UTF-8 byte 0x%02x", c.buf[i])))
		}

		block := string(c.buf[:end])
		c.carry = copy(c.buf, c.buf[end:total])
		c.offset += int64(end)

		if c.StripBOM && !c.bomChecked && block != "" {
			c.bomChecked = true
			block = strings.TrimPrefix(block, "\uFEFF")
		}
		if block != "" {
			return block, nil
		}
	}
}

// Offset returns the number of source bytes handed out so far
func (c *ChunkReader) Offset() int64 {
	return c.offset
}

func (c *ChunkReader) fail(err error) error {
	c.err = err
	return err
}

// completeLen returns the length of the longest prefix of p that does not stop
// inside a multi-byte sequence.
func completeLen(p []byte) int {
	start := len(p) - 1
	for start > 0 && start > len(p)-utf8.UTFMax && !utf8.RuneStart(p[start]) {
		start--
	}
	if start < 0 || utf8.FullRune(p[start:]) {
		return len(p)
	}
	return start
}

// invalidAt returns the index of the first byte of p that is not valid UTF-8, or -1
func invalidAt(p []byte) int {
	if utf8.Valid(p) {
		return -1
	}
	for i := 0; i < len(p); {
		r, w := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && w == 1 {
			return i
		}
		i += w
	}
	return -1
}
