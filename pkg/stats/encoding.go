package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the encoding assumed when none is configured
const DefaultEncoding = "utf-8"

// Encoding describes how source bytes are turned into UTF-8 text.
// Strict UTF-8 sources are read as is; other encodings are transcoded
// on the fly before reaching the ChunkReader.
type Encoding struct {
	Name     string
	codec    encoding.Encoding // nil for strict UTF-8
	stripBOM bool
}

var encodings = map[string]Encoding{
	"utf-8":        {Name: "utf-8"},
	"utf-8-sig":    {Name: "utf-8-sig", stripBOM: true},
	"utf-16":       {Name: "utf-16", codec: unicode.UTF16(unicode.BigEndian, unicode.UseBOM)},
	"utf-16le":     {Name: "utf-16le", codec: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
	"utf-16be":     {Name: "utf-16be", codec: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
	"latin-1":      {Name: "latin-1", codec: charmap.ISO8859_1},
	"windows-1252": {Name: "windows-1252", codec: charmap.Windows1252},
}

var aliases = map[string]string{
	"utf8":       "utf-8",
	"utf8-sig":   "utf-8-sig",
	"utf-16-le":  "utf-16le",
	"utf-16-be":  "utf-16be",
	"latin1":     "latin-1",
	"iso-8859-1": "latin-1",
	"cp1252":     "windows-1252",
}

// LookupEncoding resolves an encoding by name. Names are case-insensitive
// and '_' is accepted in place of '-'.
func LookupEncoding(name string) (Encoding, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if key == "" {
		key = DefaultEncoding
	}
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}

	enc, ok := encodings[key]
	if !ok {
		return Encoding{}, fmt.Errorf("unsupported encoding %q (supported: %s)", name, strings.Join(EncodingNames(), ", "))
	}
	return enc, nil
}

// EncodingNames returns the canonical names of the supported encodings
func EncodingNames() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newChunkReader builds the ChunkReader for r, transcoding to UTF-8 when needed
func (e Encoding) newChunkReader(r io.Reader, size int) *ChunkReader {
	if e.codec != nil {
		r = transform.NewReader(r, e.codec.NewDecoder())
	}
	cr := NewChunkReader(r, size)
	cr.StripBOM = e.stripBOM
	return cr
}
