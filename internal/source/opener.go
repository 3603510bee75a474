package source

import (
	"errors"
	"io"

	"filestats/pkg/stats"

	"github.com/spf13/afero"
)

// ErrNotRegularFile is the cause reported for directories, devices and other non-files
var ErrNotRegularFile = errors.New("not a regular file")

// Opener opens text sources from a filesystem
type Opener struct {
	fs afero.Fs
}

// NewOpener creates an opener over fs
func NewOpener(fs afero.Fs) *Opener {
	return &Opener{fs: fs}
}

// NewOSOpener creates an opener over the host filesystem
func NewOSOpener() *Opener {
	return NewOpener(afero.NewOsFs())
}

// Open validates that path is a regular file and opens it for sequential reading.
// Failures are *stats.Error values of kind stats.ErrSourceUnreadable.
func (o *Opener) Open(path string) (*File, error) {
	info, err := o.fs.Stat(path)
	if err != nil {
		return nil, stats.Unreadable(path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, stats.Unreadable(path, ErrNotRegularFile)
	}

	f, err := o.fs.Open(path)
	if err != nil {
		return nil, stats.Unreadable(path, err)
	}

	return &File{
		CountingReader: NewCountingReader(f),
		file:           f,
		name:           path,
		size:           info.Size(),
	}, nil
}

// File is an opened source. Reads go through a CountingReader.
type File struct {
	*CountingReader
	file afero.File
	name string
	size int64
}

// Name returns the path the file was opened with
func (f *File) Name() string {
	return f.name
}

// Size returns the size reported when the file was opened
func (f *File) Size() int64 {
	return f.size
}

// Close closes the underlying file
func (f *File) Close() error {
	return f.file.Close()
}

// CountingReader wraps an io.Reader and tracks the number of bytes read
type CountingReader struct {
	r     io.Reader
	count int64
}

// NewCountingReader creates a new CountingReader wrapping r
func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{r: r}
}

func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.count += int64(n)
	return n, err
}

// BytesRead returns the total number of bytes read so far
func (c *CountingReader) BytesRead() int64 {
	return c.count
}
