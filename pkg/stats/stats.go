// Package stats computes character, line, space, tab, word and special character
// counts over a text stream in a single forward pass with bounded memory.
//
// The source is pulled through a ChunkReader one block at a time and every code
// point is folded into a FileStats value with Step. Classifier state is carried in
// an explicit State value, so block boundaries never need special handling: a CRLF
// pair or a word split across two blocks is counted exactly as if it were not.
//
//	fs, err := stats.Compute(strings.NewReader("Hello world\nSecond line"), stats.Options{})
//	// fs.Lines == 2, fs.Words == 4
package stats

import (
	"context"
	"errors"
	"io"
	"time"

	"filestats/pkg/logger"

	"github.com/sirupsen/logrus"
)

// FileStats holds the counters computed for one source
type FileStats struct {
	Characters int64 `json:"characters" yaml:"characters"`
	Lines      int64 `json:"lines" yaml:"lines"`
	Spaces     int64 `json:"spaces" yaml:"spaces"`
	Tabs       int64 `json:"tabs" yaml:"tabs"`
	Words      int64 `json:"words" yaml:"words"`
	Special    int64 `json:"special" yaml:"special"`
}

// Options controls a computation
type Options struct {
	ChunkSize int    // bytes per read, DefaultChunkSize when zero
	Encoding  string // see LookupEncoding, DefaultEncoding when empty
	Name      string // source name reported in errors and logs
}

// Compute reads r to the end and returns its statistics
func Compute(r io.Reader, opts Options) (FileStats, error) {
	return ComputeContext(context.Background(), r, opts)
}

// ComputeContext is Compute with a context checked between blocks.
// On any error no statistics are returned.
func ComputeContext(ctx context.Context, r io.Reader, opts Options) (FileStats, error) {
	enc, err := LookupEncoding(opts.Encoding)
	if err != nil {
		return FileStats{}, err
	}

	log := logger.Logger.WithFields(logrus.Fields{
		"source":     opts.Name,
		"encoding":   enc.Name,
		"chunk_size": opts.ChunkSize,
	})
	log.Debug("Computing statistics")
	started := time.Now()

	reader := enc.newChunkReader(r, opts.ChunkSize)

	var fs FileStats
	var st State
	blocks := 0
	for {
		if err := ctx.Err(); err != nil {
			return FileStats{}, err
		}

		block, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			err = withName(err, opts.Name)
			log.WithError(err).Debug("Computation failed")
			return FileStats{}, err
		}

		blocks++
		for _, ch := range block {
			fs, st = Step(fs, st, ch)
		}
	}
	fs = Finalize(fs, st)

	log.WithFields(logrus.Fields{
		"blocks":     blocks,
		"bytes":      reader.Offset(),
		"characters": fs.Characters,
		"duration":   time.Since(started).String(),
	}).Debug("Statistics computed")

	return fs, nil
}

func withName(err error, name string) error {
	var serr *Error
	if errors.As(err, &serr) && serr.Path == "" {
		serr.Path = name
	}
	return err
}
