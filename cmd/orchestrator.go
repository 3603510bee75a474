package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"filestats/internal/config"
	"filestats/internal/report"
	"filestats/internal/source"
	"filestats/pkg/logger"
	"filestats/pkg/models"
	"filestats/pkg/stats"
	"filestats/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Orchestrator wires opening, computing and reporting for one file
type Orchestrator struct {
	config *models.Config
	opener *source.Opener
}

// NewOrchestrator creates a new orchestrator instance
func NewOrchestrator(config *models.Config, opener *source.Opener) *Orchestrator {
	return &Orchestrator{
		config: config,
		opener: opener,
	}
}

// Process computes the statistics of path and writes the report to w.
// Nothing is written to w when any step fails.
func (o *Orchestrator) Process(ctx context.Context, path string, w io.Writer) error {
	chunkSize, err := config.ChunkSizeBytes(o.config)
	if err != nil {
		return err
	}

	formatter, err := report.NewFormatter(o.config.Output.Format)
	if err != nil {
		return err
	}

	log := logger.Logger.WithField("path", path)

	f, err := o.opener.Open(path)
	if err != nil {
		log.WithError(err).Debug("Failed to open source")
		return fmt.Errorf("%s is not a readable file: %w", path, err)
	}
	defer f.Close()

	log.WithFields(logrus.Fields{
		"size":       utils.FormatBytes(f.Size()),
		"chunk_size": utils.FormatBytes(int64(chunkSize)),
	}).Debug("Opened source")

	started := time.Now()
	result, err := stats.ComputeContext(ctx, f, stats.Options{
		ChunkSize: chunkSize,
		Encoding:  o.config.Reader.Encoding,
		Name:      path,
	})
	if err != nil {
		if errors.Is(err, stats.ErrDecodeFailure) {
			log.WithError(err).Debug("Source is not valid text")
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	log.WithFields(logrus.Fields{
		"bytes_read": utils.FormatBytes(f.BytesRead()),
		"duration":   time.Since(started).String(),
	}).Info("Computed file statistics")

	out, err := formatter.Format(path, result)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}
