package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/resumeparse/internal/layout"
	"github.com/dgallion1/resumeparse/internal/parser"
	"github.com/dgallion1/resumeparse/internal/record"
	"github.com/dgallion1/resumeparse/internal/resume"
)

// Worker decodes and parses resumes. It holds no per-job state and is safe
// for concurrent use.
type Worker struct {
	opts  parser.Options
	cfg   resume.Config
	stats *ParseStats
	log   *slog.Logger
}

func NewWorker(opts parser.Options, cfg resume.Config, stats *ParseStats, log *slog.Logger) *Worker {
	return &Worker{
		opts:  opts,
		cfg:   cfg,
		stats: stats,
		log:   log,
	}
}

// Decode turns file bytes into tokens using the decoder for the filename.
func (w *Worker) Decode(filename string, data []byte) ([]layout.Token, error) {
	dec, err := w.opts.ForFile(filename)
	if err != nil {
		return nil, err
	}
	tokens, err := dec.Decode(bytes.NewReader(data), filename)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	return tokens, nil
}

// ParseTokens runs the core pipeline and records its latency.
func (w *Worker) ParseTokens(tokens []layout.Token) (record.Record, resume.Stats) {
	start := time.Now()
	rec, stats := resume.ParseDetailed(tokens, w.cfg)
	w.stats.Record(time.Since(start).Milliseconds())
	return rec, stats
}

// ParseFile decodes and parses one file.
func (w *Worker) ParseFile(filename string, data []byte) (record.Record, resume.Stats, error) {
	tokens, err := w.Decode(filename, data)
	if err != nil {
		w.stats.RecordFailure()
		return record.Record{}, resume.Stats{}, err
	}
	rec, stats := w.ParseTokens(tokens)
	return rec, stats, nil
}

// Process runs decode and parse for a queued job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	if err := ctx.Err(); err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "cancelled")
		return
	}

	// Phase 1: Decode
	job.SetStatus(StatusDecoding, "decoding")
	start := time.Now()
	tokens, err := w.Decode(job.Filename, job.FileData())
	if err != nil {
		log.Error("decode failed", "error", err)
		w.stats.RecordFailure()
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "decoding")
		return
	}

	// Phase 2: Parse
	job.SetStatus(StatusParsing, "parsing")
	rec, stats := w.ParseTokens(tokens)
	job.Complete(rec, stats)

	log.Info("job complete",
		"tokens", stats.Tokens,
		"lines", stats.Lines,
		"sections", len(stats.Sections),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
