// ABOUTME: afs.Service-backed input/output abstraction for the dump and the two report sinks
// ABOUTME: Keeps the pipeline's I/O off a hard os.Open/os.Create dependency

// Package iosvc is the narrow I/O boundary the pipeline reads the dump
// through and writes report artifacts through. It is backed by
// github.com/viant/afs so a caller can point any flag at a local path, an
// in-memory URL, or (unchanged by this tool) any other storage scheme afs
// supports without the rest of the pipeline knowing the difference.
package iosvc

import (
	"bytes"
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/viant/afs"

	"github.com/heapdom/heapdom/errs"
)

// Service opens the input dump and the output report sinks through afs.
type Service struct {
	fs afs.Service
}

// New creates a Service backed by afs.New(), the default local+scheme-aware
// file system used throughout the retrieved pack.
func New() *Service {
	return &Service{fs: afs.New()}
}

// OpenInput opens path for reading. The caller owns the returned
// ReadCloser and must Close it.
func (s *Service) OpenInput(ctx context.Context, path string) (io.ReadCloser, error) {
	r, err := s.fs.OpenURL(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	return r, nil
}

// WriteOutput buffers content and uploads it to path in one call, wrapping
// any failure as errs.ErrOutputFailure so the CLI boundary can tell an
// input problem from an output problem without string-matching.
func (s *Service) WriteOutput(ctx context.Context, path string, content []byte) error {
	if err := s.fs.Upload(ctx, path, 0644, bytes.NewReader(content)); err != nil {
		return errors.Wrapf(errs.ErrOutputFailure, "writing %s: %v", path, err)
	}
	return nil
}

// Sink buffers everything written to it until Flush uploads it as one
// object through afs, via WriteOutput.
type Sink struct {
	svc  *Service
	path string
	buf  bytes.Buffer
}

// NewSink returns a Sink that will upload its contents to path on Flush.
func (s *Service) NewSink(path string) *Sink {
	return &Sink{svc: s, path: path}
}

func (s *Sink) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// Flush uploads everything written so far to the sink's path.
func (s *Sink) Flush(ctx context.Context) error {
	return s.svc.WriteOutput(ctx, s.path, s.buf.Bytes())
}
