package logging

import (
	"fmt"
	"io"

	"go.uber.org/multierr"
)

type logSink struct {
	name string
	w    io.Writer
}

// teeWriter copies every log line to all of its sinks. A line counts as written
// when at least one sink took it; failing sinks are reported by name.
type teeWriter struct {
	sinks []logSink
}

func newTeeWriter(sinks ...logSink) *teeWriter {
	tw := &teeWriter{}
	for _, s := range sinks {
		if s.w == nil {
			continue
		}
		tw.sinks = append(tw.sinks, s)
	}
	return tw
}

func (tw *teeWriter) Write(p []byte) (int, error) {
	var (
		err     error
		written bool
	)
	for _, s := range tw.sinks {
		if _, werr := s.w.Write(p); werr != nil {
			err = multierr.Append(err, fmt.Errorf("log sink %s: %w", s.name, werr))
			continue
		}
		written = true
	}

	if !written {
		return 0, err
	}
	return len(p), err
}
