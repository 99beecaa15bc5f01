package engine

import (
	"log/slog"
	"runtime"

	"github.com/cpcf/iconforge/postprocess"
	"github.com/cpcf/iconforge/write"
)

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func WithOutputRoot(root string) Option {
	return func(e *Engine) {
		e.outputRoot = root
	}
}

// WithConcurrency bounds the number of icons processed at once per format.
// Values below one select the number of CPUs.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n <= 0 {
			n = runtime.NumCPU()
		}
		e.concurrency = n
	}
}

func WithWriter(w write.Writer) Option {
	return func(e *Engine) {
		e.writer = w
	}
}

func WithWriteOptions(options write.Options) Option {
	return func(e *Engine) {
		e.writeOptions = options
	}
}

// WithPostProcessor appends a processor applied to every artifact before it
// is written. Processors run in the order they are added.
func WithPostProcessor(processor postprocess.Processor) Option {
	return func(e *Engine) {
		e.postprocessors.Add(processor)
	}
}
