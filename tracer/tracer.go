// Package tracer provides helpers for wiring Jaeger-backed OpenTracing
// tracers into the chunk kernel binaries.
package tracer

import (
	"io"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

var (
	mu      sync.Mutex
	closers []io.Closer
)

// GetTracer obtains and returns a new Jaeger tracer configured from the
// standard Jaeger environment variables. To avoid losing buffered spans,
// callers must invoke Close before their application exits.
//
// Note: the returned tracer samples every emitted span.
func GetTracer(serviceName string) (opentracing.Tracer, error) {
	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		return nil, err
	}

	cfg.ServiceName = serviceName
	cfg.Sampler = &jaegercfg.SamplerConfig{
		Type:  jaeger.SamplerTypeConst,
		Param: 1,
	}

	tr, closer, err := cfg.NewTracer()
	if err != nil {
		return nil, err
	}

	mu.Lock()
	closers = append(closers, closer)
	mu.Unlock()
	return tr, nil
}

// MustGetTracer obtains and returns a new Jaeger tracer or panics if any
// error occurs.
func MustGetTracer(serviceName string) opentracing.Tracer {
	tr, err := GetTracer(serviceName)
	if err != nil {
		panic(err)
	}
	return tr
}

// Close flushes and closes every tracer instance handed out by this package.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	var err error
	for _, closer := range closers {
		if cErr := closer.Close(); cErr != nil {
			err = multierror.Append(err, cErr)
		}
	}

	closers = nil
	return err
}
