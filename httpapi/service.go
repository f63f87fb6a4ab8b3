// Package httpapi exposes the chunk kernel functions over an HTTP/JSON
// boundary for host processes that do not speak gRPC.
package httpapi

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net"
	"net/http"

	"github.com/calcwork/chunkkernel/kernel"
	"github.com/calcwork/chunkkernel/payload"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

const (
	squareEndpoint            = "/square"
	rangeSumOfSquaresEndpoint = "/range-sum-squares"
	sumEndpoint               = "/sum"
	averageEndpoint           = "/average"
	metricsEndpoint           = "/metrics"
	healthEndpoint            = "/healthz"
)

// Config encapsulates the settings for configuring the HTTP chunk API
// service.
type Config struct {
	// The address to listen for incoming requests.
	ListenAddr string

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (cfg *Config) validate() error {
	var err error
	if cfg.ListenAddr == "" {
		err = multierror.Append(err, xerrors.Errorf("listen address has not been specified"))
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: ioutil.Discard})
	}
	return err
}

// Service implements the HTTP/JSON boundary for dispatching chunk payloads
// to the kernel functions.
type Service struct {
	cfg    Config
	router *mux.Router
}

// NewService creates a new HTTP chunk API service with the specified config.
func NewService(cfg Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("chunk API service: config validation failed: %w", err)
	}

	svc := &Service{
		cfg:    cfg,
		router: mux.NewRouter(),
	}

	svc.router.HandleFunc(squareEndpoint, svc.handleElementwiseSquare).Methods("POST")
	svc.router.HandleFunc(rangeSumOfSquaresEndpoint, svc.handleRangeSumOfSquares).Methods("POST")
	svc.router.HandleFunc(sumEndpoint, svc.handleSum).Methods("POST")
	svc.router.HandleFunc(averageEndpoint, svc.handleAverage).Methods("POST")
	svc.router.HandleFunc(healthEndpoint, svc.handleHealth).Methods("GET")
	svc.router.Handle(metricsEndpoint, promhttp.Handler()).Methods("GET")
	return svc, nil
}

// Name implements service.Service
func (svc *Service) Name() string { return "chunk-api" }

// ServeHTTP implements http.Handler by delegating to the service router.
func (svc *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

// Run starts the service and blocks until the provided context expires or
// the listener fails.
func (svc *Service) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", svc.cfg.ListenAddr)
	if err != nil {
		return err
	}
	defer func() { _ = l.Close() }()

	srv := &http.Server{
		Addr:    svc.cfg.ListenAddr,
		Handler: svc.router,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	svc.cfg.Logger.WithField("addr", svc.cfg.ListenAddr).Info("starting chunk API server")
	if err = srv.Serve(l); err == http.ErrServerClosed {
		// Ignore error when the server shuts down.
		err = nil
	}

	return err
}

func (svc *Service) handleElementwiseSquare(w http.ResponseWriter, r *http.Request) {
	logger := svc.chunkLogger("elementwise_square")
	seq, err := payload.DecodeNumericSequence(r.Body)
	if err != nil {
		svc.abortChunk(w, logger, err)
		return
	}
	svc.writeResult(w, logger, "elementwise_square", kernel.ElementwiseSquare(seq))
}

func (svc *Service) handleRangeSumOfSquares(w http.ResponseWriter, r *http.Request) {
	logger := svc.chunkLogger("range_sum_squares")
	rng, err := payload.DecodeIntegerRange(r.Body)
	if err != nil {
		svc.abortChunk(w, logger, err)
		return
	}
	svc.writeResult(w, logger, "range_sum_squares", kernel.RangeSumOfSquares(rng.Start, rng.End))
}

func (svc *Service) handleSum(w http.ResponseWriter, r *http.Request) {
	logger := svc.chunkLogger("sum")
	seq, err := payload.DecodeNumericSequence(r.Body)
	if err != nil {
		svc.abortChunk(w, logger, err)
		return
	}
	svc.writeResult(w, logger, "sum", kernel.Sum(seq))
}

func (svc *Service) handleAverage(w http.ResponseWriter, r *http.Request) {
	logger := svc.chunkLogger("average")
	seq, err := payload.DecodeNumericSequence(r.Body)
	if err != nil {
		svc.abortChunk(w, logger, err)
		return
	}
	svc.writeResult(w, logger, "average", kernel.Average(seq))
}

func (svc *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// chunkLogger returns a logger entry tagged with the kernel name and a
// fresh chunk ID so that individual chunk invocations can be correlated
// across log lines.
func (svc *Service) chunkLogger(kernelName string) *logrus.Entry {
	return svc.cfg.Logger.WithFields(logrus.Fields{
		"kernel":   kernelName,
		"chunk_id": uuid.New().String(),
	})
}

// abortChunk terminates the call without producing a partial result. Payload
// shape errors map to a 400 status; everything else maps to a 500.
func (svc *Service) abortChunk(w http.ResponseWriter, logger *logrus.Entry, err error) {
	if xerrors.Is(err, payload.ErrInvalidPayload) {
		invalidPayloadCounter.Inc()
		logger.WithField("err", err).Error("rejecting malformed chunk payload")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	logger.WithField("err", err).Error("aborting chunk")
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func (svc *Service) writeResult(w http.ResponseWriter, logger *logrus.Entry, kernelName string, result interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.WithField("err", err).Error("unable to write chunk result")
		return
	}
	chunksProcessedCounter.WithLabelValues(kernelName).Inc()
}
