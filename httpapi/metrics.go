package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// chunksProcessedCounter tracks the number of successfully processed
	// chunks, partitioned by kernel.
	chunksProcessedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chunk_kernel_chunks_total",
		Help: "The total number of successfully processed chunks, partitioned by kernel",
	}, []string{"kernel"})

	// invalidPayloadCounter tracks the number of chunk payloads that were
	// rejected as malformed.
	invalidPayloadCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chunk_kernel_invalid_payloads_total",
		Help: "The total number of chunk payloads rejected as malformed",
	})
)
