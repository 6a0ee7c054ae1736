package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ThreadRepliesTotal counts successfully appended thread replies.
	ThreadRepliesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agora_thread_replies_total",
		Help: "Total number of thread replies appended",
	})

	// ChannelMessagesTotal counts successfully posted channel messages.
	ChannelMessagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agora_channel_messages_total",
		Help: "Total number of channel messages posted",
	})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "agora_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
