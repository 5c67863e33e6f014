package syncsheet

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	sessionsPushed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "splitlog",
		Subsystem: "sync",
		Name:      "sessions_pushed_total",
		Help:      "Number of sessions upserted into the remote sheet.",
	})

	sessionsPulled = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "splitlog",
		Subsystem: "sync",
		Name:      "sessions_pulled_total",
		Help:      "Number of sessions parsed from the remote sheet.",
	})

	collectionsPulled = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "splitlog",
		Subsystem: "sync",
		Name:      "collections_pulled_total",
		Help:      "Number of collection blobs restored from remote config cells.",
	})

	syncFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "splitlog",
		Subsystem: "sync",
		Name:      "failures_total",
		Help:      "Number of failed remote sync operations.",
	}, []string{"operation"})
)

func init() {
	prometheus.MustRegister(sessionsPushed, sessionsPulled, collectionsPulled, syncFailures)
}
