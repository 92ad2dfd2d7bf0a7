package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Domain counters, registered once at package load. HTTP-level metrics
// live in the HTTP middleware.
var (
	EntriesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "c3s_entries_created_total",
		Help: "Total number of ledger entries created",
	})

	EntriesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "c3s_entries_deleted_total",
		Help: "Total number of ledger entries deleted",
	})

	EntryValidationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "c3s_entry_validation_failures_total",
		Help: "Total number of entry drafts rejected by validation",
	})

	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "c3s_reports_generated_total",
			Help: "Total number of cash-flow reports generated by format",
		},
		[]string{"format"},
	)

	ReportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "c3s_report_duration_seconds",
		Help:    "Duration of report generation",
		Buckets: prometheus.DefBuckets,
	})
)
