package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CommandsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "survey_store_commands_total",
		Help: "Commands applied by the survey store, by command name.",
	}, []string{"command"})

	SaveFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "survey_store_save_failures_total",
		Help: "State blob saves that returned an error.",
	})

	SaveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "survey_store_save_duration_seconds",
		Help:    "Time spent writing the state blob.",
		Buckets: prometheus.DefBuckets,
	})

	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "survey_submissions_total",
		Help: "Response submissions, by result (accepted, invalid, not_found).",
	}, []string{"result"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "survey_http_requests_total",
		Help: "HTTP requests by route and status code.",
	}, []string{"route", "method", "status"})
)
