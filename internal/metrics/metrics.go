package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careercrafter_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	NotificationsCreatedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "careercrafter_notifications_created_total",
			Help: "Total number of stored notifications.",
		},
	)
	DuplicateNotificationsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "careercrafter_notifications_duplicate_total",
			Help: "Total number of notification creates skipped as duplicates.",
		},
	)
	DeliveryFailuresCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "careercrafter_mail_delivery_failures_total",
			Help: "Total number of failed email deliveries.",
		},
	)
	FanoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "careercrafter_listing_fanout_duration_seconds",
			Help:    "Duration of each new-listing notification fan-out in seconds.",
			Buckets: []float64{0.1, 0.5, 1, 5, 30, 120},
		},
	)
	FannedOutListingsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "careercrafter_listings_fanned_out_total",
			Help: "Total number of listings fanned out to job seekers.",
		},
	)
)

func StartMetricsServer() {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(NotificationsCreatedCounter)
	prometheus.MustRegister(DuplicateNotificationsCounter)
	prometheus.MustRegister(DeliveryFailuresCounter)
	prometheus.MustRegister(FanoutDuration)
	prometheus.MustRegister(FannedOutListingsCounter)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(":8080", nil))
	}()
}
