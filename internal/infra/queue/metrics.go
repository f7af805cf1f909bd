package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	publishErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "client_events_publish_errors_total",
			Help: "Total number of failed client.created publishes",
		},
	)

	notificationsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Total number of welcome notifications sent",
		},
	)
)
