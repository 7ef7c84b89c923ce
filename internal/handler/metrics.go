package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "payment_service",
		Subsystem: "kafka_consumer",
		Name:      "orders_processed_total",
		Help:      "Total number of successfully processed checkout orders",
	})

	ordersFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "payment_service",
		Subsystem: "kafka_consumer",
		Name:      "orders_failed_total",
		Help:      "Total number of failed checkout order processing attempts",
	})

	ordersDLQ = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "payment_service",
		Subsystem: "kafka_consumer",
		Name:      "orders_dlq_total",
		Help:      "Total number of checkout orders written to DLQ",
	})
)

var (
	webhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payment_service",
		Subsystem: "webhook",
		Name:      "events_total",
		Help:      "Total number of gateway webhook events by type",
	}, []string{"type"})

	signatureFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "payment_service",
		Subsystem: "webhook",
		Name:      "signature_failures_total",
		Help:      "Total number of webhook requests rejected on signature verification",
	})
)
