package services

import "github.com/prometheus/client_golang/prometheus"

var (
	recordsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_records_created_total",
			Help: "Total number of records created, by kind.",
		},
		[]string{"kind"},
	)
	messagesReceived = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_contact_messages_total",
			Help: "Total number of contact messages received.",
		},
	)
)

func init() {
	prometheus.MustRegister(recordsCreated, messagesReceived)
}
