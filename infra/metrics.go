package infra

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ScreeningsPerformed counts completed screenings by resulting risk level.
var ScreeningsPerformed = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "clearwatch",
		Name:      "screenings_performed_total",
		Help:      "Number of completed watchlist screenings, by risk level.",
	},
	[]string{"risk_level"},
)
