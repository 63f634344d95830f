package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PostsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "posts_created_total",
			Help: "Total posts accepted and persisted",
		},
	)
	RegenApplied = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "char_regen_applied_total",
			Help: "Total successful balance regenerations",
		},
	)
)

func init() {
	prometheus.MustRegister(PostsCreated)
	prometheus.MustRegister(RegenApplied)
}
