// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package metrics counts store activity on a private Prometheus
// registry. Nothing in this system serves HTTP, so there is no exposition
// endpoint, but the counters make the demo inspectable and keep the door
// open for a scrape target later.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Set holds the store counters. It implements the store package's
// Metrics interface.
type Set struct {
	registry      *prometheus.Registry
	operations    *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

// New creates a Set on a fresh private registry.
func New() *Set {
	registry := prometheus.NewRegistry()
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "waitingwall",
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Committed store operations by name.",
	}, []string{"op"})
	notifications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "waitingwall",
		Subsystem: "store",
		Name:      "notifications_total",
		Help:      "Notifications emitted by kind.",
	}, []string{"kind"})
	registry.MustRegister(operations, notifications)
	return &Set{
		registry:      registry,
		operations:    operations,
		notifications: notifications,
	}
}

// RecordOperation counts one committed store operation.
func (s *Set) RecordOperation(op string) {
	s.operations.WithLabelValues(op).Inc()
}

// RecordNotification counts one emitted notification.
func (s *Set) RecordNotification(kind string) {
	s.notifications.WithLabelValues(kind).Inc()
}

// Registry exposes the private registry, e.g. for Gather in tests or the
// demo's summary output.
func (s *Set) Registry() *prometheus.Registry {
	return s.registry
}

// OperationCount reads back the counter for one operation name. Intended
// for tests and the demo summary; returns 0 for never-seen names.
func (s *Set) OperationCount(op string) float64 {
	return counterValue(s.operations.WithLabelValues(op))
}

// NotificationCount reads back the counter for one notification kind.
func (s *Set) NotificationCount(kind string) float64 {
	return counterValue(s.notifications.WithLabelValues(kind))
}

func counterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil || m.Counter == nil {
		return 0
	}
	return m.Counter.GetValue()
}
