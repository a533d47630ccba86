// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ik5/audvox/bus"
)

const namespace = "audvox"

// Drop reasons used as the "reason" label.
const (
	ReasonUnknownGroup = "unknown_group"
	ReasonNoVoice      = "no_voice"
	ReasonBackend      = "backend"
)

// Metrics exposes admission counters. A nil *Metrics records nothing.
type Metrics struct {
	plays     *prometheus.CounterVec
	evictions *prometheus.CounterVec
	dropped   *prometheus.CounterVec
	active    *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them on r.
func NewMetrics(r prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		plays: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "play_total",
			Help:      "Voices started, by bus.",
		}, []string{"bus"}),
		evictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evictions_total",
			Help:      "Voices stopped to make room on a full bus.",
		}, []string{"bus"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dropped_total",
			Help:      "Play requests that were skipped, by reason.",
		}, []string{"reason"}),
		active: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_voices",
			Help:      "Voices currently admitted on a bus.",
		}, []string{"bus"}),
	}

	for _, c := range []prometheus.Collector{m.plays, m.evictions, m.dropped, m.active} {
		if err := r.Register(c); err != nil {
			return nil, fmt.Errorf("registering playback metrics: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) played(id bus.ID) {
	if m == nil {
		return
	}
	m.plays.WithLabelValues(id.String()).Inc()
}

func (m *Metrics) evicted(id bus.ID) {
	if m == nil {
		return
	}
	m.evictions.WithLabelValues(id.String()).Inc()
}

func (m *Metrics) drop(reason string) {
	if m == nil {
		return
	}
	m.dropped.WithLabelValues(reason).Inc()
}

func (m *Metrics) setActive(id bus.ID, n int) {
	if m == nil {
		return
	}
	m.active.WithLabelValues(id.String()).Set(float64(n))
}
