// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audvox/bus"
	"github.com/ik5/audvox/group"
	"github.com/ik5/audvox/internal/audiotest"
	"github.com/ik5/audvox/voice"
)

func TestMetrics_CountAdmissions(t *testing.T) {
	t.Parallel()

	buses, err := bus.NewRegistry(bus.Config{ID: bus.SFX, VoiceLimit: 1, Volume: 1})
	require.NoError(t, err)

	backend := audiotest.NewBackend()
	g, err := group.New("hit", bus.SFX, backend,
		voice.New(audiotest.NewSilentClip("hit_01", 8000, 80)),
		voice.New(audiotest.NewSilentClip("hit_02", 8000, 80)),
	)
	require.NoError(t, err)

	reg := prometheus.NewPedanticRegistry()
	coord, err := New(buses, group.NewRegistry(g), WithRegisterer(reg))
	require.NoError(t, err)

	_, err = coord.Play("hit", nil)
	require.NoError(t, err)
	_, err = coord.Play("hit", nil)
	require.NoError(t, err)
	_, err = coord.Play("missing", nil)
	require.Error(t, err)

	m := coord.metrics
	assert.Equal(t, 2.0, testutil.ToFloat64(m.plays.WithLabelValues("sfx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.evictions.WithLabelValues("sfx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dropped.WithLabelValues(ReasonUnknownGroup)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.active.WithLabelValues("sfx")))

	entries, _ := coord.Active(bus.SFX)
	require.Len(t, entries, 1)
	require.True(t, backend.Finish(entries[0].Voice))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.active.WithLabelValues("sfx")))
}

func TestMetrics_ActiveRefreshedWhenEvictionRetiresDirectly(t *testing.T) {
	t.Parallel()

	buses, err := bus.NewRegistry(bus.Config{ID: bus.SFX, VoiceLimit: 1, Volume: 1})
	require.NoError(t, err)

	backend := audiotest.NewBackend()
	g, err := group.New("hit", bus.SFX, backend, voice.New(audiotest.NewSilentClip("hit_01", 8000, 80)))
	require.NoError(t, err)

	coord, err := New(buses, group.NewRegistry(g), WithRegisterer(prometheus.NewPedanticRegistry()))
	require.NoError(t, err)

	v, err := coord.Play("hit", nil)
	require.NoError(t, err)
	active := coord.metrics.active.WithLabelValues("sfx")
	require.Equal(t, 1.0, testutil.ToFloat64(active))

	// idle behind the group's back, so eviction gets no stop notification
	require.True(t, v.Release())
	backend.PlayErr = errors.New("device lost")

	_, err = coord.Play("hit", nil)
	require.Error(t, err)

	entries, err := coord.Active(bus.SFX)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 0.0, testutil.ToFloat64(active))
	assert.Equal(t, 1.0, testutil.ToFloat64(coord.metrics.evictions.WithLabelValues("sfx")))
}

func TestMetrics_DoubleRegistrationFails(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

func TestMetrics_NilIsSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	assert.NotPanics(t, func() {
		m.played(bus.SFX)
		m.evicted(bus.SFX)
		m.drop(ReasonNoVoice)
		m.setActive(bus.SFX, 3)
	})
}
