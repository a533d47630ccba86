// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ik5/audvox/bus"
	"github.com/ik5/audvox/group"
	"github.com/ik5/audvox/voice"
)

// Coordinator turns play requests into started voices while keeping every
// bus within its voice limit.
type Coordinator struct {
	buses   *bus.Registry
	groups  *group.Registry
	log     *zap.Logger
	metrics *Metrics
}

// New wires the coordinator to every group as its stop listener. It fails if
// a group is routed to a bus that is not registered.
func New(buses *bus.Registry, groups *group.Registry, opts ...Option) (*Coordinator, error) {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Coordinator{
		buses:  buses,
		groups: groups,
		log:    o.log,
	}

	if o.registerer != nil {
		m, err := NewMetrics(o.registerer)
		if err != nil {
			return nil, err
		}
		c.metrics = m
	}

	for _, g := range groups.Groups() {
		if _, err := buses.Lookup(g.Bus()); err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name(), err)
		}
		g.SetListener(c)
		g.SetLogger(c.log)
	}
	for _, id := range buses.IDs() {
		c.metrics.setActive(id, 0)
	}

	return c, nil
}

// Play starts a voice of the named group, at loc when given.
//
// Unknown groups and exhausted pools drop the request: the returned error
// satisfies IsDropped and no bus changes. Any other error is a setup or
// backend failure.
func (c *Coordinator) Play(name string, loc *voice.Position) (*voice.Voice, error) {
	g, err := c.groups.Lookup(name)
	if err != nil {
		c.log.Warn("sound group not found, request dropped", zap.String("group", name))
		c.metrics.drop(ReasonUnknownGroup)
		return nil, err
	}

	info, err := c.buses.Lookup(g.Bus())
	if err != nil {
		return nil, fmt.Errorf("group %q: %w", name, err)
	}

	if info.AtLimit() {
		c.evictOldest(info)
	}

	v, ok := g.Acquire()
	if !ok {
		c.log.Warn("no idle voice, request dropped",
			zap.String("group", name),
			zap.Stringer("bus", info.ID()),
		)
		c.metrics.drop(ReasonNoVoice)
		return nil, fmt.Errorf("group %q: %w", name, ErrNoVoiceAvailable)
	}

	// Admitted before starting so a stop raised while starting finds the entry.
	entry := bus.Entry{Voice: v, Owner: g}
	info.Admit(entry)
	if err := g.Start(v, loc); err != nil {
		info.Retire(v, g)
		c.log.Error("voice failed to start",
			zap.String("group", name),
			zap.Stringer("voice", v),
			zap.Error(err),
		)
		c.metrics.drop(ReasonBackend)
		return nil, err
	}

	c.metrics.played(info.ID())
	c.metrics.setActive(info.ID(), info.ActiveCount())
	c.log.Debug("voice started",
		zap.String("group", name),
		zap.Stringer("voice", v),
		zap.Stringer("bus", info.ID()),
		zap.Int("active", info.ActiveCount()),
	)

	return v, nil
}

// evictOldest stops the oldest voice on the bus. Its stop notification
// retires the entry.
func (c *Coordinator) evictOldest(info *bus.Info) {
	oldest, ok := info.Oldest()
	if !ok {
		return
	}

	c.log.Debug("bus at voice limit, evicting oldest",
		zap.Stringer("bus", info.ID()),
		zap.Int("limit", info.VoiceLimit()),
		zap.Stringer("voice", oldest.Voice),
	)
	if err := oldest.Owner.Stop(oldest.Voice); err != nil {
		c.log.Warn("evicted voice did not stop cleanly",
			zap.Stringer("voice", oldest.Voice),
			zap.Error(err),
		)
	}

	// An owner whose voice was already idle sends no notification.
	if info.Retire(oldest.Voice, oldest.Owner) {
		c.log.Warn("evicted voice was not retired by its group",
			zap.Stringer("voice", oldest.Voice),
			zap.Stringer("bus", info.ID()),
		)
		c.metrics.setActive(info.ID(), info.ActiveCount())
	}
	c.metrics.evicted(info.ID())
}

// OnVoiceStopped retires v from its bus. It is called by groups whenever one
// of their voices goes idle.
func (c *Coordinator) OnVoiceStopped(g *group.Group, v *voice.Voice) {
	info, err := c.buses.Lookup(g.Bus())
	if err != nil {
		c.log.Error("stop notification for unregistered bus",
			zap.String("group", g.Name()),
			zap.Error(err),
		)
		return
	}

	if info.ActiveCount() == 0 {
		c.log.Warn("voice stopped but bus has no active voices",
			zap.String("group", g.Name()),
			zap.Stringer("voice", v),
			zap.Stringer("bus", info.ID()),
		)
		return
	}

	if !info.Retire(v, g) {
		c.log.Debug("stopped voice was not active",
			zap.String("group", g.Name()),
			zap.Stringer("voice", v),
		)
	}
	c.metrics.setActive(info.ID(), info.ActiveCount())
}

// SetBusVolume applies a linear volume to the bus. See bus.Registry.SetVolume.
func (c *Coordinator) SetBusVolume(id bus.ID, volume float64) error {
	if err := c.buses.SetVolume(id, volume); err != nil {
		c.log.Warn("bus volume rejected",
			zap.Stringer("bus", id),
			zap.Float64("volume", volume),
			zap.Error(err),
		)
		return err
	}

	info, _ := c.buses.Lookup(id)
	c.log.Debug("bus volume set",
		zap.Stringer("bus", id),
		zap.Float64("volume", volume),
		zap.Float64("gain_db", info.GainDB()),
	)
	return nil
}

// Active returns the voices admitted on a bus, oldest first.
func (c *Coordinator) Active(id bus.ID) ([]bus.Entry, error) {
	info, err := c.buses.Lookup(id)
	if err != nil {
		return nil, err
	}
	return info.Active(), nil
}

func (c *Coordinator) Buses() *bus.Registry    { return c.buses }
func (c *Coordinator) Groups() *group.Registry { return c.groups }
