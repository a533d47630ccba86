// SPDX-License-Identifier: EPL-2.0

package group

import "fmt"

// Registry resolves group names. Groups are kept in registration order and
// looked up through a name index.
type Registry struct {
	groups []*Group
	index  map[string]int
}

// NewRegistry registers groups in order; later duplicates replace earlier ones.
func NewRegistry(groups ...*Group) *Registry {
	r := &Registry{index: make(map[string]int, len(groups))}
	for _, g := range groups {
		r.Register(g)
	}
	return r
}

// Register adds g, replacing any group with the same name. It reports whether
// a group was replaced.
func (r *Registry) Register(g *Group) (replaced bool) {
	if idx, ok := r.index[g.name]; ok {
		r.groups[idx] = g
		return true
	}
	r.index[g.name] = len(r.groups)
	r.groups = append(r.groups, g)
	return false
}

func (r *Registry) Lookup(name string) (*Group, error) {
	idx, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownGroup)
	}
	return r.groups[idx], nil
}

// Groups returns the registered groups in registration order.
func (r *Registry) Groups() []*Group {
	out := make([]*Group, len(r.groups))
	copy(out, r.groups)
	return out
}

func (r *Registry) Len() int { return len(r.groups) }
