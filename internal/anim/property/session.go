// internal/anim/property/session.go
package property

import (
	"github.com/google/uuid"

	"github.com/xkilldash9x/axi/internal/anim/transform"
	"github.com/xkilldash9x/axi/internal/browser/dom"
)

// Track is one animated (target, property) pair with its mechanism and
// origin value resolved once at bind time.
type Track struct {
	ID        uuid.UUID
	Target    *Target
	Property  string
	Mechanism Mechanism
	Origin    any

	resolver   *Resolver
	transforms *transform.Map
}

// Apply writes value through the cached mechanism.
func (tr *Track) Apply(value any) {
	tr.resolver.Write(tr.Mechanism, tr.Target, tr.Property, value, tr.transforms)
}

// Transforms returns the transform map shared with sibling transform tracks,
// or nil for other mechanisms.
func (tr *Track) Transforms() *transform.Map {
	return tr.transforms
}

// Session owns the animated tracks of one animation. Every transform track of
// the same element shares a single transform map, so writes to translateX
// and rotate accumulate instead of clobbering each other. A Session is not
// safe for concurrent use.
type Session struct {
	resolver *Resolver
	maps     map[dom.Element]*transform.Map
	tracks   []*Track
}

// NewSession creates an empty session.
func NewSession(r *Resolver) *Session {
	return &Session{
		resolver: r,
		maps:     make(map[dom.Element]*transform.Map),
	}
}

// Bind classifies prop on t, reads its origin value and registers the track.
func (s *Session) Bind(t *Target, prop string) *Track {
	m := s.resolver.Classify(t, prop)
	tr := &Track{
		ID:        uuid.New(),
		Target:    t,
		Property:  prop,
		Mechanism: m,
		Origin:    s.resolver.Origin(t, prop, m),
		resolver:  s.resolver,
	}
	if m == MechanismTransform {
		tr.transforms = s.transformMap(t)
	}
	s.tracks = append(s.tracks, tr)
	return tr
}

// Tracks returns the bound tracks in bind order.
func (s *Session) Tracks() []*Track {
	return s.tracks
}

// transformMap returns the element's shared map, parsing it on first use.
func (s *Session) transformMap(t *Target) *transform.Map {
	el, _ := t.Element()
	if m, ok := s.maps[el]; ok {
		return m
	}
	m := ParseTransforms(t)
	s.maps[el] = m
	return m
}
