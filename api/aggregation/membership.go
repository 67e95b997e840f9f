// Package aggregation derives the ranking, rollup and pagination view-models
// served by the restaurant and user controllers. Everything here is a pure
// function of its arguments: no database access, no logging, no shared state.
package aggregation

// IDSet is the set of user ids attached to a favorite, like or follow
// relation on a single target.
type IDSet map[uint]struct{}

func NewIDSet(ids ...uint) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s IDSet) Has(id uint) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Len() int {
	return len(s)
}

// Viewer identifies who is asking. The zero value is an anonymous viewer.
type Viewer struct {
	id            uint
	authenticated bool
}

func Anonymous() Viewer {
	return Viewer{}
}

func ViewerOf(id uint) Viewer {
	return Viewer{id: id, authenticated: true}
}

// ID returns the viewer's user id and whether the viewer is signed in.
func (v Viewer) ID() (uint, bool) {
	return v.id, v.authenticated
}

// IsMember reports whether the viewer belongs to set. Anonymous viewers are
// never members.
func IsMember(viewer Viewer, set IDSet) bool {
	if !viewer.authenticated {
		return false
	}
	return set.Has(viewer.id)
}
