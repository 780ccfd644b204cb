package bestiary

import (
	"fmt"
	"sort"

	"github.com/cory-johannsen/clash/internal/game/creature"
)

// Registry provides lookup of creature templates by ID.
type Registry struct {
	templates map[string]*Template
}

// NewRegistry indexes templates by ID.
//
// Precondition: every template must be non-nil.
// Postcondition: Returns an error if two templates share an ID.
func NewRegistry(templates []*Template) (*Registry, error) {
	r := &Registry{templates: make(map[string]*Template, len(templates))}
	for _, t := range templates {
		if _, dup := r.templates[t.ID]; dup {
			return nil, fmt.Errorf("duplicate creature template id %q", t.ID)
		}
		r.templates[t.ID] = t
	}
	return r, nil
}

// Get returns the template with the given ID.
//
// Postcondition: Returns the template and true, or nil and false if not found.
func (r *Registry) Get(id string) (*Template, bool) {
	t, ok := r.templates[id]
	return t, ok
}

// IDs returns every registered template ID in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Player looks up id and spawns a player from it.
func (r *Registry) Player(id string) (*creature.Player, error) {
	t, ok := r.Get(id)
	if !ok {
		return nil, fmt.Errorf("unknown creature template %q", id)
	}
	return SpawnPlayer(t)
}

// Monster looks up id and spawns a monster from it.
func (r *Registry) Monster(id string) (*creature.Monster, error) {
	t, ok := r.Get(id)
	if !ok {
		return nil, fmt.Errorf("unknown creature template %q", id)
	}
	return SpawnMonster(t)
}
