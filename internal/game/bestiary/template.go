// Package bestiary loads creature templates from YAML and spawns validated
// players and monsters from them.
package bestiary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/clash/internal/game/creature"
)

// Template kinds.
const (
	KindPlayer  = "player"
	KindMonster = "monster"
)

// Template defines a reusable creature archetype loaded from YAML.
type Template struct {
	ID     string          `yaml:"id"`
	Name   string          `yaml:"name"`
	Kind   string          `yaml:"kind"`
	MaxHP  int             `yaml:"max_hp"`
	Atk    int             `yaml:"atk"`
	Def    int             `yaml:"def"`
	Damage creature.Damage `yaml:"damage"`
}

// Validate checks the template against the same rules creature construction
// enforces, so a template that validates always spawns.
//
// Postcondition: Returns nil iff ID and Name are non-empty, Kind is known, and
// the combat attributes are in range. Attribute errors wrap creature.ErrOutOfRange.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("creature template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("creature template %q: name must not be empty", t.ID)
	}
	if t.Kind != KindPlayer && t.Kind != KindMonster {
		return fmt.Errorf("creature template %q: kind must be one of [player, monster], got %q", t.ID, t.Kind)
	}
	if _, err := creature.New(t.MaxHP, t.Atk, t.Def, t.Damage); err != nil {
		return fmt.Errorf("creature template %q: %w", t.ID, err)
	}
	return nil
}

// LoadTemplateFromBytes parses a single template from raw YAML bytes.
//
// Postcondition: Returns a validated *Template, or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplates reads all *.yaml files in dir.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or the first parse or validate error;
// on error the partial result is discarded.
func LoadTemplates(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading creature dir %q: %w", dir, err)
	}

	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		tmpl, err := LoadTemplateFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}

// SpawnPlayer builds a player from a player template.
//
// Precondition: tmpl must be non-nil.
// Postcondition: Returns a full-health player named after the template, or an
// error if tmpl is not a player template or fails validation.
func SpawnPlayer(tmpl *Template) (*creature.Player, error) {
	if tmpl.Kind != KindPlayer {
		return nil, fmt.Errorf("creature template %q is a %s, not a player", tmpl.ID, tmpl.Kind)
	}
	p, err := creature.NewPlayer(tmpl.MaxHP, tmpl.Atk, tmpl.Def, tmpl.Damage)
	if err != nil {
		return nil, fmt.Errorf("spawning %q: %w", tmpl.ID, err)
	}
	p.Name = tmpl.Name
	return p, nil
}

// SpawnMonster builds a monster from a monster template.
//
// Precondition: tmpl must be non-nil.
func SpawnMonster(tmpl *Template) (*creature.Monster, error) {
	if tmpl.Kind != KindMonster {
		return nil, fmt.Errorf("creature template %q is a %s, not a monster", tmpl.ID, tmpl.Kind)
	}
	m, err := creature.NewMonster(tmpl.MaxHP, tmpl.Atk, tmpl.Def, tmpl.Damage)
	if err != nil {
		return nil, fmt.Errorf("spawning %q: %w", tmpl.ID, err)
	}
	m.Name = tmpl.Name
	return m, nil
}
