package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vengeance/internal/combat"
)

const DefaultTicks = 200

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadRoster reads a roster file and fills unset values with defaults.
// Rule keys present in the file are taken as written, zero included.
func LoadRoster(path string) (*RosterConfig, error) {
	rc := RosterConfig{Rules: combat.DefaultRules()}
	if err := loadYAML(path, &rc); err != nil {
		return nil, fmt.Errorf("load roster %s: %w", path, err)
	}
	rc.applyDefaults()
	if len(rc.Actors) == 0 {
		return nil, fmt.Errorf("load roster %s: no actors", path)
	}
	return &rc, nil
}

func (rc *RosterConfig) applyDefaults() {
	if rc.Ticks == 0 {
		rc.Ticks = DefaultTicks
	}
	for i := range rc.Actors {
		if rc.Actors[i].Class == "" {
			rc.Actors[i].Class = "Paladin"
		}
	}
}

func (rc *RosterConfig) CombatRules() combat.Rules {
	return rc.Rules
}

func (rc *RosterConfig) Specs() []combat.ActorSpec {
	specs := make([]combat.ActorSpec, len(rc.Actors))
	for i, a := range rc.Actors {
		specs[i] = combat.ActorSpec{
			Name:           a.Name,
			Class:          a.Class,
			Damage:         a.Damage,
			MagicPower:     a.MagicPower,
			AttackCooldown: a.AttackCooldown,
			SpellCooldown:  a.SpellCooldown,
		}
	}
	return specs
}
