package config

import "vengeance/internal/combat"

type RosterConfig struct {
	Ticks  int          `yaml:"ticks"`
	Seed   int64        `yaml:"seed"`
	Rules  combat.Rules `yaml:"rules"`
	Actors []ActorDef   `yaml:"actors"`
}

type ActorDef struct {
	Name           string  `yaml:"name"`
	Class          string  `yaml:"class"`
	Damage         float64 `yaml:"damage"`
	MagicPower     float64 `yaml:"magic_power"`
	AttackCooldown int     `yaml:"attack_cooldown"`
	SpellCooldown  int     `yaml:"spell_cooldown"`
}
