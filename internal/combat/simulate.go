package combat

import (
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"vengeance/internal/util"
)

type Env struct {
	Time   int
	Rng    util.Source
	Ledger *Ledger
	Rules  Rules

	// TrackActorEvents also records each event on its actor's own list.
	TrackActorEvents bool
	Log              *slog.Logger
}

// NewEnv returns an Env with default rules and actor tracking on. A nil
// ledger means the process-wide DefaultLedger.
func NewEnv(rng util.Source, ledger *Ledger) *Env {
	if ledger == nil {
		ledger = DefaultLedger()
	}
	return &Env{
		Rng:              rng,
		Ledger:           ledger,
		Rules:            DefaultRules(),
		TrackActorEvents: true,
		Log:              slog.Default(),
	}
}

func (env *Env) rules() Rules {
	return env.Rules.orDefault()
}

func (env *Env) ledger() *Ledger {
	if env.Ledger == nil {
		return DefaultLedger()
	}
	return env.Ledger
}

func (env *Env) logger() *slog.Logger {
	if env.Log == nil {
		return slog.Default()
	}
	return env.Log
}

// rollCrit draws once from the random source. Without a source nothing crits.
func (env *Env) rollCrit() bool {
	if env.Rng == nil {
		return false
	}
	return env.Rng.Float64() > env.rules().CritThreshold
}

func (env *Env) eventOptions(cbs []Callback) EventOptions {
	return EventOptions{
		Ledger:     env.ledger(),
		TrackActor: env.TrackActorEvents,
		Callbacks:  cbs,
		Logger:     env.Log,
	}
}

type SimResult struct {
	RunID         string             `json:"run_id"`
	Ticks         int                `json:"ticks"`
	Events        int                `json:"events"`
	Attacks       int                `json:"attacks"`
	Spells        int                `json:"spells"`
	Criticals     int                `json:"criticals"`
	TotalDamage   float64            `json:"total_damage"`
	DamageByActor map[string]float64 `json:"damage_by_actor"`
	Log           []Record           `json:"log,omitempty"`
}

// Run resets every actor and then, for each tick in [0, tickLimit), asks the
// actors for a decision in the order given. Later actors in a tick observe
// the state left by earlier ones.
func Run(env *Env, tickLimit int, actors []*Actor, record bool) SimResult {
	for _, a := range actors {
		a.Reset()
	}
	ledger := env.ledger()
	start := ledger.Len()

	for env.Time = 0; env.Time < tickLimit; env.Time++ {
		for _, a := range actors {
			a.Decide(env)
		}
	}

	produced := ledger.Events()[start:]
	kinds := CountKinds(produced)
	res := SimResult{
		RunID:         uuid.NewString(),
		Ticks:         tickLimit,
		Events:        len(produced),
		Attacks:       kinds["Attack"],
		Spells:        kinds["Spell"],
		Criticals:     len(Criticals(produced)),
		TotalDamage:   TotalDamage(produced),
		DamageByActor: DamageByActor(produced),
	}
	if record {
		res.Log = Records(produced)
	}
	env.logger().Debug("simulation finished",
		"run_id", res.RunID,
		"ticks", tickLimit,
		"actors", len(actors),
		"events", res.Events,
		"criticals", res.Criticals)
	return res
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
