package combat

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"vengeance/internal/util"
)

func newTestEnv(t *testing.T, src util.Source) *Env {
	t.Helper()
	env := NewEnv(src, NewLedger())
	env.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	return env
}

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func jeremy() *Actor {
	return NewActor(ActorSpec{Name: "Jeremy", Damage: 35, MagicPower: 70, AttackCooldown: 7, SpellCooldown: 21})
}
