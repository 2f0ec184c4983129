package combat

import (
	"context"
	"testing"
)

func batchParty() *Party {
	return NewParty([]ActorSpec{
		{Name: "Jeremy", Damage: 35, MagicPower: 70, AttackCooldown: 7, SpellCooldown: 21},
		{Name: "Ted", Damage: 55, MagicPower: 55, AttackCooldown: 11, SpellCooldown: 19},
	})
}

func TestRunBatch_Deterministic(t *testing.T) {
	logger, _ := captureLogger()
	cfg := BatchConfig{Runs: 20, Workers: 4, Seed: 99, Ticks: 200, Log: logger}
	p := batchParty()

	a, err := RunBatch(context.Background(), cfg, p.Fresh)
	if err != nil {
		t.Fatalf("RunBatch returned error: %v", err)
	}
	b, err := RunBatch(context.Background(), cfg, p.Fresh)
	if err != nil {
		t.Fatalf("RunBatch returned error: %v", err)
	}
	if a.AvgTotalDamage != b.AvgTotalDamage || a.AvgCriticals != b.AvgCriticals {
		t.Errorf("batches differ: %+v vs %+v", a, b)
	}
	if a.BatchID == b.BatchID {
		t.Error("batch IDs should be unique")
	}
	share := a.DamageShareByActor["Jeremy"] + a.DamageShareByActor["Ted"]
	if share < 0.999 || share > 1.001 {
		t.Errorf("damage shares sum to %v, expected 1", share)
	}
	if a.CritRate < 0 || a.CritRate > 1 {
		t.Errorf("CritRate = %v, expected within [0,1]", a.CritRate)
	}
	if len(p.Actors[0].Events()) != 0 {
		t.Error("batch runs recorded events on the roster's own actors")
	}
}

func TestRunBatch_InvalidRuns(t *testing.T) {
	if _, err := RunBatch(context.Background(), BatchConfig{Runs: 0}, batchParty().Fresh); err == nil {
		t.Error("RunBatch with zero runs returned nil error")
	}
}

func TestRunBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	logger, _ := captureLogger()
	_, err := RunBatch(ctx, BatchConfig{Runs: 5, Ticks: 10, Log: logger}, batchParty().Fresh)
	if err == nil {
		t.Error("RunBatch with cancelled context returned nil error")
	}
}
