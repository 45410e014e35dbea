package unlock

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/wartide/garrison/internal/cvar"
	"github.com/wartide/garrison/internal/cvar/cvarflag"
)

func discard() *log.Logger { return log.New(io.Discard, "", 0) }

func snapshot(r *cvar.Registry) map[string]string {
	m := map[string]string{}
	r.ForEach(func(v *cvar.Variable) {
		max, has := v.Max()
		m[v.Name()] = fmt.Sprintf("%d/%s/%g/%v", v.Int(), v.Flags(), max, has)
	})
	return m
}

func TestApplyUnlocksStockVars(t *testing.T) {
	vars := cvar.Stock(discard())
	u := New(vars, DefaultBatch(), 56, discard())

	u.Apply()

	v, err := vars.Find("bot_count_max")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	max, has := v.Max()
	if !has || max != 32 { // 56 slots - 24 reserved
		t.Fatalf("bot_count_max bound = %g (set=%v), want 32", max, has)
	}

	v, err = vars.Find("sv_round_time_max")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if max, _ := v.Max(); max != 600 {
		t.Fatalf("sv_round_time_max bound = %g, want 600", max)
	}

	v, err = vars.Find("bot_accuracy_scale")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if v.Flags().Has(cvarflag.Cheat) {
		t.Fatal("bot_accuracy_scale still cheat-protected after unlock")
	}

	v, err = vars.Find("sv_voice_range")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if v.Flags().Has(cvarflag.Notify) {
		t.Fatal("sv_voice_range still notify-flagged after unlock")
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	vars := cvar.Stock(discard())
	u := New(vars, DefaultBatch(), 48, discard())

	u.Apply()
	once := snapshot(vars)
	u.Apply()
	twice := snapshot(vars)

	if len(once) != len(twice) {
		t.Fatalf("variable count changed: %d != %d", len(once), len(twice))
	}
	for name, state := range once {
		if twice[name] != state {
			t.Fatalf("%s changed on second apply: %q != %q", name, state, twice[name])
		}
	}
}

func TestApplySkipsMissingVars(t *testing.T) {
	// registry missing most of the batch; the batch must still run through
	vars := cvar.NewRegistry(discard())
	vars.Register("sv_team_balance_margin", 2, 0)
	vars.Register("bot_difficulty", 2, cvarflag.Notify)

	u := New(vars, DefaultBatch(), 32, discard())
	u.Apply()

	v, err := vars.Find("sv_team_balance_margin")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if max, has := v.Max(); !has || max != 32 {
		t.Fatalf("bound override after missing vars = %g (set=%v), want 32", max, has)
	}

	v, err = vars.Find("bot_difficulty")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if v.Flags().Has(cvarflag.Notify) {
		t.Fatal("flag clear after missing vars did not run")
	}
}

func TestApplySlotsFloor(t *testing.T) {
	vars := cvar.Stock(discard())
	u := New(vars, DefaultBatch(), 16, discard()) // fewer slots than the reserve

	u.Apply()

	v, err := vars.Find("bot_count_max")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if max, _ := v.Max(); max != 0 {
		t.Fatalf("bot_count_max bound = %g, want floor at 0", max)
	}
}

func TestLoadBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unlock.yaml")
	err := os.WriteFile(path, []byte(`
bounds:
  - cvar: sv_round_time_max
    max: 900
  - cvar: bot_count_max
    from_slots: true
flags:
  - cvar: bot_reaction_time
    flag: cheat
`), 0o644)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	b, err := LoadBatch(path)
	if err != nil {
		t.Fatalf("LoadBatch: %v", err)
	}
	if len(b.Bounds) != 2 || len(b.Flags) != 1 {
		t.Fatalf("batch = %+v", b)
	}
	if b.Bounds[0].Max != 900 || !b.Bounds[1].FromSlots {
		t.Fatalf("bounds = %+v", b.Bounds)
	}
	if b.Flags[0].Cvar != "bot_reaction_time" || b.Flags[0].Flag != "cheat" {
		t.Fatalf("flags = %+v", b.Flags)
	}
}
