package scaling

import "testing"

func TestComputeCurrent(t *testing.T) {
	tests := []struct {
		mode       string
		humans     int
		enemies    int
		friendlies int
	}{
		{ModeStronghold, 0, 3, 5},
		{ModeStronghold, 4, 11, 9},
		{ModeRaid, 4, 11, 9},
		{ModeStronghold, 20, 32, 0},
		{ModeEntrenchment, 0, 6, 3},
		{ModeEntrenchment, 10, 26, 6},
		{ModeEntrenchment, 13, 32, 0},
	}

	for _, tt := range tests {
		p := Compute(RevisionCurrent, tt.mode, tt.humans)
		if !p.Apply {
			t.Errorf("Compute(%s, %d): not applied", tt.mode, tt.humans)
			continue
		}
		if p.Enemies != tt.enemies || p.Friendlies != tt.friendlies {
			t.Errorf("Compute(%s, %d) = %d enemy, %d friendly, want %d, %d",
				tt.mode, tt.humans, p.Enemies, p.Friendlies, tt.enemies, tt.friendlies)
		}
		if p.SetCaptureTime {
			t.Errorf("Compute(%s, %d): current revision must not touch the capture time", tt.mode, tt.humans)
		}
	}
}

func TestComputeCurrentUnknownMode(t *testing.T) {
	for _, mode := range []string{"", "coop", "Stronghold"} {
		p := Compute(RevisionCurrent, mode, 4)
		if p.Apply || p.Disable {
			t.Errorf("Compute(%q, 4): unknown mode must neither apply nor disable, got %+v", mode, p)
		}
	}
}

func TestComputeLegacy(t *testing.T) {
	p := Compute(RevisionLegacy, ModeStronghold, 4)
	if !p.Apply {
		t.Fatal("legacy stronghold: not applied")
	}
	if p.Enemies != 15 || p.Friendlies != 9 {
		t.Fatalf("legacy stronghold n=4: got %d enemy, %d friendly, want 15, 9", p.Enemies, p.Friendlies)
	}
	if !p.SetCaptureTime || p.CaptureTime != 300 {
		t.Fatalf("legacy stronghold n=4: capture time = %d (set=%v), want 300", p.CaptureTime, p.SetCaptureTime)
	}
}

func TestComputeLegacyDisablesOtherModes(t *testing.T) {
	for _, mode := range []string{"", ModeRaid, ModeEntrenchment, "coop"} {
		p := Compute(RevisionLegacy, mode, 4)
		if p.Apply || !p.Disable {
			t.Errorf("Compute(legacy, %q, 4): want explicit disable, got %+v", mode, p)
		}
	}
}

func TestComputePopulationCeiling(t *testing.T) {
	modes := []string{ModeStronghold, ModeRaid, ModeEntrenchment}
	for _, rev := range []Revision{RevisionCurrent, RevisionLegacy} {
		for _, mode := range modes {
			for _, humans := range []int{-5, 0, 1, 7, 14, 16, 32, 100, 1 << 30} {
				p := Compute(rev, mode, humans)
				if !p.Apply {
					continue
				}
				if p.Enemies < 0 || p.Friendlies < 0 {
					t.Fatalf("%v/%s/%d: negative count in %+v", rev, mode, humans, p)
				}
				if p.Enemies+p.Friendlies > MaxPopulation {
					t.Fatalf("%v/%s/%d: %d + %d exceeds ceiling", rev, mode, humans, p.Enemies, p.Friendlies)
				}
			}
		}
	}
}

func TestComputeEnemiesMonotonic(t *testing.T) {
	for _, rev := range []Revision{RevisionCurrent, RevisionLegacy} {
		for _, mode := range []string{ModeStronghold, ModeRaid, ModeEntrenchment} {
			prev := 0
			for humans := 0; humans <= 64; humans++ {
				p := Compute(rev, mode, humans)
				if !p.Apply {
					continue
				}
				if p.Enemies < prev {
					t.Fatalf("%v/%s: enemy count dropped from %d to %d at n=%d", rev, mode, prev, p.Enemies, humans)
				}
				prev = p.Enemies
			}
		}
	}
}
