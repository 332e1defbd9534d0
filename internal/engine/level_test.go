package engine

import "testing"

func TestLevelCurveBoundaries(t *testing.T) {
	if got := XPRequiredForLevel(0); got != 0 {
		t.Fatalf("XPRequiredForLevel(0)=%d, want 0", got)
	}
	if got := XPRequiredForLevel(1); got != 1 {
		t.Fatalf("XPRequiredForLevel(1)=%d, want 1", got)
	}
	// ceil(2^2.7) = ceil(6.498) = 7
	if got := XPRequiredForLevel(2); got != 7 {
		t.Fatalf("XPRequiredForLevel(2)=%d, want 7", got)
	}

	if got := LevelForXP(0); got != 0 {
		t.Fatalf("LevelForXP(0)=%d, want 0", got)
	}
	// 25^(1/2.7) ≈ 3.29 → 3
	if got := LevelForXP(25); got != 3 {
		t.Fatalf("LevelForXP(25)=%d, want 3", got)
	}
}

func TestLevelForXPMonotonic(t *testing.T) {
	prev := LevelForXP(0)
	for xp := 1; xp <= 5000; xp++ {
		cur := LevelForXP(xp)
		if cur < prev {
			t.Fatalf("LevelForXP(%d)=%d < LevelForXP(%d)=%d", xp, cur, xp-1, prev)
		}
		prev = cur
	}
}

func TestLevelCurvesAreNotInverses(t *testing.T) {
	// The two formulas round in opposite directions; the threshold for the
	// level LevelForXP reports can sit above the xp that produced it.
	xp := 25
	level := LevelForXP(xp)
	if req := XPRequiredForLevel(level); req > xp {
		t.Fatalf("XPRequiredForLevel(%d)=%d exceeds xp %d", level, req, xp)
	}
	if req := XPRequiredForLevel(level + 1); req <= xp {
		t.Fatalf("XPRequiredForLevel(%d)=%d should exceed xp %d", level+1, req, xp)
	}
}

func TestProgressPercentClamped(t *testing.T) {
	if got := ProgressPercent(0, 0); got < 0 || got > 100 {
		t.Fatalf("ProgressPercent(0,0)=%d, out of range", got)
	}
	// xp below the level threshold clamps to 0.
	if got := ProgressPercent(0, 3); got != 0 {
		t.Fatalf("ProgressPercent(0,3)=%d, want 0", got)
	}
	// xp beyond the next threshold clamps to 100.
	if got := ProgressPercent(10_000, 3); got != 100 {
		t.Fatalf("ProgressPercent(10000,3)=%d, want 100", got)
	}
	// 25 xp at level 3: thresholds 20 and 43 → (25-20)/23 ≈ 22%.
	if got := ProgressPercent(25, 3); got != 22 {
		t.Fatalf("ProgressPercent(25,3)=%d, want 22", got)
	}
}
