package questiongen

import "testing"

func TestBuildSlotsRoundRobin(t *testing.T) {
	topics := []string{"Algebra", "Geometry", "Fractions"}
	slots := BuildSlots(topics, 2)

	if len(slots) != 10 {
		t.Fatalf("got %d slots, want 10", len(slots))
	}

	// Topics cycle across the whole sequence, not per band.
	for i, slot := range slots {
		want := topics[i%len(topics)]
		if slot.Topic != want {
			t.Errorf("slot %d topic = %q, want %q", i, slot.Topic, want)
		}
	}

	// Two consecutive slots per band, bands in ascending order.
	bands := Bands()
	for i, slot := range slots {
		if slot.Difficulty != bands[i/2] {
			t.Errorf("slot %d difficulty = %q, want %q", i, slot.Difficulty, bands[i/2])
		}
	}
}

func TestExpectedSeconds(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want int
	}{
		{VeryEasy, 15},
		{Easy, 25},
		{Intermediate, 35},
		{Advanced, 45},
		{Expert, 60},
		{Difficulty("unknown"), 30},
	}
	for _, tt := range tests {
		if got := tt.d.ExpectedSeconds(); got != tt.want {
			t.Errorf("ExpectedSeconds(%q) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestDifficultyValid(t *testing.T) {
	for _, d := range Bands() {
		if !d.Valid() {
			t.Errorf("%q should be valid", d)
		}
	}
	if Difficulty("medium").Valid() {
		t.Error("unknown band should not be valid")
	}
}
