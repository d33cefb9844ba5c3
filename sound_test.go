package ballpit

import "testing"

func TestPitchForSize(t *testing.T) {
	tests := []struct {
		size int
		want float64
	}{
		{50, 880},
		{100, 440},
		{0, 44000},
	}
	for _, tt := range tests {
		if got := pitchForSize(tt.size); got != tt.want {
			t.Errorf("pitchForSize(%d) = %v, want %v", tt.size, got, tt.want)
		}
	}
	if pitchForSize(60) <= pitchForSize(90) {
		t.Error("smaller balls should sound higher")
	}
}

func TestPopSoundUninitializedIsNoop(t *testing.T) {
	p := NewPopSound()
	p.Play(&Ball{Size: 60}) // must not touch the speaker
	p.Close()
}
