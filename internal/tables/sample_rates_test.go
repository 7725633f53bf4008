package tables

import "testing"

func TestGetSampleRate(t *testing.T) {
	tests := []struct {
		index uint8
		want  uint32
	}{
		{0, 96000}, {3, 48000}, {4, 44100}, {8, 16000}, {11, 8000}, {12, 0}, {15, 0},
	}
	for _, tt := range tests {
		if got := GetSampleRate(tt.index); got != tt.want {
			t.Errorf("GetSampleRate(%d): got %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestGetSRIndex(t *testing.T) {
	tests := []struct {
		rate uint32
		want uint8
	}{
		{96000, 0}, {92017, 0}, {92016, 1}, {48000, 3}, {46009, 3}, {46008, 4},
		{44100, 4}, {22050, 7}, {16000, 8}, {8000, 11}, {7350, 11}, {1, 11},
	}
	for _, tt := range tests {
		if got := GetSRIndex(tt.rate); got != tt.want {
			t.Errorf("GetSRIndex(%d): got %d, want %d", tt.rate, got, tt.want)
		}
	}
	for i, r := range SampleRates {
		if got := GetSRIndex(r); got != uint8(i) {
			t.Errorf("GetSRIndex(%d): got %d, want %d", r, got, i)
		}
	}
}

func TestMaxPredSFB(t *testing.T) {
	want := [12]uint8{33, 33, 38, 40, 40, 40, 41, 41, 37, 37, 37, 34}
	for i := uint8(0); i < 12; i++ {
		if got := MaxPredSFB(i); got != want[i] {
			t.Errorf("MaxPredSFB(%d): got %d, want %d", i, got, want[i])
		}
	}
	if got := MaxPredSFB(12); got != 0 {
		t.Errorf("MaxPredSFB(12): got %d, want 0", got)
	}
}

func TestMaxTNSSFB(t *testing.T) {
	tests := []struct {
		srIndex uint8
		isShort bool
		want    uint8
	}{
		{0, false, 31}, {0, true, 9}, {3, false, 40}, {3, true, 14},
		{4, false, 42}, {5, false, 51}, {11, false, 39}, {11, true, 14}, {16, false, 0},
	}
	for _, tt := range tests {
		if got := MaxTNSSFB(tt.srIndex, tt.isShort); got != tt.want {
			t.Errorf("MaxTNSSFB(%d, %v): got %d, want %d", tt.srIndex, tt.isShort, got, tt.want)
		}
	}
}
