package syntax

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWindowGroupingInfo_Long(t *testing.T) {
	ics := &ICStream{WindowSequence: OnlyLongSequence, MaxSFB: 49}
	if err := WindowGroupingInfo(ics, 4, 1024); err != nil {
		t.Fatal(err)
	}
	if ics.NumWindows != 1 || ics.NumWindowGroups != 1 {
		t.Errorf("windows/groups: got %d/%d, want 1/1", ics.NumWindows, ics.NumWindowGroups)
	}
	if ics.NumSWB != 49 {
		t.Errorf("NumSWB: got %d, want 49", ics.NumSWB)
	}
	if got := ics.SWBOffset[ics.NumSWB]; got != 1024 {
		t.Errorf("last offset: got %d, want 1024", got)
	}
	if ics.SWBOffsetMax != 1024 {
		t.Errorf("SWBOffsetMax: got %d, want 1024", ics.SWBOffsetMax)
	}
}

func TestWindowGroupingInfo_ShortGroups(t *testing.T) {
	ics := &ICStream{
		WindowSequence:      EightShortSequence,
		MaxSFB:              14,
		ScaleFactorGrouping: 0b1100000,
	}
	if err := WindowGroupingInfo(ics, 4, 1024); err != nil {
		t.Fatal(err)
	}
	if ics.NumWindowGroups != 6 {
		t.Fatalf("NumWindowGroups: got %d, want 6", ics.NumWindowGroups)
	}
	want := []uint8{3, 1, 1, 1, 1, 1}
	if diff := cmp.Diff(want, ics.WindowGroupLength[:6]); diff != "" {
		t.Errorf("group lengths (-want +got):\n%s", diff)
	}
	if got := ics.SectSFBOffset[0][1]; got != 12 {
		t.Errorf("group 0 band 1 offset: got %d, want 12", got)
	}
	if got := ics.SectSFBOffset[0][14]; got != 384 {
		t.Errorf("group 0 end: got %d, want 384", got)
	}
	if got := ics.SectSFBOffset[1][14]; got != 128 {
		t.Errorf("group 1 end: got %d, want 128", got)
	}
	if ics.SWBOffsetMax != 128 {
		t.Errorf("SWBOffsetMax: got %d, want 128", ics.SWBOffsetMax)
	}
}

func TestWindowGroupingInfo_Errors(t *testing.T) {
	tests := []struct {
		name    string
		ics     ICStream
		srIndex uint8
		frame   uint16
		want    error
	}{
		{"max_sfb too large", ICStream{WindowSequence: OnlyLongSequence, MaxSFB: 50}, 4, 1024, ErrMaxSFBTooLarge},
		{"short max_sfb too large", ICStream{WindowSequence: EightShortSequence, MaxSFB: 15}, 4, 1024, ErrMaxSFBTooLarge},
		{"bad index", ICStream{}, 12, 1024, ErrInvalidSRIndex},
		{"ld short", ICStream{WindowSequence: EightShortSequence}, 3, 512, ErrInvalidWindow},
		{"ld start", ICStream{WindowSequence: LongStartSequence}, 3, 512, ErrInvalidWindow},
		{"ld stop", ICStream{WindowSequence: LongStopSequence}, 3, 480, ErrInvalidWindow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ics := tt.ics
			err := WindowGroupingInfo(&ics, tt.srIndex, tt.frame)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}
