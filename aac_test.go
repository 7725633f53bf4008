package aac

import "testing"

// The numeric values below are part of the public interface and must not
// change.
func TestConstants(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"ObjectTypeMain", int(ObjectTypeMain), 1},
		{"ObjectTypeLC", int(ObjectTypeLC), 2},
		{"ObjectTypeSSR", int(ObjectTypeSSR), 3},
		{"ObjectTypeLTP", int(ObjectTypeLTP), 4},
		{"ObjectTypeHEAAC", int(ObjectTypeHEAAC), 5},
		{"ObjectTypeERLC", int(ObjectTypeERLC), 17},
		{"ObjectTypeERLTP", int(ObjectTypeERLTP), 19},
		{"ObjectTypeLD", int(ObjectTypeLD), 23},
		{"ObjectTypeDRMERLC", int(ObjectTypeDRMERLC), 27},
		{"ObjectTypeHEAACv2", int(ObjectTypeHEAACv2), 29},

		{"HeaderTypeRAW", int(HeaderTypeRAW), 0},
		{"HeaderTypeADIF", int(HeaderTypeADIF), 1},
		{"HeaderTypeADTS", int(HeaderTypeADTS), 2},
		{"HeaderTypeLATM", int(HeaderTypeLATM), 3},

		{"OutputFormat16Bit", int(OutputFormat16Bit), 1},
		{"OutputFormat24Bit", int(OutputFormat24Bit), 2},
		{"OutputFormat32Bit", int(OutputFormat32Bit), 3},
		{"OutputFormatFloat", int(OutputFormatFloat), 4},
		{"OutputFormatDouble", int(OutputFormatDouble), 5},

		{"ChannelUnknown", int(ChannelUnknown), 0},
		{"ChannelFrontCenter", int(ChannelFrontCenter), 1},
		{"ChannelFrontLeft", int(ChannelFrontLeft), 2},
		{"ChannelFrontRight", int(ChannelFrontRight), 3},
		{"ChannelSideLeft", int(ChannelSideLeft), 4},
		{"ChannelSideRight", int(ChannelSideRight), 5},
		{"ChannelBackLeft", int(ChannelBackLeft), 6},
		{"ChannelBackRight", int(ChannelBackRight), 7},
		{"ChannelBackCenter", int(ChannelBackCenter), 8},
		{"ChannelLFE", int(ChannelLFE), 9},

		{"SBRNone", int(SBRNone), 0},
		{"SBRUpsampled", int(SBRUpsampled), 1},
		{"SBRDownsampled", int(SBRDownsampled), 2},
		{"SBRNoneUpsampled", int(SBRNoneUpsampled), 3},

		{"CapabilityLC", int(CapabilityLC), 1 << 0},
		{"CapabilityMain", int(CapabilityMain), 1 << 1},
		{"CapabilityLTP", int(CapabilityLTP), 1 << 2},
		{"CapabilityLD", int(CapabilityLD), 1 << 3},
		{"CapabilityER", int(CapabilityER), 1 << 4},

		{"MinStreamSize", MinStreamSize, 768},
		{"MaxChannels", MaxChannels, 64},
		{"len(ChannelPosition)", len(FrameInfo{}.ChannelPosition), 64},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestObjectType_Decodable(t *testing.T) {
	tests := []struct {
		ot   ObjectType
		want bool
	}{
		{ObjectTypeMain, true},
		{ObjectTypeLC, true},
		{ObjectTypeLTP, true},
		{ObjectTypeERLC, true},
		{ObjectTypeERLTP, true},
		{ObjectTypeLD, true},
		{ObjectTypeSSR, false},
		{ObjectTypeHEAAC, false},
		{ObjectTypeDRMERLC, false},
		{ObjectTypeHEAACv2, false},
	}
	for _, tt := range tests {
		if got := tt.ot.decodable(); got != tt.want {
			t.Errorf("%d: got %v, want %v", tt.ot, got, tt.want)
		}
	}
}
