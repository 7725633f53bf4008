package aac

// Capability is a set of decoder features.
type Capability uint32

// Features.
const (
	CapabilityLC Capability = 1 << iota
	CapabilityMain
	CapabilityLTP
	CapabilityLD
	CapabilityER
	CapabilitySBR
	CapabilityPS
	CapabilityLATM
	// CapabilityFixedPoint is never set: the decoder computes in floating
	// point.
	CapabilityFixedPoint
)

// Capabilities returns the features this build of the decoder supports.
func Capabilities() Capability {
	return CapabilityLC | CapabilityMain | CapabilityLTP | CapabilityLD |
		CapabilityER | CapabilitySBR | CapabilityPS | CapabilityLATM
}
