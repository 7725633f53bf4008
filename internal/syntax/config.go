package syntax

// StreamConfig holds the stream parameters the element parsers depend on.
type StreamConfig struct {
	ObjectType    ObjectType
	SRIndex       uint8
	FrameLength   uint16
	ChannelConfig uint8

	// Error resilience tools, from GASpecificConfig.
	SectionDataResilience  bool
	ScalefactorResilience  bool
	SpectralDataResilience bool
}

// ER reports whether the object type uses error resilient syntax.
func (c *StreamConfig) ER() bool {
	return c.ObjectType.IsER()
}
