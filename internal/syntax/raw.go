package syntax

// erElementOrder lists the channel elements of an error resilient raw data
// block, which carries no element ids, per channel configuration.
var erElementOrder = [8][]ElementID{
	1: {IDSCE},
	2: {IDCPE},
	3: {IDSCE, IDCPE},
	4: {IDSCE, IDCPE, IDSCE},
	5: {IDSCE, IDCPE, IDCPE},
	6: {IDSCE, IDCPE, IDCPE, IDLFE},
	7: {IDSCE, IDCPE, IDCPE, IDCPE, IDLFE},
}

// ERElementOrder returns the element sequence of an error resilient frame
// for a channel configuration.
func ERElementOrder(channelConfig uint8) ([]ElementID, error) {
	if channelConfig == 0 || int(channelConfig) >= len(erElementOrder) {
		return nil, ErrERChannelConfig
	}
	return erElementOrder[channelConfig], nil
}
