package ais

// Unpack decodes a validated payload (message body octets, CRC already
// stripped) into a Record. id is the message ID read from the first 6 bits
// of payload[0] (payload[0]>>2). IDs outside {1,2,3,4,5} produce an
// Unknown record carrying only the ID, per the "accept and continue"
// policy — this function never fails the pipeline.
func Unpack(payload []byte) Record {
	id := int(payload[0] >> 2)

	switch id {
	case 1, 2, 3:
		return Record{
			Kind:      Pos,
			ID:        id,
			MMSI:      uint32(bitsAt(payload, 8, 30)),
			SpeedKmh:  float64(bitsAt(payload, 50, 10)) * 0.1852,
			Lon:       float64(signedBitsAt(payload, 61, 28)) * coordScale,
			Lat:       float64(signedBitsAt(payload, 89, 27)) * coordScale,
			CourseDeg: float64(bitsAt(payload, 116, 12)) * 0.1,
		}
	case 4:
		return Record{
			Kind:   Base,
			ID:     id,
			MMSI:   uint32(bitsAt(payload, 8, 30)),
			Year:   int(bitsAt(payload, 38, 14)),
			Month:  int(bitsAt(payload, 52, 4)),
			Day:    int(bitsAt(payload, 56, 5)),
			Hour:   int(bitsAt(payload, 61, 5)),
			Minute: int(bitsAt(payload, 66, 6)),
			Second: int(bitsAt(payload, 72, 6)),
			Lon:    float64(signedBitsAt(payload, 79, 28)) * coordScale,
			Lat:    float64(signedBitsAt(payload, 107, 27)) * coordScale,
		}
	case 5:
		return Record{
			Kind:        Static,
			ID:          id,
			MMSI:        uint32(bitsAt(payload, 8, 30)),
			CallSign:    sixBitChars(payload, 70, 7),
			Name:        sixBitChars(payload, 112, 20),
			Destination: sixBitChars(payload, 302, 20),
		}
	default:
		return Record{Kind: Unknown, ID: id}
	}
}
