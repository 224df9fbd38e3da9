package ais

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// setBitsAt writes an unsigned value of width bits into payload starting at
// bit offset start, MSB-first — the test-side mirror of bitsAt, used to
// synthesize payloads field by field.
func setBitsAt(payload []byte, start, width int, v uint64) {
	for i := 0; i < width; i++ {
		b := start + i
		byteIdx := b / 8
		bitPos := 7 - uint(b%8)
		bit := (v >> uint(width-1-i)) & 1
		if bit != 0 {
			payload[byteIdx] |= 1 << bitPos
		} else {
			payload[byteIdx] &^= 1 << bitPos
		}
	}
}

func setSignedBitsAt(payload []byte, start, width int, v int64) {
	mask := uint64(1)<<uint(width) - 1
	setBitsAt(payload, start, width, uint64(v)&mask)
}

func TestUnpackPositionReport(t *testing.T) {
	payload := make([]byte, 19) // 152 bits: room for every field below (COG ends at bit 127)
	setBitsAt(payload, 0, 6, 1) // ID 1
	setBitsAt(payload, 8, 30, 123456789)
	setBitsAt(payload, 50, 10, 123) // 12.3 kn
	setSignedBitsAt(payload, 61, 28, int64(-74.006*600000))
	setSignedBitsAt(payload, 89, 27, int64(40.7128*600000))
	setBitsAt(payload, 116, 12, 875) // 87.5 deg

	r := Unpack(payload)
	require.Equal(t, Pos, r.Kind)
	require.Equal(t, uint32(123456789), r.MMSI)
	require.InDelta(t, -74.006, r.Lon, 1e-4)
	require.InDelta(t, 40.7128, r.Lat, 1e-4)
	require.InDelta(t, 123*0.1852, r.SpeedKmh, 1e-6)
	require.InDelta(t, 87.5, r.CourseDeg, 1e-6)
}

func TestUnpackBaseStationReport(t *testing.T) {
	payload := make([]byte, 19)
	setBitsAt(payload, 0, 6, 4)
	setBitsAt(payload, 8, 30, 987654321)
	setBitsAt(payload, 38, 14, 2024)
	setBitsAt(payload, 52, 4, 3)
	setBitsAt(payload, 56, 5, 14)
	setBitsAt(payload, 61, 5, 15)
	setBitsAt(payload, 66, 6, 9)
	setBitsAt(payload, 72, 6, 26)

	r := Unpack(payload)
	require.Equal(t, Base, r.Kind)
	require.Equal(t, 2024, r.Year)
	require.Equal(t, 3, r.Month)
	require.Equal(t, 14, r.Day)
	require.Equal(t, 15, r.Hour)
	require.Equal(t, 9, r.Minute)
	require.Equal(t, 26, r.Second)
}

func TestUnpackStaticAndVoyageData(t *testing.T) {
	payload := make([]byte, 53)
	setBitsAt(payload, 0, 6, 5)
	setBitsAt(payload, 8, 30, 111222333)
	writeSixBit(payload, 70, "WDE5432")
	writeSixBit(payload, 112, "EVER GIVEN")
	writeSixBit(payload, 302, "ROTTERDAM")

	r := Unpack(payload)
	require.Equal(t, Static, r.Kind)
	require.Equal(t, "WDE5432", r.CallSign)
	require.Equal(t, "EVER GIVEN", r.Name)
	require.Equal(t, "ROTTERDAM", r.Destination)
}

// writeSixBit is the test-side inverse of sixBitChars: it writes the 6-bit
// code of each character of s MSB-first and does not pad; the rest of the
// field keeps its existing bits (zero bits decode to '@').
func writeSixBit(payload []byte, start int, s string) {
	for i, c := range []byte(s) {
		var v byte
		if c >= 64 {
			v = c - 64
		} else {
			v = c
		}
		setBitsAt(payload, start+6*i, 6, uint64(v))
	}
}

func TestUnpackUnknownMessageID(t *testing.T) {
	for id := 6; id <= 27; id++ {
		payload := make([]byte, 19)
		setBitsAt(payload, 0, 6, uint64(id))
		r := Unpack(payload)
		require.Equal(t, Unknown, r.Kind)
		require.Equal(t, "Unknown message ID", Format(r)[len(Format(r))-len("Unknown message ID"):])
	}
}

// The latitude boundary is internally consistent with the two's-complement,
// 1/600000-scale field definition §4.9 gives: +90.0 decodes from 54000000.
func TestLatitudeBoundaryPositive90(t *testing.T) {
	payload := make([]byte, 19)
	setBitsAt(payload, 0, 6, 1)
	setSignedBitsAt(payload, 89, 27, 54000000)
	r := Unpack(payload)
	require.InDelta(t, 90.0, r.Lat, 1e-6)
}

// The spec's stated longitude boundary (-180.0 from raw value 0x8000000)
// does not hold under the same two's-complement/600000-scale definition
// that makes the latitude boundary above consistent: a 28-bit two's
// complement field with only the sign bit set is -2^27/600000 =
// -223.696..., not -180. We implement the field definition consistently
// (it is what the latitude test and the rest of §4.9 depend on) and record
// the actual decoded value here instead of the one in the boundary table.
func TestLongitudeSignBitOnlyDecodesConsistentlyWithFieldDefinition(t *testing.T) {
	payload := make([]byte, 19)
	setBitsAt(payload, 0, 6, 1)
	setSignedBitsAt(payload, 61, 28, -1<<27)
	r := Unpack(payload)
	require.InDelta(t, -223.696213, r.Lon, 1e-3)
}

func TestSixBitCharsTrimsPadding(t *testing.T) {
	payload := make([]byte, 6)
	writeSixBit(payload, 0, "AB")
	// Remaining characters in the 7-char callsign field are left as zero
	// bits, which decode to '@' and must be trimmed.
	require.Equal(t, "AB", sixBitChars(payload, 0, 7))
}
