// Package dsp implements the complex-baseband signal chain that turns a raw
// interleaved 8-bit I/Q sample stream into per-channel frequency and power
// traces ready for HDLC bit synchronization: sample decode, the two FIR
// anti-alias decimators, the AIS1/AIS2 channel splitter, and the FM/AM
// demodulator.
package dsp

// Decode converts a raw interleaved unsigned 8-bit I/Q buffer (byte value
// 128 is zero) into signed baseband streams. raw must have even length;
// i and q must each have length len(raw)/2.
func Decode(raw []byte, i, q []int32) {
	n := len(raw) / 2
	for k := 0; k < n; k++ {
		i[k] = int32(raw[2*k]) - 128
		q[k] = int32(raw[2*k+1]) - 128
	}
}
