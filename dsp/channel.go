package dsp

// Split derives the AIS2 stream (+25kHz) from the AIS1 baseband (src) and
// re-centers the AIS1 stream (a half-cycle, 50kHz adjust), per the four-way
// rotation pattern indexed by sample number modulo 4. At 100kHz this
// quarter-cycle rotation corresponds to the +-25kHz channel spacing
// between AIS1 and AIS2.
//
// The eight per-mod-4 sign/swap assignments below must be transcribed
// exactly: they encode two superimposed complex rotations (a +25kHz spin
// onto ch2, a -50kHz half-cycle adjustment of ch1) and any single-element
// error silently swaps or mirrors one channel.
func Split(srcI, srcQ []int32, ch1I, ch1Q, ch2I, ch2Q []int32) {
	n := len(srcI)
	for i := 0; i < n; i++ {
		I, Q := srcI[i], srcQ[i]
		switch i % 4 {
		case 0:
			ch2I[i], ch2Q[i] = I, Q
			ch1I[i], ch1Q[i] = I, Q
		case 1:
			ch2I[i], ch2Q[i] = Q, -I
			ch1I[i], ch1Q[i] = -I, -Q
		case 2:
			ch2I[i], ch2Q[i] = -I, -Q
			ch1I[i], ch1Q[i] = I, Q
		case 3:
			ch2I[i], ch2Q[i] = -Q, I
			ch1I[i], ch1Q[i] = -I, -Q
		}
	}
}
