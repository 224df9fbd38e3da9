package dsp

// Both anti-alias kernels are stored one-sided: element 0 is the center
// tap, elements 1..15 are the side taps (the full 31-tap symmetric kernel
// is h[15], h[14], ..., h[1], h[0], h[1], ..., h[15]). Coefficients are
// scaled by 2^20; FIR applies a compensating >>19 shift (net gain ~2).
//
// h3 is the anti-alias filter ahead of decimation by 3 (stopband around a
// third of the input rate). h8 is the anti-alias filter ahead of the final
// decimation by 2 (stopband around 6.25kHz at the 100kHz intermediate
// rate). Both are windowed-sinc low-pass kernels; h3's center tap
// (349525) and h8's center tap (131072) fix their respective cutoffs at
// 1/6 and 1/16 of their input rate.
var h3 = [kernelHalfLen]int64{
	349525, 286150, 138780, 0, -61265, -44514, 0, 24284,
	17774, 0, -8961, -6102, 0, 2663, 1859, 0,
}

var h8 = [kernelHalfLen]int64{
	131072, 126445, 113313, 93758, 70743, 47488, 26833, 10731,
	0, -5646, -7316, -6509, -4669, -2841, -1518, -681,
}

const (
	kernelHalfLen = 16 // center tap + 15 side taps
	kernelMargin  = kernelHalfLen - 1
	firShift      = 19
)

// fir evaluates the symmetric convolution centered on x[center]:
// y = (h[0]*x[center] + sum_{j=1}^{15} h[j]*(x[center-j]+x[center+j])) >> 19.
// The caller guarantees center-15 >= 0 and center+15 < len(x).
func fir(h *[kernelHalfLen]int64, x []int32, center int) int32 {
	acc := h[0] * int64(x[center])
	for j := 1; j < kernelHalfLen; j++ {
		acc += h[j] * int64(x[center-j]+x[center+j])
	}
	return int32(acc >> firShift)
}

// Decimate3Len returns the number of output samples Decimate3 produces for
// an input of length n.
func Decimate3Len(n int) int {
	return decimatedLen(n, 3)
}

// Decimate2Len returns the number of output samples Decimate2 produces for
// an input of length n.
func Decimate2Len(n int) int {
	return decimatedLen(n, 2)
}

func decimatedLen(n, factor int) int {
	usable := n - 2*kernelMargin
	if usable <= 0 {
		return 0
	}
	return (usable-1)/factor + 1
}

// Decimate3 applies the h3 anti-alias filter to i and q and downsamples by
// 3, writing Decimate3Len(len(i)) samples into outI and outQ.
func Decimate3(i, q []int32, outI, outQ []int32) int {
	return decimate(&h3, i, q, outI, outQ, 3)
}

// Decimate2 applies the h8 anti-alias filter to i and q and downsamples by
// 2, writing Decimate2Len(len(i)) samples into outI and outQ.
func Decimate2(i, q []int32, outI, outQ []int32) int {
	return decimate(&h8, i, q, outI, outQ, 2)
}

func decimate(h *[kernelHalfLen]int64, i, q, outI, outQ []int32, factor int) int {
	n := decimatedLen(len(i), factor)
	for j := 0; j < n; j++ {
		center := factor*j + kernelMargin
		outI[j] = fir(h, i, center)
		outQ[j] = fir(h, q, center)
	}
	return n
}
