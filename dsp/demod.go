package dsp

// DemodLen returns the number of samples Demodulate produces for channel
// streams of length n.
func DemodLen(n int) int {
	if n <= 0 {
		return 0
	}
	return n - 1
}

// Demodulate computes, for i in [0, len(i)-1), a frequency proxy
// F[i] = Q[i+1]*I[i] - Q[i]*I[i+1] (sign carries the instantaneous
// frequency direction) and a power gate A[i] = I[i+1]^2 + Q[i+1]^2.
// "Amplitude" is historical naming; the quantity is power, not magnitude.
// outF and outA overwrite i and q in place when called with outF==i and
// outA==q, matching the reuse the source stages rely on.
func Demodulate(i, q []int32, outF, outA []int32) int {
	n := DemodLen(len(i))
	for k := 0; k < n; k++ {
		f := int64(q[k+1])*int64(i[k]) - int64(q[k])*int64(i[k+1])
		a := int64(i[k+1])*int64(i[k+1]) + int64(q[k+1])*int64(q[k+1])
		outF[k] = int32(f)
		outA[k] = int32(a)
	}
	return n
}
