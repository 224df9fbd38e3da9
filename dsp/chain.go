package dsp

// Chain owns the scratch buffers for one pipeline instance: a stable,
// reusable working set sized to the source sample buffer, overwritten on
// every sweep. No data survives between calls to Process.
type Chain struct {
	n int // source samples per buffer (I/Q pairs)

	iRaw, qRaw   []int32
	iDec3, qDec3 []int32
	ch1I, ch1Q   []int32
	ch2I, ch2Q   []int32
	ch1I2, ch1Q2 []int32
	ch2I2, ch2Q2 []int32
}

// NewChain allocates a Chain sized for source buffers of n I/Q pairs.
func NewChain(n int) *Chain {
	d3 := Decimate3Len(n)
	return &Chain{
		n:     n,
		iRaw:  make([]int32, n),
		qRaw:  make([]int32, n),
		iDec3: make([]int32, d3),
		qDec3: make([]int32, d3),
		ch1I:  make([]int32, d3),
		ch1Q:  make([]int32, d3),
		ch2I:  make([]int32, d3),
		ch2Q:  make([]int32, d3),
		ch1I2: make([]int32, Decimate2Len(d3)),
		ch1Q2: make([]int32, Decimate2Len(d3)),
		ch2I2: make([]int32, Decimate2Len(d3)),
		ch2Q2: make([]int32, Decimate2Len(d3)),
	}
}

// Channel is a demodulated channel trace: F carries the instantaneous
// frequency sign, A carries instantaneous power.
type Channel struct {
	F, A []int32
}

// Process runs C1 (decode) through C5 (demod) on one raw sample buffer
// (2*n bytes) and returns the two demodulated AIS channels. The returned
// slices alias Chain's internal buffers and are only valid until the next
// call to Process.
func (c *Chain) Process(raw []byte) (ais1, ais2 Channel) {
	Decode(raw, c.iRaw, c.qRaw)

	n3 := Decimate3(c.iRaw, c.qRaw, c.iDec3, c.qDec3)
	ch1I, ch1Q := c.ch1I[:n3], c.ch1Q[:n3]
	ch2I, ch2Q := c.ch2I[:n3], c.ch2Q[:n3]
	Split(c.iDec3[:n3], c.qDec3[:n3], ch1I, ch1Q, ch2I, ch2Q)

	n2 := Decimate2(ch1I, ch1Q, c.ch1I2, c.ch1Q2)
	Decimate2(ch2I, ch2Q, c.ch2I2, c.ch2Q2)

	nd := DemodLen(n2)
	Demodulate(c.ch1I2[:n2], c.ch1Q2[:n2], c.ch1I2[:nd], c.ch1Q2[:nd])
	Demodulate(c.ch2I2[:n2], c.ch2Q2[:n2], c.ch2I2[:nd], c.ch2Q2[:nd])

	return Channel{F: c.ch1I2[:nd], A: c.ch1Q2[:nd]}, Channel{F: c.ch2I2[:nd], A: c.ch2Q2[:nd]}
}
