// Package aisrx is the decoding core: it drives one buffer-sized sweep
// through the DSP chain and, per channel, the HDLC/CRC/unpack loop,
// emitting validated AIS records to a sink in arrival order.
package aisrx

import (
	"aisrx/ais"
	"aisrx/crc"
	"aisrx/dsp"
	"aisrx/hdlc"
)

// NIQ is the number of I/Q sample pairs per source buffer (≈1s at 300 kHz).
const NIQ = 300000

// tailGuard mirrors hdlc's tail guard: the orchestrator stops scanning a
// channel once fewer than this many samples remain, since no frame can fit.
const tailGuard = 500

// Source is the only thing the core requires of the upstream sample
// transport: a blocking read that either fully fills buf or fails.
type Source interface {
	ReadExact(buf []byte) error
}

// Sink receives one decoded record at a time, in the order §5 specifies:
// within a buffer, channel 1 before channel 2, each in sample-time order.
type Sink interface {
	Emit(r ais.Record)
}

// Pipeline owns the DSP scratch state for one run. It is not safe for
// concurrent use — the core is single-threaded per buffer by design.
type Pipeline struct {
	chain     *dsp.Chain
	symPeriod float64
	raw       []byte
}

// NewPipeline allocates a Pipeline sized for source buffers of n I/Q pairs
// at the given sample rate (used only to compute the HDLC symbol period;
// the DSP chain itself is rate-agnostic).
func NewPipeline(n int, sourceRateHz float64) *Pipeline {
	decRateHz := sourceRateHz / 3 / 2
	return &Pipeline{
		chain:     dsp.NewChain(n),
		symPeriod: hdlc.SymbolPeriod(decRateHz),
		raw:       make([]byte, 2*n),
	}
}

// ProcessBuffer runs one sweep (C1 through the per-channel C6-C9 loop) over
// a raw 2*n-byte sample buffer, emitting every validated record to sink.
func (p *Pipeline) ProcessBuffer(raw []byte, sink Sink) {
	ch1, ch2 := p.chain.Process(raw)
	scanChannel(ch1, p.symPeriod, sink)
	scanChannel(ch2, p.symPeriod, sink)
}

// scanChannel repeatedly locates, receives, validates, and unpacks frames
// from one demodulated channel until the locator's resume index leaves
// less than tailGuard samples of tail.
func scanChannel(ch dsp.Channel, symPeriod float64, sink Sink) {
	n := len(ch.F)
	pos := 0
	for n-pos >= tailGuard {
		bitCenter, resume, found := hdlc.Locate(ch.F, ch.A, pos, symPeriod)
		if !found {
			pos = resume
			continue
		}

		fr, next := hdlc.Receive(ch.F, ch.A, bitCenter, symPeriod)
		if next <= pos {
			next = pos + 1
		}
		pos = next

		payload := fr.Payload()
		if len(payload) == 0 {
			continue
		}
		want := crc.PayloadOctets(payload[0])
		if len(payload) < want+2 {
			continue
		}
		body := payload[:want]
		var fcs [2]byte
		fcs[0], fcs[1] = payload[want], payload[want+1]
		if !crc.Verify(body, fcs) {
			continue
		}

		sink.Emit(ais.Unpack(body))
	}
}

// Run drives the pipeline to completion: it reads fixed-size buffers from
// source and feeds each to ProcessBuffer until source signals the stream
// is closed (any read error ends the run cleanly; the sink has already
// received everything decoded before the error).
func Run(source Source, sink Sink, n int, sourceRateHz float64) {
	p := NewPipeline(n, sourceRateHz)
	for {
		if err := source.ReadExact(p.raw); err != nil {
			return
		}
		p.ProcessBuffer(p.raw, sink)
	}
}
