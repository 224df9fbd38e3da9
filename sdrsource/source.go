// Package sdrsource is the external collaborator that owns the rtl_tcp
// control channel: tuning, gain, and sample-rate configuration all live
// here, deliberately outside the decoding core, which only ever asks for
// exact-sized sample buffers.
package sdrsource

import (
	"io"
	"net"

	"github.com/bemasher/rtltcp"
	"github.com/pkg/errors"
)

// CenterFreqHz is the tune frequency the core assumes AIS1/AIS2 sit
// symmetrically around.
const CenterFreqHz = 162000000

// SampleRateHz is the nominal source rate the DSP chain is designed for.
const SampleRateHz = 300000

// Source dials an rtl_tcp server and configures it for AIS reception. It
// satisfies the core's read_exact requirement via ReadExact, which always fills
// the supplied buffer or returns an error.
type Source struct {
	sdr rtltcp.SDR
}

// Dial connects to an rtl_tcp server at addr (host:port) and configures it
// for AIS capture at CenterFreqHz and SampleRateHz. gain only selects the
// tuner gain mode (0 selects auto gain, any other value manual); the gain
// value itself is not sent to the server.
func Dial(addr string, gain int) (*Source, error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "sdrsource: resolve")
	}

	s := &Source{}
	if err := s.sdr.Connect(tcpAddr); err != nil {
		return nil, errors.Wrap(err, "sdrsource: connect")
	}
	s.sdr.SetSampleRate(SampleRateHz)
	s.sdr.SetCenterFreq(CenterFreqHz)
	// Gain tuning beyond auto mode is left to rtl_tcp's own defaults; the
	// grounding example (rtlamr's Receiver) only ever calls SetGainMode.
	s.sdr.SetGainMode(gain == 0)
	return s, nil
}

// ReadExact fills buf completely from the underlying connection, or
// returns the first error encountered (including io.EOF/io.ErrUnexpectedEOF
// on a short read at end of stream).
func (s *Source) ReadExact(buf []byte) error {
	_, err := io.ReadFull(&s.sdr, buf)
	return err
}

// Close releases the underlying rtl_tcp connection.
func (s *Source) Close() error {
	return s.sdr.Close()
}
