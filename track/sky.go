// Package track is ambient, UI-facing bookkeeping: it keeps a recently-seen
// table of vessels for the terminal display, with range and bearing from a
// fixed station position. It is not part of the decoding core — the core
// emits every validated record exactly once regardless of what track does
// with it afterward.
package track

import (
	"fmt"
	"math"
	"time"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	cache "github.com/patrickmn/go-cache"

	"aisrx/ais"
)

// TTL is how long a vessel stays in the table after its last report.
const TTL = 5 * time.Minute

// Vessel is the display-facing view of the most recent report for one
// MMSI.
type Vessel struct {
	MMSI       uint32
	Lon, Lat   float64
	SpeedKmh   float64
	CourseDeg  float64
	Name       string
	CallSign   string
	Seen       time.Time
	RangeKm    float64
	BearingDeg float64
}

// Sky holds recently-seen vessels keyed by MMSI, evicting entries that have
// not been updated within TTL.
type Sky struct {
	vessels    *cache.Cache
	station    s2.Point
	hasStation bool
}

// NewSky creates an empty table with no station position set; range and
// bearing are left zero until SetStation is called.
func NewSky() *Sky {
	return &Sky{vessels: cache.New(TTL, TTL/2)}
}

// SetStation fixes the receiver position used for range/bearing.
func (sky *Sky) SetStation(lat, lon float64) {
	sky.station = s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))
	sky.hasStation = true
}

// Update records a decoded record, merging it into any existing entry for
// the same MMSI. Unknown-kind records (no position, no identity) are not
// tracked.
func (sky *Sky) Update(r ais.Record) *Vessel {
	if r.Kind == ais.Unknown {
		return nil
	}

	key := mmsiKey(r.MMSI)
	var v Vessel
	if existing, ok := sky.vessels.Get(key); ok {
		v = existing.(Vessel)
	} else {
		v = Vessel{MMSI: r.MMSI}
	}

	switch r.Kind {
	case ais.Pos:
		v.Lon, v.Lat = r.Lon, r.Lat
		v.SpeedKmh = r.SpeedKmh
		v.CourseDeg = r.CourseDeg
	case ais.Base:
		v.Lon, v.Lat = r.Lon, r.Lat
	case ais.Static:
		v.Name = r.Name
		v.CallSign = r.CallSign
	}
	v.Seen = time.Now()

	if sky.hasStation && (r.Kind == ais.Pos || r.Kind == ais.Base) {
		p := s2.PointFromLatLng(s2.LatLngFromDegrees(v.Lat, v.Lon))
		v.RangeKm = earthRadiusKm * float64(sky.station.Distance(p))
		v.BearingDeg = bearingDeg(sky.station, p)
	}

	sky.vessels.Set(key, v, cache.DefaultExpiration)
	return &v
}

// Count returns the number of currently-tracked vessels.
func (sky *Sky) Count() int {
	return sky.vessels.ItemCount()
}

// Vessels returns a snapshot of all currently-tracked vessels.
func (sky *Sky) Vessels() []Vessel {
	items := sky.vessels.Items()
	out := make([]Vessel, 0, len(items))
	for _, item := range items {
		out = append(out, item.Object.(Vessel))
	}
	return out
}

const earthRadiusKm = 6371.0

func bearingDeg(from, to s2.Point) float64 {
	fl := s2.LatLngFromPoint(from)
	tl := s2.LatLngFromPoint(to)
	dLon := (tl.Lng - fl.Lng).Radians()
	y := math.Sin(dLon) * math.Cos(tl.Lat.Radians())
	x := math.Cos(fl.Lat.Radians())*math.Sin(tl.Lat.Radians()) -
		math.Sin(fl.Lat.Radians())*math.Cos(tl.Lat.Radians())*math.Cos(dLon)
	brng := s1.Angle(math.Atan2(y, x)).Degrees()
	return normalizeDeg(brng)
}

func normalizeDeg(deg float64) float64 {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	return deg
}

func mmsiKey(mmsi uint32) string {
	return fmt.Sprint(mmsi)
}
