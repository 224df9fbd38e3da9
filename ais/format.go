package ais

import "fmt"

// Header is the one-line column header emitted once at stream start.
const Header = "MID    MMSI   longitude   latitude   speed    course"

// Rule underlines Header.
const Rule = "---    ----   ---------   --------   -----    ------"

// Format renders a Record as the single output line §6 specifies for its
// Kind.
func Format(r Record) string {
	switch r.Kind {
	case Pos:
		return fmt.Sprintf("%2d %9d %11.6f %11.6f %3.0f km/h %5.1f",
			r.ID, r.MMSI, r.Lon, r.Lat, r.SpeedKmh, r.CourseDeg)
	case Base:
		return fmt.Sprintf("%2d %9d %11.6f %11.6f %d/%d/%d %02d:%02d:%02d",
			r.ID, r.MMSI, r.Lon, r.Lat, r.Year, r.Month, r.Day, r.Hour, r.Minute, r.Second)
	case Static:
		return fmt.Sprintf("%2d %9d %s << %s >> %s",
			r.ID, r.MMSI, r.CallSign, r.Name, r.Destination)
	default:
		return fmt.Sprintf("%2d %9d Unknown message ID", r.ID, r.MMSI)
	}
}
