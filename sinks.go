package main

import (
	"fmt"

	"github.com/awesome-gocui/gocui"

	"aisrx/ais"
	"aisrx/track"
)

// printSink writes one formatted line per decoded record to stdout,
// matching the line format the core would use standalone.
type printSink struct {
	sky *track.Sky
}

func (s *printSink) header() string {
	return ais.Header + "\n" + ais.Rule
}

func (s *printSink) Emit(r ais.Record) {
	fmt.Println(ais.Format(r))
	if s.sky != nil {
		s.sky.Update(r)
	}
}

// uiSink feeds decoded records into the tracked-vessel table and schedules
// a terminal redraw.
type uiSink struct {
	sky    *track.Sky
	g      *gocui.Gui
	update func(g *gocui.Gui) error
}

func (s *uiSink) Emit(r ais.Record) {
	s.sky.Update(r)
	s.g.Update(s.update)
}
