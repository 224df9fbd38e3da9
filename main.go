package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/awesome-gocui/gocui"
	charmlog "github.com/charmbracelet/log"
	. "github.com/logrusorgru/aurora/v3"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"gopkg.in/natefinch/lumberjack.v2"

	"aisrx"
	"aisrx/config"
	"aisrx/sdrsource"
	"aisrx/track"
)

type Context struct {
	sky *track.Sky
}

func (ctx *Context) update(g *gocui.Gui) error {
	s, err := g.View("status")
	if err != nil {
		return nil
	}
	s.Clear()
	fmt.Fprintf(s, " VESSELS: %02d  LAST UPDATE: %s\n",
		Green(ctx.sky.Count()),
		Bold(Green(time.Now().Format("2006-01-02 15:04:05"))))

	l, err := g.View("list")
	if err != nil {
		return nil
	}
	l.Clear()

	fmt.Fprintln(l, "   MMSI       NAME            CALLSIGN    LAT      LON    SPD   CRS   RNG   BRG  SEEN")
	fmt.Fprintln(l, " =================================================================================")

	vessels := ctx.sky.Vessels()
	sort.Slice(vessels, func(i, j int) bool { return vessels[i].MMSI < vessels[j].MMSI })
	for _, v := range vessels {
		fmt.Fprintln(l, Sprintf(Yellow(" %9d  %-14s  %-9s  %6.2f  %7.2f  %4.0f  %5.1f  %4.0f  %4.0f  %s"),
			v.MMSI, v.Name, v.CallSign, v.Lat, v.Lon, v.SpeedKmh, v.CourseDeg, v.RangeKm, v.BearingDeg, v.Seen.Format("15:04:05")))
	}
	return nil
}

func layout(g *gocui.Gui) error {
	const maxX = 90
	_, maxY := g.Size()

	v, err := g.SetView("status", 0, 0, maxX-2, 2, 0)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Title = " STATUS "
	fmt.Fprintln(v, " VESSELS: --  LAST UPDATE: 0000-00-00 00:00:00")

	v, err = g.SetView("list", 0, 3, maxX-2, maxY-1, 0)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Title = " VESSELS "
	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

func main() {
	host := flag.String("host", "", "rtl_tcp server host")
	port := flag.Int("port", 0, "rtl_tcp server port")
	freq := flag.Uint32("freq", 0, "center frequency in Hz (stored in the config only; the source is always tuned to 162 MHz)")
	gain := flag.Int("gain", 0, "tuner gain in tenths of a dB, 0 for auto (nonzero selects manual mode; the value is not sent)")
	configPath := flag.String("config", "", "path to a YAML config file")
	logFile := flag.String("logfile", "", "path to a log file (rotated); empty logs to stderr")
	noTUI := flag.Bool("no-tui", false, "disable the terminal UI and print decoded lines instead")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			charmlog.Fatal("loading config", "err", err)
		}
		cfg = loaded
	}
	if *host != "" {
		cfg.Host = *host
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *freq != 0 {
		cfg.FreqHz = *freq
	}
	if *gain != 0 {
		cfg.GainTenthDb = *gain
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	if cfg.LogFile != "" {
		charmlog.SetOutput(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
		})
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	source, err := sdrsource.Dial(addr, cfg.GainTenthDb)
	if err != nil {
		charmlog.Fatal("connecting to sample source", "err", errors.Cause(err))
	}
	defer source.Close()

	sky := track.NewSky()
	if cfg.Station.Lat != 0 || cfg.Station.Lon != 0 {
		sky.SetStation(cfg.Station.Lat, cfg.Station.Lon)
	}

	if *noTUI {
		sink := &printSink{sky: sky}
		fmt.Println(sink.header())
		aisrx.Run(source, sink, aisrx.NIQ, sdrsource.SampleRateHz)
		return
	}

	g, err := gocui.NewGui(gocui.OutputNormal, false)
	if err != nil {
		charmlog.Fatal("starting terminal UI", "err", err)
	}
	defer g.Close()

	g.SetManagerFunc(layout)
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		charmlog.Fatal("binding keys", "err", err)
	}

	ctx := &Context{sky: sky}
	sink := &uiSink{sky: sky, g: g, update: ctx.update}
	go aisrx.Run(source, sink, aisrx.NIQ, sdrsource.SampleRateHz)

	go func() {
		for range time.Tick(time.Second) {
			g.Update(ctx.update)
		}
	}()

	if err := g.MainLoop(); err != nil && !gocui.IsQuit(err) {
		charmlog.Fatal("terminal UI", "err", err)
	}
	os.Exit(0)
}
