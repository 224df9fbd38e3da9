// This example program decodes AIS messages from a raw I/Q capture file
// (or stdin) and prints them to the console until the stream ends or
// Ctrl+C is pressed. It talks to no rtl_tcp server and draws no terminal
// UI — useful for replaying a recorded capture.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"aisrx"
	"aisrx/ais"
)

// fileSource adapts an io.Reader to aisrx.Source.
type fileSource struct {
	r io.Reader
}

func (s fileSource) ReadExact(buf []byte) error {
	_, err := io.ReadFull(s.r, buf)
	return err
}

type printSink struct{}

func (printSink) Emit(r ais.Record) {
	fmt.Println(ais.Format(r))
}

func main() {
	path := flag.String("in", "", "path to a raw I/Q capture file (defaults to stdin)")
	flag.Parse()

	var in io.Reader = os.Stdin
	if *path != "" {
		f, err := os.Open(*path)
		if err != nil {
			fmt.Println("error: ", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	sigs := make(chan os.Signal, 1)
	done := make(chan bool, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		fmt.Println()
		fmt.Println(sig)
		done <- true
	}()

	fmt.Println(ais.Header)
	fmt.Println(ais.Rule)

	go func() {
		aisrx.Run(fileSource{in}, printSink{}, aisrx.NIQ, 300000)
		done <- true
	}()

	fmt.Println("awaiting end of stream or signal")
	<-done
	fmt.Println("exiting")
}
