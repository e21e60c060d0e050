// Command hostdump prints the host state the overlay would see, as YAML.
// Its output can be fed back to the map window with --replay.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/pborman/getopt"
	"gopkg.in/yaml.v3"

	"mappy/config"
	"mappy/host"
	"mappy/logger"
)

func main() {
	logger.Init()
	log := logger.For("hostdump")

	app, err := config.LoadApp()
	if err != nil {
		log.WithError(err).Fatal("load configuration")
	}

	process := getopt.StringLong("process", 'p', app.ProcessName, "game process name")
	offsetsFile := getopt.StringLong("offsets", 'o', app.OffsetsFile, "offsets profile")
	replay := getopt.StringLong("replay", 'r', "", "read a snapshot file instead of attaching")
	watch := getopt.BoolLong("watch", 'w', "dump repeatedly until interrupted")
	interval := getopt.DurationLong("interval", 'i', time.Second, "delay between dumps with --watch")
	getopt.Parse()

	offsets, err := config.LoadOffsets(*offsetsFile)
	if err != nil {
		log.WithError(err).Warn("offsets profile rejected, using compiled defaults")
	}

	src, closer, err := open(*replay, *process, offsets)
	if err != nil {
		log.WithError(err).Fatal("open host")
	}
	defer closer.Close()

	if !*watch {
		if err := dump(os.Stdout, src); err != nil {
			log.WithError(err).Fatal("read host")
		}
		return
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		if err := dump(os.Stdout, src); err != nil {
			log.WithError(err).Warn("read host")
		}
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func open(replay, process string, offsets config.Offsets) (host.Source, io.Closer, error) {
	if replay != "" {
		src, err := host.LoadReplay(replay)
		if err != nil {
			return nil, nil, err
		}
		return src, nopCloser{}, nil
	}
	src, closer, err := host.Attach(process, offsets)
	if err != nil {
		return nil, nil, err
	}
	return src, closer, nil
}

// dump writes one snapshot as a YAML document.
func dump(w io.Writer, src host.Source) error {
	snap, err := src.Read()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "# %s\n", time.Now().Format(time.RFC3339))
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return enc.Close()
}
