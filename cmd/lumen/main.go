package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/lumen-web/lumen"
	"github.com/lumen-web/lumen/config"
)

// forceShutdownAfter bounds the graceful drain. Handlers are never
// interrupted cooperatively, so a stuck transfer would otherwise keep
// the process alive forever.
const forceShutdownAfter = 5 * time.Second

func main() {
	address := flag.String("address", "127.0.0.1", "address to listen on")
	port := flag.Uint("port", 8000, "port to listen on")
	directory := flag.String("directory", ".", "directory to serve")
	cfgPath := flag.String("config", "", "optional JSON config file with NET tuning")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		log = log.Level(zerolog.InfoLevel)
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *cfgPath).Msg("can't load config")
		}
		cfg = loaded
	}
	cfg.FS.Root = *directory

	addr := fmt.Sprintf("%s:%d", *address, *port)
	app := lumen.New(addr).Tune(cfg).Log(log)
	app.NotifyOnStart(func() {
		fmt.Printf("http://%s\n", app.Addr())
	})

	done := make(chan error, 1)
	go func() {
		done <- app.Serve()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
		return
	case <-sig:
		app.GracefulStop()
	}

	select {
	case err := <-done:
		if err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	case <-time.After(forceShutdownAfter):
		log.Error().Msg("forced shutdown after timeout")
		os.Exit(1)
	}
}
