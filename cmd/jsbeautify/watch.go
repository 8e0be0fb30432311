package main

import (
	"os"
	"os/signal"

	"github.com/muraenateam/jsbeautify/internal/config"
	"github.com/muraenateam/jsbeautify/internal/watch"
)

// runWatch delegates to internal/watch until interrupted.
func runWatch(cfg config.Configuration, dir string) error {
	w := watch.New(dir, cfg.BeautifyOptions())

	stop := make(chan struct{})
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		close(stop)
	}()

	return w.Run(stop)
}
