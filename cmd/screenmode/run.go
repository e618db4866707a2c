// Package main starts the screenmode interactive resolution changer.
package main

import (
	"log"
	"os"

	"github.com/frudas24/screenmode/internal/app"
	"github.com/frudas24/screenmode/internal/config"
	"github.com/frudas24/screenmode/internal/display"
)

// run wires the display provider and interactive driver and performs one
// configuration attempt.
func run(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if debug {
		log.Printf("debug: enabled")
		log.Printf("data dir: %s", cfg.DataDir)
		log.Printf("presets path: %s", cfg.PresetsPath)
		log.Printf("dpi aware: %v", cfg.DPIAware)
	}

	provider, err := display.NewProvider(cfg.DPIAware)
	if err != nil {
		return err
	}

	a, err := app.New(cfg, provider, os.Stdin, os.Stdout, debug)
	if err != nil {
		return err
	}
	return a.Run()
}

// logFatal prints and exits for unrecoverable failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}
