// Package main starts the screenmode interactive resolution changer.
package main

import "flag"

// main is the entrypoint for the screenmode CLI.
func main() {
	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	flag.Parse()

	if err := run(*debug); err != nil {
		logFatal(err)
	}
}
