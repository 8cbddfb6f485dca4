// Package main is gtadmin, the gymtracker maintenance CLI.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("gtadmin: %s", err)
		os.Exit(1)
	}
}
