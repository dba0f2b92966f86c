package main

import (
	"cmmgen/cmd"
	log "github.com/sirupsen/logrus"
	"os"
)

func main() {
	log.SetOutput(os.Stdout)

	log.SetFormatter(&log.TextFormatter{
		ForceColors:      true,
		DisableTimestamp: true,
	})

	if err := cmd.Execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
