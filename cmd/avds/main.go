package main

import (
	"os"

	"github.com/bnema/avd-sessions-cli/cmd"
	"github.com/joho/godotenv"
	colorable "github.com/mattn/go-colorable"
	log "github.com/sirupsen/logrus"
)

func init() {
	_ = godotenv.Load()

	log.SetFormatter(&log.TextFormatter{ForceColors: true})
	log.SetOutput(colorable.NewColorableStderr())
	log.SetLevel(log.WarnLevel)
}

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
