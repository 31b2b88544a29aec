package main

import (
	"os"

	"github.com/JustaPenguin/pilot-ratings"

	"github.com/sirupsen/logrus"
)

func main() {
	config, err := pilotratings.ReadConfig("config.yml")

	if err != nil {
		logrus.Fatalf("could not open config file, err: %s", err)
	}

	if err := config.Log.Apply(); err != nil {
		logrus.Fatalf("invalid log level, err: %s", err)
	}

	store, closeStore, err := config.Store.BuildStore()

	if err != nil {
		logrus.Fatalf("could not open store, err: %s", err)
	}

	defer func() {
		if err := closeStore(); err != nil {
			logrus.WithError(err).Error("could not close store")
		}
	}()

	engine, err := config.Rating.BuildEngine()

	if err != nil {
		logrus.Fatalf("could not set up rating engine, err: %s", err)
	}

	supportsColor, err := config.Display.SupportsColor()

	if err != nil {
		logrus.Fatalf("could not set up display, err: %s", err)
	}

	league := pilotratings.OpenLeague(store, engine)

	if err := pilotratings.NewSession(league, os.Stdin, os.Stdout, supportsColor).Run(); err != nil {
		logrus.WithError(err).Error("could not read input")
	}
}
