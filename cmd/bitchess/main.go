// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

// bitchess is the UCI front-end binary: it reads the configuration file,
// sets up logging and hands control to the UCI command loop on stdin.
package main

import (
	"flag"
	"fmt"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/oskarsson/bitchess/internal/config"
	"github.com/oskarsson/bitchess/internal/logging"
	"github.com/oskarsson/bitchess/internal/uci"
)

const version = "1.0.0"

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	cpuProfile := flag.String("cpuprofile", "", "directory to write a cpu.pprof profile of this run into")
	flag.Parse()

	if *versionInfo {
		fmt.Println("bitchess", version)
		return
	}

	// config file must be set before Setup reads it
	config.ConfFile = *configFile
	config.Setup()

	// reset the standard logger's level now that config is loaded
	log := logging.GetLog()

	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile)).Stop()
	}

	log.Info(out.Sprintf("bitchess %s starting, config %s", version, config.ConfFile))

	uci.NewHandler().Loop()
}
