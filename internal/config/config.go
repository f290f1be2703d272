// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

// Package config holds globally available configuration, read once from a
// TOML file at process start with package-level defaults otherwise. The
// knobs are deliberately few: log levels and the default search depth
// `go depth` falls back to when the UCI front-end omits it.
package config

import (
	"fmt"
	"log"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the configuration file, relative to the working
// directory unless overridden by a command-line flag before Setup runs.
var ConfFile = "./config.toml"

// Settings is the global configuration, decoded from ConfFile (or left at
// defaults if that file doesn't exist - a missing config.toml is not an
// error).
var Settings = conf{
	Log: logConf{
		LogLevel:       4, // INFO
		SearchLogLevel: 3, // NOTICE
	},
	Search: searchConf{
		DefaultDepth:    6,
		QuiescenceDepth: 8,
	},
}

var initialized = false

type conf struct {
	Log    logConf
	Search searchConf
}

type logConf struct {
	LogLevel       int
	SearchLogLevel int
}

type searchConf struct {
	DefaultDepth    int
	QuiescenceDepth int
}

// Setup decodes ConfFile into Settings, leaving the package defaults above
// in place for any field (or the whole file) it can't find. Idempotent:
// a second call is a no-op.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config: no config file loaded, using defaults (", err, ")")
	}
	initialized = true
}

// String renders the current settings, mainly for `uci` debug logging.
func (c conf) String() string {
	return fmt.Sprintf("Log: %+v, Search: %+v", c.Log, c.Search)
}
