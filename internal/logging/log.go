// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

// Package logging hands out preconfigured *logging.Logger instances for
// the rest of the engine: a standard log, a search-trace log, a UCI
// transcript log and a test log. Every call site asks for exactly the
// logger it needs once, at construction time, and keeps the pointer.
package logging

import (
	"log"
	"os"

	golog "github.com/op/go-logging"

	"github.com/oskarsson/bitchess/internal/config"
)

var (
	standardLog *golog.Logger
	searchLog   *golog.Logger
	uciLog      *golog.Logger
	testLog     *golog.Logger

	standardFormat = golog.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
	)
	uciFormat = golog.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
)

func init() {
	standardLog = golog.MustGetLogger("standard")
	searchLog = golog.MustGetLogger("search")
	uciLog = golog.MustGetLogger("uci")
	testLog = golog.MustGetLogger("test")
}

// All log backends write to stderr: stdout belongs to the UCI protocol
// and must carry nothing but protocol replies.
func backendFor(logger *golog.Logger, format golog.Formatter, level int) {
	backend := golog.NewLogBackend(os.Stderr, "", log.Lmsgprefix)
	formatted := golog.NewBackendFormatter(backend, format)
	leveled := golog.AddModuleLevel(formatted)
	leveled.SetLevel(golog.Level(level), "")
	logger.SetBackend(leveled)
}

// GetLog returns the standard logger, leveled from config.Settings.Log.
func GetLog() *golog.Logger {
	backendFor(standardLog, standardFormat, config.Settings.Log.LogLevel)
	return standardLog
}

// GetSearchLog returns the search-trace logger.
func GetSearchLog() *golog.Logger {
	backendFor(searchLog, standardFormat, config.Settings.Log.SearchLogLevel)
	return searchLog
}

// GetTestLog returns the test logger, always at DEBUG so test failures carry
// full context.
func GetTestLog() *golog.Logger {
	backendFor(testLog, standardFormat, int(golog.DEBUG))
	return testLog
}

// GetUciLog returns the UCI transcript logger - one line per command in
// and out, at DEBUG.
func GetUciLog() *golog.Logger {
	backend := golog.NewLogBackend(os.Stderr, "", log.Lmsgprefix)
	formatted := golog.NewBackendFormatter(backend, uciFormat)
	leveled := golog.AddModuleLevel(formatted)
	leveled.SetLevel(golog.DEBUG, "")
	uciLog.SetBackend(leveled)
	return uciLog
}
