// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

// Package uci is the line-oriented front-end: it reads the supported
// subset of the UCI protocol from an input stream, translates each command
// into calls on engine.Engine and writes the protocol replies to an output
// stream. It holds no chess state of its own.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/oskarsson/bitchess/internal/config"
	"github.com/oskarsson/bitchess/internal/engine"
	myLogging "github.com/oskarsson/bitchess/internal/logging"
	"github.com/oskarsson/bitchess/internal/position"
)

var out = message.NewPrinter(language.German)
var log *logging.Logger

// KiwipeteFEN is the well-known movegen test position the "position
// kiwipete" shortcut loads.
const KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// Handler reads commands from InIo and writes replies to OutIo. Both can
// be replaced before Loop runs, which is how the tests drive it.
type Handler struct {
	InIo   *bufio.Scanner
	OutIo  *bufio.Writer
	engine *engine.Engine
	uciLog *logging.Logger
}

// NewHandler creates a Handler wired to stdin/stdout and a fresh engine.
func NewHandler() *Handler {
	if log == nil {
		log = myLogging.GetLog()
	}
	return &Handler{
		InIo:   bufio.NewScanner(os.Stdin),
		OutIo:  bufio.NewWriter(os.Stdout),
		engine: engine.New(),
		uciLog: myLogging.GetUciLog(),
	}
}

// Loop reads commands until the input closes or "quit" is received.
func (u *Handler) Loop() {
	for u.InIo.Scan() {
		if u.handleReceivedCommand(u.InIo.Text()) {
			return
		}
	}
}

// Command handles a single command line and returns the reply text.
// Mostly useful for debugging and unit testing.
func (u *Handler) Command(cmd string) string {
	tmp := u.OutIo
	buffer := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buffer)
	u.handleReceivedCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = tmp
	return buffer.String()
}

func (u *Handler) send(s string) {
	_, _ = u.OutIo.WriteString(s)
	_ = u.OutIo.WriteByte('\n')
	_ = u.OutIo.Flush()
	u.uciLog.Infof(">> %s", s)
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// handleReceivedCommand dispatches one command line. It returns true when
// the loop should exit (the "quit" command).
func (u *Handler) handleReceivedCommand(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if len(cmd) == 0 {
		return false
	}
	u.uciLog.Infof("<< %s", cmd)
	tokens := regexWhiteSpace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		u.uciCommand()
	case "isready":
		u.send("readyok")
	case "ucinewgame":
		u.engine.SetPositionStart()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "perft":
		u.perftCommand(tokens)
	default:
		log.Warningf("Unknown command: %s", cmd)
		u.send("Unknown command: " + cmd)
	}
	return false
}

func (u *Handler) uciCommand() {
	u.send("id name bitchess")
	u.send("id author bitchess authors")
	u.send("uciok")
}

// positionCommand loads "startpos", "kiwipete" or an explicit 6-field FEN,
// then applies any coordinate moves following a "moves" token. A bad FEN
// or an illegal move stops processing with a one-line message; the
// position keeps whatever was applied up to that point.
func (u *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		u.send("position command needs startpos, kiwipete or fen")
		return
	}

	i := 2
	var fen string
	switch tokens[1] {
	case "startpos":
		fen = position.StartFEN
	case "kiwipete":
		fen = KiwipeteFEN
	case "fen":
		var fenb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			fenb.WriteString(tokens[i])
			fenb.WriteString(" ")
			i++
		}
		fen = strings.TrimSpace(fenb.String())
	default:
		u.send("Unknown command: " + strings.Join(tokens, " "))
		return
	}

	if err := u.engine.SetPositionFEN(fen); err != nil {
		u.send(err.Error())
		return
	}

	if i < len(tokens) && tokens[i] == "moves" {
		if _, err := u.engine.LoadMoves(tokens[i+1:]); err != nil {
			u.send(err.Error())
		}
	}
}

// goCommand runs a fixed-depth search and emits the single info line plus
// the bestmove reply.
func (u *Handler) goCommand(tokens []string) {
	depth := config.Settings.Search.DefaultDepth
	if len(tokens) >= 3 && tokens[1] == "depth" {
		d, err := strconv.Atoi(tokens[2])
		if err != nil || d < 1 {
			u.send("Unknown command: " + strings.Join(tokens, " "))
			return
		}
		depth = d
	}

	result, err := u.engine.Search(depth)
	if err != nil {
		u.send(err.Error())
		return
	}
	log.Debug(out.Sprintf("search depth %d finished: %d nodes, %d nps", depth, result.Nodes, result.Nps))

	var pv strings.Builder
	for i, m := range result.PV {
		if i > 0 {
			pv.WriteByte(' ')
		}
		pv.WriteString(m.String())
	}
	u.send(fmt.Sprintf("info score cp %d depth %d time %d nodes %d nps %d pv %s",
		result.Score, result.Depth, result.Time.Milliseconds(), result.Nodes, result.Nps, pv.String()))
	u.send("bestmove " + result.BestMove.String())
}

// perftCommand runs perft to the requested depth (default 1) and emits the
// per-root-move breakdown followed by the total.
func (u *Handler) perftCommand(tokens []string) {
	depth := 1
	if len(tokens) > 1 {
		d, err := strconv.Atoi(tokens[1])
		if err != nil || d < 1 {
			u.send("Unknown command: " + strings.Join(tokens, " "))
			return
		}
		depth = d
	}

	result, err := u.engine.Perft(depth)
	if err != nil {
		u.send(err.Error())
		return
	}
	for _, rm := range result.RootMoves {
		u.send(fmt.Sprintf("%s: %d", rm.Move.String(), rm.Nodes))
	}
	u.send(fmt.Sprintf("perft depth %d nodes %d", depth, result.Nodes))
}
