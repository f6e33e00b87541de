package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"blockfall/audio"
	"blockfall/blockfall"
	"blockfall/terminal"

	"github.com/joho/godotenv"
	"golang.org/x/term"
)

const (
	hideCursor = "\033[2J\033[?25l" // also clear screen
	showCursor = "\033[24;0H\n\r\033[?25h"
)

func main() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("warning: unable to load .env file: %v", err)
		}
	}
	logFile := flag.String("log", envString("BLOCKFALL_LOG", ""), "write a JSON debug log to this file")
	seed := flag.Int64("seed", envInt64("BLOCKFALL_SEED", 0), "fixed piece sequence, 0 picks a random one")
	noGhost := flag.Bool("no-ghost", envBool("BLOCKFALL_NO_GHOST"), "hide the landing preview")
	noMusic := flag.Bool("no-music", envBool("BLOCKFALL_NO_MUSIC"), "start without the background track")
	flag.Parse()

	logger, closeLogger := newLogger(*logFile)
	defer closeLogger()

	restore := startRawConsole()
	defer restore()

	game := blockfall.NewGame(*seed, logger)
	o := &terminal.Options{Logger: logger, NoGhost: *noGhost}
	if !*noMusic {
		player, err := audio.NewPlayer(logger)
		if err != nil {
			logger.Warn("unable to start the music", slog.String("error", err.Error()))
		} else {
			defer player.Close()
			o.Music = player
		}
	}
	terminal.New(game, o).Start()
}

func newLogger(path string) (*slog.Logger, func()) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("unable to open log file: %v\n", err)
	}
	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), func() {
		if err := f.Close(); err != nil {
			log.Printf("unable to close log file: %v\n", err)
		}
	}
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Fatalf("%s must be a number: %v\n", key, err)
	}
	return n
}

func envBool(key string) bool {
	v, ok := os.LookupEnv(key)
	return ok && v != "0" && !strings.EqualFold(v, "false")
}

func startRawConsole() func() {
	fmt.Print(hideCursor)
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Error setting terminal to raw mode: %v", err)
	}

	return func() {
		if err := term.Restore(int(os.Stdin.Fd()), oldState); err != nil {
			log.Fatalf("unable to retore the terminal original state: %v", err)
		}
		fmt.Print(showCursor)
	}
}
