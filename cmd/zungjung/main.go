// Command zungjung scores mahjong hands under Zung Jung rules.
//
//	zungjung "123b 456c 789d EEE HH"
//	echo "19b 19c 19d ESWN HGRR" | zungjung --format yaml
//	zungjung --deal --hand "EEE SSS"
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"zungjung"
	"zungjung/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("zungjung", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	deal := fs.Bool("deal", false, "deal a random hand instead of reading one")
	dealPrefix := fs.String("hand", "", "with --deal, tiles to start the dealt hand with")
	seed := fs.Int64("seed", 0, "with --deal, shuffle seed (0 uses the clock)")
	fs.String("seat", "", "seat wind: E, S, W or N")
	fs.String("format", "text", "output format: text, yaml or json")
	fs.String("log-level", "warn", "log level: debug, info, warn or error")
	fs.String("log-format", "text", "log format: text or json")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath, fs)
	if err != nil {
		fmt.Fprintf(stderr, "zungjung: %v\n", err)
		return 2
	}

	logger := newLogger(cfg.App, stderr).With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	opts := []zungjung.Option{zungjung.WithLogger(logger)}
	if cfg.Scoring.SeatWind != "" {
		wind, err := parseSeatWind(cfg.Scoring.SeatWind)
		if err != nil {
			fmt.Fprintf(stderr, "zungjung: %v\n", err)
			return 2
		}
		opts = append(opts, zungjung.WithSeatWind(wind))
	}

	out, err := newWriter(cfg.Output.Format, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "zungjung: %v\n", err)
		return 2
	}

	var hands []string
	switch {
	case *deal:
		hand, err := dealHand(*dealPrefix, *seed)
		if err != nil {
			fmt.Fprintf(stderr, "zungjung: %v\n", err)
			return 1
		}
		hands = []string{zungjung.FormatTiles(zungjung.SortedTiles(hand))}
	case fs.NArg() > 0:
		hands = fs.Args()
	default:
		hands, err = readHands(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "zungjung: reading hands: %v\n", err)
			return 1
		}
	}

	logger.Info("scoring hands", "count", len(hands), "format", cfg.Output.Format)
	status := 0
	for _, text := range hands {
		if err := scoreOne(text, opts, out); err != nil {
			logger.Error("cannot score hand", "hand", text, "error", err)
			fmt.Fprintf(stderr, "zungjung: %q: %v\n", text, err)
			status = 1
		}
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintf(stderr, "zungjung: %v\n", err)
		return 1
	}
	return status
}

func scoreOne(text string, opts []zungjung.Option, out writer) error {
	hand, err := zungjung.ParseTiles(text)
	if err != nil {
		return err
	}
	res, err := zungjung.ScoreHand(hand, opts...)
	if err != nil {
		return err
	}
	return out.Write(zungjung.FormatTiles(zungjung.SortedTiles(hand)), res)
}

func newLogger(app config.AppConfig, w io.Writer) *slog.Logger {
	level, _ := app.Level() // validated by config.Load
	handlerOpts := &slog.HandlerOptions{Level: level}
	if app.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// parseSeatWind turns E/S/W/N into a wind rank using the tile notation.
func parseSeatWind(s string) (int, error) {
	tiles, err := zungjung.ParseTiles(strings.ToUpper(s))
	if err != nil || len(tiles) != 1 || tiles[0].Suit != zungjung.Winds {
		return 0, fmt.Errorf("seat wind %q: want E, S, W or N", s)
	}
	return tiles[0].Rank, nil
}

// dealHand deals 14 tiles from a fresh wall, starting with any tiles in prefix.
func dealHand(prefix string, seed int64) ([]zungjung.Tile, error) {
	start, err := zungjung.ParseTiles(prefix)
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	wall := zungjung.NewWall(rand.New(rand.NewSource(seed)))
	return wall.DealHand(start)
}
