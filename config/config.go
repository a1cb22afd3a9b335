// Package config reads the runtime options from flags, the environment and
// an optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/plus3/pong/pong"
)

type Frontend string

const (
	FrontendWindow   Frontend = "window"
	FrontendTerminal Frontend = "terminal"
)

const (
	DefaultFontPath = "assets/fonts/Go-Bold.ttf"
	DefaultFontSize = 24
)

var ErrInvalid = errors.New("invalid configuration")

// Config holds the options that do not change the game itself.
type Config struct {
	Frontend  Frontend
	FontPath  string
	FontSize  float64
	CPU       []pong.Side
	Sound     bool
	Debug     bool
	Telemetry bool
}

// LoadEnvFiles loads .env style files into the process environment without
// overriding variables that are already set. With no arguments it loads
// ".env" from the working directory.
func LoadEnvFiles(files ...string) error {
	return godotenv.Load(files...)
}

// Load parses args (without the program name). Environment variables supply
// the defaults and flags override them.
func Load(args []string) (Config, error) {
	return load(args, os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) (Config, error) {
	env := envReader{lookup: lookup}

	frontend := env.String("PONG_FRONTEND", string(FrontendWindow))
	fontPath := env.String("PONG_FONT", DefaultFontPath)
	fontSize := env.Float("PONG_FONT_SIZE", DefaultFontSize)
	cpu := env.String("PONG_CPU", "")
	sound := env.Bool("PONG_SOUND", false)
	debug := env.Bool("PONG_DEBUG", false)
	telemetry := env.Bool("PONG_TELEMETRY", false)
	if env.err != nil {
		return Config{}, env.err
	}

	fs := flag.NewFlagSet("pong", flag.ContinueOnError)
	fs.StringVar(&frontend, "frontend", frontend, "Where to play: window or terminal.")
	fs.StringVar(&fontPath, "font", fontPath, "Path to the TrueType font used for text.")
	fs.Float64Var(&fontSize, "font-size", fontSize, "Font size in pixels.")
	fs.StringVar(&cpu, "cpu", cpu, "Sides played by the computer: left, right or both.")
	fs.BoolVar(&sound, "sound", sound, "Play sound effects.")
	fs.BoolVar(&debug, "debug", debug, "Show the debug overlay (window frontend only).")
	fs.BoolVar(&telemetry, "telemetry", telemetry, "Export match traces over OTLP.")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Frontend:  Frontend(frontend),
		FontPath:  fontPath,
		FontSize:  fontSize,
		Sound:     sound,
		Debug:     debug,
		Telemetry: telemetry,
	}

	switch cfg.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return Config{}, fmt.Errorf("%w: unknown frontend %q", ErrInvalid, frontend)
	}

	if cfg.FontSize <= 0 {
		return Config{}, fmt.Errorf("%w: font size must be positive, got %v", ErrInvalid, cfg.FontSize)
	}

	sides, err := ParseSides(cpu)
	if err != nil {
		return Config{}, err
	}
	cfg.CPU = sides

	return cfg, nil
}

// ParseSides parses "", "left", "right" or "both".
func ParseSides(s string) ([]pong.Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return nil, nil
	case "left":
		return []pong.Side{pong.SideLeft}, nil
	case "right":
		return []pong.Side{pong.SideRight}, nil
	case "both":
		return []pong.Side{pong.SideLeft, pong.SideRight}, nil
	}
	return nil, fmt.Errorf("%w: unknown side %q", ErrInvalid, s)
}

// envReader keeps the first parse error so callers check once.
type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (e *envReader) String(key, def string) string {
	if v, ok := e.lookup(key); ok && v != "" {
		return v
	}
	return def
}

func (e *envReader) Float(key string, def float64) float64 {
	v, ok := e.lookup(key)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return f
}

func (e *envReader) Bool(key string, def bool) bool {
	v, ok := e.lookup(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return b
}

func (e *envReader) fail(key string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("%w: %s: %w", ErrInvalid, key, err)
	}
}
