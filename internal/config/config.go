// ABOUTME: YAML settings loading with defaults overlay and strict key checking
// ABOUTME: Unknown keys are rejected with a fuzzy "did you mean" suggestion

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/gridwalk/pkg/tui/fuzzy"
	"github.com/mauromedda/gridwalk/pkg/tui/grid"
	"github.com/mauromedda/gridwalk/pkg/tui/key"
	"github.com/mauromedda/gridwalk/pkg/tui/terminal"
	"github.com/mauromedda/gridwalk/pkg/tui/theme"
	"github.com/mauromedda/gridwalk/pkg/tui/width"
)

// maxEscapeTimeout caps how long a lone ESC may be held back.
const maxEscapeTimeout = time.Second

// Config holds the resolved settings.
type Config struct {
	// EscapeTimeout bounds the wait for bytes after ESC; zero blocks.
	EscapeTimeout time.Duration
	// MaxReadErrors is how many consecutive input errors end the loop;
	// zero retries forever.
	MaxReadErrors int
	// FallbackSize is used when the terminal reports no size.
	FallbackSize  terminal.Dimensions
	CellGlyph     string
	Highlight     theme.Highlight
	LogFile       string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		EscapeTimeout: key.DefaultEscapeTimeout,
		MaxReadErrors: 64,
		FallbackSize:  terminal.Dimensions{Rows: 24, Cols: 80},
		CellGlyph:     grid.DefaultCell,
		Highlight:     theme.DefaultHighlight(),
	}
}

// fileConfig mirrors the YAML file. Pointers distinguish unset keys.
type fileConfig struct {
	EscapeTimeout *time.Duration `yaml:"escape_timeout"`
	MaxReadErrors *int           `yaml:"max_read_errors"`
	FallbackSize  *fileSize      `yaml:"fallback_size"`
	Grid          *fileGrid      `yaml:"grid"`
	Highlight     *fileHighlight `yaml:"highlight"`
	LogFile       *string        `yaml:"log_file"`
}

type fileSize struct {
	Rows *int `yaml:"rows"`
	Cols *int `yaml:"cols"`
}

type fileGrid struct {
	Glyph *string `yaml:"glyph"`
}

type fileHighlight struct {
	Glyph      *string `yaml:"glyph"`
	Foreground *string `yaml:"foreground"`
	Background *string `yaml:"background"`
}

// knownKeys feeds unknown-key suggestions.
var knownKeys = []string{
	"escape_timeout", "max_read_errors", "fallback_size", "rows", "cols",
	"grid", "glyph", "highlight", "foreground", "background", "log_file",
}

// Load reads the config at path. An empty path means DefaultFile, which
// may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML settings on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, explainDecodeError(err)
	}
	return merge(Default(), &fc)
}

// merge overlays set file values onto base. Non-nil values win.
func merge(base Config, fc *fileConfig) (Config, error) {
	result := base

	if fc.EscapeTimeout != nil {
		d := *fc.EscapeTimeout
		if d < 0 || d > maxEscapeTimeout {
			return Config{}, fmt.Errorf("escape_timeout %v out of range [0, %v]", d, maxEscapeTimeout)
		}
		result.EscapeTimeout = d
	}
	if fc.MaxReadErrors != nil {
		if *fc.MaxReadErrors < 0 {
			return Config{}, fmt.Errorf("max_read_errors must not be negative, got %d", *fc.MaxReadErrors)
		}
		result.MaxReadErrors = *fc.MaxReadErrors
	}
	if size := fc.FallbackSize; size != nil {
		if size.Rows != nil {
			result.FallbackSize.Rows = *size.Rows
		}
		if size.Cols != nil {
			result.FallbackSize.Cols = *size.Cols
		}
		if !result.FallbackSize.Valid() {
			return Config{}, fmt.Errorf("fallback_size must be positive, got %s", result.FallbackSize)
		}
	}
	if fc.Grid != nil && fc.Grid.Glyph != nil {
		g, err := width.Glyph(*fc.Grid.Glyph)
		if err != nil {
			return Config{}, fmt.Errorf("grid.glyph: %w", err)
		}
		result.CellGlyph = g
	}
	if h := fc.Highlight; h != nil {
		if h.Glyph != nil {
			g, err := width.Glyph(*h.Glyph)
			if err != nil {
				return Config{}, fmt.Errorf("highlight.glyph: %w", err)
			}
			result.Highlight.Glyph = g
		}
		if h.Foreground != nil {
			c, err := theme.ParseHex(*h.Foreground)
			if err != nil {
				return Config{}, fmt.Errorf("highlight.foreground: %w", err)
			}
			result.Highlight.Foreground = c
		}
		if h.Background != nil {
			c, err := theme.ParseHex(*h.Background)
			if err != nil {
				return Config{}, fmt.Errorf("highlight.background: %w", err)
			}
			result.Highlight.Background = c
		}
	}
	if fc.LogFile != nil {
		result.LogFile = *fc.LogFile
	}

	return result, nil
}

var unknownFieldRe = regexp.MustCompile(`field (\S+) not found`)

// explainDecodeError adds a suggestion for the first unknown key.
func explainDecodeError(err error) error {
	var te *yaml.TypeError
	if errors.As(err, &te) {
		for _, msg := range te.Errors {
			m := unknownFieldRe.FindStringSubmatch(msg)
			if m == nil {
				continue
			}
			if s, ok := fuzzy.Closest(m[1], knownKeys); ok {
				return fmt.Errorf("parsing config: %w (did you mean %q?)", err, s)
			}
		}
	}
	return fmt.Errorf("parsing config: %w", err)
}
