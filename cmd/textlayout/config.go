package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/textlayout/layout"
)

// config holds the settings of a run. A TOML file sets them first; the
// flags given on the command line override the file.
type config struct {
	Text      string  `toml:"text"`
	Font      string  `toml:"font"`
	Size      float64 `toml:"size"`
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	Wrap      string  `toml:"wrap"`
	Align     string  `toml:"align"`
	Ellipsis  string  `toml:"ellipsis"`
	Direction string  `toml:"direction"`
	Shaper    string  `toml:"shaper"`
	Single    bool    `toml:"single_line"`
	Debug     bool    `toml:"debug"`
}

func defaultConfig() config {
	return config{
		Text:      "Hello, world!",
		Size:      16,
		Width:     200,
		Height:    1000,
		Wrap:      "word",
		Align:     "begin",
		Direction: "ltr",
		Shaper:    "gotext",
	}
}

// loadConfig reads a TOML file over the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parseEnum returns the value whose String matches name, ignoring case.
func parseEnum[T interface {
	~uint8
	String() string
}](kind, name string, count int) (T, error) {
	for i := range count {
		if v := T(i); strings.EqualFold(v.String(), name) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", kind, name)
}

func parseWrapMode(name string) (layout.LineWrapMode, error) {
	return parseEnum[layout.LineWrapMode]("wrap mode", name, 4)
}

func parseAlignment(name string) (layout.HorizontalAlignment, error) {
	return parseEnum[layout.HorizontalAlignment]("alignment", name, 3)
}

func parseEllipsis(name string) (layout.EllipsisPosition, error) {
	return parseEnum[layout.EllipsisPosition]("ellipsis position", name, 3)
}

func parseDirection(name string) (layout.Direction, error) {
	return parseEnum[layout.Direction]("direction", name, 2)
}
