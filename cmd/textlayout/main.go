// Command textlayout lays out a string in a box and prints its lines.
//
// Usage:
//
//	textlayout -text "Hello, world!" -width 80 -wrap word -align center
//	textlayout -config layout.toml -width 120
//
// The TOML file uses the flag names as keys (single_line for -single).
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textlayout"
	"github.com/gogpu/textlayout/controller"
	"github.com/gogpu/textlayout/layout"
	"github.com/gogpu/textlayout/text"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}

// parseFlags reads the optional config file, then applies the flags set on
// the command line.
func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("textlayout", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "TOML config file")
		textFlag   = fs.String("text", "", "text to lay out")
		font       = fs.String("font", "", "TTF/OTF font file (Go Regular if empty)")
		size       = fs.Float64("size", 0, "font size in pixels")
		width      = fs.Float64("width", 0, "box width")
		height     = fs.Float64("height", 0, "box height")
		wrap       = fs.String("wrap", "", "line wrap mode: word, character, hyphenation, mixed")
		align      = fs.String("align", "", "horizontal alignment: begin, center, end")
		ellipsis   = fs.String("ellipsis", "", "ellipsis position: start, middle, end (none if empty)")
		direction  = fs.String("direction", "", "base direction: ltr, rtl")
		shaper     = fs.String("shaper", "", "shaper: gotext, builtin")
		single     = fs.Bool("single", false, "single line box")
		debug      = fs.Bool("debug", false, "debug logging to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			return config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "text":
			cfg.Text = *textFlag
		case "font":
			cfg.Font = *font
		case "size":
			cfg.Size = *size
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "wrap":
			cfg.Wrap = *wrap
		case "align":
			cfg.Align = *align
		case "ellipsis":
			cfg.Ellipsis = *ellipsis
		case "direction":
			cfg.Direction = *direction
		case "shaper":
			cfg.Shaper = *shaper
		case "single":
			cfg.Single = *single
		case "debug":
			cfg.Debug = *debug
		}
	})
	return cfg, nil
}

// run lays out the text of the config and writes one line per laid-out line.
func run(w io.Writer, cfg config) error {
	if cfg.Debug {
		textlayout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer textlayout.SetLogger(nil)
	}

	wrap, err := parseWrapMode(cfg.Wrap)
	if err != nil {
		return err
	}
	align, err := parseAlignment(cfg.Align)
	if err != nil {
		return err
	}
	dir, err := parseDirection(cfg.Direction)
	if err != nil {
		return err
	}

	var source *text.FontSource
	if cfg.Font == "" {
		source, err = text.NewFontSource(goregular.TTF)
	} else {
		source, err = text.NewFontSourceFromFile(cfg.Font)
	}
	if err != nil {
		return err
	}
	defer func() { _ = source.Close() }()

	registry := text.NewRegistry()
	font, err := registry.Register(source.Face(cfg.Size))
	if err != nil {
		return err
	}

	builderOpts := []text.BuilderOption{text.WithWrapMode(wrap), text.WithBaseDirection(dir)}
	switch cfg.Shaper {
	case "", "gotext":
	case "builtin":
		builderOpts = append(builderOpts, text.WithShaper(&text.BuiltinShaper{}))
	default:
		return fmt.Errorf("unknown shaper %q", cfg.Shaper)
	}

	layoutType := layout.MultiLineBox
	if cfg.Single {
		layoutType = layout.SingleLineBox
	}
	opts := []controller.Option{controller.WithHorizontalAlignment(align)}
	if cfg.Ellipsis != "" {
		pos, err := parseEllipsis(cfg.Ellipsis)
		if err != nil {
			return err
		}
		opts = append(opts, controller.WithEllipsis(pos))
	}

	c := controller.New(text.NewBuilder(registry, builderOpts...),
		layout.NewEngine(registry, layout.WithLayout(layoutType)), font, opts...)
	c.SetText(cfg.Text)
	size, err := c.Relayout(layout.Size{Width: cfg.Width, Height: cfg.Height})
	if err != nil {
		return err
	}
	return printLines(w, c.Model(), size)
}

// printLines writes the size of the text and its lines.
func printLines(w io.Writer, m *layout.Model, size layout.Size) error {
	if _, err := fmt.Fprintf(w, "size %.2fx%.2f, %d lines\n", size.Width, size.Height, len(m.Visual.Lines)); err != nil {
		return err
	}
	for i, line := range m.Visual.Lines {
		chars := line.CharacterRun
		content := string(m.Logical.Text[chars.CharacterIndex:chars.End()])
		if line.IsSplitToTwoHalves {
			second := line.CharacterRunForSecondHalfLine
			content += "\u2026" + string(m.Logical.Text[second.CharacterIndex:second.End()])
		}
		_, err := fmt.Fprintf(w, "%3d %s chars=[%d,%d) glyphs=[%d,%d) width=%.2f offset=%.2f ellipsis=%t %q visual=%q\n",
			i, line.Direction, chars.CharacterIndex, chars.End(),
			line.GlyphRun.GlyphIndex, line.GlyphRun.End(),
			line.Width, line.AlignmentOffset, line.Ellipsis, content, visualText(m, &line))
		if err != nil {
			return err
		}
	}
	return nil
}

// visualText returns the characters of the line in display order. The
// halves of an elided line are reordered on their own.
func visualText(m *layout.Model, line *layout.LineRun) string {
	var sb strings.Builder
	write := func(run layout.CharacterRun) {
		for visual := run.CharacterIndex; visual < run.End(); visual++ {
			sb.WriteRune(m.Logical.Text[m.Logical.LogicalIndex(visual)])
		}
	}
	write(line.CharacterRun)
	if line.IsSplitToTwoHalves {
		sb.WriteRune('\u2026')
		write(line.CharacterRunForSecondHalfLine)
	}
	return sb.String()
}
