//go:build !gtxt

// Command qtxtdemo draws the texts described in a TOML scene file,
// reloading it whenever it changes.
package main

import "os"
import "fmt"
import "log/slog"

import "github.com/spf13/cobra"
import "github.com/hajimehoshi/ebiten/v2"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/qtxt"
import "github.com/tinne26/qtxt/brush"
import "github.com/tinne26/qtxt/font"

type options struct {
	scenePath string
	fontDir string
	cacheMiB int
	watch bool
	debug bool
}

func main() {
	err := newRootCommand().Execute()
	if err != nil { os.Exit(1) }
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use: "qtxtdemo",
		Short: "Draws the texts of a TOML scene with qtxt",
		Args: cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.scenePath, "scene", "s", "", "scene file (TOML); a default scene is used if empty")
	flags.StringVar(&opts.fontDir, "font-dir", "", "directory with additional .ttf/.otf fonts")
	flags.IntVar(&opts.cacheMiB, "cache", 8, "glyph cache size in MiB")
	flags.BoolVarP(&opts.watch, "watch", "w", true, "reload the scene file when it changes")
	flags.BoolVar(&opts.debug, "debug", false, "log flush statistics")
	return cmd
}

func run(opts options) error {
	level := slog.LevelInfo
	if opts.debug { level = slog.LevelDebug }
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: level }))
	qtxt.SetLogger(logger)

	fonts, err := loadFonts(opts.fontDir, logger)
	if err != nil { return err }

	defaults := defaultScene()
	defaults.Texts = defaultTexts
	scene := &defaults
	if opts.scenePath != "" {
		scene, err = LoadScene(opts.scenePath)
		if err != nil { return err }
	}
	built, err := scene.Build(fonts)
	if err != nil { return err }

	game := &Game{
		ctx: qtxt.NewContext(brush.New(fonts, opts.cacheMiB*1024*1024), built.width, built.height),
		fonts: fonts,
		logger: logger,
	}
	game.setScene(built)

	if opts.watch && opts.scenePath != "" {
		reloads, stop, err := watchScene(opts.scenePath, logger)
		if err != nil { return fmt.Errorf("watching %s: %w", opts.scenePath, err) }
		defer stop()
		game.reloads = reloads
	}

	ebiten.SetWindowTitle("qtxt demo")
	ebiten.SetWindowResizable(true)
	return ebiten.RunGame(game)
}

func loadFonts(dir string, logger *slog.Logger) (*font.Library, error) {
	fonts := font.NewLibrary()
	for _, data := range [][]byte{goregular.TTF, gomono.TTF} {
		_, err := fonts.ParseFromBytes(data)
		if err != nil { return nil, err }
	}
	if dir != "" {
		added, skipped, err := fonts.ParseAllFromPath(dir)
		if err != nil { return nil, err }
		logger.Info("fonts loaded", slog.Int("added", added), slog.Int("skipped", skipped))
	}
	return fonts, fonts.Each(checkMissingRunes(logger))
}

// Warns about fonts that don't cover the basic latin alphabet.
func checkMissingRunes(logger *slog.Logger) func(font.ID, string, *sfnt.Font) error {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	const symbols = "0123456789 .,;:!?-()[]{}_&#@"
	return func(id font.ID, name string, sfntFont *sfnt.Font) error {
		missing, err := font.GetMissingRunes(sfntFont, letters + symbols)
		if err != nil { return err }
		if len(missing) > 0 {
			logger.Warn("font missing runes", slog.String("font", name), slog.String("runes", string(missing)))
		}
		return nil
	}
}

var defaultTexts = []TextConfig{
	{ Markup: "Hello, [color=#ff8040]qtxt[/]!", Scale: 32, X: 24, Y: 24 },
	{
		Markup: "All the texts on screen are queued on a [color=#80c0ff]single brush[/] " +
			"and drawn with [scale=20]one flush[/] per frame.",
		Font: "Go Mono", Scale: 16, X: 24, Y: 96, Width: 400,
	},
	{ Markup: "centered", Scale: 24, X: 24, Y: 240, Width: 592, Align: "center" },
}
