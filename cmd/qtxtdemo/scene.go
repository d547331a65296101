//go:build !gtxt

package main

import "os"
import "fmt"
import "bytes"
import "errors"
import "image/color"

import "github.com/pelletier/go-toml/v2"
import "cogentcore.org/core/math32"

import "github.com/tinne26/qtxt"
import "github.com/tinne26/qtxt/font"
import "github.com/tinne26/qtxt/layout"
import "github.com/tinne26/qtxt/markup"

// Scene file contents.
type Scene struct {
	Screen ScreenConfig `toml:"screen"`
	Fonts []FontConfig `toml:"fonts"`
	Texts []TextConfig `toml:"texts"`
	Draw DrawConfig `toml:"draw"`
}

type ScreenConfig struct {
	Width int `toml:"width"`
	Height int `toml:"height"`
	Background string `toml:"background"`
	Color string `toml:"color"` // default text color
}

type FontConfig struct {
	Path string `toml:"path"`
}

type TextConfig struct {
	Markup string `toml:"markup"`
	Font string `toml:"font"`
	Scale float32 `toml:"scale"`
	X float32 `toml:"x"`
	Y float32 `toml:"y"`
	Width float32 `toml:"width"` // 0 for unbounded
	Mode string `toml:"mode"` // wrap, single
	Align string `toml:"align"` // left, center, right
	VertAlign string `toml:"valign"` // top, center, bottom
	Color string `toml:"color"` // override
}

type DrawConfig struct {
	Dest [2]float32 `toml:"dest"`
	Rotation float32 `toml:"rotation"` // degrees
	Spin float32 `toml:"spin"` // degrees per second
	Scale [2]float32 `toml:"scale"`
	Shear [2]float32 `toml:"shear"`
}

// A text ready to be queued each frame.
type placedText struct {
	text *qtxt.Text
	position math32.Vector2
	override *color.RGBA
}

// The result of building a scene against a font library.
type builtScene struct {
	width, height int
	background color.RGBA
	defaultColor color.RGBA
	texts []placedText
	params qtxt.DrawParams
	spin float32 // radians per second
}

func defaultScene() Scene {
	return Scene{
		Screen: ScreenConfig{ Width: 640, Height: 360, Background: "#101018", Color: "#ffffff" },
		Draw: DrawConfig{ Scale: [2]float32{1, 1} },
	}
}

// Loads a scene from a TOML file. Unknown keys are reported as errors.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil { return nil, err }
	return DecodeScene(data)
}

func DecodeScene(data []byte) (*Scene, error) {
	scene := defaultScene()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	err := decoder.Decode(&scene)
	if err != nil { return nil, fmt.Errorf("scene: %w", err) }
	if scene.Screen.Width <= 0 || scene.Screen.Height <= 0 {
		return nil, fmt.Errorf("scene: invalid screen size %dx%d", scene.Screen.Width, scene.Screen.Height)
	}
	return &scene, nil
}

// Registers the scene fonts and builds its texts.
func (self *Scene) Build(fonts *font.Library) (*builtScene, error) {
	for _, fontConfig := range self.Fonts {
		_, err := fonts.ParseFromPath(fontConfig.Path)
		if err != nil && !isAlreadyPresent(err) { return nil, err }
	}

	built := &builtScene{ width: self.Screen.Width, height: self.Screen.Height }
	var err error
	built.background, err = parseColorOr(self.Screen.Background, color.RGBA{0, 0, 0, 255})
	if err != nil { return nil, err }
	built.defaultColor, err = parseColorOr(self.Screen.Color, color.RGBA{255, 255, 255, 255})
	if err != nil { return nil, err }

	for i, textConfig := range self.Texts {
		placed, err := textConfig.build(fonts)
		if err != nil { return nil, fmt.Errorf("text #%d: %w", i, err) }
		built.texts = append(built.texts, placed)
	}

	built.params = qtxt.NewDrawParams()
	built.params.Dest = math32.Vec2(self.Draw.Dest[0], self.Draw.Dest[1])
	built.params.Rotation = math32.DegToRad(self.Draw.Rotation)
	built.params.Scale = math32.Vec2(self.Draw.Scale[0], self.Draw.Scale[1])
	built.params.Shear = math32.Vec2(self.Draw.Shear[0], self.Draw.Shear[1])
	built.spin = math32.DegToRad(self.Draw.Spin)
	return built, nil
}

func (self *TextConfig) build(fonts *font.Library) (placedText, error) {
	text, err := markup.NewText(self.Markup, fonts)
	if err != nil { return placedText{}, err }

	id := font.ID(0)
	if self.Font != "" {
		var found bool
		id, found = fonts.Lookup(self.Font)
		if !found { return placedText{}, fmt.Errorf("font %q not found", self.Font) }
	}
	scale := float32(qtxt.DefaultFontScale)
	if self.Scale > 0 { scale = self.Scale }
	text.SetFont(id, layout.UniformScale(scale))

	if self.Width > 0 {
		textLayout, err := self.layout()
		if err != nil { return placedText{}, err }
		text.SetBounds(math32.Vec2(self.Width, math32.Inf(1)), &textLayout)
	}

	placed := placedText{ text: text, position: math32.Vec2(self.X, self.Y) }
	if self.Color != "" {
		clr, err := markup.ParseColor(self.Color)
		if err != nil { return placedText{}, err }
		placed.override = &clr
	}
	return placed, nil
}

func (self *TextConfig) layout() (layout.Layout, error) {
	var horz layout.HorzAlign
	switch self.Align {
	case "", "left": horz = layout.Left
	case "center": horz = layout.HorzCenter
	case "right": horz = layout.Right
	default:
		return layout.Layout{}, fmt.Errorf("unknown align %q", self.Align)
	}

	var vert layout.VertAlign
	switch self.VertAlign {
	case "", "top": vert = layout.Top
	case "center": vert = layout.VertCenter
	case "bottom": vert = layout.Bottom
	default:
		return layout.Layout{}, fmt.Errorf("unknown valign %q", self.VertAlign)
	}

	switch self.Mode {
	case "", "wrap": return layout.NewWrap(horz, vert), nil
	case "single": return layout.NewSingleLine(horz, vert), nil
	default:
		return layout.Layout{}, fmt.Errorf("unknown mode %q", self.Mode)
	}
}

func isAlreadyPresent(err error) bool {
	return errors.Is(err, font.ErrAlreadyPresent)
}

func parseColorOr(value string, fallback color.RGBA) (color.RGBA, error) {
	if value == "" { return fallback, nil }
	return markup.ParseColor(value)
}
