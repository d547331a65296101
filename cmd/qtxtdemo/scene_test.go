//go:build !gtxt

package main

import "os"
import "testing"
import "path/filepath"
import "image/color"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/goregular"
import "cogentcore.org/core/math32"

import "github.com/tinne26/qtxt/font"
import "github.com/tinne26/qtxt/layout"

const testScene = `
[screen]
width = 320
height = 200
background = "#000000"
color = "#00ff00"

[[texts]]
markup = "Hi, [color=#ff0000]World[/]"
font = "Go Mono"
scale = 20
x = 10
y = 12

[[texts]]
markup = "wrapped text"
width = 100
align = "right"
valign = "bottom"
mode = "single"
color = "#0000ff"

[draw]
dest = [5, 6]
rotation = 90
scale = [2, 2]
spin = 180
`

func testFonts(t *testing.T) *font.Library {
	t.Helper()
	fonts := font.NewLibrary()
	_, err := fonts.ParseFromBytes(goregular.TTF)
	require.NoError(t, err)
	_, err = fonts.ParseFromBytes(gomono.TTF)
	require.NoError(t, err)
	return fonts
}

func TestDecodeScene(t *testing.T) {
	scene, err := DecodeScene([]byte(testScene))
	require.NoError(t, err)
	assert.Equal(t, 320, scene.Screen.Width)
	require.Len(t, scene.Texts, 2)
	assert.Equal(t, "Go Mono", scene.Texts[0].Font)
	assert.Equal(t, float32(100), scene.Texts[1].Width)
	assert.Equal(t, [2]float32{2, 2}, scene.Draw.Scale)

	built, err := scene.Build(testFonts(t))
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, built.defaultColor)
	require.Len(t, built.texts, 2)

	first := built.texts[0]
	assert.Equal(t, "Hi, World", first.text.Contents())
	id, scale := first.text.Font()
	assert.Equal(t, font.ID(1), id)
	assert.Equal(t, layout.UniformScale(20), scale)
	assert.Equal(t, math32.Vec2(10, 12), first.position)
	assert.Nil(t, first.override)

	second := built.texts[1]
	assert.Equal(t, layout.NewSingleLine(layout.Right, layout.Bottom), second.text.Layout())
	assert.Equal(t, float32(100), second.text.Bounds().X)
	require.NotNil(t, second.override)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, *second.override)

	assert.InDelta(t, math32.Pi/2, built.params.Rotation, 1e-5)
	assert.InDelta(t, math32.Pi, built.spin, 1e-5)
	assert.Equal(t, math32.Vec2(5, 6), built.params.Dest)
}

func TestDecodeSceneDefaults(t *testing.T) {
	scene, err := DecodeScene([]byte(`[[texts]]
markup = "x"`))
	require.NoError(t, err)
	assert.Equal(t, 640, scene.Screen.Width)
	built, err := scene.Build(testFonts(t))
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(1, 1), built.params.Scale)
	assert.True(t, math32.IsInf(built.texts[0].text.Bounds().X, 1))
}

func TestDecodeSceneErrors(t *testing.T) {
	_, err := DecodeScene([]byte("[screen]\nunknown = 3"))
	assert.Error(t, err)
	_, err = DecodeScene([]byte("[screen]\nwidth = -3"))
	assert.Error(t, err)

	fonts := testFonts(t)
	for _, text := range []TextConfig{
		{ Markup: "[color=nope]x[/]" },
		{ Markup: "x", Font: "Missing" },
		{ Markup: "x", Width: 10, Align: "middle" },
		{ Markup: "x", Width: 10, Mode: "columns" },
		{ Markup: "x", Color: "red" },
	} {
		scene := defaultScene()
		scene.Texts = []TextConfig{text}
		_, err := scene.Build(fonts)
		assert.Error(t, err, "%+v", text)
	}
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(testScene), 0o644))
	scene, err := LoadScene(path)
	require.NoError(t, err)
	assert.Len(t, scene.Texts, 2)

	_, err = LoadScene(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDefaultTexts(t *testing.T) {
	scene := defaultScene()
	scene.Texts = defaultTexts
	built, err := scene.Build(testFonts(t))
	require.NoError(t, err)
	assert.Len(t, built.texts, len(defaultTexts))
}
