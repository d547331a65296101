//go:build !gtxt

package main

import "log/slog"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tinne26/qtxt"
import "github.com/tinne26/qtxt/font"

type Game struct {
	ctx *qtxt.Context
	fonts *font.Library
	scene *builtScene
	reloads <-chan *Scene
	ticks int
	drawErr error
	logger *slog.Logger
}

func (self *Game) Layout(int, int) (int, int) {
	self.ctx.SetScreenSize(self.scene.width, self.scene.height)
	return self.scene.width, self.scene.height
}

func (self *Game) Update() error {
	if self.drawErr != nil { return self.drawErr }
	select {
	case scene, ok := <-self.reloads:
		if !ok { self.reloads = nil; break }
		built, err := scene.Build(self.fonts)
		if err != nil {
			self.logger.Warn("scene rebuild failed", slog.Any("err", err))
			break
		}
		self.setScene(built)
	default:
	}
	self.ticks += 1
	return nil
}

func (self *Game) setScene(scene *builtScene) {
	self.scene = scene
	self.ctx.SetDefaultColor(scene.defaultColor)
	ebiten.SetWindowSize(scene.width, scene.height)
}

func (self *Game) Draw(screen *ebiten.Image) {
	screen.Fill(self.scene.background)
	self.ctx.SetTarget(screen)
	for _, placed := range self.scene.texts {
		placed.text.Queue(self.ctx, placed.position, placed.override)
	}

	// one flush per frame for all the texts
	params := self.scene.params
	params.Rotation += self.scene.spin*float32(self.ticks)/float32(ebiten.TPS())
	self.drawErr = qtxt.DrawQueued(self.ctx, params)
}
