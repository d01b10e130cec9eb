package bloop

import (
	"fmt"

	"github.com/vovakirdan/bloop/internal/assets"
	"github.com/vovakirdan/bloop/internal/core"
)

// Draw issues this frame's draw commands. Every state starts with a black
// clear and the starfield.
func (g *Game) Draw(dl *core.DrawList, m core.TextMeasurer) {
	w, h := g.rt.ViewportW(), g.rt.ViewportH()

	dl.ClearBackground(core.ColorBlack)
	dl.Background(w, h, g.directionModifier)

	switch g.state {
	case StateMainMenu:
		g.drawBanner(dl, m, "Press Space", core.ColorWhite)
	case StatePlaying:
		g.drawField(dl)
		g.drawHUD(dl, m)
	case StatePaused:
		g.drawBanner(dl, m, "Paused", core.ColorWhite)
	case StateGameOver:
		g.drawBanner(dl, m, "GAME OVER!", core.ColorRed)
	}
}

// drawBanner centres text horizontally with its baseline at mid-height.
func (g *Game) drawBanner(dl *core.DrawList, m core.TextMeasurer, text string, c core.Color) {
	size := g.cfg.HUD.BannerSize
	tw, _ := m.MeasureText(text, size)
	dl.Text(text, g.rt.ViewportW()/2-tw/2, g.rt.ViewportH()/2, size, c)
}

func (g *Game) drawField(dl *core.DrawList) {
	// The ship is offset by a full frame, not half, and drawn at zoom.
	sf := g.shipSprite.Frame()
	zoom := g.cfg.Ship.SpriteZoom
	dl.Texture(assets.ShipTexture, sf.Source,
		core.NewRect(g.ship.X-sf.DestW, g.ship.Y-sf.DestH, sf.DestW*zoom, sf.DestH*zoom))

	bf := g.boltSprite.Frame()
	for _, p := range g.projectiles {
		dl.Texture(assets.LaserTexture, bf.Source, p.Rect())
	}

	for _, sq := range g.obstacles {
		dl.Rectangle(sq.Rect(), core.ColorGreen)
	}

	for _, e := range g.explosions {
		dl.Particles(e.Emitter.Points())
	}
}

func (g *Game) drawHUD(dl *core.DrawList, m core.TextMeasurer) {
	hud := g.cfg.HUD

	dl.Text(fmt.Sprintf("Score : %d", g.score), hud.Margin, hud.Baseline, hud.FontSize, core.ColorWhite)

	high := fmt.Sprintf("High score : %d", g.highScore)
	tw, _ := m.MeasureText(high, hud.FontSize)
	dl.Text(high, g.rt.ViewportW()-tw-hud.Margin, hud.Baseline, hud.FontSize, core.ColorWhite)
}
