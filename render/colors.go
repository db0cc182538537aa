package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mantou/engine"
)

// RGB palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)
	RgbGround     = tcell.NewRGBColor(48, 42, 34)
	RgbFog        = tcell.NewRGBColor(18, 18, 24)
	RgbGridDot    = tcell.NewRGBColor(80, 72, 60)

	RgbPlayer      = tcell.NewRGBColor(255, 255, 255)
	RgbPlayerDying = tcell.NewRGBColor(120, 120, 120)
	RgbMantou      = tcell.NewRGBColor(245, 222, 179)
	RgbBomb        = tcell.NewRGBColor(255, 68, 68)
	RgbExplosion   = tcell.NewRGBColor(255, 165, 0)
	RgbHook        = tcell.NewRGBColor(255, 170, 0)
	RgbPotion      = tcell.NewRGBColor(68, 255, 68)
	RgbShoe        = tcell.NewRGBColor(0, 204, 255)
	RgbBox         = tcell.NewRGBColor(255, 105, 180)
	RgbCow         = tcell.NewRGBColor(200, 160, 120)

	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
	RgbStatusBar  = tcell.NewRGBColor(135, 206, 250)
	RgbHPLow      = tcell.NewRGBColor(200, 50, 50)
	RgbSlot       = tcell.NewRGBColor(60, 60, 70)
	RgbSlotActive = tcell.NewRGBColor(255, 215, 0)
	RgbPanel      = tcell.NewRGBColor(40, 10, 10)
)

// glyph is how one entity kind looks on the grid
type glyph struct {
	r     rune
	color tcell.Color
}

var glyphs = map[engine.Kind]glyph{
	engine.KindPlayer:       {'@', RgbPlayer},
	engine.KindMantou:       {'o', RgbMantou},
	engine.KindBomb:         {'*', RgbBomb},
	engine.KindWallHook:     {'J', RgbHook},
	engine.KindHealthPotion: {'!', RgbPotion},
	engine.KindSpeedShoe:    {'S', RgbShoe},
	engine.KindMysteryBox:   {'?', RgbBox},
	engine.KindWildCow:      {'M', RgbCow},
}

// explosionFrames animate a detonating bomb
var explosionFrames = []rune{'x', 'X', '#'}

// HexColor parses a "#rrggbb" HUD color, defaulting to white
func HexColor(hex string) tcell.Color {
	c := tcell.GetColor(hex)
	if c == tcell.ColorDefault {
		return tcell.ColorWhite
	}
	return c
}
