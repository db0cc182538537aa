// Package render draws the world, HUD and inventory bar to a tcell screen
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/inventory"
	"github.com/lixenwraith/mantou/parameter"
	"github.com/lixenwraith/mantou/vmath"
)

// columnWidth is the world width of one terminal column; a cell spans two columns
const columnWidth = parameter.CellSize / 2

// Frame is everything one draw needs
type Frame struct {
	World    *engine.World
	Camera   vmath.Vec
	Slots    []inventory.Item
	Selected int
	Boost    time.Duration
	Paused   bool
	HUD      HUDState
}

// exploder is satisfied by bombs mid-detonation
type exploder interface {
	Exploding() bool
	Frame() int
}

// View maps the world onto the terminal: a status row on top, the inventory bar at the bottom
type View struct {
	screen tcell.Screen
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// center returns the screen position of the camera center
func (v *View) center() (int, int) {
	w, h := v.screen.Size()
	return w / 2, 1 + (h-2)/2
}

// WorldToScreen returns the terminal position of world point p
func (v *View) WorldToScreen(p, cam vmath.Vec) (int, int) {
	cx, cy := v.center()
	x := cx + int(math.Floor((p.X-cam.X+columnWidth/2)/columnWidth))
	y := cy + int(math.Floor((p.Y-cam.Y)/parameter.CellSize+0.5))
	return x, y
}

// ScreenToWorld returns the world point under terminal position (x, y)
func (v *View) ScreenToWorld(x, y int, cam vmath.Vec) vmath.Vec {
	cx, cy := v.center()
	return vmath.V(
		cam.X+float64(x-cx)*columnWidth-columnWidth/2,
		cam.Y+float64(y-cy)*parameter.CellSize,
	)
}

// InMap reports whether (x, y) is inside the map area
func (v *View) InMap(x, y int) bool {
	w, h := v.screen.Size()
	return x >= 0 && x < w && y >= 1 && y < h-1
}

// Draw renders one frame and shows it
func (v *View) Draw(f Frame) {
	v.screen.Clear()
	v.drawGround(f)
	v.drawEntities(f)
	v.drawFloatingTexts(f)
	v.drawStatus(f)
	v.drawInventory(f)
	if f.HUD.Summary != nil {
		v.drawGameOver(*f.HUD.Summary)
	}
	v.screen.Show()
}

func (v *View) drawGround(f Frame) {
	w, h := v.screen.Size()
	playerCell := vmath.CellOf(f.Camera)
	if p := f.World.Player(); p != nil {
		playerCell = p.Cell()
	}
	ground := tcell.StyleDefault.Background(RgbGround).Foreground(RgbGridDot)
	fog := tcell.StyleDefault.Background(RgbFog).Foreground(RgbFog)

	for y := 1; y < h-1; y++ {
		for x := 0; x < w; x++ {
			p := v.ScreenToWorld(x, y, f.Camera)
			cell := vmath.CellOf(p)
			if vmath.CellDistance(playerCell, cell) > parameter.FogRadiusCells {
				v.screen.SetContent(x, y, ' ', nil, fog)
				continue
			}
			r := ' '
			if p.X-float64(cell.X)*parameter.CellSize < columnWidth {
				r = '·'
			}
			v.screen.SetContent(x, y, r, nil, ground)
		}
	}
}

func (v *View) drawEntities(f Frame) {
	var player *engine.Entity
	for _, e := range f.World.Entities() {
		if !e.Active() {
			continue
		}
		if e.Kind() == engine.KindPlayer {
			player = e
			continue
		}
		v.drawEntity(f, e)
	}
	// player last so it stays visible over pulled items
	if player != nil {
		v.drawEntity(f, player)
	}
}

func (v *View) drawEntity(f Frame, e *engine.Entity) {
	x, y := v.WorldToScreen(e.Position, f.Camera)
	if !v.InMap(x, y) {
		return
	}
	g, ok := glyphs[e.Kind()]
	if !ok {
		return
	}
	if ex, ok := e.Primary().(exploder); ok && ex.Exploding() {
		g = glyph{explosionFrames[min(ex.Frame(), len(explosionFrames)-1)], RgbExplosion}
	}
	if e.Kind() == engine.KindPlayer && f.World.State().Over() {
		g.color = RgbPlayerDying
	}
	_, _, bg, _ := v.screen.GetContent(x, y)
	_, bgColor, _ := bg.Decompose()
	v.screen.SetContent(x, y, g.r, nil, tcell.StyleDefault.Foreground(g.color).Background(bgColor).Bold(true))
}

func (v *View) drawFloatingTexts(f Frame) {
	p := f.World.Player()
	if p == nil {
		return
	}
	px, py := v.WorldToScreen(p.Position, f.Camera)
	texts := f.HUD.Texts
	for i := range texts {
		t := texts[len(texts)-1-i]
		y := py - 1 - i
		if y < 1 {
			break
		}
		style := tcell.StyleDefault.Foreground(HexColor(t.Color)).Background(RgbFog).Bold(true)
		v.drawText(px-len(t.Text)/2, y, style, t.Text)
	}
}

func (v *View) drawStatus(f Frame) {
	w, _ := v.screen.Size()
	style := tcell.StyleDefault.Background(RgbStatusBar).Foreground(RgbStatusText)
	v.fillRow(0, w, style)

	hp := fmt.Sprintf(" HP %d ", f.HUD.HP)
	hpStyle := style.Bold(true)
	if f.HUD.HP <= 20 {
		hpStyle = hpStyle.Background(RgbHPLow).Foreground(tcell.ColorWhite)
	}
	x := v.drawText(0, 0, hpStyle, hp)
	line := fmt.Sprintf(" Food %d  On field %d  (%d, %d)", f.HUD.Food, f.HUD.OnField, f.HUD.Coords.X, f.HUD.Coords.Y)
	if f.Boost > 0 {
		line += fmt.Sprintf("  Boost %ds", int(math.Ceil(f.Boost.Seconds())))
	}
	if f.Paused {
		line += "  PAUSED"
	}
	v.drawText(x, 0, style, line)
}

func (v *View) drawInventory(f Frame) {
	w, h := v.screen.Size()
	y := h - 1
	v.fillRow(y, w, tcell.StyleDefault.Background(RgbBackground))
	x := 1
	for i, it := range f.Slots {
		label := fmt.Sprintf("[%d ----]", i+1)
		if it.Count > 0 {
			label = fmt.Sprintf("[%d %s x%d]", i+1, it.Name, it.Count)
		}
		style := tcell.StyleDefault.Background(RgbSlot).Foreground(tcell.ColorWhite)
		if it.Count > 0 && it.Color != "" {
			style = style.Foreground(HexColor(it.Color))
		}
		if i == f.Selected {
			style = style.Background(RgbSlotActive).Foreground(RgbStatusText).Bold(true)
		}
		x = v.drawText(x, y, style, label) + 1
	}
}

func (v *View) drawGameOver(sum engine.Summary) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Survived  %ds", sum.SurvivalSeconds),
		fmt.Sprintf("Mantou    %d", sum.FoodCollected),
		fmt.Sprintf("Score     %d", sum.Score),
		"",
		"R restart   Q quit",
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	width += 4
	w, h := v.screen.Size()
	left, top := (w-width)/2, (h-len(lines))/2-1
	style := tcell.StyleDefault.Background(RgbPanel).Foreground(tcell.ColorWhite)
	for row := 0; row < len(lines)+2; row++ {
		for col := 0; col < width; col++ {
			v.screen.SetContent(left+col, top+row, ' ', nil, style)
		}
	}
	for i, l := range lines {
		s := style
		if i == 0 {
			s = s.Foreground(RgbBomb).Bold(true)
		}
		v.drawText(left+(width-len(l))/2, top+1+i, s, l)
	}
}

func (v *View) fillRow(y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawText writes s from (x, y) and returns the column after it
func (v *View) drawText(x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
