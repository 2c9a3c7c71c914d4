/*
Copyright 2025 Milan Suk

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this db except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"image/color"
	"strings"
)

type Ui struct {
	win *Win

	winRect OsV4

	panel *ItemsPanel
	store *ItemsStore

	palette DevPalette

	show_stats bool
}

func NewUi(win *Win, store *ItemsStore) (*Ui, error) {
	ui := &Ui{win: win, store: store}

	ui.palette = DevPalette{
		P:   color.RGBA{37, 100, 120, 255},
		OnP: color.RGBA{255, 255, 255, 255},
		S:   color.RGBA{85, 95, 100, 255},
		OnS: color.RGBA{255, 255, 255, 255},
		E:   color.RGBA{180, 40, 30, 255},
		OnE: color.RGBA{255, 255, 255, 255},
		B:   color.RGBA{250, 250, 250, 255},
		OnB: color.RGBA{25, 27, 30, 255},
	}

	ui.panel = NewItemsPanel(PanelMode(OsClamp(win.io.Ini.PanelMode, int(PanelMode_Grid), int(PanelMode_ColumnMajor))))
	ui.panel.ClampDrag = win.io.Ini.ClampDrag
	ui.panel.ShadowCd = color.RGBA{0, 0, 0, 90}

	items, err := store.List()
	if err != nil {
		return nil, fmt.Errorf("List() failed: %w", err)
	}

	cell := float64(ui.Cell())
	for _, it := range items {
		ui.panel.AddItem(it.Label, it.Cd, cell*3, cell*2)
	}

	ui.panel.SetOrderChanged(func() {
		var labels []string
		for _, it := range ui.panel.ItemsInOrder() {
			labels = append(labels, it.Label)
		}
		fmt.Printf("order: %s\n", strings.Join(labels, ", "))
		win.SetRedraw()
	})

	return ui, nil
}

func (ui *Ui) Destroy() {
	ui.win.io.Ini.PanelMode = int(ui.panel.Mode)
	ui.win.io.Ini.ClampDrag = ui.panel.ClampDrag
}

func (ui *Ui) GetWin() *Win {
	return ui.win
}

func (ui *Ui) Cell() int {
	return int(float64(GetDeviceDPI()) / 2.5)
}

// panel area = window minus a one-cell margin
func (ui *Ui) getPanelCoord() OsV4 {
	return ui.winRect.Crop(ui.Cell())
}

func (ui *Ui) UpdateIO(winRect OsV4) {
	ui.winRect = winRect

	keys := &ui.win.io.Keys
	touch := &ui.win.io.Touch

	if keys.Esc {
		ui.win.quit = true
	}
	if keys.Digit >= 1 && keys.Digit <= 5 && !ui.panel.IsDragging() {
		ui.panel.Mode = PanelMode(keys.Digit - 1)
		ui.win.SetRedraw()
	}
	if keys.Space && keys.HasChanged {
		ui.panel.ClampDrag = !ui.panel.ClampDrag
		ui.win.SetRedraw()
	}
	if keys.F1 && keys.HasChanged {
		ui.win.ToggleFullscreen()
		ui.win.SetRedraw()
	}
	if keys.F2 && keys.HasChanged {
		ui.show_stats = !ui.show_stats
		ui.win.SetRedraw()
	}

	coord := ui.getPanelCoord()
	availW := float64(coord.Size.X)
	availH := float64(coord.Size.Y)

	in := PanelDragInput{
		X:        float64(touch.Pos.X - coord.Start.X),
		Y:        float64(touch.Pos.Y - coord.Start.Y),
		IsStart:  touch.Start && !touch.Rm,
		IsActive: touch.Lm && !touch.End,
		IsEnd:    touch.End,
		IsInside: coord.Inside(touch.Pos),
	}

	wasDragging := ui.panel.IsDragging()
	ui.panel.Input(in, availW, availH)
	if wasDragging || ui.panel.IsDragging() {
		ui.win.SetRedraw()
	}

	ui.panel.Relayout(availW, availH)
}

func (ui *Ui) Draw() {
	buff := ui.win.buff

	coord := ui.getPanelCoord()

	buff.StartLevel(ui.winRect, ui.palette.B, 0)

	if ui.panel.IsDragging() {
		ui.win.PaintCursor("move")
	}

	ui.panel.Draw(buff, coord.Start, ui.Cell())

	ui.drawStatusLine(buff)

	buff.FinalDraw()
}

func (ui *Ui) drawStatusLine(buff *WinPaintBuff) {
	cell := ui.Cell()
	prop := InitWinFontPropsDef(cell)

	clamp := "off"
	if ui.panel.ClampDrag {
		clamp = "on"
	}
	text := fmt.Sprintf("[1-5] %s   [space] clamp: %s   [esc] quit", ui.panel.Mode.String(), clamp)

	coord := InitOsV4(ui.winRect.Start.X+cell/2, ui.winRect.End().Y-cell, ui.winRect.Size.X-cell, cell)
	buff.AddCrop(coord)
	buff.AddText(text, prop, ui.palette.GetGrey(0.5), coord, OsV2{0, 1})
}
