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
	"image/color"
)

type WinPaintBuff struct {
	win  *Win
	crop OsV4

	depth int
}

func NewWinPaintBuff(win *Win) *WinPaintBuff {
	var b WinPaintBuff
	b.win = win
	return &b
}

func (b *WinPaintBuff) Destroy() {
}

func (b *WinPaintBuff) StartLevel(crop OsV4, backCd color.RGBA, rounding int) {
	//drawBack
	b.AddCrop(crop)
	b.depth++
	b.AddRectRound(crop, rounding, backCd, 0)

	//prepare for layout
	b.depth++
}

func (b *WinPaintBuff) FinalDraw() {

	win := b.win.GetScreenCoord()
	b.win.render.SetClipRect(b.win.GetScreenCoord(), win)

	b.depth = 0
}

func (b *WinPaintBuff) AddCrop(crop OsV4) OsV4 {
	b.win.render.SetClipRect(b.win.GetScreenCoord(), crop)
	ret := b.crop
	b.crop = crop
	return ret
}

func (b *WinPaintBuff) AddRect(coord OsV4, cd color.RGBA, thick int) {
	start := coord.Start
	end := coord.End()
	if thick == 0 {
		b.win.render.DrawRect(start, end, b.depth, cd)
	} else {
		b.win.DrawRect_border(start, end, b.depth, cd, thick)
	}
}

func (b *WinPaintBuff) AddRectRound(coord OsV4, rad int, cd color.RGBA, thick int) {
	if rad < 3 {
		b.AddRect(coord, cd, thick)
	} else {
		b.win.DrawRectRound(coord, rad, b.depth, cd, thick)
	}
}

func (b *WinPaintBuff) AddShadow(coord OsV4, rad int, spread int, cd color.RGBA) {
	b.win.DrawShadow(coord, rad, spread, b.depth, cd)
}

func (b *WinPaintBuff) AddLine(start OsV2, end OsV2, cd color.RGBA, thick int) {
	v := end.Sub(start)
	if !v.IsZero() {
		b.win.render.DrawLine(start, end, b.depth, thick, cd)
	}
}

func (b *WinPaintBuff) AddText(ln string, prop WinFontProps, frontCd color.RGBA, coord OsV4, align OsV2) {

	imgRectBackup := b.AddCrop(b.crop.GetIntersect(coord))

	b.win.DrawText(ln, prop, frontCd, coord, b.depth, align)

	b.AddCrop(imgRectBackup)
}
