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
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

type WinFontFace struct {
	face        font.Face
	lastUseTick int64
}

func NewWinFontFace(prop *WinFontProps) *WinFontFace {

	var name string
	switch prop.weight {
	case 400:
		name = "Inter-Regular" //default
	case 500:
		name = "Inter-Medium"
	case 600:
		name = "Inter-SemiBold"
	case 700:
		name = "Inter-Bold"
	}

	if name == "" {
		fmt.Printf("Unknown weight %d\n", prop.weight)
		return nil
	}

	path := "resources/Inter/" + name + ".ttf"

	fl, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("ReadFile() failed: %v\n", err)
		return nil
	}

	ft, err := truetype.Parse(fl)
	if err != nil {
		fmt.Printf("truetype.Parse() failed: %v\n", err)
		return nil
	}

	face := truetype.NewFace(ft, &truetype.Options{Size: float64(prop.textH)})

	return &WinFontFace{face: face}
}
func (ff *WinFontFace) Destroy() {
	ff.face.Close()
}

func (ff *WinFontFace) UpdateTick() {
	ff.lastUseTick = OsTicks()
}
func (ff *WinFontFace) IsUsed() bool {
	return OsIsTicksIn(ff.lastUseTick, 30000) //30 sec
}

type WinFont struct {
	faces [9]*WinFontFace
}

func (ft *WinFont) Destroy() {
	for i, f := range ft.faces {
		if f != nil {
			f.Destroy()
			ft.faces[i] = nil
		}
	}
}

func (ft *WinFont) GetFace(prop *WinFontProps) *WinFontFace {

	w := (prop.weight / 100) - 1
	w = OsClamp(w, 0, 8)

	if ft.faces[w] == nil {
		ft.faces[w] = NewWinFontFace(prop)
	}
	ret := ft.faces[w]

	if ret != nil {
		ret.UpdateTick()
	}

	return ret
}

func (ft *WinFont) Maintenance() {
	for i := len(ft.faces) - 1; i >= 0; i-- {
		if ft.faces[i] != nil && !ft.faces[i].IsUsed() {
			ft.faces[i].Destroy()
			ft.faces[i] = nil
		}
	}
}

type WinFontProps struct {
	textH int
	lineH int

	weight int
}

func WinFontProps_GetDefaultTextH() float64 {
	return 0.37
}

func WinFontProps_GetDefaultLineH() float64 {
	return 0.6
}

// textH & lineH are in <0-1> range
func InitWinFontProps(weight int, textH, lineH float64, cell int) WinFontProps {
	if weight <= 0 {
		weight = 400
	}

	if textH <= 0 {
		textH = WinFontProps_GetDefaultTextH()
	}
	tPx := int(float64(cell) * textH)

	if lineH <= 0 {
		lineH = WinFontProps_GetDefaultLineH()
	}
	lPx := int(float64(cell) * lineH)

	return WinFontProps{weight: weight, textH: tPx, lineH: lPx}
}

func InitWinFontPropsDef(cell int) WinFontProps {
	return InitWinFontProps(0, 0, 0, cell)
}

func (a *WinFontProps) Cmp(b *WinFontProps) bool {
	return a.weight == b.weight &&
		a.textH == b.textH &&
		a.lineH == b.lineH
}
