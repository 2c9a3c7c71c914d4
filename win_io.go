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
	"os"

	"github.com/veandco/go-sdl2/sdl"
)

type WinKeys struct {
	HasChanged bool

	Esc   bool
	Space bool

	F1 bool
	F2 bool

	Digit int // 1-9, 0 = none
}

type WinTouch struct {
	Pos   OsV2
	Start bool
	End   bool
	Lm    bool // left button held
	Rm    bool // right/middle button
}

type WinCursor struct {
	name   string
	tp     sdl.SystemCursor
	cursor *sdl.Cursor
}

type WinIni struct {
	WinX, WinY, WinW, WinH int

	PanelMode int
	ClampDrag bool
}

type WinIO struct {
	Touch WinTouch
	Keys  WinKeys
	Ini   WinIni
}

func NewWinIO() (*WinIO, error) {
	var io WinIO

	err := io._IO_setDefault()
	if err != nil {
		return nil, fmt.Errorf("_IO_setDefault() failed: %w", err)
	}

	return &io, nil
}

func (io *WinIO) Destroy() error {
	return nil
}

func (io *WinIO) ResetTouchAndKeys() {
	io.Touch = WinTouch{}
	io.Keys = WinKeys{}
}

func (io *WinIO) Open(path string) error {

	file, err := os.ReadFile(path)
	if err == nil && len(file) > 0 {
		err = LogsJsonUnmarshal(file, &io.Ini)
		if err != nil {
			return fmt.Errorf("WinIO - Unmarshal() failed: %w", err)
		}
	}

	err = io._IO_setDefault()
	if err != nil {
		return fmt.Errorf("_IO_setDefault() failed: %w", err)
	}

	return nil
}

func (io *WinIO) Save(path string) {
	data, err := LogsJsonMarshalIndent(io.Ini)
	if err != nil {
		return
	}
	err = os.WriteFile(path, data, 0644)
	if err != nil {
		fmt.Printf("Save(%s) failed: %v\n", path, err)
	}
}

func (io *WinIO) _IO_setDefault() error {
	//window coord
	if io.Ini.WinW == 0 || io.Ini.WinH == 0 {
		io.Ini.WinX = 50
		io.Ini.WinY = 50
		io.Ini.WinW = 1280
		io.Ini.WinH = 720
	}

	return nil
}

func GetDeviceDPI() int {
	dpi, _, _, err := sdl.GetDisplayDPI(0)
	if err != nil {
		fmt.Printf("GetDisplayDPI() failed: %v\n", err)
		return 100
	}
	return int(dpi)
}

type DevPalette struct {
	P, S, E, B         color.RGBA
	OnP, OnS, OnE, OnB color.RGBA
}

func (pl *DevPalette) GetGrey(t float64) color.RGBA {
	return Color_Aprox(pl.B, pl.OnB, t)
}

func Color_Aprox(s color.RGBA, e color.RGBA, t float64) color.RGBA {
	var self color.RGBA
	self.R = byte(float64(s.R) + (float64(e.R)-float64(s.R))*t)
	self.G = byte(float64(s.G) + (float64(e.G)-float64(s.G))*t)
	self.B = byte(float64(s.B) + (float64(e.B)-float64(s.B))*t)
	self.A = byte(float64(s.A) + (float64(e.A)-float64(s.A))*t)
	return self
}
