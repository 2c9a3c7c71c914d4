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
	"errors"
	"fmt"
	"image/color"
	"runtime"
	"strings"

	"github.com/pbnjay/memory"
	"github.com/veandco/go-sdl2/sdl"
)

const ORDERGRID_INI_PATH = "ini.json"

func InitSDLGlobal() error {
	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return fmt.Errorf("sdl.Init() failed: %w", err)
	}

	n, err := sdl.GetNumVideoDisplays()
	if err != nil {
		return fmt.Errorf("GetNumVideoDisplays() failed: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("0 video displays")
	}

	return nil
}
func DestroySDLGlobal() {
	sdl.Quit()
}

type WinStats struct {
	frames  int
	sum_ms  int
	min_ms  int
	max_ms  int
	lastGen int64

	out_worst_fps float64
	out_best_fps  float64
	out_avg_fps   float64
}

func (st *WinStats) Update(frame_ms int) {
	st.frames++
	st.sum_ms += frame_ms
	st.min_ms = OsMin(st.min_ms, frame_ms)
	st.max_ms = OsMax(st.max_ms, frame_ms)

	//update outputs every second
	if !OsIsTicksIn(st.lastGen, 1000) {
		if st.max_ms > 0 {
			st.out_worst_fps = 1000 / float64(st.max_ms)
		}
		if st.min_ms > 0 {
			st.out_best_fps = 1000 / float64(st.min_ms)
		}
		if st.frames > 0 && st.sum_ms > 0 {
			st.out_avg_fps = 1000 / (float64(st.sum_ms) / float64(st.frames))
		}

		st.frames = 0
		st.sum_ms = 0
		st.min_ms = 10000
		st.max_ms = 0
		st.lastGen = OsTicks()
	}
}

type Win struct {
	io *WinIO

	window *sdl.Window

	render *WinRender

	buff *WinPaintBuff

	redraw bool

	fullscreen_now          bool
	fullscreen              bool
	recover_fullscreen_size OsV2

	cursors  []WinCursor
	cursorId int

	gph *WinGph

	stat            WinStats
	start_time_unix int64

	quit bool
}

func NewWin() (*Win, error) {
	win := &Win{}

	win.buff = NewWinPaintBuff(win)

	var err error
	win.io, err = NewWinIO()
	if err != nil {
		return nil, fmt.Errorf("NewIO() failed: %w", err)
	}
	err = win.io.Open(ORDERGRID_INI_PATH)
	if err != nil {
		return nil, fmt.Errorf("Open() failed: %w", err)
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "2")

	// create SDL
	win.window, err = sdl.CreateWindow("OrderGrid", int32(win.io.Ini.WinX), int32(win.io.Ini.WinY), int32(win.io.Ini.WinW), int32(win.io.Ini.WinH), sdl.WINDOW_RESIZABLE|sdl.WINDOW_OPENGL)
	if err != nil {
		return nil, fmt.Errorf("CreateWindow() failed: %w", err)
	}

	win.render, err = NewWinRender(win.window)
	if err != nil {
		return nil, fmt.Errorf("NewWinRenderer() failed: %w", err)
	}

	win.gph = NewWinGph()

	// cursors
	win.cursors = append(win.cursors, WinCursor{"default", sdl.SYSTEM_CURSOR_ARROW, sdl.CreateSystemCursor(sdl.SYSTEM_CURSOR_ARROW)})
	win.cursors = append(win.cursors, WinCursor{"hand", sdl.SYSTEM_CURSOR_HAND, sdl.CreateSystemCursor(sdl.SYSTEM_CURSOR_HAND)})
	win.cursors = append(win.cursors, WinCursor{"move", sdl.SYSTEM_CURSOR_SIZEALL, sdl.CreateSystemCursor(sdl.SYSTEM_CURSOR_SIZEALL)})

	return win, nil
}

func (win *Win) Destroy() error {
	var err error

	win.io.Save(ORDERGRID_INI_PATH)

	err = win.io.Destroy()
	if err != nil {
		return fmt.Errorf("IO.Destroy() failed: %w", err)
	}

	for _, cur := range win.cursors {
		sdl.FreeCursor(cur.cursor)
	}

	win.gph.Destroy()

	win.render.Destroy()

	err = win.window.Destroy()
	if err != nil {
		return fmt.Errorf("Window.Destroy() failed: %w", err)
	}

	return nil
}

func (win *Win) GetMousePosition() (OsV2, bool, bool) {
	x, y, state := sdl.GetGlobalMouseState()

	wx, wy := win.window.GetPosition()
	ww, wh := win.window.GetSize()
	return OsV2_32(x, y).Sub(OsV2_32(wx, wy)), (state != 0 && state != sdl.ButtonLMask()), InitOsV4(int(wx), int(wy), int(ww), int(wh)).Inside(OsV2_32(x, y))
}

func (win *Win) GetScreenCoord() OsV4 {
	w, h := win.window.GLGetDrawableSize()
	return OsV4{Start: OsV2{}, Size: OsV2{int(w), int(h)}}
}

func (win *Win) Event() (bool, bool, error) {
	io := win.io
	inputChanged := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() { // some cases have RETURN(don't miss it in tick), some (can be missed in tick)!

		switch val := event.(type) {
		case *sdl.QuitEvent:
			fmt.Println("Exiting ...")
			return false, false, nil

		case *sdl.WindowEvent:
			switch val.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				inputChanged = true
			case sdl.WINDOWEVENT_MOVED:
				inputChanged = true
			case sdl.WINDOWEVENT_SHOWN, sdl.WINDOWEVENT_HIDDEN:
				inputChanged = true
			}

		case *sdl.MouseMotionEvent:
			inputChanged = true

		case *sdl.MouseButtonEvent:
			io.Touch.Pos = OsV2_32(val.X, val.Y)
			io.Touch.Rm = (val.Button != sdl.BUTTON_LEFT)

			switch val.Type {
			case sdl.MOUSEBUTTONDOWN:
				io.Touch.Start = true
				sdl.CaptureMouse(true) // keep getting info even mouse is outside window

			case sdl.MOUSEBUTTONUP:
				io.Touch.End = true
				sdl.CaptureMouse(false)
			}
			return true, true, nil

		case *sdl.KeyboardEvent:
			if val.Type == sdl.KEYDOWN {
				keys := &io.Keys

				keys.Esc = val.Keysym.Sym == sdl.K_ESCAPE
				keys.Space = val.Keysym.Sym == sdl.K_SPACE

				keys.F1 = val.Keysym.Sym == sdl.K_F1
				keys.F2 = val.Keysym.Sym == sdl.K_F2

				if val.Keysym.Sym >= sdl.K_1 && val.Keysym.Sym <= sdl.K_9 {
					keys.Digit = int(val.Keysym.Sym-sdl.K_1) + 1
				}

				keys.HasChanged = true
			}
			return true, true, nil
		}
	}

	return true, inputChanged, nil
}

func (win *Win) Maintenance() {
	win.gph.Maintenance()
}

func (win *Win) SetRedraw() {
	win.redraw = true
}

// ToggleFullscreen flips the request. The window is resized at the end of
// the next render, after the frame is presented.
func (win *Win) ToggleFullscreen() {
	win.fullscreen = !win.fullscreen
}

func (win *Win) UpdateIO() (bool, bool, error) {
	if win == nil {
		return true, false, nil
	}

	run, redraw, err := win.Event()
	if err != nil {
		return run, true, fmt.Errorf("Event() failed: %w", err)
	}
	if !run {
		return false, redraw, nil
	}

	if win.quit {
		return false, redraw, nil
	}

	if win.redraw {
		redraw = true
		win.redraw = false //reset
	}

	// update Win
	io := win.io

	{
		start := OsV2_32(win.window.GetPosition())
		size := OsV2_32(win.window.GetSize())
		io.Ini.WinX = start.X
		io.Ini.WinY = start.Y
		io.Ini.WinW = size.X
		io.Ini.WinH = size.Y
	}

	if !io.Touch.Start && !io.Touch.End && !io.Touch.Rm {
		io.Touch.Pos, io.Touch.Rm, _ = win.GetMousePosition()
	}
	{
		_, _, state := sdl.GetGlobalMouseState()
		io.Touch.Lm = (state & sdl.ButtonLMask()) != 0
	}

	win.cursorId = 0

	return true, redraw, nil
}

func (win *Win) StartRender(clearCd color.RGBA) error {
	if win == nil {
		return nil
	}

	win.render.StartRender(win.GetScreenCoord(), clearCd)

	win.start_time_unix = OsTicks()
	return nil
}

func (win *Win) EndRender(present bool, show_stats bool) error {
	if win == nil {
		return nil
	}

	win.stat.Update(int(OsTicks() - win.start_time_unix))
	if show_stats {
		win.renderStats()
	}

	if present {
		win.window.GLSwap()

		if win.cursorId >= 0 {
			if win.cursorId >= len(win.cursors) {
				return errors.New("cursorID is out of range")
			}
			sdl.SetCursor(win.cursors[win.cursorId].cursor)
		}
	}

	if win.fullscreen != win.fullscreen_now {
		fullFlag := uint32(0)
		if win.fullscreen {
			win.recover_fullscreen_size = OsV2_32(win.window.GetSize())
			fullFlag = uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
		}
		err := win.window.SetFullscreen(fullFlag)
		if err != nil {
			return fmt.Errorf("SetFullscreen() failed: %w", err)
		}
		if fullFlag == 0 {
			win.window.SetSize(win.recover_fullscreen_size.Get32()) //otherwise, wierd bug happens
		}

		win.fullscreen_now = win.fullscreen
	}

	return nil
}

func (win *Win) Finish() {
	win.io.ResetTouchAndKeys()

	win.Maintenance()
}

func (win *Win) renderStats() {

	cell := int(float64(GetDeviceDPI()) / 2.5)
	props := InitWinFontPropsDef(cell)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	text := fmt.Sprintf("FPS(worst: %.1f, best: %.1f, avg: %.1f), Memory(process: %.2fMB, device: %.1f%%), Threads(%d), Text(live: %d, created: %d, removed: %d)",
		win.stat.out_worst_fps, win.stat.out_best_fps, win.stat.out_avg_fps,
		float64(mem.Sys)/1024/1024, 100*(1-float64(memory.FreeMemory())/float64(memory.TotalMemory())), runtime.NumGoroutine(),
		len(win.gph.texts), win.gph.texts_num_created, win.gph.texts_num_remove)

	sz := win.GetTextSize(text, props)

	screen := win.GetScreenCoord()
	cq := OsV4{screen.Middle().Sub(sz.MulV(0.5)), sz}

	win.render.SetClipRect(screen, cq)
	depth := 990
	win.render.DrawRect(cq.Start, cq.End(), depth, color.RGBA{255, 255, 255, 255})

	win.DrawText(text, props, color.RGBA{255, 50, 50, 255}, cq, depth, OsV2{0, 1})
}

func (win *Win) PaintCursor(name string) error {
	if win == nil {
		return nil
	}

	for i, cur := range win.cursors {
		if strings.EqualFold(cur.name, name) {
			win.cursorId = i
			return nil
		}
	}

	return LogsErrorf("cursor(%s) not found", name)
}

func (win *Win) DrawRect_border(start OsV2, end OsV2, depth int, cd color.RGBA, thick int) {
	win.render.DrawRect(start, OsV2{end.X, start.Y + thick}, depth, cd) // top
	win.render.DrawRect(OsV2{start.X, end.Y - thick}, end, depth, cd)   // bottom
	win.render.DrawRect(start, OsV2{start.X + thick, end.Y}, depth, cd) // left
	win.render.DrawRect(OsV2{end.X - thick, start.Y}, end, depth, cd)   // right
}

func (win *Win) DrawRectRound(coord OsV4, rad int, depth int, cd color.RGBA, thick int) {
	rr := win.gph.GetRoundedRectangle(float64(thick), float64(rad))
	if rr != nil {

		s := coord.Start
		e := coord.End()
		w := coord.Size.X
		h := coord.Size.Y

		//top corners
		rr.item.DrawUV(InitOsV4(s.X, s.Y, rad, rad), depth, cd, OsV2f{0, 0}, OsV2f{0.33333, 0.33333}, win.gph)     //left
		rr.item.DrawUV(InitOsV4(e.X-rad, s.Y, rad, rad), depth, cd, OsV2f{0.66667, 0}, OsV2f{1, 0.33333}, win.gph) //right
		//bottom corners
		rr.item.DrawUV(InitOsV4(s.X, e.Y-rad, rad, rad), depth, cd, OsV2f{0, 0.66667}, OsV2f{0.33333, 1}, win.gph)     //left
		rr.item.DrawUV(InitOsV4(e.X-rad, e.Y-rad, rad, rad), depth, cd, OsV2f{0.66667, 0.66667}, OsV2f{1, 1}, win.gph) //right

		//rects
		rr.item.DrawUV(InitOsV4(s.X, s.Y+rad, rad, h-2*rad), depth, cd, OsV2f{0, 0.33333}, OsV2f{0.33333, 0.66667}, win.gph)     //left
		rr.item.DrawUV(InitOsV4(e.X-rad, s.Y+rad, rad, h-2*rad), depth, cd, OsV2f{0.66667, 0.33333}, OsV2f{1, 0.66667}, win.gph) //right

		rr.item.DrawUV(InitOsV4(s.X+rad, s.Y, w-2*rad, rad), depth, cd, OsV2f{0.33333, 0}, OsV2f{0.66667, 0.33333}, win.gph)     //top
		rr.item.DrawUV(InitOsV4(s.X+rad, e.Y-rad, w-2*rad, rad), depth, cd, OsV2f{0.33333, 0.66667}, OsV2f{0.66667, 1}, win.gph) //bottom

		if thick == 0 {
			win.render.DrawRect(s.Add(OsV2{rad, rad}), e.Sub(OsV2{rad, rad}), depth, cd) // mid
		}

	}

}

func (win *Win) DrawShadow(coord OsV4, rad int, spread int, depth int, cd color.RGBA) {
	sh := win.gph.GetShadow(float64(rad), float64(spread))
	if sh != nil {
		coord = coord.Crop(-spread)

		s := coord.Start
		e := coord.End()
		w := coord.Size.X
		h := coord.Size.Y
		c := rad + spread //corner slice

		//corners
		sh.item.DrawUV(InitOsV4(s.X, s.Y, c, c), depth, cd, OsV2f{0, 0}, OsV2f{0.33333, 0.33333}, win.gph)
		sh.item.DrawUV(InitOsV4(e.X-c, s.Y, c, c), depth, cd, OsV2f{0.66667, 0}, OsV2f{1, 0.33333}, win.gph)
		sh.item.DrawUV(InitOsV4(s.X, e.Y-c, c, c), depth, cd, OsV2f{0, 0.66667}, OsV2f{0.33333, 1}, win.gph)
		sh.item.DrawUV(InitOsV4(e.X-c, e.Y-c, c, c), depth, cd, OsV2f{0.66667, 0.66667}, OsV2f{1, 1}, win.gph)

		//edges
		sh.item.DrawUV(InitOsV4(s.X, s.Y+c, c, h-2*c), depth, cd, OsV2f{0, 0.33333}, OsV2f{0.33333, 0.66667}, win.gph)
		sh.item.DrawUV(InitOsV4(e.X-c, s.Y+c, c, h-2*c), depth, cd, OsV2f{0.66667, 0.33333}, OsV2f{1, 0.66667}, win.gph)
		sh.item.DrawUV(InitOsV4(s.X+c, s.Y, w-2*c, c), depth, cd, OsV2f{0.33333, 0}, OsV2f{0.66667, 0.33333}, win.gph)
		sh.item.DrawUV(InitOsV4(s.X+c, e.Y-c, w-2*c, c), depth, cd, OsV2f{0.33333, 0.66667}, OsV2f{0.66667, 1}, win.gph)

		//mid
		win.render.DrawRect(s.Add(OsV2{c, c}), e.Sub(OsV2{c, c}), depth, cd)
	}
}

// single line only!
func (win *Win) DrawText(ln string, prop WinFontProps, frontCd color.RGBA, coord OsV4, depth int, align OsV2) {
	item := win.gph.GetText(prop, ln)
	if item != nil {
		start := win.GetTextStart(ln, prop, coord, align.X, align.Y)

		item.item.DrawCut(OsV4{Start: start, Size: item.size}, depth, frontCd, win.gph)
	}
}

func (win *Win) GetTextSize(ln string, prop WinFontProps) OsV2 {
	return win.gph.GetTextSize(prop, ln)
}

func (win *Win) GetTextStart(ln string, prop WinFontProps, coord OsV4, align_h, align_v int) OsV2 {

	//lineH
	lnSize := win.GetTextSize(ln, prop)
	size := OsV2{lnSize.X, prop.lineH}
	start := coord.Align(size, OsV2{align_h, align_v})

	//letters
	coord.Start = start
	coord.Size.X = size.X
	coord.Size.Y = prop.lineH
	start = coord.Align(lnSize, OsV2{align_h, 1}) //letters must be always in the middle of line

	return start
}
