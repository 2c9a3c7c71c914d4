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
	"image"
	"image/color"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/veandco/go-sdl2/sdl"
)

type WinRender struct {
	render sdl.GLContext
}

func NewWinRender(window *sdl.Window) (*WinRender, error) {
	ren := &WinRender{}

	var err error
	ren.render, err = window.GLCreateContext()
	if LogsError(err) != nil {
		return nil, err
	}

	err = gl.Init()
	if LogsError(err) != nil {
		return nil, err
	}
	return ren, nil
}

func (ren *WinRender) Destroy() error {

	sdl.GLDeleteContext(ren.render)

	return nil
}

func (ren *WinRender) StartRender(screen OsV4, clearCd color.RGBA) error {

	gl.Enable(gl.SCISSOR_TEST)

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(float32(clearCd.R)/255, float32(clearCd.G)/255, float32(clearCd.B)/255, float32(clearCd.A)/255)
	gl.ClearDepth(1)
	gl.DepthFunc(gl.LEQUAL)
	gl.Viewport(0, 0, int32(screen.Size.X), int32(screen.Size.Y))

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, float64(screen.Size.X), float64(screen.Size.Y), 0, -1000, 1000)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	gl.Enable(gl.LINE_SMOOTH)
	gl.Hint(gl.LINE_SMOOTH_HINT, gl.NICEST)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.ALPHA_TEST)
	gl.ShadeModel(gl.SMOOTH)

	gl.Enable(gl.TEXTURE_2D)

	gl.Scissor(0, 0, int32(screen.Size.X), int32(screen.Size.Y))

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	return nil
}

func (ren *WinRender) SetClipRect(screen OsV4, coord OsV4) {
	winH := screen.Size.Y
	gl.Scissor(int32(coord.Start.X), int32(winH-(coord.Start.Y+coord.Size.Y)), int32(coord.Size.X), int32(coord.Size.Y))
}

func (ren *WinRender) DrawRect(start OsV2, end OsV2, depth int, cd color.RGBA) {
	if start.X != end.X && start.Y != end.Y {
		gl.Color4ub(cd.R, cd.G, cd.B, cd.A)

		gl.Begin(gl.QUADS)
		{
			gl.Vertex3f(float32(start.X), float32(start.Y), float32(depth))
			gl.Vertex3f(float32(end.X), float32(start.Y), float32(depth))
			gl.Vertex3f(float32(end.X), float32(end.Y), float32(depth))
			gl.Vertex3f(float32(start.X), float32(end.Y), float32(depth))
		}
		gl.End()
	}
}

func (ren *WinRender) DrawLine(start OsV2, end OsV2, depth int, thick int, cd color.RGBA) {

	gl.Color4ub(cd.R, cd.G, cd.B, cd.A)

	v := end.Sub(start)
	if !v.IsZero() {

		if start.Y == end.Y {
			ren.DrawRect(start, OsV2{end.X, start.Y + thick}, depth, cd) // horizontal
		} else if start.X == end.X {
			ren.DrawRect(start, OsV2{start.X + thick, end.Y}, depth, cd) // vertical
		} else {
			gl.LineWidth(float32(thick))
			gl.Begin(gl.LINES)
			gl.Vertex3f(float32(start.X), float32(start.Y), float32(depth))
			gl.Vertex3f(float32(end.X), float32(end.Y), float32(depth))
			gl.End()
		}
	}
}

type WinTexture struct {
	id   uint32
	size OsV2
}

func InitWinTextureFromImageAlphaPix(alpha []byte, size OsV2) (*WinTexture, error) {
	var tex WinTexture

	gl.GenTextures(1, &tex.id)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	tex.size = size
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.ALPHA, int32(tex.size.X), int32(tex.size.Y), 0, gl.ALPHA, gl.UNSIGNED_BYTE, gl.Ptr(alpha))

	gl.BindTexture(gl.TEXTURE_2D, 0) //unbind

	return &tex, nil
}

func InitWinTextureFromImageAlpha(alpha *image.Alpha) (*WinTexture, error) {
	return InitWinTextureFromImageAlphaPix(alpha.Pix, OsV2{alpha.Rect.Size().X, alpha.Rect.Size().Y})
}

func (tex *WinTexture) Destroy() {
	if tex.id > 0 {
		gl.DeleteTextures(1, &tex.id)
		tex.id = 0
	}
}

func (tex *WinTexture) DrawQuadUV(coord OsV4, depth int, cd color.RGBA, sUV, eUV OsV2f) {
	gl.Color4ub(cd.R, cd.G, cd.B, cd.A)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)

	gl.Begin(gl.QUADS)
	{
		s := coord.Start
		e := coord.End()

		gl.TexCoord2f(sUV.X, sUV.Y)
		gl.Vertex3f(float32(s.X), float32(s.Y), float32(depth))

		gl.TexCoord2f(eUV.X, sUV.Y)
		gl.Vertex3f(float32(e.X), float32(s.Y), float32(depth))

		gl.TexCoord2f(eUV.X, eUV.Y)
		gl.Vertex3f(float32(e.X), float32(e.Y), float32(depth))

		gl.TexCoord2f(sUV.X, eUV.Y)
		gl.Vertex3f(float32(s.X), float32(e.Y), float32(depth))
	}
	gl.End()

	gl.BindTexture(gl.TEXTURE_2D, 0) //unbind
}

func (tex *WinTexture) DrawQuad(coord OsV4, depth int, cd color.RGBA) {
	tex.DrawQuadUV(coord, depth, cd, OsV2f{}, OsV2f{1, 1})
}
