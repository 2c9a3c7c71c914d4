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
	"image/draw"

	"slices"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type WinGphItem struct {
	realSize     OsV2
	lastDrawTick int64

	alpha   *image.Alpha
	texture *WinTexture
}

func NewWinGphItemAlpha(alpha *image.Alpha, realSize OsV2) *WinGphItem {
	it := &WinGphItem{realSize: realSize}
	it.alpha = alpha
	return it
}

func (it *WinGphItem) getTexture() *WinTexture {
	if it.texture == nil {
		it.texture, _ = InitWinTextureFromImageAlpha(it.alpha)
		it.alpha = nil //not needed anymore
	}
	return it.texture
}

func (it *WinGphItem) Destroy() {
	if it.texture != nil {
		it.texture.Destroy()
	}
}

func (it *WinGphItem) IsUsed(gph *WinGph) bool {
	return gph.tick_now < (it.lastDrawTick + 30000) //30 sec
}
func (it *WinGphItem) UpdateTick(gph *WinGph) {
	it.lastDrawTick = gph.tick_now
}

func (it *WinGphItem) DrawCut(coord OsV4, depth int, cd color.RGBA, gph *WinGph) error {
	texture := it.getTexture()
	if texture != nil {
		uv := OsV2f{
			float32(coord.Size.X) / float32(texture.size.X),
			float32(coord.Size.Y) / float32(texture.size.Y)}
		texture.DrawQuadUV(coord, depth, cd, OsV2f{}, uv)
	}

	it.UpdateTick(gph)
	return nil
}

func (it *WinGphItem) DrawUV(coord OsV4, depth int, cd color.RGBA, sUV, eUV OsV2f, gph *WinGph) error {

	texture := it.getTexture()
	if texture != nil {
		norm := OsV2f{float32(it.realSize.X) / float32(texture.size.X), float32(it.realSize.Y) / float32(texture.size.Y)}
		sUV = sUV.Mul(norm)
		eUV = eUV.Mul(norm)
		texture.DrawQuadUV(coord, depth, cd, sUV, eUV)
	}

	it.UpdateTick(gph)
	return nil
}

type WinGphItemText struct {
	item *WinGphItem
	size OsV2
	prop WinFontProps
	text string
}

type WinGphItemRoundedRectangle struct {
	item  *WinGphItem
	size  OsV2
	width float64
	rad   float64
}

type WinGphItemShadow struct {
	item   *WinGphItem
	size   OsV2
	rad    float64
	spread float64
}

type WinGph struct {
	fonts []*WinFont //array index = textH

	texts             map[string][]*WinGphItemText
	roundedRectangles []*WinGphItemRoundedRectangle
	shadows           []*WinGphItemShadow

	texts_num_created int
	texts_num_remove  int

	tick_now int64
}

func NewWinGph() *WinGph {
	gph := &WinGph{}
	gph.texts = make(map[string][]*WinGphItemText)
	return gph
}
func (gph *WinGph) Destroy() {

	for _, it := range gph.fonts {
		it.Destroy()
	}

	for _, itArr := range gph.texts {
		for _, it := range itArr {
			it.item.Destroy()
		}
	}
	for _, it := range gph.roundedRectangles {
		it.item.Destroy()
	}
	for _, it := range gph.shadows {
		it.item.Destroy()
	}
}

func (gph *WinGph) Maintenance() {

	gph.tick_now = OsTicks()

	for i := len(gph.fonts) - 1; i >= 0; i-- {
		gph.fonts[i].Maintenance()
	}

	for textId, itArr := range gph.texts {
		for i := len(itArr) - 1; i >= 0; i-- {
			if !itArr[i].item.IsUsed(gph) {
				itArr[i].item.Destroy()
				itArr = slices.Delete(itArr, i, i+1)
				gph.texts[textId] = itArr

				gph.texts_num_remove++
			}
		}
	}
}

func (gph *WinGph) GetFont(prop *WinFontProps) *WinFont {

	for i := len(gph.fonts); i < prop.textH+1; i++ {
		gph.fonts = append(gph.fonts, &WinFont{})
	}

	return gph.fonts[prop.textH]
}

func (gph *WinGph) GetTextSize(prop WinFontProps, text string) OsV2 {
	it := gph.GetText(prop, text)
	if it != nil {
		return it.size
	}
	return OsV2{}
}

func (gph *WinGph) GetText(prop WinFontProps, text string) *WinGphItemText {
	if text == "" {
		return nil
	}

	//find
	for _, it := range gph.texts[text] {
		if it.prop.Cmp(&prop) {
			return it
		}
	}

	//create
	it := gph.drawString(prop, text)
	if it != nil {
		gph.texts[text] = append(gph.texts[text], it)
		gph.texts_num_created++
	}
	return it
}

func (gph *WinGph) GetRoundedRectangle(width float64, rad float64) *WinGphItemRoundedRectangle {

	size := OsV2{3 * int(rad), 3 * int(rad)}

	//find
	for _, it := range gph.roundedRectangles {
		if it.size.Cmp(size) && it.width == width && it.rad == rad {
			return it
		}
	}

	//create
	w := OsNextPowOf2(size.X)
	h := OsNextPowOf2(size.Y)

	dc := gg.NewContext(w, h)
	dc.SetRGBA255(255, 255, 255, 255)

	dc.DrawRoundedRectangle(width/2, width/2, (3*rad)-width, (3*rad)-width, rad)

	if width > 0 {
		dc.SetLineWidth(width)
		dc.Stroke()
	} else {
		dc.Fill()
	}

	rect := image.Rect(0, 0, w, h)
	dst := image.NewAlpha(rect)
	draw.Draw(dst, rect, dc.Image(), rect.Min, draw.Src)

	//add
	var roundedRect *WinGphItemRoundedRectangle
	it := NewWinGphItemAlpha(dst, size)
	if it != nil {
		roundedRect = &WinGphItemRoundedRectangle{item: it, size: size, width: width, rad: rad}
		gph.roundedRectangles = append(gph.roundedRectangles, roundedRect)
	}
	return roundedRect
}

func (gph *WinGph) GetShadow(rad float64, spread float64) *WinGphItemShadow {

	size := OsV2{int(3*rad + 2*spread), int(3*rad + 2*spread)}

	//find
	for _, it := range gph.shadows {
		if it.size.Cmp(size) && it.rad == rad && it.spread == spread {
			return it
		}
	}

	//create
	w := OsNextPowOf2(size.X)
	h := OsNextPowOf2(size.Y)

	dc := gg.NewContext(w, h)

	//concentric rings, alpha falls off with distance
	n := int(spread)
	if n < 1 {
		n = 1
	}
	for i := n; i >= 1; i-- {
		t := float64(i) / float64(n)
		off := spread * (1 - t)
		dc.SetRGBA255(255, 255, 255, int(120*(1-t)/float64(n)*3+1))
		dc.DrawRoundedRectangle(off, off, float64(size.X)-2*off, float64(size.Y)-2*off, rad+spread*t)
		dc.Fill()
	}

	rect := image.Rect(0, 0, w, h)
	dst := image.NewAlpha(rect)
	draw.Draw(dst, rect, dc.Image(), rect.Min, draw.Src)

	//add
	var shadow *WinGphItemShadow
	it := NewWinGphItemAlpha(dst, size)
	if it != nil {
		shadow = &WinGphItemShadow{item: it, size: size, rad: rad, spread: spread}
		gph.shadows = append(gph.shadows, shadow)
	}
	return shadow
}

func (gph *WinGph) GetStringSize(prop WinFontProps, str string) (OsV2, fixed.Int26_6) {

	var w fixed.Int26_6 //round to int after!
	prevCh := rune(-1)

	var maxH int
	var maxAscent fixed.Int26_6
	for _, ch := range str {

		fc := gph.GetFont(&prop).GetFace(&prop)
		if fc == nil {
			return OsV2{}, 0
		}
		face := fc.face

		if prevCh >= 0 {
			w += face.Kern(prevCh, ch)
		}
		advance, _ := face.GlyphAdvance(ch)

		w += advance
		prevCh = ch

		m := face.Metrics()
		maxH = OsMax(maxH, int(m.Ascent+m.Descent)>>6)
		if m.Ascent > maxAscent {
			maxAscent = m.Ascent
		}
	}

	return OsV2{int(w >> 6), maxH + 2}, maxAscent
}

func (gph *WinGph) drawString(prop WinFontProps, str string) *WinGphItemText {

	size, maxAscent := gph.GetStringSize(prop, str)
	if !size.Is() {
		return nil
	}

	w := OsNextPowOf2(size.X)
	h := OsNextPowOf2(size.Y)

	a := image.NewAlpha(image.Rect(0, 0, w, h)) //[alpha]

	d := &font.Drawer{
		Dst: a,                                                 //[alpha]
		Src: image.NewUniform(color.NRGBA{255, 255, 255, 255}), //[alpha]
		Dot: fixed.Point26_6{X: fixed.Int26_6(0), Y: fixed.Int26_6(maxAscent)},
	}

	prevCh := rune(-1)
	for _, ch := range str {
		fc := gph.GetFont(&prop).GetFace(&prop)
		if fc == nil {
			return nil
		}
		d.Face = fc.face

		if prevCh >= 0 {
			d.Dot.X += d.Face.Kern(prevCh, ch)
		}

		dr, mask, maskp, advance, _ := d.Face.Glyph(d.Dot, ch)
		if !dr.Empty() {
			draw.DrawMask(d.Dst, dr, d.Src, image.Point{}, mask, maskp, draw.Over)
		}
		d.Dot.X += advance
		prevCh = ch
	}

	it := NewWinGphItemAlpha(a, size)
	if it == nil {
		return nil
	}

	return &WinGphItemText{item: it, size: size, prop: prop, text: str}
}
