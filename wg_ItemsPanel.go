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
	"sort"
)

// ItemsPanel arranges its items into a grid, row or column and lets the
// user reorder them by dragging one over the others.
type ItemsPanel struct {
	Mode      PanelMode
	ClampDrag bool //keep the dragged rectangle inside the panel

	ShadowCd color.RGBA

	items  []*PanelItem
	states *PanelItemStates

	grid PanelGrid

	itemW, itemH float64 //uniform cell, max intrinsic size
	lastCount    int

	drag PanelDrag

	fnOrderChanged func()

	nextUID uint64
}

func NewItemsPanel(mode PanelMode) *ItemsPanel {
	pn := &ItemsPanel{Mode: mode}
	pn.states = NewPanelItemStates()
	pn.lastCount = -1
	pn.nextUID = 1
	return pn
}

func (pn *ItemsPanel) SetOrderChanged(fn func()) {
	pn.fnOrderChanged = fn
}

func (pn *ItemsPanel) NumItems() int {
	return len(pn.items)
}

func (pn *ItemsPanel) AddItem(label string, cd color.RGBA, w, h float64) *PanelItem {
	it := &PanelItem{UID: pn.nextUID, Label: label, Cd: cd, W: w, H: h}
	pn.nextUID++

	pn.items = append(pn.items, it)
	pn.states.Get(it.UID) //order = -1, assigned on the next pass
	return it
}

func (pn *ItemsPanel) FindItem(uid uint64) *PanelItem {
	for _, it := range pn.items {
		if it.UID == uid {
			return it
		}
	}
	return nil
}

func (pn *ItemsPanel) RemoveItem(uid uint64) bool {
	if pn.drag.IsDraged(uid) {
		return false //not while it is the drag subject
	}

	for i, it := range pn.items {
		if it.UID == uid {
			pn.items = append(pn.items[:i], pn.items[i+1:]...)
			pn.states.Remove(uid)
			return true
		}
	}
	return false
}

// ItemsInOrder returns the items sorted by their order value.
func (pn *ItemsPanel) ItemsInOrder() []*PanelItem {
	ret := make([]*PanelItem, len(pn.items))
	copy(ret, pn.items)
	sort.SliceStable(ret, func(i, j int) bool {
		return pn.states.GetOrder(ret[i].UID) < pn.states.GetOrder(ret[j].UID)
	})
	return ret
}

func (pn *ItemsPanel) uids() []uint64 {
	ret := make([]uint64, len(pn.items))
	for i, it := range pn.items {
		ret[i] = it.UID
	}
	return ret
}

// cell size is stable under move-only changes, recomputed on count change
func (pn *ItemsPanel) updateCellSize() {
	if pn.lastCount == len(pn.items) {
		return
	}
	pn.lastCount = len(pn.items)

	pn.itemW = 0
	pn.itemH = 0
	for _, it := range pn.items {
		pn.itemW = OsMaxFloat(pn.itemW, it.W)
		pn.itemH = OsMaxFloat(pn.itemH, it.H)
	}
}

// Relayout runs one full layout pass: order normalization, grid resolve,
// placement. The drag subject keeps its pointer-driven rectangle.
func (pn *ItemsPanel) Relayout(availW, availH float64) {

	pn.updateCellSize()

	uids := pn.uids()
	pn.states.NormalizeOrders(uids)

	pn.grid = PanelGrid_Resolve(pn.Mode, len(pn.items), availW, availH, pn.itemW, pn.itemH)

	for _, uid := range uids {
		if pn.drag.IsDraged(uid) {
			continue
		}
		pn.states.SetDesiredPosition(uid, pn.grid.GridPosition(pn.states.GetOrder(uid)))
	}
}

// ComputeSize is the overall panel size for the host's sizing pass.
func (pn *ItemsPanel) ComputeSize() (float64, float64) {
	return pn.grid.TotalSize()
}

func (pn *ItemsPanel) IsDragging() bool {
	return pn.drag.IsActive()
}

func (pn *ItemsPanel) findItemAt(x, y float64) *PanelItem {
	//later items stack on top
	for i := len(pn.items) - 1; i >= 0; i-- {
		pos, has := pn.states.GetPosition(pn.items[i].UID)
		if has && pos.Inside(x, y) {
			return pn.items[i]
		}
	}
	return nil
}

// Input drives the drag state machine with one pointer event.
func (pn *ItemsPanel) Input(in PanelDragInput, availW, availH float64) {

	if !pn.drag.IsActive() {
		if in.IsStart && in.IsInside {
			it := pn.findItemAt(in.X, in.Y)
			if it != nil {
				pos, _ := pn.states.GetPosition(it.UID)
				pn.drag.Start(it.UID, pn.states.GetOrder(it.UID), pos, in)
			}
		}
		return
	}

	if in.IsEnd || !in.IsActive {
		uid, changed := pn.drag.End(pn.states)

		//fresh pass snaps the released item to its desired slot
		pn.Relayout(availW, availH)

		if changed && uid > 0 && pn.fnOrderChanged != nil {
			pn.fnOrderChanged()
		}
		return
	}

	pn.drag.Move(in, &pn.grid, pn.states, pn.uids(), pn.ClampDrag)
	pn.Relayout(availW, availH)
}

// Draw paints the items at their current rectangles. The drag subject is
// painted last with a drop-shadow so it stacks in front.
func (pn *ItemsPanel) Draw(buff *WinPaintBuff, origin OsV2, cell int) {

	rad := cell / 5
	prop := InitWinFontPropsDef(cell)

	var subject *PanelItem
	for _, it := range pn.items {
		if pn.drag.IsDraged(it.UID) {
			subject = it
			continue
		}
		pn.drawItem(buff, it, origin, rad, prop, false)
	}

	if subject != nil {
		buff.depth++ //in front of the settled items
		pn.drawItem(buff, subject, origin, rad, prop, true)
	}
}

func (pn *ItemsPanel) drawItem(buff *WinPaintBuff, it *PanelItem, origin OsV2, rad int, prop WinFontProps, lifted bool) {
	pos, has := pn.states.GetPosition(it.UID)
	if !has {
		return
	}

	coord := pos.ToPix()
	coord.Start = coord.Start.Add(origin)
	coord = coord.Crop(2)

	if lifted {
		buff.AddShadow(coord, rad, rad, pn.ShadowCd)
	}

	buff.AddRectRound(coord, rad, it.Cd, 0)

	textCd := Color_Aprox(it.Cd, color.RGBA{0, 0, 0, 255}, 0.7)
	buff.AddText(it.Label, prop, textCd, coord, OsV2{1, 1})
}
