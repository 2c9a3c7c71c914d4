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
	"sort"
)

// PanelDragInput is one pointer event in panel-local coordinates.
type PanelDragInput struct {
	X, Y float64

	IsStart  bool
	IsActive bool //button held
	IsEnd    bool
	IsInside bool
}

// PanelDrag drives the reorder. Idle when uid == 0.
type PanelDrag struct {
	uid        uint64
	active     bool
	deltaX     float64
	deltaY     float64
	startOrder int
}

func (drag *PanelDrag) IsActive() bool {
	return drag.active
}

func (drag *PanelDrag) IsDraged(uid uint64) bool {
	return drag.active && drag.uid == uid
}

func (drag *PanelDrag) Reset() {
	*drag = PanelDrag{}
}

// Start picks up the item under the pointer. No-op while another drag runs.
func (drag *PanelDrag) Start(uid uint64, order int, pos Rect, in PanelDragInput) {
	if drag.active {
		return //existing drag must end first
	}

	drag.uid = uid
	drag.active = true
	drag.startOrder = order
	drag.deltaX = pos.X - in.X
	drag.deltaY = pos.Y - in.Y
}

// Move recomputes the cell under the pointer, reassigns the dragged item's
// order, renumbers everyone else around the reserved slot and places the
// dragged rectangle under the pointer.
func (drag *PanelDrag) Move(in PanelDragInput, grid *PanelGrid, states *PanelItemStates, uids []uint64, clamp bool) {
	if !drag.active {
		return
	}

	n := len(uids)
	if n == 0 {
		return
	}

	//cell under the pointer
	dstOrder := grid.GridIndex(in.X, in.Y, n)
	states.SetOrder(drag.uid, dstOrder)

	//renumber the others, skipping the reserved slot
	others := make([]uint64, 0, n)
	for _, uid := range uids {
		if uid != drag.uid {
			others = append(others, uid)
		}
	}
	sort.SliceStable(others, func(i, j int) bool {
		return states.GetOrder(others[i]) < states.GetOrder(others[j])
	})
	slot := 0
	for _, uid := range others {
		if slot == dstOrder {
			slot++ //reserved for the dragged item
		}
		states.SetOrder(uid, slot)
		slot++
	}

	//dragged rectangle follows the pointer, size preserved
	pos, has := states.GetPosition(drag.uid)
	if !has {
		pos = grid.GridPosition(dstOrder)
	}
	pos.X = in.X + drag.deltaX
	pos.Y = in.Y + drag.deltaY

	if clamp {
		totW, totH := grid.TotalSize()
		pos.X = OsClampFloat(pos.X, 0, OsMaxFloat(0, totW-pos.W))
		pos.Y = OsClampFloat(pos.Y, 0, OsMaxFloat(0, totH-pos.H))
	}

	states.SetPosition(drag.uid, pos)
}

// End releases the drag and reports whether the order changed since pickup.
func (drag *PanelDrag) End(states *PanelItemStates) (uint64, bool) {
	if !drag.active {
		return 0, false
	}

	uid := drag.uid
	changed := states.GetOrder(uid) != drag.startOrder

	drag.Reset()
	return uid, changed
}
