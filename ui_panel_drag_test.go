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
	"math"
	"testing"
)

func makeDragFixture(n int) (*PanelGrid, *PanelItemStates, []uint64) {
	states := NewPanelItemStates()
	uids := make([]uint64, n)
	for i := range uids {
		uids[i] = uint64(i + 1)
		states.SetOrder(uids[i], i)
	}

	grid := PanelGrid_Resolve(PanelMode_Grid, n, 120, math.Inf(1), 50, 50)
	for _, uid := range uids {
		states.SetDesiredPosition(uid, grid.GridPosition(states.GetOrder(uid)))
	}
	return &grid, states, uids
}

func checkPermutation(t *testing.T, states *PanelItemStates, uids []uint64) {
	t.Helper()

	seen := make(map[int]bool)
	for _, uid := range uids {
		order := states.GetOrder(uid)
		if order < 0 || order >= len(uids) {
			t.Fatalf("order %d out of range for %d items", order, len(uids))
		}
		if seen[order] {
			t.Fatalf("duplicate order %d", order)
		}
		seen[order] = true
	}
}

func TestDragRenumber(t *testing.T) {
	//5 items in a 2x3 grid, drag the one with order 2 onto the cell of order 4
	grid, states, uids := makeDragFixture(5)

	subject := uids[2]
	pos, _ := states.GetPosition(subject)

	var drag PanelDrag
	drag.Start(subject, 2, pos, PanelDragInput{X: pos.X + 5, Y: pos.Y + 5})

	//cell of order 4 = row 2, col 0
	target := grid.GridPosition(4)
	cx, cy := target.Middle()
	drag.Move(PanelDragInput{X: cx, Y: cy, IsActive: true}, grid, states, uids, false)

	if got := states.GetOrder(subject); got != 4 {
		t.Errorf("dragged order: got %d, want 4", got)
	}
	if got := states.GetOrder(uids[0]); got != 0 {
		t.Errorf("first item moved: got %d", got)
	}
	if got := states.GetOrder(uids[1]); got != 1 {
		t.Errorf("second item moved: got %d", got)
	}
	if got := states.GetOrder(uids[3]); got != 2 {
		t.Errorf("item previously at 3: got %d, want 2", got)
	}
	if got := states.GetOrder(uids[4]); got != 3 {
		t.Errorf("item previously at 4: got %d, want 3", got)
	}
	checkPermutation(t, states, uids)
}

func TestDragConservation(t *testing.T) {
	grid, states, uids := makeDragFixture(5)

	subject := uids[1]
	pos, _ := states.GetPosition(subject)

	var drag PanelDrag
	drag.Start(subject, 1, pos, PanelDragInput{X: pos.X, Y: pos.Y})

	//sweep the pointer over the whole grid and beyond
	for y := -30.0; y < 200; y += 17 {
		for x := -30.0; x < 150; x += 13 {
			drag.Move(PanelDragInput{X: x, Y: y, IsActive: true}, grid, states, uids, false)
			checkPermutation(t, states, uids)
		}
	}
}

func TestDragGrabOffsetPreserved(t *testing.T) {
	grid, states, uids := makeDragFixture(5)

	subject := uids[0]
	pos, _ := states.GetPosition(subject)

	var drag PanelDrag
	drag.Start(subject, 0, pos, PanelDragInput{X: pos.X + 12, Y: pos.Y + 7})

	drag.Move(PanelDragInput{X: 80, Y: 90, IsActive: true}, grid, states, uids, false)

	got, _ := states.GetPosition(subject)
	if got.X != 80-12 || got.Y != 90-7 {
		t.Errorf("grab offset lost: got %s", got.Check())
	}
	if got.W != pos.W || got.H != pos.H {
		t.Errorf("size changed: got %s", got.Check())
	}
}

func TestDragClampToBounds(t *testing.T) {
	grid, states, uids := makeDragFixture(5)

	subject := uids[0]
	pos, _ := states.GetPosition(subject)

	var drag PanelDrag
	drag.Start(subject, 0, pos, PanelDragInput{X: pos.X, Y: pos.Y})

	drag.Move(PanelDragInput{X: -500, Y: 5000, IsActive: true}, grid, states, uids, true)

	got, _ := states.GetPosition(subject)
	totW, totH := grid.TotalSize()
	if got.X < 0 || got.Y < 0 || got.X+got.W > totW || got.Y+got.H > totH {
		t.Errorf("rectangle escaped the panel: got %s", got.Check())
	}
	if got.W != pos.W || got.H != pos.H {
		t.Errorf("clamp must translate, not resize: got %s", got.Check())
	}
}

func TestDragStartWhileActiveIsNoop(t *testing.T) {
	_, states, uids := makeDragFixture(3)

	pos0, _ := states.GetPosition(uids[0])

	var drag PanelDrag
	drag.Start(uids[0], 0, pos0, PanelDragInput{X: pos0.X, Y: pos0.Y})

	pos1, _ := states.GetPosition(uids[1])
	drag.Start(uids[1], 1, pos1, PanelDragInput{X: pos1.X, Y: pos1.Y})

	if !drag.IsDraged(uids[0]) {
		t.Errorf("second Start must not replace the active drag")
	}
}

func makePanelFixture(n int) *ItemsPanel {
	pn := NewItemsPanel(PanelMode_Grid)
	for i := 0; i < n; i++ {
		pn.AddItem(string(rune('A'+i)), color.RGBA{100, 100, 100, 255}, 50, 50)
	}
	pn.Relayout(120, math.Inf(1))
	return pn
}

func TestOrderChangedFiring(t *testing.T) {
	availW, availH := 120.0, math.Inf(1)

	dragTo := func(pn *ItemsPanel, fromOrder, toOrder int) {
		src := pn.grid.GridPosition(fromOrder)
		dst := pn.grid.GridPosition(toOrder)
		sx, sy := src.Middle()
		dx, dy := dst.Middle()

		pn.Input(PanelDragInput{X: sx, Y: sy, IsStart: true, IsActive: true, IsInside: true}, availW, availH)
		pn.Input(PanelDragInput{X: dx, Y: dy, IsActive: true, IsInside: true}, availW, availH)
		pn.Input(PanelDragInput{X: dx, Y: dy, IsEnd: true, IsInside: true}, availW, availH)
	}

	t.Run("released at original cell fires nothing", func(t *testing.T) {
		pn := makePanelFixture(5)
		fired := 0
		pn.SetOrderChanged(func() { fired++ })

		dragTo(pn, 2, 2)
		if fired != 0 {
			t.Errorf("fired %d times, want 0", fired)
		}
	})

	t.Run("released at another cell fires once", func(t *testing.T) {
		pn := makePanelFixture(5)
		fired := 0
		pn.SetOrderChanged(func() { fired++ })

		dragTo(pn, 2, 4)
		if fired != 1 {
			t.Errorf("fired %d times, want 1", fired)
		}
	})
}

func TestReleaseSnapsToDesiredSlot(t *testing.T) {
	availW, availH := 120.0, math.Inf(1)
	pn := makePanelFixture(5)

	subject := pn.ItemsInOrder()[2]
	src := pn.grid.GridPosition(2)
	dst := pn.grid.GridPosition(4)
	sx, sy := src.Middle()
	dx, dy := dst.Middle()

	pn.Input(PanelDragInput{X: sx, Y: sy, IsStart: true, IsActive: true, IsInside: true}, availW, availH)
	pn.Input(PanelDragInput{X: dx, Y: dy, IsActive: true, IsInside: true}, availW, availH)
	pn.Input(PanelDragInput{X: dx, Y: dy, IsEnd: true, IsInside: true}, availW, availH)

	if pn.IsDragging() {
		t.Fatalf("drag still active after release")
	}

	pos, has := pn.states.GetPosition(subject.UID)
	if !has || !pos.Cmp(dst) {
		t.Errorf("released item at %s, want %s", pos.Check(), dst.Check())
	}
}

func TestDragMidFlightOrdersStayContiguous(t *testing.T) {
	availW, availH := 120.0, math.Inf(1)
	pn := makePanelFixture(5)

	src := pn.grid.GridPosition(0)
	sx, sy := src.Middle()
	pn.Input(PanelDragInput{X: sx, Y: sy, IsStart: true, IsActive: true, IsInside: true}, availW, availH)

	for i := 1; i < 5; i++ {
		dst := pn.grid.GridPosition(i)
		dx, dy := dst.Middle()
		pn.Input(PanelDragInput{X: dx, Y: dy, IsActive: true, IsInside: true}, availW, availH)

		checkPermutation(t, pn.states, pn.uids())
	}
}
