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

func TestNewStateIsUnassigned(t *testing.T) {
	states := NewPanelItemStates()

	if states.GetOrder(7) != -1 {
		t.Errorf("fresh state must have order -1")
	}
	if _, has := states.GetPosition(7); has {
		t.Errorf("fresh state must have no position")
	}
	if _, has := states.GetDesiredPosition(7); has {
		t.Errorf("fresh state must have no desired position")
	}
}

func TestNormalizeOrders(t *testing.T) {
	tests := []struct {
		name   string
		orders []int //input per uid, -1 = unassigned
		want   []int
	}{
		{"already contiguous", []int{0, 1, 2}, []int{0, 1, 2}},
		{"all unassigned keeps enumeration order", []int{-1, -1, -1}, []int{0, 1, 2}},
		{"unassigned appended after maximum", []int{1, -1, 0}, []int{1, 2, 0}},
		{"gaps compacted, relative order kept", []int{8, 2, 5}, []int{2, 0, 1}},
		{"mix of gaps and unassigned", []int{4, -1, 0, -1}, []int{1, 2, 0, 3}},
		{"empty", []int{}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			states := NewPanelItemStates()
			uids := make([]uint64, len(tt.orders))
			for i, order := range tt.orders {
				uids[i] = uint64(i + 1)
				states.SetOrder(uids[i], order)
			}

			states.NormalizeOrders(uids)

			for i, uid := range uids {
				if got := states.GetOrder(uid); got != tt.want[i] {
					t.Errorf("uid %d: got %d, want %d", uid, got, tt.want[i])
				}
			}
		})
	}
}

func TestForgetReassignsAtEnd(t *testing.T) {
	states := NewPanelItemStates()
	uids := []uint64{1, 2, 3}
	for i, uid := range uids {
		states.SetOrder(uid, i)
	}

	states.Forget(1)
	states.NormalizeOrders(uids)

	if got := states.GetOrder(1); got != 2 {
		t.Errorf("forgotten item must go to the end: got %d, want 2", got)
	}
	if states.GetOrder(2) != 0 || states.GetOrder(3) != 1 {
		t.Errorf("remaining items must close the gap: got %d, %d", states.GetOrder(2), states.GetOrder(3))
	}
}

func TestSetDesiredUpdatesPosition(t *testing.T) {
	states := NewPanelItemStates()

	r := Rect{X: 10, Y: 20, W: 50, H: 50}
	states.SetDesiredPosition(1, r)

	pos, has := states.GetPosition(1)
	if !has || !pos.Cmp(r) {
		t.Errorf("desired must flow into position: got %s", pos.Check())
	}
	des, has := states.GetDesiredPosition(1)
	if !has || !des.Cmp(r) {
		t.Errorf("desired not written: got %s", des.Check())
	}
}

func TestPanelContiguityAfterMembershipChanges(t *testing.T) {
	pn := NewItemsPanel(PanelMode_Grid)

	for i := 0; i < 6; i++ {
		pn.AddItem(string(rune('A'+i)), color.RGBA{90, 90, 90, 255}, 50, 50)
	}
	pn.Relayout(160, math.Inf(1))
	checkPermutation(t, pn.states, pn.uids())

	//removal closes the gap on the next pass
	mid := pn.ItemsInOrder()[3]
	if !pn.RemoveItem(mid.UID) {
		t.Fatalf("RemoveItem failed")
	}
	pn.Relayout(160, math.Inf(1))
	checkPermutation(t, pn.states, pn.uids())

	//new items get appended at the end
	added := pn.AddItem("Z", color.RGBA{90, 90, 90, 255}, 50, 50)
	pn.Relayout(160, math.Inf(1))
	checkPermutation(t, pn.states, pn.uids())
	if got := pn.states.GetOrder(added.UID); got != pn.NumItems()-1 {
		t.Errorf("new item: got order %d, want %d", got, pn.NumItems()-1)
	}
}

func TestCellSizeStableUnderMoveOnlyChanges(t *testing.T) {
	pn := NewItemsPanel(PanelMode_Grid)
	pn.AddItem("A", color.RGBA{}, 50, 50)
	pn.AddItem("B", color.RGBA{}, 70, 40)
	pn.Relayout(500, math.Inf(1))

	if pn.itemW != 70 || pn.itemH != 50 {
		t.Fatalf("cell must be the max intrinsic size, got %.0fx%.0f", pn.itemW, pn.itemH)
	}

	//swap orders, cell size must not be recomputed
	a := pn.items[0]
	pn.items[0].W = 10 //would shrink the cell if recomputed
	pn.states.SetOrder(a.UID, 1)
	pn.states.SetOrder(pn.items[1].UID, 0)
	pn.Relayout(500, math.Inf(1))

	if pn.itemW != 70 || pn.itemH != 50 {
		t.Errorf("cell size changed on a move-only pass: got %.0fx%.0f", pn.itemW, pn.itemH)
	}
}

func TestComputeSize(t *testing.T) {
	pn := NewItemsPanel(PanelMode_Grid)
	for i := 0; i < 5; i++ {
		pn.AddItem(string(rune('A'+i)), color.RGBA{}, 50, 50)
	}
	pn.Relayout(120, math.Inf(1))

	w, h := pn.ComputeSize()
	if w != 100 || h != 150 {
		t.Errorf("got %.0fx%.0f, want 100x150", w, h)
	}
}
