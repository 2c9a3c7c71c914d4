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

// PanelItem is one visual element of the host collection.
// The panel does not own items, it only attaches state to them by UID.
type PanelItem struct {
	UID   uint64
	Label string
	Cd    color.RGBA

	W, H float64 //intrinsic size
}

// PanelItemState is the per-item attached state. Lifetime = item's
// membership in the panel.
type PanelItemState struct {
	Order int //-1 = unassigned

	Position    Rect
	HasPosition bool

	Desired    Rect
	HasDesired bool
}

// PanelItemStates is a side table keyed by item identity.
type PanelItemStates struct {
	states map[uint64]*PanelItemState
}

func NewPanelItemStates() *PanelItemStates {
	return &PanelItemStates{states: make(map[uint64]*PanelItemState)}
}

func (sts *PanelItemStates) Find(uid uint64) *PanelItemState {
	return sts.states[uid]
}

// Get returns the state for the item, creating it with an unassigned order.
func (sts *PanelItemStates) Get(uid uint64) *PanelItemState {
	st := sts.states[uid]
	if st == nil {
		st = &PanelItemState{Order: -1}
		sts.states[uid] = st
	}
	return st
}

func (sts *PanelItemStates) GetOrder(uid uint64) int {
	return sts.Get(uid).Order
}

func (sts *PanelItemStates) SetOrder(uid uint64, order int) {
	sts.Get(uid).Order = order
}

func (sts *PanelItemStates) GetPosition(uid uint64) (Rect, bool) {
	st := sts.Get(uid)
	return st.Position, st.HasPosition
}

func (sts *PanelItemStates) SetPosition(uid uint64, pos Rect) {
	st := sts.Get(uid)
	st.Position = pos
	st.HasPosition = true
}

// SetDesiredPosition also updates Position. The placement pass never calls
// this for the drag subject, so the dragged rectangle stays under the pointer.
func (sts *PanelItemStates) SetDesiredPosition(uid uint64, pos Rect) {
	st := sts.Get(uid)
	st.Desired = pos
	st.HasDesired = true
	st.Position = pos
	st.HasPosition = true
}

func (sts *PanelItemStates) GetDesiredPosition(uid uint64) (Rect, bool) {
	st := sts.Get(uid)
	return st.Desired, st.HasDesired
}

// Forget resets the order so the next pass reassigns it.
func (sts *PanelItemStates) Forget(uid uint64) {
	st := sts.Find(uid)
	if st != nil {
		st.Order = -1
	}
}

func (sts *PanelItemStates) Remove(uid uint64) {
	delete(sts.states, uid)
}

// NormalizeOrders makes order values a contiguous permutation of 0..n-1.
// Unassigned items get the next value after the current maximum, in
// enumeration order, then all values are compacted preserving relative order.
func (sts *PanelItemStates) NormalizeOrders(uids []uint64) {

	//assign the unassigned after the current maximum
	maxOrder := -1
	for _, uid := range uids {
		order := sts.GetOrder(uid)
		if order > maxOrder {
			maxOrder = order
		}
	}
	for _, uid := range uids {
		if sts.GetOrder(uid) < 0 {
			maxOrder++
			sts.SetOrder(uid, maxOrder)
		}
	}

	//compact, keep relative order
	sorted := make([]uint64, len(uids))
	copy(sorted, uids)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sts.GetOrder(sorted[i]) < sts.GetOrder(sorted[j])
	})
	for i, uid := range sorted {
		sts.SetOrder(uid, i)
	}
}
