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
	"math"
)

type PanelMode int

const (
	PanelMode_Grid PanelMode = iota
	PanelMode_SingleRow
	PanelMode_SingleColumn
	PanelMode_RowMajor
	PanelMode_ColumnMajor
)

func (mode PanelMode) String() string {
	switch mode {
	case PanelMode_Grid:
		return "Grid"
	case PanelMode_SingleRow:
		return "SingleRow"
	case PanelMode_SingleColumn:
		return "SingleColumn"
	case PanelMode_RowMajor:
		return "RowMajor"
	case PanelMode_ColumnMajor:
		return "ColumnMajor"
	}
	return "Unknown"
}

// PanelGrid is the resolved geometry of one layout pass.
// ColW/RowH can be larger than the intrinsic cell when the panel stretches.
type PanelGrid struct {
	Mode PanelMode

	Cols int
	Rows int

	ColW float64
	RowH float64
}

func PanelGrid_IsInfinite(v float64) bool {
	return math.IsInf(v, 1)
}

// availW/availH use +Inf for an unconstrained axis.
func PanelGrid_Resolve(mode PanelMode, n int, availW, availH float64, cellW, cellH float64) PanelGrid {
	grid := PanelGrid{Mode: mode}

	if n <= 0 {
		return grid //zero size
	}

	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}

	switch mode {
	case PanelMode_Grid:
		if PanelGrid_IsInfinite(availW) || availW >= float64(n)*cellW {
			//everything fits on one line
			grid.Cols = n
			grid.Rows = 1
			grid.ColW = cellW
			grid.RowH = cellH
			if !PanelGrid_IsInfinite(availW) {
				grid.ColW = availW / float64(n) //leftover width
			}
		} else {
			//wrap, cells keep their natural size
			grid.Cols = OsMax(1, int(availW/cellW))
			grid.Rows = (n + grid.Cols - 1) / grid.Cols
			grid.ColW = cellW
			grid.RowH = cellH
		}

	case PanelMode_SingleRow:
		grid.Cols = n
		grid.Rows = 1
		grid.ColW = cellW
		grid.RowH = cellH
		if !PanelGrid_IsInfinite(availW) && availW > float64(n)*cellW {
			grid.ColW = availW / float64(n)
		}
		if !PanelGrid_IsInfinite(availH) && availH > cellH {
			grid.RowH = availH
		}

	case PanelMode_SingleColumn:
		grid.Cols = 1
		grid.Rows = n
		grid.ColW = cellW
		grid.RowH = cellH
		if !PanelGrid_IsInfinite(availH) && availH > float64(n)*cellH {
			grid.RowH = availH / float64(n)
		}
		if !PanelGrid_IsInfinite(availW) && availW > cellW {
			grid.ColW = availW
		}

	case PanelMode_RowMajor:
		if PanelGrid_IsInfinite(availW) {
			grid.Cols = n
		} else {
			grid.Cols = OsClamp(int(availW/cellW), 1, n)
		}
		grid.Rows = (n + grid.Cols - 1) / grid.Cols
		grid.ColW = cellW
		grid.RowH = cellH
		if !PanelGrid_IsInfinite(availW) {
			grid.ColW = availW / float64(grid.Cols) //width stretch
		}

	case PanelMode_ColumnMajor:
		if PanelGrid_IsInfinite(availH) {
			grid.Rows = n
		} else {
			grid.Rows = OsClamp(int(availH/cellH), 1, n)
		}
		grid.Cols = (n + grid.Rows - 1) / grid.Rows
		grid.ColW = cellW
		grid.RowH = cellH
		if !PanelGrid_IsInfinite(availH) {
			grid.RowH = availH / float64(grid.Rows) //height stretch
		}
	}

	return grid
}

func (grid *PanelGrid) Is() bool {
	return grid.Cols > 0 && grid.Rows > 0
}

// Overall panel size reported back to the host sizing pass.
func (grid *PanelGrid) TotalSize() (float64, float64) {
	return float64(grid.Cols) * grid.ColW, float64(grid.Rows) * grid.RowH
}

func (grid *PanelGrid) indexToCell(i int) (int, int) {
	switch grid.Mode {
	case PanelMode_SingleRow:
		return i, 0
	case PanelMode_SingleColumn:
		return 0, i
	case PanelMode_ColumnMajor:
		return i / grid.Rows, i % grid.Rows
	}
	//row-major
	return i % grid.Cols, i / grid.Cols
}

func (grid *PanelGrid) cellToIndex(col, row int) int {
	switch grid.Mode {
	case PanelMode_SingleRow:
		return col
	case PanelMode_SingleColumn:
		return row
	case PanelMode_ColumnMajor:
		return col*grid.Rows + row
	}
	//row-major
	return row*grid.Cols + col
}

// GridPosition returns the target rectangle for the cell with the given linear index.
func (grid *PanelGrid) GridPosition(i int) Rect {
	if !grid.Is() {
		return Rect{}
	}

	col, row := grid.indexToCell(i)
	return Rect{X: float64(col) * grid.ColW, Y: float64(row) * grid.RowH, W: grid.ColW, H: grid.RowH}
}

// GridIndex is the inverse of GridPosition for points inside the covered
// area. Outside points are clamped per axis, then the linear index is
// clamped to the valid range, so it never fails.
func (grid *PanelGrid) GridIndex(x, y float64, n int) int {
	if !grid.Is() || n <= 0 {
		return 0
	}

	col := OsClamp(int(x/grid.ColW), 0, grid.Cols-1)
	row := OsClamp(int(y/grid.RowH), 0, grid.Rows-1)

	return OsClamp(grid.cellToIndex(col, row), 0, n-1)
}
