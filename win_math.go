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


type OsV2f struct {
	X float32
	Y float32
}

func (a OsV2f) Add(b OsV2f) OsV2f {
	return OsV2f{a.X + b.X, a.Y + b.Y}
}
func (a OsV2f) Sub(b OsV2f) OsV2f {
	return OsV2f{a.X - b.X, a.Y - b.Y}
}
func (a OsV2f) Mul(b OsV2f) OsV2f {
	return OsV2f{a.X * b.X, a.Y * b.Y}
}
func (a OsV2f) MulV(t float32) OsV2f {
	return OsV2f{a.X * t, a.Y * t}
}
func (a OsV2f) Cmp(b OsV2f) bool {
	return a.X == b.X && a.Y == b.Y
}

type OsV2 struct {
	X int
	Y int
}

func OsV2_32(x, y int32) OsV2 {
	return OsV2{int(x), int(y)}
}

func (v *OsV2) Get32() (int32, int32) {
	return int32(v.X), int32(v.Y)
}

func (a OsV2) Add(b OsV2) OsV2 {
	return OsV2{a.X + b.X, a.Y + b.Y}
}
func (a OsV2) Sub(b OsV2) OsV2 {
	return OsV2{a.X - b.X, a.Y - b.Y}
}
func (a OsV2) MulV(t float32) OsV2 {
	return OsV2{int(float32(a.X) * t), int(float32(a.Y) * t)}
}

func (a OsV2) toV2f() OsV2f {
	return OsV2f{float32(a.X), float32(a.Y)}
}

func (a OsV2) Cmp(b OsV2) bool {
	return a.X == b.X && a.Y == b.Y
}

func (start OsV2) Inside(end OsV2, test OsV2) bool {
	return test.X >= start.X && test.Y >= start.Y && test.X < end.X && test.Y < end.Y
}

func (a OsV2) Min(b OsV2) OsV2 {
	return OsV2{OsMin(a.X, b.X), OsMin(a.Y, b.Y)}
}

func (a OsV2) Max(b OsV2) OsV2 {
	return OsV2{OsMax(a.X, b.X), OsMax(a.Y, b.Y)}
}

func (v OsV2) Is() bool {
	return v.X != 0 && v.Y != 0
}

func (v OsV2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (coord OsV4) Align(size OsV2, align OsV2) OsV2 {
	start := coord.Start

	if align.X == 0 {
		// left
	} else if align.X == 1 {
		// center
		if size.X > coord.Size.X {
			start.X = coord.Start.X
		} else {
			start.X = coord.Middle().X - size.X/2
		}
	} else {
		// right
		start.X = coord.End().X - size.X
	}

	// y
	if size.Y >= coord.Size.Y {
		start.Y += (coord.Size.Y - size.Y) / 2
	} else {
		if align.Y == 0 {
			start.Y = coord.Start.Y
		} else if align.Y == 1 {
			start.Y += (coord.Size.Y - size.Y) / 2
		} else if align.Y == 2 {
			start.Y += (coord.Size.Y) - size.Y
		}
	}

	return start
}

type OsV4 struct {
	Start OsV2
	Size  OsV2
}

func InitOsV4(x, y, w, h int) OsV4 {
	return OsV4{OsV2{x, y}, OsV2{w, h}}
}

func (v OsV4) End() OsV2 {
	return OsV2{v.Start.X + v.Size.X, v.Start.Y + v.Size.Y}
}

func (v OsV4) Is() bool {
	return v.Size.Is()
}

func (v OsV4) IsZero() bool {
	return v.Size.IsZero()
}

func (q OsV4) CropX(space int) OsV4 {
	space *= 2
	if space > q.Size.X {
		space = q.Size.X
	}
	return InitOsV4(q.Start.X+space/2, q.Start.Y, q.Size.X-space, q.Size.Y)
}

func (q OsV4) CropY(space int) OsV4 {
	space *= 2
	if space > q.Size.Y {
		space = q.Size.Y
	}
	return InitOsV4(q.Start.X, q.Start.Y+space/2, q.Size.X, q.Size.Y-space)
}

func (q OsV4) Crop(space int) OsV4 {
	r := q.CropX(space)
	return r.CropY(space)
}

func (v OsV4) Middle() OsV2 {
	return v.Start.Add(v.Size.MulV(0.5))
}

func (v OsV4) Inside(test OsV2) bool {
	return v.Start.Inside(v.End(), test)
}
func (a OsV4) Cmp(b OsV4) bool {
	return a.Start.Cmp(b.Start) && a.Size.Cmp(b.Size)
}

func (a OsV4) Extend(b OsV4) OsV4 {

	start := OsV2{OsMin(a.Start.X, b.Start.X), OsMin(a.Start.Y, b.Start.Y)}

	ae := a.End()
	be := b.End()

	end := OsV2{OsMax(ae.X, be.X), OsMax(ae.Y, be.Y)}

	return OsV4{start, end.Sub(start)}
}

func (a OsV4) HasCover(b OsV4) bool {
	q := a.Extend(b)
	return q.Size.X < (a.Size.X+b.Size.X) && q.Size.Y < (a.Size.Y+b.Size.Y)
}

func (qA OsV4) GetIntersect(qB OsV4) OsV4 {

	if qA.HasCover(qB) {
		v_start := qA.Start.Max(qB.Start)
		v_end := qA.End().Min(qB.End())

		return OsV4{v_start, v_end.Sub(v_start)}
	}
	return OsV4{Start: qA.Start}
}
