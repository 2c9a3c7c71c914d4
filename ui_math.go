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

import "fmt"

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Check() string {
	return fmt.Sprintf("[%.1f, %.1f, %.1f, %.1f]", r.X, r.Y, r.W, r.H)
}

func (r Rect) Middle() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Inside(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (a Rect) Cmp(b Rect) bool {
	return a.X == b.X && a.Y == b.Y && a.W == b.W && a.H == b.H
}

func (r Rect) ToPix() OsV4 {
	return InitOsV4(int(r.X), int(r.Y), int(r.W), int(r.H))
}
