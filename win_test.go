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

import "testing"

func TestFullscreenToggleIsDeferred(t *testing.T) {
	win := &Win{}

	win.ToggleFullscreen()
	if !win.fullscreen {
		t.Fatal("toggle did not request fullscreen")
	}
	if win.fullscreen_now {
		t.Fatal("window must not switch before the frame is presented")
	}

	win.ToggleFullscreen()
	if win.fullscreen {
		t.Fatal("second toggle did not return to windowed")
	}
}
