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
	"fmt"
	"image/color"
	"sync"
	"testing"
)

func TestItemsStoreSeedAndList(t *testing.T) {
	store, err := NewItemsStore(":memory:")
	if err != nil {
		t.Fatalf("NewItemsStore() failed: %v", err)
	}
	defer store.Destroy()

	items, err := store.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(items) == 0 {
		t.Fatalf("empty store must be seeded")
	}
	if items[0].Label != "Alpha" {
		t.Errorf("got %q, want Alpha first", items[0].Label)
	}
}

func TestItemsStoreMemoryParallelReads(t *testing.T) {
	store, err := NewItemsStore(":memory:")
	if err != nil {
		t.Fatalf("NewItemsStore() failed: %v", err)
	}
	defer store.Destroy()

	want, err := store.NumItems()
	if err != nil {
		t.Fatalf("NumItems() failed: %v", err)
	}

	//a second pool connection must see the same database, not an empty one
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := store.NumItems()
			if err != nil {
				errs <- err
				return
			}
			if n != want {
				errs <- fmt.Errorf("got %d items, want %d", n, want)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestItemsStoreAddRemove(t *testing.T) {
	store, err := NewItemsStore(":memory:")
	if err != nil {
		t.Fatalf("NewItemsStore() failed: %v", err)
	}
	defer store.Destroy()

	before, _ := store.NumItems()

	err = store.Add("Zulu", color.RGBA{1, 2, 3, 255})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	items, err := store.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	last := items[len(items)-1]
	if last.Label != "Zulu" || last.Cd.R != 1 || last.Cd.G != 2 || last.Cd.B != 3 {
		t.Errorf("got %+v", last)
	}

	err = store.Remove("Zulu")
	if err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	after, _ := store.NumItems()
	if after != before {
		t.Errorf("got %d items, want %d", after, before)
	}
}
