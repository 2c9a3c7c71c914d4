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
	"database/sql"
	"fmt"
	"image/color"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// ItemsStore keeps the panel's item collection on disk. Order is runtime
// state and is not stored.
type ItemsStore struct {
	db *sql.DB
}

type StoreItem struct {
	Label string
	Cd    color.RGBA
}

func NewItemsStore(path string) (*ItemsStore, error) {
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("Open() failed: %w", err)
	}
	if strings.Contains(path, ":memory:") {
		db.SetMaxOpenConns(1) //every new connection gets its own empty database
	}

	_, err = db.Exec("CREATE TABLE IF NOT EXISTS items (label TEXT NOT NULL UNIQUE, r INTEGER, g INTEGER, b INTEGER)")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("Exec() failed: %w", err)
	}

	store := &ItemsStore{db: db}

	n, err := store.NumItems()
	if err != nil {
		db.Close()
		return nil, err
	}
	if n == 0 {
		err = store.seed()
		if err != nil {
			db.Close()
			return nil, err
		}
	}

	return store, nil
}

func (store *ItemsStore) Destroy() error {
	return store.db.Close()
}

func (store *ItemsStore) seed() error {
	defaults := []StoreItem{
		{Label: "Alpha", Cd: color.RGBA{120, 170, 220, 255}},
		{Label: "Bravo", Cd: color.RGBA{235, 180, 100, 255}},
		{Label: "Charlie", Cd: color.RGBA{150, 200, 130, 255}},
		{Label: "Delta", Cd: color.RGBA{220, 140, 150, 255}},
		{Label: "Echo", Cd: color.RGBA{170, 150, 210, 255}},
		{Label: "Foxtrot", Cd: color.RGBA{130, 200, 195, 255}},
		{Label: "Golf", Cd: color.RGBA{210, 205, 120, 255}},
		{Label: "Hotel", Cd: color.RGBA{190, 165, 140, 255}},
	}

	for _, it := range defaults {
		err := store.Add(it.Label, it.Cd)
		if err != nil {
			return err
		}
	}
	return nil
}

func (store *ItemsStore) NumItems() (int, error) {
	row := store.db.QueryRow("SELECT COUNT(*) FROM items")

	var n int
	err := row.Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("Scan() failed: %w", err)
	}
	return n, nil
}

func (store *ItemsStore) List() ([]StoreItem, error) {
	rows, err := store.db.Query("SELECT label, r, g, b FROM items ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("Query() failed: %w", err)
	}
	defer rows.Close()

	var items []StoreItem
	for rows.Next() {
		var it StoreItem
		var r, g, b int
		err = rows.Scan(&it.Label, &r, &g, &b)
		if err != nil {
			return nil, fmt.Errorf("Scan() failed: %w", err)
		}
		it.Cd = color.RGBA{uint8(r), uint8(g), uint8(b), 255}
		items = append(items, it)
	}

	return items, rows.Err()
}

func (store *ItemsStore) Add(label string, cd color.RGBA) error {
	_, err := store.db.Exec("INSERT INTO items(label, r, g, b) VALUES(?, ?, ?, ?)", label, int(cd.R), int(cd.G), int(cd.B))
	if err != nil {
		return fmt.Errorf("Exec() failed: %w", err)
	}
	return nil
}

func (store *ItemsStore) Remove(label string) error {
	_, err := store.db.Exec("DELETE FROM items WHERE label=?", label)
	if err != nil {
		return fmt.Errorf("Exec() failed: %w", err)
	}
	return nil
}
