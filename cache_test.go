// seehuhn.de/go/cms - colour management for graphics applications
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cms

import (
	"testing"

	"seehuhn.de/go/cms/color"
)

func TestLRUCache(t *testing.T) {
	cache := newCache[int, string](12)
	cache.Put(100, "100")
	cache.Put(101, "101")
	cache.Put(102, "102")
	val, ok := cache.Get(100)
	if !ok {
		t.Error("cache miss")
	}
	if val != "100" {
		t.Error("wrong value")
	}
	// now 101 is the oldest entry and should drop out later

	val, ok = cache.Get(0)
	if ok {
		t.Error("cache hit")
	}
	if val != "" {
		t.Error("wrong value")
	}

	for i := 0; i < 25; i++ {
		x := i % 10
		want := string(rune('0' + x))

		val, ok := cache.Get(x)
		if ok != (i >= 10) {
			t.Error("cache hit/miss mismatch")
		}
		if ok {
			if val != want {
				t.Error("wrong value")
			}
		} else {
			cache.Put(x, want)
		}
	}

	_, ok = cache.Get(100)
	if !ok {
		t.Error("cache miss")
	}
	_, ok = cache.Get(101)
	if ok {
		t.Error("cache hit")
	}
	_, ok = cache.Get(102)
	if !ok {
		t.Error("cache miss")
	}
}

func TestLRUCacheClear(t *testing.T) {
	cache := newCache[transformKey, int](4)
	cache.Put(transformKey{1, 2}, 1)
	cache.Put(transformKey{2, 1}, 2)
	if cache.Len() != 2 {
		t.Fatalf("wrong length %d", cache.Len())
	}

	cache.Clear()
	if cache.Len() != 0 || cache.Has(transformKey{1, 2}) {
		t.Error("cache not empty after Clear")
	}

	// the cache must still work after clearing
	for i := range 6 {
		cache.Put(transformKey{1, color.Model(i)}, i)
	}
	if cache.Len() != 4 {
		t.Errorf("wrong length %d", cache.Len())
	}
	if cache.Has(transformKey{1, 0}) || !cache.Has(transformKey{1, 5}) {
		t.Error("wrong entries evicted")
	}
}

func TestLRUCacheDisabled(t *testing.T) {
	cache := newCache[int, int](0)
	cache.Put(1, 1)
	if _, ok := cache.Get(1); ok {
		t.Error("zero capacity cache stored a value")
	}
}
