package model

import (
	"errors"
	"fmt"
)

type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
)

var ErrTileCount = errors.New("tile count does not match map size")

// TileMap is a square grid of tiles stored row-major. It is never mutated after
// construction.
type TileMap struct {
	size  int
	tiles []Tile
}

func NewTileMap(size int, tiles []Tile) (*TileMap, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid map size %d", size)
	}
	if len(tiles) != size*size {
		return nil, fmt.Errorf("%w: got %d tiles for a %dx%d map", ErrTileCount, len(tiles), size, size)
	}

	m := &TileMap{
		size:  size,
		tiles: make([]Tile, len(tiles)),
	}
	copy(m.tiles, tiles)

	return m, nil
}

var sampleLayout = []Tile{
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
	1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
	1, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 1,
	1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 1,
	1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
	1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
	1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
	1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
	1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
	1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
}

// SampleMap returns the built-in 12x12 layout.
func SampleMap() *TileMap {
	m, err := NewTileMap(12, sampleLayout)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *TileMap) Size() int { return m.size }

func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.size && y < m.size
}

// Get returns the tile at x, y. Coordinates outside the map read as TileWall so
// neither rays nor the player can leave the grid.
func (m *TileMap) Get(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.tiles[y*m.size+x]
}

func (m *TileMap) IsWall(x, y int) bool { return m.Get(x, y) == TileWall }
