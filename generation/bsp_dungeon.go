package generation

import (
	"math/rand"

	"ebiten-dungeon/components"
)

// DefaultMinSize is the smallest partition side and the smallest room side
const DefaultMinSize = 6

// Room represents a room within the dungeon. Pos is the bottom-left corner
// and the outermost ring of the rectangle is wall.
type Room struct {
	Pos           components.Position
	Width, Height int
}

// Center returns the tile the hallways of this room start from
func (r Room) Center() components.Position {
	return components.Position{X: r.Pos.X + r.Width/2, Y: r.Pos.Y + r.Height/2}
}

// Contains reports whether p lies inside the room, walls included
func (r Room) Contains(p components.Position) bool {
	return p.X >= r.Pos.X && p.X < r.Pos.X+r.Width &&
		p.Y >= r.Pos.Y && p.Y < r.Pos.Y+r.Height
}

// InInterior reports whether p lies inside the room and off its walls
func (r Room) InInterior(p components.Position) bool {
	return p.X > r.Pos.X && p.X < r.Pos.X+r.Width-1 &&
		p.Y > r.Pos.Y && p.Y < r.Pos.Y+r.Height-1
}

// BSPNode represents a node in the binary space partitioning tree. Left and
// Right are either both set or both nil; only a childless node gets a Room.
type BSPNode struct {
	Pos           components.Position // Bottom-left corner
	Width, Height int
	Left, Right   *BSPNode
	Room          *Room
	minSize       int
}

// NewBSPNode creates an unsplit node covering the given rectangle
func NewBSPNode(pos components.Position, width, height, minSize int) *BSPNode {
	if minSize <= 0 {
		minSize = DefaultMinSize
	}
	return &BSPNode{
		Pos:     pos,
		Width:   width,
		Height:  height,
		minSize: minSize,
	}
}

// IsLeaf returns true if the node has not been split
func (node *BSPNode) IsLeaf() bool {
	return node.Left == nil
}

// Partition splits the node in two. It returns false without touching the
// node if it is already split or too small for both halves to keep minSize.
func (node *BSPNode) Partition(rng *rand.Rand) bool {
	if !node.IsLeaf() {
		return false
	}

	// Cut across the longer side; square nodes pick at random
	var horizontal bool
	switch {
	case node.Height > node.Width:
		horizontal = true
	case node.Width > node.Height:
		horizontal = false
	default:
		horizontal = rng.Intn(2) == 0
	}

	extent := node.Width
	if horizontal {
		extent = node.Height
	}
	limit := extent - node.minSize
	if limit <= node.minSize {
		return false
	}

	// Short draws are raised to minSize, long ones are left alone, so the
	// lower/left child tends to be the small one
	split := rng.Intn(limit)
	if split < node.minSize {
		split = node.minSize
	}

	if horizontal {
		node.Left = NewBSPNode(node.Pos, node.Width, split, node.minSize)
		node.Right = NewBSPNode(node.Pos.Add(0, split), node.Width, node.Height-split, node.minSize)
	} else {
		node.Left = NewBSPNode(node.Pos, split, node.Height, node.minSize)
		node.Right = NewBSPNode(node.Pos.Add(split, 0), node.Width-split, node.Height, node.minSize)
	}
	return true
}

// BuildRoom places one room in every leaf under node, visiting Left before
// Right
func (node *BSPNode) BuildRoom(rng *rand.Rand) {
	if !node.IsLeaf() {
		node.Left.BuildRoom(rng)
		node.Right.BuildRoom(rng)
		return
	}

	offsetX, offsetY := 0, 0
	if node.Width-node.minSize > 0 {
		offsetX = rng.Intn(node.Width - node.minSize)
	}
	if node.Height-node.minSize > 0 {
		offsetY = rng.Intn(node.Height - node.minSize)
	}

	node.Room = &Room{
		Pos:    node.Pos.Add(offsetX, offsetY),
		Width:  roomSide(rng, node.Width-offsetX, node.minSize),
		Height: roomSide(rng, node.Height-offsetY, node.minSize),
	}
}

// roomSide draws a side length in [minSize, space]. Leaves narrower than
// minSize get the whole space.
func roomSide(rng *rand.Rand, space, minSize int) int {
	if space <= 0 {
		return 0
	}
	side := rng.Intn(space)
	if side < minSize {
		side = minSize
	}
	if side > space {
		side = space
	}
	return side
}

// Leaves returns the unsplit nodes under node in pre-order
func (node *BSPNode) Leaves() []*BSPNode {
	if node.IsLeaf() {
		return []*BSPNode{node}
	}
	return append(node.Left.Leaves(), node.Right.Leaves()...)
}

// Depth returns the number of levels in the tree rooted at node
func (node *BSPNode) Depth() int {
	if node.IsLeaf() {
		return 1
	}
	return 1 + max(node.Left.Depth(), node.Right.Depth())
}
