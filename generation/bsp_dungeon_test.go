package generation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-dungeon/components"
)

func TestRoom_Geometry(t *testing.T) {
	room := Room{Pos: components.NewPosition(2, 3), Width: 6, Height: 7}

	assert.Equal(t, components.NewPosition(5, 6), room.Center())
	assert.True(t, room.Contains(components.NewPosition(2, 3)))
	assert.True(t, room.Contains(components.NewPosition(7, 9)))
	assert.False(t, room.Contains(components.NewPosition(8, 9)))

	assert.False(t, room.InInterior(components.NewPosition(2, 4)), "left wall")
	assert.True(t, room.InInterior(components.NewPosition(3, 4)))
	assert.True(t, room.InInterior(components.NewPosition(6, 8)))
	assert.False(t, room.InInterior(components.NewPosition(6, 9)), "top wall")
	assert.True(t, room.InInterior(room.Center()))
}

func TestBSPNode_PartitionVertical(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	node := NewBSPNode(components.NewPosition(3, 4), 30, 10, DefaultMinSize)

	require.True(t, node.Partition(rng))
	require.NotNil(t, node.Left)
	require.NotNil(t, node.Right)

	assert.Equal(t, node.Pos, node.Left.Pos)
	assert.Equal(t, 10, node.Left.Height)
	assert.Equal(t, 10, node.Right.Height)
	assert.Equal(t, 30, node.Left.Width+node.Right.Width)
	assert.Equal(t, components.NewPosition(3+node.Left.Width, 4), node.Right.Pos)
	assert.GreaterOrEqual(t, node.Left.Width, DefaultMinSize)
	assert.GreaterOrEqual(t, node.Right.Width, DefaultMinSize)
}

func TestBSPNode_PartitionHorizontal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	node := NewBSPNode(components.Position{}, 10, 30, DefaultMinSize)

	require.True(t, node.Partition(rng))

	assert.Equal(t, 10, node.Left.Width)
	assert.Equal(t, 10, node.Right.Width)
	assert.Equal(t, 30, node.Left.Height+node.Right.Height)
	assert.Equal(t, components.NewPosition(0, node.Left.Height), node.Right.Pos)
}

func TestBSPNode_PartitionRefusals(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// 12 - 6 = 6 is not above the minimum, so there is no valid cut
	small := NewBSPNode(components.Position{}, 12, 12, DefaultMinSize)
	assert.False(t, small.Partition(rng))
	assert.True(t, small.IsLeaf())

	big := NewBSPNode(components.Position{}, 40, 40, DefaultMinSize)
	require.True(t, big.Partition(rng))
	left, right := big.Left, big.Right
	assert.False(t, big.Partition(rng), "a split node cannot be split again")
	assert.Same(t, left, big.Left)
	assert.Same(t, right, big.Right)
}

func TestBSPNode_PartitionChildrenKeepMinimum(t *testing.T) {
	for seed := int64(0); seed < 500; seed++ {
		rng := rand.New(rand.NewSource(seed))
		node := NewBSPNode(components.Position{}, 13+int(seed%40), 13+int(seed%23), DefaultMinSize)
		if !node.Partition(rng) {
			continue
		}
		for _, child := range []*BSPNode{node.Left, node.Right} {
			assert.GreaterOrEqual(t, child.Width, DefaultMinSize, "seed %d", seed)
			assert.GreaterOrEqual(t, child.Height, DefaultMinSize, "seed %d", seed)
		}
		assert.Equal(t, node.Width*node.Height,
			node.Left.Width*node.Left.Height+node.Right.Width*node.Right.Height,
			"children must tile the parent, seed %d", seed)
	}
}

func TestBSPNode_PartitionFavoursSmallLowerChild(t *testing.T) {
	// Draws below the minimum are raised to it, so the minimum width is far
	// more common than any other
	counts := make(map[int]int)
	for seed := int64(0); seed < 2000; seed++ {
		node := NewBSPNode(components.Position{}, 40, 20, DefaultMinSize)
		require.True(t, node.Partition(rand.New(rand.NewSource(seed))))
		counts[node.Left.Width]++
		assert.Less(t, node.Left.Width, 40-DefaultMinSize)
	}
	assert.Zero(t, counts[DefaultMinSize-1])
	assert.Greater(t, counts[DefaultMinSize], 3*counts[DefaultMinSize+1])
}

func TestBSPNode_BuildRoomOnlyInLeaves(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	root := NewBSPNode(components.Position{}, 60, 40, DefaultMinSize)
	require.True(t, root.Partition(rng))
	root.Left.Partition(rng)
	root.Right.Partition(rng)

	root.BuildRoom(rng)

	assert.Nil(t, root.Room)
	leaves := root.Leaves()
	assert.GreaterOrEqual(t, len(leaves), 2)
	for _, leaf := range leaves {
		require.NotNil(t, leaf.Room)
		room := leaf.Room
		assert.GreaterOrEqual(t, room.Width, DefaultMinSize)
		assert.GreaterOrEqual(t, room.Height, DefaultMinSize)
		assert.GreaterOrEqual(t, room.Pos.X, leaf.Pos.X)
		assert.GreaterOrEqual(t, room.Pos.Y, leaf.Pos.Y)
		assert.LessOrEqual(t, room.Pos.X+room.Width, leaf.Pos.X+leaf.Width)
		assert.LessOrEqual(t, room.Pos.Y+room.Height, leaf.Pos.Y+leaf.Height)
	}
}

func TestBSPNode_BuildRoomDegenerateLeaf(t *testing.T) {
	leaf := NewBSPNode(components.NewPosition(1, 1), 4, 3, DefaultMinSize)

	assert.NotPanics(t, func() { leaf.BuildRoom(rand.New(rand.NewSource(5))) })
	require.NotNil(t, leaf.Room)
	assert.Equal(t, Room{Pos: components.NewPosition(1, 1), Width: 4, Height: 3}, *leaf.Room)
}

func TestBSPNode_BuildRoomDrawOrder(t *testing.T) {
	// A 7x7 leaf draws offX, offY, width, height in that order
	leaf := NewBSPNode(components.Position{}, 7, 7, DefaultMinSize)
	leaf.BuildRoom(rand.New(rand.NewSource(11)))

	rng := rand.New(rand.NewSource(11))
	offX := rng.Intn(1)
	offY := rng.Intn(1)
	width := max(rng.Intn(7-offX), DefaultMinSize)
	height := max(rng.Intn(7-offY), DefaultMinSize)

	assert.Equal(t, Room{Pos: components.NewPosition(offX, offY), Width: width, Height: height}, *leaf.Room)
}

func TestBSPNode_LeavesAndDepth(t *testing.T) {
	root := NewBSPNode(components.Position{}, 10, 10, 0)
	assert.Equal(t, 1, root.Depth())
	assert.Equal(t, []*BSPNode{root}, root.Leaves())

	rng := rand.New(rand.NewSource(3))
	wide := NewBSPNode(components.Position{}, 60, 13, DefaultMinSize)
	require.True(t, wide.Partition(rng))
	require.True(t, wide.Right.Partition(rng) || wide.Left.Partition(rng))
	assert.Equal(t, 3, wide.Depth())
	assert.Len(t, wide.Leaves(), 3)
}
