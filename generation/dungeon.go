package generation

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
	"ebiten-dungeon/metrics"
)

// Hallway is an L-shaped run of floor joining the centers of two rooms: a
// horizontal leg along the lower center's row and a vertical leg along the
// upper center's column.
type Hallway struct {
	From, To components.Position
}

// Layout describes a generated world
type Layout struct {
	Seed     int64
	Avatar   components.Position
	Rooms    []Room
	Hallways []Hallway
	Root     *BSPNode
}

// DungeonGenerator handles procedural generation of dungeon layouts. It keeps
// no random state between calls: every world is a function of the grid
// dimensions, the configuration and the seed.
type DungeonGenerator struct {
	config  config.GeneratorConfig
	logger  *slog.Logger
	metrics *metrics.GenerationMetrics
}

// NewDungeonGenerator creates a new dungeon generator
func NewDungeonGenerator(cfg config.GeneratorConfig) *DungeonGenerator {
	return &DungeonGenerator{
		config: cfg,
		logger: slog.Default(),
	}
}

// SetLogger replaces the logger used for generation records
func (g *DungeonGenerator) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	g.logger = logger
}

// SetMetrics attaches Prometheus collectors; nil detaches them
func (g *DungeonGenerator) SetMetrics(m *metrics.GenerationMetrics) {
	g.metrics = m
}

// Config returns the generator configuration
func (g *DungeonGenerator) Config() config.GeneratorConfig {
	return g.config
}

// CreateWorld fills mapComp with a new dungeon and returns where the avatar
// starts
func (g *DungeonGenerator) CreateWorld(mapComp *components.MapComponent, seed int64) (components.Position, error) {
	layout, err := g.Generate(mapComp, seed)
	if err != nil {
		return components.Position{}, err
	}
	return layout.Avatar, nil
}

// CreateWorld generates a world with the default configuration
func CreateWorld(mapComp *components.MapComponent, seed int64) (components.Position, error) {
	return NewDungeonGenerator(config.Default()).CreateWorld(mapComp, seed)
}

// Generate fills mapComp with a new dungeon. The random stream is drawn in a
// fixed order: split budget, partition attempts in queue order, room
// placement in tree pre-order, one draw per hallway, then the avatar's room
// and its x and y offsets.
func (g *DungeonGenerator) Generate(mapComp *components.MapComponent, seed int64) (*Layout, error) {
	if err := g.validate(mapComp); err != nil {
		g.metrics.ObserveFailure()
		return nil, err
	}

	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	mapComp.Fill(components.TileWall)
	root, rooms := g.placeRooms(mapComp, rng)
	hallways := g.connectRooms(mapComp, rooms, rng)
	pruned := RemoveRedundantWalls(mapComp)
	avatar := g.addAvatar(mapComp, rooms, rng)

	g.metrics.ObserveWorld(len(rooms), len(hallways), time.Since(start))
	g.logger.Info("world created",
		"seed", seed,
		"width", mapComp.Width,
		"height", mapComp.Height,
		"rooms", len(rooms),
		"hallways", len(hallways),
		"pruned", pruned,
		"avatar", avatar.String(),
		"fingerprint", fmt.Sprintf("%016x", mapComp.Fingerprint()),
	)

	return &Layout{
		Seed:     seed,
		Avatar:   avatar,
		Rooms:    rooms,
		Hallways: hallways,
		Root:     root,
	}, nil
}

func (g *DungeonGenerator) validate(mapComp *components.MapComponent) error {
	if mapComp == nil {
		return fmt.Errorf("%w: no map to generate into", config.ErrInvalidConfig)
	}
	if err := g.config.ValidateSettings(); err != nil {
		return err
	}
	return g.config.CheckDimensions(mapComp.Width, mapComp.Height)
}

// placeRooms partitions the playable area breadth-first until the split
// budget runs out or nothing is left to split, then carves one room per leaf.
// Rooms come back in the order their nodes were created.
func (g *DungeonGenerator) placeRooms(mapComp *components.MapComponent, rng *rand.Rand) (*BSPNode, []Room) {
	root := NewBSPNode(components.Position{}, mapComp.Width, mapComp.Height, g.config.MinRoomSize)
	nodes := []*BSPNode{root}
	queue := []*BSPNode{root}

	budget := g.config.SplitBudgetBase + rng.Intn(g.config.SplitBudgetSpread)
	for budget > 0 && len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node.Partition(rng) {
			nodes = append(nodes, node.Left, node.Right)
			queue = append(queue, node.Left, node.Right)
			g.logger.Debug("partitioned",
				"x", node.Pos.X, "y", node.Pos.Y,
				"width", node.Width, "height", node.Height)
		}
		budget--
	}

	root.BuildRoom(rng)

	var rooms []Room
	for _, node := range nodes {
		if node.Room == nil {
			continue
		}
		carveRoom(mapComp, *node.Room)
		rooms = append(rooms, *node.Room)
		g.logger.Debug("room carved",
			"x", node.Room.Pos.X, "y", node.Room.Pos.Y,
			"width", node.Room.Width, "height", node.Room.Height)
	}
	return root, rooms
}

// connectRooms links the rooms into one network. Two rooms are taken from
// the front of the queue and joined, then one of them goes back to the end.
// Every room in the queue stands for a separate connected group, so when one
// is left everything is connected. This is not a shortest network.
func (g *DungeonGenerator) connectRooms(mapComp *components.MapComponent, rooms []Room, rng *rand.Rand) []Hallway {
	pending := append([]Room(nil), rooms...)
	var hallways []Hallway

	for len(pending) > 1 {
		roomA, roomB := pending[0], pending[1]
		pending = pending[2:]

		hallways = append(hallways, carveHallway(mapComp, roomA.Center(), roomB.Center()))

		if rng.Intn(2) == 0 {
			pending = append(pending, roomA)
		} else {
			pending = append(pending, roomB)
		}
	}
	return hallways
}

// carveHallway writes floor between two room centers. The horizontal leg
// runs along the lower center's row, the vertical leg along the upper
// center's column; each leg stops one short of its far end, which is either
// the other center or the corner the other leg covers.
func carveHallway(mapComp *components.MapComponent, a, b components.Position) Hallway {
	lowY, highY := min(a.Y, b.Y), max(a.Y, b.Y)
	leftX, rightX := min(a.X, b.X), max(a.X, b.X)

	upperX := b.X
	if a.Y >= b.Y {
		upperX = a.X
	}

	addTileRow(mapComp, rightX-leftX, components.Position{X: leftX, Y: lowY}, components.TileFloor)
	addTileCol(mapComp, highY-lowY, components.Position{X: upperX, Y: lowY}, components.TileFloor)

	return Hallway{From: a, To: b}
}

// addAvatar marks a random interior tile of a random room as the avatar
func (g *DungeonGenerator) addAvatar(mapComp *components.MapComponent, rooms []Room, rng *rand.Rand) components.Position {
	room := rooms[rng.Intn(len(rooms))]

	avatar := components.Position{
		X: room.Pos.X + 1 + rng.Intn(room.Width-2),
		Y: room.Pos.Y + 1 + rng.Intn(room.Height-2),
	}
	mapComp.SetTile(avatar.X, avatar.Y, components.TileAvatar)
	return avatar
}
