// Package level generates and describes procedural level layouts. A Layout is
// plain data: the factory turns it into live entities and collision objects,
// and the renderer reads it for static geometry. Layouts are regenerated from
// scratch every time a level is entered; nothing here is persisted.
package level

import "image/color"

// Archetype names a level-generation variant.
type Archetype int

const (
	Standard Archetype = iota
	Water
	Fortress
	Castle
	Airship
	Giant
	Ice
	Pipes
	Desert
	Sky
	Vehicle
	FinalBoss
)

var archetypeNames = map[string]Archetype{
	"standard":   Standard,
	"water":      Water,
	"fortress":   Fortress,
	"castle":     Castle,
	"airship":    Airship,
	"giant":      Giant,
	"ice":        Ice,
	"pipes":      Pipes,
	"desert":     Desert,
	"sky":        Sky,
	"vehicle":    Vehicle,
	"final-boss": FinalBoss,
}

// ParseArchetype maps an archetype tag from the world table to its variant.
// The boolean is false for unknown tags; callers fall back to Standard.
func ParseArchetype(tag string) (Archetype, bool) {
	a, ok := archetypeNames[tag]
	return a, ok
}

func (a Archetype) String() string {
	for name, arch := range archetypeNames {
		if arch == a {
			return name
		}
	}
	return "standard"
}

// Rect is an axis-aligned rectangle in level coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }


// SurfaceKind classifies a platform's surface for rendering and friction.
type SurfaceKind int

const (
	SurfaceGround SurfaceKind = iota
	SurfaceFloating
	SurfaceIce
	SurfaceMetal
	SurfaceFortressFloor
	SurfaceFortressCeiling
	SurfaceCastleBlock
	SurfaceAirshipDeck
	SurfaceCloud
	SurfaceDonutLift
	SurfaceHull
)

// Platform is a collidable slab of terrain. Friction of zero means the
// character's default ground friction applies; ice platforms override it.
type Platform struct {
	Rect       Rect
	Kind       SurfaceKind
	Collidable bool
	Friction   float64 // 0 = no override
	MoveSpeed  float64 // horizontal drift for moving clouds, 0 = static
	Floating   bool    // bobs vertically on a tween
}

// BlockKind classifies a strikeable block.
type BlockKind int

const (
	BlockBrick BlockKind = iota
	BlockQuestion
	BlockHidden
)

// Reward is what pops out of a struck block.
type Reward int

const (
	RewardCoin Reward = iota
	RewardMushroom
	RewardFlower
	RewardStar
	RewardLeaf
)

// Block is a strikeable block. Struck is a one-way transition: once true the
// block is inert for the rest of the level's lifetime.
type Block struct {
	Rect     Rect
	Kind     BlockKind
	Contains Reward
	Struck   bool
}

// EnemyKind is the closed set of enemy variants.
type EnemyKind int

const (
	Goomba EnemyKind = iota
	KoopaGreen
	KoopaRed
	HammerBro
	DryBones
	CheepCheep
	Blooper
	BigBertha
	Flurry
	Cooligan
	IceBro
	Pokey
	Lakitu
	Spiny
	FireSnake
	Paragoomba
	Paratroopa
	Parabeetle
	PiranhaPlant
	RockyWrench
)

// Swims reports whether the kind moves freely through water.
func (k EnemyKind) Swims() bool {
	return k == CheepCheep || k == Blooper || k == BigBertha
}

// Flies reports whether the kind patrols in the air on both axes.
func (k EnemyKind) Flies() bool {
	return k == Paragoomba || k == Paratroopa || k == Parabeetle || k == Lakitu
}

// Enemy is a generated enemy placement.
type Enemy struct {
	Kind                 EnemyKind
	X, Y                 float64
	VX, VY               float64
	PatrolMin, PatrolMax float64
	Scale                float64 // 1 normally, 2 in giant levels
	PipeIndex            int     // piranha plants: index into Layout.Pipes, else -1
	EmergeTimer          int
}

// Pipe is a solid pipe; enterable pipes warp the character when ducked onto.
type Pipe struct {
	Rect        Rect
	Enterable   bool
	Destination string // "bonus" or "secret"
	Connected   int    // index of a connected pipe in a maze, -1 if none
}

// HazardKind is the closed set of hazard variants.
type HazardKind int

const (
	HazardThwomp HazardKind = iota
	HazardRotoDisc
	HazardIcicle
	HazardLavaBubble
	HazardQuicksand
	HazardAngrySun
	HazardCannon
	HazardFirebar
	HazardLaser
	HazardSpikeCeiling
	HazardFlameJet
)

// Hazard is a generated hazard placement. Fields are kind-specific; unused
// ones stay zero.
type Hazard struct {
	Kind             HazardKind
	X, Y             float64
	TriggerDistance  float64 // thwomp, icicle
	FallSpeed        float64 // thwomp, spike ceiling
	CenterX, CenterY float64 // roto-disc, firebar
	Radius           float64 // roto-disc
	Speed            float64 // roto-disc, firebar angular speed
	Timer            int     // lava bubble phase, cannon fire timer
	Height           float64 // lava bubble apex
	Area             Rect    // quicksand
	SinkSpeed        float64 // quicksand
	FireRate         int     // cannon
	Length           int     // firebar segments
}

// ExitKind classifies the level exit trigger.
type ExitKind int

const (
	ExitFlag ExitKind = iota
	ExitCard
	ExitPipe
	ExitBoss
)

var exitKindNames = map[string]ExitKind{
	"flag": ExitFlag,
	"card": ExitCard,
	"pipe": ExitPipe,
	"boss": ExitBoss,
}

// ParseExitKind maps an exit tag from the world table to its kind. The
// boolean is false for unknown or empty tags; callers keep the archetype's
// default exit.
func ParseExitKind(tag string) (ExitKind, bool) {
	k, ok := exitKindNames[tag]
	return k, ok
}

// Exit marks the end-of-level trigger.
type Exit struct {
	X, Y float64
	Kind ExitKind
}

// BossRoom is the enclosed fight area fortress-style levels end with.
type BossRoom struct {
	Rect Rect
	Boss string
}

// PhotonZone hints the effects layer where and how densely to emit ambient
// particles. Purely cosmetic.
type PhotonZone struct {
	Rect      Rect
	Density   int
	Color     color.RGBA
	Effect    string
	Intensity float64
}

// Layout is a fully generated level. All slices are independent collections;
// generation only ever appends, and overlapping placements are accepted as-is.
type Layout struct {
	Archetype Archetype
	Width     float64

	Platforms []Platform
	Blocks    []Block
	Enemies   []Enemy
	Pipes     []Pipe
	Hazards   []Hazard
	Exit      Exit
	BossRoom  *BossRoom

	WaterLine   float64 // 0 = no water
	Current     float64 // horizontal water drift
	LavaLine    float64 // 0 = no lava
	ScrollSpeed float64 // autoscroll for airship/vehicle levels

	PhotonZones []PhotonZone
}
