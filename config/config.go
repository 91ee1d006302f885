package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all entities and renderers live on.
const Default = ecs.LayerDefault

// PowerTier is the character's ordered power-up level. Higher tiers unlock
// actions; damage above Small always demotes straight back to Small.
type PowerTier int

const (
	PowerSmall PowerTier = iota
	PowerSuper
	PowerFire
	PowerBeet
	PowerHammer
	PowerTanooki
)

func (p PowerTier) String() string {
	switch p {
	case PowerSmall:
		return "SMALL"
	case PowerSuper:
		return "SUPER"
	case PowerFire:
		return "FIRE"
	case PowerBeet:
		return "BEET"
	case PowerHammer:
		return "HAMMER"
	case PowerTanooki:
		return "TANOOKI"
	}
	return "UNKNOWN"
}

// CanShoot reports whether a tier has a ranged/swipe attack at all.
func (p PowerTier) CanShoot() bool {
	return p >= PowerFire
}

// ScreenConfig contains display and timing configuration
type ScreenConfig struct {
	Width  int
	Height int
	TPS    int
}

// PlayerConfig contains all character movement and state configuration
type PlayerConfig struct {
	// Movement
	WalkSpeed    float64
	RunSpeed     float64
	MaxSpeed     float64
	Acceleration float64
	Friction     float64 // ground friction coefficient
	AirFriction  float64
	SpeedEpsilon float64 // below this the horizontal speed snaps to zero

	// Jumping
	JumpPower       float64 // upward impulse magnitude
	RunJumpPower    float64 // impulse when |vx| > WalkSpeed
	Gravity         float64
	JumpHoldGravity float64 // reduced gravity while rising with jump held
	MaxFall         float64 // terminal velocity

	// Damage and power-ups
	DamageInvulnFrames int // invincibility window after a tier demotion
	StarInvulnFrames   int // invincibility window from a star pickup
	ShootCooldown      int // frames between fireballs

	// P-meter (running power)
	PMeterMax       int
	PMeterThreshold float64 // |vx| above which the meter charges
	PMeterJumpBonus float64 // extra impulse with a full meter

	// Lives
	StartingLives int

	// Spawn and dimensions
	SpawnX      float64
	SpawnY      float64
	Width       float64
	SmallHeight float64
	SuperHeight float64 // any tier above Small
	DuckHeight  float64
}

// EnemyConfig contains enemy behavior configuration shared across kinds
type EnemyConfig struct {
	Width        float64
	Height       float64
	StompBounce  float64 // upward velocity granted to the character on a stomp
	HopSpeed     float64 // hammer-bro hop impulse
	HopChance    float64 // per-tick hop probability
	DriftRate    float64 // lakitu horizontal lerp toward the character
	Gravity      float64 // applied to hopping enemies until they return to base height
	SwimBandTop  float64
	SwimBandBot  float64
	EmergePeriod int // piranha plant raise/lower cycle in frames
}

// HazardConfig contains hazard behavior constants
type HazardConfig struct {
	ThwompRiseSpeed  float64
	ThwompRestFrames int
	IcicleGravity    float64
	LavaBubblePeriod int
	SunSwoopSpeed    float64
	CannonBurstSize  int
}

// FireballConfig contains fireball projectile configuration
type FireballConfig struct {
	Speed   float64
	Gravity float64
	Bounce  float64 // vertical speed restored when skipping off the ground
	TTL     int
	Size    float64
	Points  int
}

// ParticleConfig contains the photon engine configuration
type ParticleConfig struct {
	Limit              int
	Gravity            float64 // downward acceleration per frame
	LifeDecay          float64 // life units removed per frame
	MutationRate       float64
	FitnessThreshold   float64
	AdaptMinPopulation int
	AdaptInterval      int // frames between adaptation passes
}

// ScoreConfig contains point values for gameplay events
type ScoreConfig struct {
	CoinPoints       int
	BrickPoints      int
	StompPoints      int
	SparePowerPoints int // mushroom collected while already Super or better
	TimeLimit        int // seconds per level
}

// GeneratorConfig contains level generation parameters
type GeneratorConfig struct {
	Seed          int64 // 0 means time-seeded
	LevelWidth    float64
	SegmentWidth  float64
	GroundY       float64
	GiantScale    float64
	GiantAnchorY  float64
	IceFriction   float64
	ExitX         float64
	ExitY         float64
	WaterLine     float64
	LavaLine      float64
	BossRoomBoss  string
	PhotonZoneLen float64
}

var Screen = ScreenConfig{
	Width:  800,
	Height: 600,
	TPS:    60,
}

var Player = PlayerConfig{
	WalkSpeed:    3.5,
	RunSpeed:     6.5,
	MaxSpeed:     8.0,
	Acceleration: 0.3,
	Friction:     0.15,
	AirFriction:  0.05,
	SpeedEpsilon: 0.15,

	JumpPower:       11.5,
	RunJumpPower:    13.0,
	Gravity:         0.45,
	JumpHoldGravity: 0.25,
	MaxFall:         12.0,

	DamageInvulnFrames: 120,
	StarInvulnFrames:   600,
	ShootCooldown:      15,

	PMeterMax:       100,
	PMeterThreshold: 4.0,
	PMeterJumpBonus: 2.5,

	StartingLives: 5,

	SpawnX:      100,
	SpawnY:      400,
	Width:       24,
	SmallHeight: 30,
	SuperHeight: 40,
	DuckHeight:  30,
}

var Enemy = EnemyConfig{
	Width:        30,
	Height:       30,
	StompBounce:  8.0,
	HopSpeed:     8.0,
	HopChance:    0.01,
	DriftRate:    0.02,
	Gravity:      0.45,
	SwimBandTop:  50,
	SwimBandBot:  550,
	EmergePeriod: 180,
}

var Hazard = HazardConfig{
	ThwompRiseSpeed:  1.0,
	ThwompRestFrames: 45,
	IcicleGravity:    0.5,
	LavaBubblePeriod: 120,
	SunSwoopSpeed:    2.0,
	CannonBurstSize:  6,
}

var Fireball = FireballConfig{
	Speed:   7.0,
	Gravity: 0.35,
	Bounce:  5.0,
	TTL:     120,
	Size:    10,
	Points:  100,
}

var Particle = ParticleConfig{
	Limit:              10000,
	Gravity:            0.1,
	LifeDecay:          2,
	MutationRate:       0.1,
	FitnessThreshold:   0.7,
	AdaptMinPopulation: 100,
	AdaptInterval:      30,
}

var Score = ScoreConfig{
	CoinPoints:       200,
	BrickPoints:      50,
	StompPoints:      100,
	SparePowerPoints: 1000,
	TimeLimit:        400,
}

var Generator = GeneratorConfig{
	Seed:          0,
	LevelWidth:    5000,
	SegmentWidth:  200,
	GroundY:       500,
	GiantScale:    2,
	GiantAnchorY:  300,
	IceFriction:   0.02,
	ExitX:         4800,
	ExitY:         400,
	WaterLine:     300,
	LavaLine:      550,
	BossRoomBoss:  "boom-boom",
	PhotonZoneLen: 500,
}

// TierColor is the rect color the renderer uses per power tier.
func TierColor(p PowerTier) color.RGBA {
	switch p {
	case PowerFire:
		return color.RGBA{255, 100, 100, 255}
	case PowerBeet:
		return color.RGBA{200, 50, 150, 255}
	case PowerHammer:
		return color.RGBA{100, 100, 100, 255}
	case PowerTanooki:
		return color.RGBA{150, 100, 50, 255}
	default:
		return color.RGBA{255, 0, 0, 255}
	}
}
