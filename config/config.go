package config

import (
	"errors"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/fps-cuber/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = eris.New("invalid config")

// Config holds all tunables of a game session
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Player  PlayerConfig  `yaml:"player"`
	Weapon  WeaponConfig  `yaml:"weapon"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Terrain TerrainConfig `yaml:"terrain"`
	Physics PhysicsConfig `yaml:"physics"`
	Audio   AudioConfig   `yaml:"audio"`
	Input   InputConfig   `yaml:"input"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig controls loop cadence and randomness
type GameConfig struct {
	Seed      int64 `yaml:"seed"` // 0 picks a time-based seed
	FrameRate int   `yaml:"frame_rate"`
}

// PlayerConfig holds movement and health settings
type PlayerConfig struct {
	Speed          float64 `yaml:"speed"`
	JumpSpeed      float64 `yaml:"jump_speed"`
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
	GroundHeight   float64 `yaml:"ground_height"`
	Mass           float64 `yaml:"mass"`
	MaxHealth      int     `yaml:"max_health"`
	AggroThreshold int     `yaml:"aggro_threshold"`
}

// WeaponConfig holds bullet settings
type WeaponConfig struct {
	FireInterval   time.Duration `yaml:"fire_interval"`
	BulletSpeed    float64       `yaml:"bullet_speed"`
	BulletRadius   float64       `yaml:"bullet_radius"`
	BulletMass     float64       `yaml:"bullet_mass"`
	BulletLifetime time.Duration `yaml:"bullet_lifetime"`
}

// SpawnConfig holds target spawning settings
type SpawnConfig struct {
	CubeChance      float64 `yaml:"cube_chance"`
	SphereChance    float64 `yaml:"sphere_chance"`
	CubeSizeMin     float64 `yaml:"cube_size_min"`
	CubeSizeMax     float64 `yaml:"cube_size_max"`
	SphereRadiusMin float64 `yaml:"sphere_radius_min"`
	SphereRadiusMax float64 `yaml:"sphere_radius_max"`
	Area            float64 `yaml:"area"`
	Density         float64 `yaml:"density"`
	MaxTargets      int     `yaml:"max_targets"` // 0 is uncapped
	HostilityForce  float64 `yaml:"hostility_force"`
}

// TerrainConfig holds ground generation settings
type TerrainConfig struct {
	GridSize   int     `yaml:"grid_size"`
	TileSize   float64 `yaml:"tile_size"`
	TileChance float64 `yaml:"tile_chance"`
}

// PhysicsConfig holds engine settings
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	Substeps      int     `yaml:"substeps"`
	LinearDamping float64 `yaml:"linear_damping"`
	Friction      float64 `yaml:"friction"`
}

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// InputConfig holds terminal key-hold and look settings
type InputConfig struct {
	InitialHold      time.Duration `yaml:"initial_hold"`
	RepeatHold       time.Duration `yaml:"repeat_hold"`
	LookStep         float64       `yaml:"look_step"`
	MouseSensitivity float64       `yaml:"mouse_sensitivity"`
}

// LogConfig holds debug log settings
type LogConfig struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Game: GameConfig{
			FrameRate: parameter.FrameRate,
		},
		Player: PlayerConfig{
			Speed:          parameter.PlayerSpeed,
			JumpSpeed:      parameter.JumpSpeed,
			MaxFallSpeed:   parameter.MaxFallSpeed,
			GroundHeight:   parameter.GroundHeight,
			Mass:           parameter.PlayerMass,
			MaxHealth:      parameter.MaxHealth,
			AggroThreshold: parameter.AggroThreshold,
		},
		Weapon: WeaponConfig{
			FireInterval:   parameter.FireInterval,
			BulletSpeed:    parameter.BulletSpeed,
			BulletRadius:   parameter.BulletRadius,
			BulletMass:     parameter.BulletMass,
			BulletLifetime: parameter.BulletLifetime,
		},
		Spawn: SpawnConfig{
			CubeChance:      parameter.CubeSpawnChance,
			SphereChance:    parameter.SphereSpawnChance,
			CubeSizeMin:     parameter.CubeSizeMin,
			CubeSizeMax:     parameter.CubeSizeMax,
			SphereRadiusMin: parameter.SphereRadiusMin,
			SphereRadiusMax: parameter.SphereRadiusMax,
			Area:            parameter.SpawnAreaSize,
			Density:         parameter.TargetDensity,
			MaxTargets:      parameter.MaxTargets,
			HostilityForce:  parameter.HostilityForce,
		},
		Terrain: TerrainConfig{
			GridSize:   parameter.TerrainGridSize,
			TileSize:   parameter.TerrainTileSize,
			TileChance: parameter.TerrainTileChance,
		},
		Physics: PhysicsConfig{
			Gravity:       parameter.Gravity,
			Substeps:      parameter.PhysicsSubsteps,
			LinearDamping: parameter.LinearDamping,
			Friction:      parameter.Friction,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.MasterVolume,
		},
		Input: InputConfig{
			InitialHold:      parameter.KeyInitialHold,
			RepeatHold:       parameter.KeyRepeatHold,
			LookStep:         parameter.LookStep,
			MouseSensitivity: parameter.MouseSensitivity,
		},
		Log: LogConfig{
			Dir: parameter.LogDir,
		},
	}
}

// Load reads a YAML file over the defaults
// A missing file is not an error and yields Default()
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, eris.Wrapf(err, "reading config %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, eris.Wrapf(err, "parsing config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, eris.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Game.FrameRate <= 0:
		return eris.Wrap(ErrInvalid, "game.frame_rate must be positive")
	case c.Player.Speed < 0:
		return eris.Wrap(ErrInvalid, "player.speed must not be negative")
	case c.Player.Mass <= 0:
		return eris.Wrap(ErrInvalid, "player.mass must be positive")
	case c.Player.MaxHealth <= 0:
		return eris.Wrap(ErrInvalid, "player.max_health must be positive")
	case c.Player.AggroThreshold <= 0:
		return eris.Wrap(ErrInvalid, "player.aggro_threshold must be positive")
	case c.Weapon.FireInterval <= 0:
		return eris.Wrap(ErrInvalid, "weapon.fire_interval must be positive")
	case c.Weapon.BulletLifetime <= 0:
		return eris.Wrap(ErrInvalid, "weapon.bullet_lifetime must be positive")
	case c.Weapon.BulletRadius <= 0 || c.Weapon.BulletMass <= 0:
		return eris.Wrap(ErrInvalid, "weapon bullet radius and mass must be positive")
	case !isProbability(c.Spawn.CubeChance) || !isProbability(c.Spawn.SphereChance):
		return eris.Wrap(ErrInvalid, "spawn chances must be within [0,1]")
	case c.Spawn.CubeSizeMin <= 0 || c.Spawn.CubeSizeMax < c.Spawn.CubeSizeMin:
		return eris.Wrapf(ErrInvalid, "spawn cube size range [%g,%g]", c.Spawn.CubeSizeMin, c.Spawn.CubeSizeMax)
	case c.Spawn.SphereRadiusMin <= 0 || c.Spawn.SphereRadiusMax < c.Spawn.SphereRadiusMin:
		return eris.Wrapf(ErrInvalid, "spawn sphere radius range [%g,%g]", c.Spawn.SphereRadiusMin, c.Spawn.SphereRadiusMax)
	case c.Spawn.Density <= 0:
		return eris.Wrap(ErrInvalid, "spawn.density must be positive")
	case c.Spawn.MaxTargets < 0:
		return eris.Wrap(ErrInvalid, "spawn.max_targets must not be negative")
	case c.Terrain.GridSize <= 0 || c.Terrain.TileSize <= 0:
		return eris.Wrap(ErrInvalid, "terrain grid and tile size must be positive")
	case !isProbability(c.Terrain.TileChance):
		return eris.Wrap(ErrInvalid, "terrain.tile_chance must be within [0,1]")
	case c.Physics.Substeps <= 0:
		return eris.Wrap(ErrInvalid, "physics.substeps must be positive")
	case c.Physics.LinearDamping < 0 || c.Physics.LinearDamping >= 1:
		return eris.Wrap(ErrInvalid, "physics.linear_damping must be within [0,1)")
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return eris.Wrap(ErrInvalid, "audio.volume must be within [0,1]")
	case c.Input.InitialHold <= 0 || c.Input.RepeatHold <= 0:
		return eris.Wrap(ErrInvalid, "input hold durations must be positive")
	}
	return nil
}

// FrameInterval returns the wall time between frames
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Game.FrameRate)
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
