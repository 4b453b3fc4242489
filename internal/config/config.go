// Package config provides YAML-based battle tuning configuration and
// difficulty presets.
package config

// BattleConfig contains all tuning for a battle session.
type BattleConfig struct {
	Soul   SoulConfig   `yaml:"soul"`
	Box    BoxConfig    `yaml:"box"`
	Combat CombatConfig `yaml:"combat"`
	Items  []ItemConfig `yaml:"items"`
}

// SoulConfig defines the player avatar's movement parameters.
type SoulConfig struct {
	Speed        float64 `yaml:"speed"`         // Cells per second in free mode
	Size         float64 `yaml:"size"`          // Hitbox edge length in cells
	Gravity      float64 `yaml:"gravity"`       // Cells per second squared (blue mode)
	JumpImpulse  float64 `yaml:"jump_impulse"`  // Upward velocity on jump, cells per second
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	LineSpeed    float64 `yaml:"line_speed"` // Cells per second along the line (purple mode)
}

// BoxConfig defines the battle box (arena) geometry.
type BoxConfig struct {
	Width   float64 `yaml:"width"`   // Cells
	Height  float64 `yaml:"height"`  // Cells
	Padding float64 `yaml:"padding"` // Cull margin outside the box, cells
}

// CombatConfig defines damage, defense, and reward tuning.
type CombatConfig struct {
	MaxHP         int     `yaml:"max_hp"`
	AttackPower   int     `yaml:"attack_power"`   // Player's base fight damage
	IFrames       int     `yaml:"iframes"`        // Invulnerability window after a hit, frames
	GrazeMargin   float64 `yaml:"graze_margin"`   // Hitbox expansion for grazes, cells
	GrazeTP       int     `yaml:"graze_tp"`       // TP awarded per grazed projectile
	MenuDelayMs   int     `yaml:"menu_delay"`     // Delay between menu action and attack phase
	ProjectileCap int     `yaml:"projectile_cap"` // Fixed projectile manager capacity
	DamageScale   float64 `yaml:"damage_scale"`   // Incoming damage multiplier (difficulty)
	SpeedScale    float64 `yaml:"speed_scale"`    // Projectile speed multiplier (difficulty)
}

// ItemConfig is one consumable healing item in the player's inventory.
type ItemConfig struct {
	Name string `yaml:"name"`
	Heal int    `yaml:"heal"`
	Text string `yaml:"text"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts the config for a difficulty preset.
// Unknown presets leave the config unchanged.
func ApplyPreset(cfg *BattleConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Combat.DamageScale = 0.5
		cfg.Combat.SpeedScale = 0.8
		cfg.Combat.IFrames = 90
	case DifficultyNormal:
		cfg.Combat.DamageScale = 1.0
		cfg.Combat.SpeedScale = 1.0
	case DifficultyHard:
		cfg.Combat.DamageScale = 1.5
		cfg.Combat.SpeedScale = 1.25
		cfg.Combat.IFrames = 30
	}
}
