package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBattle loads the battle tuning configuration.
// Search order: customPath -> ~/.soulbox/configs/battle.yaml ->
// ./configs/battle.yaml -> embedded default.
func LoadBattle(customPath string) (BattleConfig, error) {
	var cfg BattleConfig

	// Custom path is authoritative: failures there are reported, not skipped
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: reading %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parsing %s: %w", customPath, err)
		}
		return fillDefaults(cfg), nil
	}

	if userPath := userConfigPath("battle.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return fillDefaults(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile("configs/battle.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return fillDefaults(cfg), nil
		}
	}

	if err := yaml.Unmarshal(defaultBattleYAML, &cfg); err != nil {
		return DefaultBattleConfig(), nil
	}
	return fillDefaults(cfg), nil
}

// fillDefaults replaces zero values in a partially specified config with the
// built-in defaults, so a sparse user file only overrides what it names.
func fillDefaults(cfg BattleConfig) BattleConfig {
	def := DefaultBattleConfig()

	if cfg.Soul.Speed == 0 {
		cfg.Soul.Speed = def.Soul.Speed
	}
	if cfg.Soul.Size == 0 {
		cfg.Soul.Size = def.Soul.Size
	}
	if cfg.Soul.Gravity == 0 {
		cfg.Soul.Gravity = def.Soul.Gravity
	}
	if cfg.Soul.JumpImpulse == 0 {
		cfg.Soul.JumpImpulse = def.Soul.JumpImpulse
	}
	if cfg.Soul.MaxFallSpeed == 0 {
		cfg.Soul.MaxFallSpeed = def.Soul.MaxFallSpeed
	}
	if cfg.Soul.LineSpeed == 0 {
		cfg.Soul.LineSpeed = def.Soul.LineSpeed
	}

	if cfg.Box.Width == 0 {
		cfg.Box.Width = def.Box.Width
	}
	if cfg.Box.Height == 0 {
		cfg.Box.Height = def.Box.Height
	}
	if cfg.Box.Padding == 0 {
		cfg.Box.Padding = def.Box.Padding
	}

	if cfg.Combat.MaxHP == 0 {
		cfg.Combat.MaxHP = def.Combat.MaxHP
	}
	if cfg.Combat.AttackPower == 0 {
		cfg.Combat.AttackPower = def.Combat.AttackPower
	}
	if cfg.Combat.IFrames == 0 {
		cfg.Combat.IFrames = def.Combat.IFrames
	}
	if cfg.Combat.GrazeMargin == 0 {
		cfg.Combat.GrazeMargin = def.Combat.GrazeMargin
	}
	if cfg.Combat.GrazeTP == 0 {
		cfg.Combat.GrazeTP = def.Combat.GrazeTP
	}
	if cfg.Combat.MenuDelayMs == 0 {
		cfg.Combat.MenuDelayMs = def.Combat.MenuDelayMs
	}
	if cfg.Combat.ProjectileCap == 0 {
		cfg.Combat.ProjectileCap = def.Combat.ProjectileCap
	}
	if cfg.Combat.DamageScale == 0 {
		cfg.Combat.DamageScale = def.Combat.DamageScale
	}
	if cfg.Combat.SpeedScale == 0 {
		cfg.Combat.SpeedScale = def.Combat.SpeedScale
	}

	if len(cfg.Items) == 0 {
		cfg.Items = def.Items
	}

	return cfg
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".soulbox", "configs", filename)
}
