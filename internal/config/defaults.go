package config

import (
	_ "embed"
)

//go:embed defaults/battle.yaml
var defaultBattleYAML []byte

// DefaultBattleConfig returns the default battle tuning.
// Kept in sync with defaults/battle.yaml; used as the last-resort fallback
// if the embedded YAML somehow fails to parse.
func DefaultBattleConfig() BattleConfig {
	return BattleConfig{
		Soul: SoulConfig{
			Speed:        14,
			Size:         1.6,
			Gravity:      60,
			JumpImpulse:  22,
			MaxFallSpeed: 30,
			LineSpeed:    16,
		},
		Box: BoxConfig{
			Width:   36,
			Height:  14,
			Padding: 4,
		},
		Combat: CombatConfig{
			MaxHP:         20,
			AttackPower:   10,
			IFrames:       60,
			GrazeMargin:   1.2,
			GrazeTP:       2,
			MenuDelayMs:   900,
			ProjectileCap: 150,
			DamageScale:   1.0,
			SpeedScale:    1.0,
		},
		Items: []ItemConfig{
			{Name: "Monster Candy", Heal: 10, Text: "* You eat the Monster Candy. Non-licorice flavor."},
			{Name: "Spider Donut", Heal: 12, Text: "* You eat the Spider Donut. Don't ask what it's made of."},
			{Name: "Butterscotch Pie", Heal: 99, Text: "* You eat the Butterscotch Pie. It tastes like home."},
		},
	}
}
