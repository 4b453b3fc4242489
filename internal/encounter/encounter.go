// Package encounter defines data-driven opponent records and their attack
// scripts. Opponents are plain data (stats plus textual responses) loaded
// from YAML files; opponent-specific behavior lives entirely in the script
// vocabulary interpreted by the battle engine, never in per-opponent code.
package encounter

// Act is one interaction option the player can choose during the menu phase.
// Acts raise the opponent's mercy gauge; at full mercy the encounter can be
// resolved peacefully.
type Act struct {
	Name          string `yaml:"name"`
	Effect        string `yaml:"effect"` // "check" shows CheckText instead of Text
	Text          string `yaml:"text"`
	MercyIncrease int    `yaml:"mercy_increase"`
}

// WaveEntry is one scheduled hazard-spawn instruction inside an attack.
// Type selects a spawner from the battle engine's wave registry; every other
// field is type-specific and optional, falling back to a documented default
// when absent.
type WaveEntry struct {
	TimeMs int    `yaml:"time"` // Offset from attack start, milliseconds
	Type   string `yaml:"type"`

	// Common parameters
	Count  int     `yaml:"count"`
	Speed  float64 `yaml:"speed"` // Cells per second
	Size   float64 `yaml:"size"`  // Cells
	Damage int     `yaml:"damage"`
	Side   string  `yaml:"side"` // top, bottom, left, right, all

	// Oriented sweeps (bones)
	Orientation string `yaml:"orientation"` // horizontal, vertical

	// Parametric motion (wave)
	Motion       string  `yaml:"motion"` // sine, cosine, both, spiral, eight
	Amplitude    float64 `yaml:"amplitude"`
	Frequency    float64 `yaml:"frequency"`
	Phase        float64 `yaml:"phase"`
	AngularSpeed float64 `yaml:"angular_speed"`
	Growth       float64 `yaml:"growth"`
	Scale        float64 `yaml:"scale"`

	// Beams
	Width    float64 `yaml:"width"`
	AppearMs int     `yaml:"appear"`
	ChargeMs int     `yaml:"charge"`
	FireMs   int     `yaml:"fire"`
	FadeMs   int     `yaml:"fade"`

	// Expanding rings (circle)
	StartRadius float64 `yaml:"start_radius"`
	EndRadius   float64 `yaml:"end_radius"`
}

// Attack is one complete attack phase: a soul mode, a duration, and a
// time-indexed list of wave entries.
type Attack struct {
	Name       string      `yaml:"name"`
	DurationMs int         `yaml:"duration"`  // Attack phase length, milliseconds
	SoulMode   string      `yaml:"soul_mode"` // red, blue, green, purple
	Waves      []WaveEntry `yaml:"waves"`
}

// Encounter is a complete data-driven opponent record.
type Encounter struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	HP             int      `yaml:"hp"`
	Attack         int      `yaml:"attack"`
	Defense        int      `yaml:"defense"`
	Gold           int      `yaml:"gold"`
	Exp            int      `yaml:"exp"`
	SpareThreshold int      `yaml:"spare_threshold"` // Mercy required to spare; 0 means full gauge (100)
	Opener         string   `yaml:"opener"`
	Dialogue       []string `yaml:"dialogue"`
	CheckText      string   `yaml:"check_text"`
	Acts           []Act    `yaml:"acts"`
	Attacks        []Attack `yaml:"attacks"`
}

// MercyRequired returns the mercy gauge value at which this opponent becomes
// spareable. A zero threshold in the data means the full gauge.
func (e Encounter) MercyRequired() int {
	if e.SpareThreshold <= 0 {
		return 100
	}
	return e.SpareThreshold
}

// AttackForTurn returns the attack script for the given turn number,
// cycling through the available attacks. Returns false when the opponent
// has no attacks at all.
func (e Encounter) AttackForTurn(turn int) (Attack, bool) {
	if len(e.Attacks) == 0 {
		return Attack{}, false
	}
	return e.Attacks[turn%len(e.Attacks)], true
}

// DialogueForTurn returns the flavor line shown at the start of the given
// menu turn, cycling through the available lines.
func (e Encounter) DialogueForTurn(turn int) string {
	if len(e.Dialogue) == 0 {
		return ""
	}
	return e.Dialogue[turn%len(e.Dialogue)]
}
