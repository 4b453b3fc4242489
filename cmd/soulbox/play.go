package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kazarin/soulbox/internal/battle"
	"github.com/kazarin/soulbox/internal/config"
	"github.com/kazarin/soulbox/internal/core"
	"github.com/kazarin/soulbox/internal/encounter"
	"github.com/kazarin/soulbox/internal/platform/tui"
	"github.com/kazarin/soulbox/internal/storage"
)

var (
	flagConfig       string
	flagDifficulty   string
	flagEncounterDir string
)

var playCmd = &cobra.Command{
	Use:   "play <encounter>",
	Short: "Fight an encounter",
	Long: `Start a battle against the specified encounter.

Controls:
  Arrows/WASD  - Move the soul
  Space        - Jump (blue soul)
  Z/Enter      - Confirm
  X/Esc        - Back
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Half damage, slower waves, longer invulnerability
  normal - Standard tuning
  hard   - Extra damage, faster waves, shorter invulnerability

Examples:
  soulbox play froggit
  soulbox play bonehead --difficulty easy
  soulbox play webweaver --config ./my-battle.yaml
  soulbox play custom --encounters ./my-encounters/`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom battle config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagEncounterDir, "encounters", "", "Directory of custom encounter YAML files")
}

func runPlay(cmd *cobra.Command, args []string) {
	encounterID := args[0]

	loader := encounter.NewLoader(flagEncounterDir)
	enc, err := loader.LoadByID(encounterID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown encounter %q\n", encounterID)
		fmt.Fprintln(os.Stderr, "Run 'soulbox list' to see available encounters.")
		os.Exit(1)
	}

	cfg, err := config.LoadBattle(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}

	// Open battle history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open battle database: %v\n", err)
		// Continue without storage - battle still works
		store = nil
	}

	var recorder battle.Recorder
	if store != nil {
		recorder = store
	}

	b := battle.NewBattle(cfg, enc, battle.Options{
		Runtime:  rc,
		Logger:   log.New(os.Stderr),
		Recorder: recorder,
	})

	outcome, runErr := tui.Run(b, rc)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running battle: %v\n", runErr)
		os.Exit(1)
	}

	switch outcome {
	case battle.OutcomeVictory:
		if b.Spared() {
			fmt.Printf("You spared %s.\n", enc.Name)
		} else {
			fmt.Printf("You defeated %s. Earned %d gold and %d EXP.\n", enc.Name, enc.Gold, enc.Exp)
		}
	case battle.OutcomeDefeat:
		fmt.Println("You were defeated. Stay determined...")
	case battle.OutcomeFlee:
		fmt.Println("You fled the battle.")
	}
}
