package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/creature-battle/internal/clients/catalogdata"
	"github.com/KirkDiggler/creature-battle/internal/dice"
	"github.com/KirkDiggler/creature-battle/internal/domain/game/combat"
	"github.com/KirkDiggler/creature-battle/internal/services"
	battleService "github.com/KirkDiggler/creature-battle/internal/services/battle"
)

type options struct {
	dataDir  string
	speciesA string
	speciesB string
	level    int
	seed     int64
	turns    int
}

func main() {
	_ = godotenv.Load()

	opts := options{}
	flag.StringVar(&opts.dataDir, "data", envOrDefault("CATALOG_DIR", "data"), "directory holding species.json, moves.json and typeChart.json")
	flag.StringVar(&opts.speciesA, "a", "charizard", "species for side A")
	flag.StringVar(&opts.speciesB, "b", "blastoise", "species for side B")
	flag.IntVar(&opts.level, "level", battleService.DefaultLevel, "level for both combatants")
	flag.Int64Var(&opts.seed, "seed", 0, "dice seed, 0 seeds from the clock")
	flag.IntVar(&opts.turns, "turns", 50, "maximum number of turns")
	flag.Parse()

	// Service logs are discarded; the battle log goes to stdout
	log.SetOutput(io.Discard)

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "battlesim: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	if opts.turns < 1 {
		return fmt.Errorf("turns must be at least 1, got %d", opts.turns)
	}

	client, err := catalogdata.New(&catalogdata.Config{Dir: opts.dataDir})
	if err != nil {
		return err
	}
	cat, err := client.Load(ctx)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	roller := dice.NewSeededRoller(seed)

	provider := services.NewProvider(&services.ProviderConfig{
		Catalog:      cat,
		Roller:       roller,
		DefaultLevel: opts.level,
	})
	svc := provider.BattleService

	b, err := svc.StartBattle(ctx, &battleService.StartBattleInput{
		OwnerID: "battlesim",
		TeamA:   []combat.RosterEntry{{SpeciesID: opts.speciesA, Level: opts.level}},
		TeamB:   []combat.RosterEntry{{SpeciesID: opts.speciesB, Level: opts.level}},
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Seed %d: %s (Lv%d, %d HP) vs %s (Lv%d, %d HP)\n",
		seed, b.A.Name(), b.A.Level(), b.A.MaxHP(), b.B.Name(), b.B.Level(), b.B.MaxHP())

	for !b.IsOver() && b.Turn <= opts.turns {
		moveA, err := battleService.ChooseMove(b.A, roller)
		if err != nil {
			return err
		}

		outcome, err := svc.SubmitMove(ctx, b.ID, moveA)
		if err != nil {
			return err
		}
		b = outcome.Battle
		printLines(out, outcome.Result.Turn, outcome.Result.Lines)

		if b.IsOver() {
			break
		}
		ended, err := svc.EndTurn(ctx, b.ID)
		if err != nil {
			return err
		}
		b = ended.Battle
		printLines(out, ended.Result.Turn, ended.Result.Lines)
	}

	switch side, ok := b.WinnerSide(); {
	case ok:
		fmt.Fprintf(out, "Winner: %s\n", b.Combatant(side).Name())
	case b.IsOver():
		fmt.Fprintln(out, "Result: draw")
	default:
		fmt.Fprintf(out, "Result: no winner after %d turns\n", opts.turns)
	}

	return nil
}

// printLines writes lines as they resolve. Battle.Log keeps only the newest
// entries, so a long simulation cannot be printed from it afterwards.
func printLines(out io.Writer, turn int, lines []string) {
	for _, line := range lines {
		fmt.Fprintf(out, "Turn %d: %s\n", turn, line)
	}
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
