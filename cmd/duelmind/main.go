package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"duelmind/internal/ai"
	"duelmind/internal/catalog"
	"duelmind/internal/game"
	"duelmind/internal/log"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "play":
		runPlay(os.Args[2:])
	case "sim":
		runSim(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  duelmind play [--cards FILE] [--depth N] [--profile NAME] [--deck-size N] [--seed N]")
	fmt.Println("  duelmind sim  [--cards FILE] [--depth N] [--depth2 N] [--deck-size N] [--seed N] [--games N]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  play    Play an interactive duel against the AI")
	fmt.Println("  sim     Pit two AI profiles against each other")
	fmt.Println()
	fmt.Println("Depth tiers: 2 easy, 4 normal, 6 hard, 8 expert")
}

func setupLogging(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).Level(level)
}

func runPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	cardsFile := fs.String("cards", "cards.yaml", "path to the card catalog file")
	depth := fs.Int("depth", 0, "AI search depth (overrides the profile)")
	profilesFile := fs.String("profiles", "profiles.yaml", "path to the AI profiles file")
	profile := fs.String("profile", "", "named AI profile (easy/normal/hard/expert)")
	deckSize := fs.Int("deck-size", 20, "cards per deck")
	seed := fs.Int64("seed", 0, "deck shuffle seed (0 = time-based)")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Parse(args)
	setupLogging(*verbose)

	cat, r := loadCatalog(*cardsFile, *seed)
	deck0, deck1 := cat.Deal(r, *deckSize)

	cfg := loadProfile(*profilesFile, *profile)
	if *depth > 0 {
		cfg.Depth = *depth
	}

	duelID := uuid.NewString()
	zlog.Info().Str("duel", duelID).Int("depth", cfg.Depth).Int("deck_size", len(deck0)).Msg("starting duel")

	duel := game.NewDuel(game.DuelConfig{
		Catalog:   cat,
		Deck0:     deck0,
		Deck1:     deck1,
		Logger:    log.NewTextLogger(os.Stdout),
		NoShuffle: true, // Deal already shuffled
	}, newHumanController(os.Stdin, os.Stdout), ai.NewController(cfg, 1))

	winner, err := duel.Run(context.Background())
	if err != nil {
		zlog.Fatal().Err(err).Str("duel", duelID).Msg("duel aborted")
	}
	fmt.Println()
	fmt.Println(duel.State.Result)
	zlog.Info().Str("duel", duelID).Int("winner", winner).Msg("duel finished")
}

func runSim(args []string) {
	fs := flag.NewFlagSet("sim", flag.ExitOnError)
	cardsFile := fs.String("cards", "cards.yaml", "path to the card catalog file")
	depth := fs.Int("depth", ai.DepthNormal, "player 1 search depth")
	depth2 := fs.Int("depth2", ai.DepthEasy, "player 2 search depth")
	deckSize := fs.Int("deck-size", 20, "cards per deck")
	seed := fs.Int64("seed", 0, "deck shuffle seed (0 = time-based)")
	games := fs.Int("games", 1, "number of duels to run")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Parse(args)
	setupLogging(*verbose)

	cat, r := loadCatalog(*cardsFile, *seed)

	cfg0 := ai.DefaultConfig()
	cfg0.Depth = *depth
	cfg1 := ai.DefaultConfig()
	cfg1.Depth = *depth2

	wins := [2]int{}
	draws := 0
	for i := 0; i < *games; i++ {
		deck0, deck1 := cat.Deal(r, *deckSize)
		duelID := uuid.NewString()

		duel := game.NewDuel(game.DuelConfig{
			Catalog:   cat,
			Deck0:     deck0,
			Deck1:     deck1,
			NoShuffle: true,
		}, ai.NewController(cfg0, 0), ai.NewController(cfg1, 1))

		winner, err := duel.Run(context.Background())
		if err != nil {
			zlog.Fatal().Err(err).Str("duel", duelID).Msg("duel aborted")
		}
		if winner >= 0 {
			wins[winner]++
		} else {
			draws++
		}
		zlog.Info().Str("duel", duelID).Int("game", i+1).Int("winner", winner).
			Int("turns", duel.State.Turn).Str("result", duel.State.Result).Msg("duel finished")
	}

	fmt.Printf("depth %d vs depth %d over %d games: %d / %d wins, %d draws\n",
		*depth, *depth2, *games, wins[0], wins[1], draws)
}

// loadProfile resolves the AI config: defaults, or a named profile from
// the profiles file.
func loadProfile(path, name string) ai.Config {
	if name == "" {
		return ai.DefaultConfig()
	}
	profiles, err := ai.LoadProfiles(path)
	if err != nil {
		zlog.Fatal().Err(err).Str("path", path).Msg("cannot load AI profiles")
	}
	cfg, ok := profiles[name]
	if !ok {
		zlog.Fatal().Str("profile", name).Str("path", path).Msg("no such AI profile")
	}
	return cfg
}

func loadCatalog(path string, seed int64) (*catalog.Catalog, *rand.Rand) {
	cat, err := catalog.LoadFile(path)
	if err != nil {
		zlog.Fatal().Err(err).Str("path", path).Msg("cannot load card catalog")
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	zlog.Debug().Int("cards", cat.NumCards()).Int("fusions", cat.NumFusions()).Int64("seed", seed).Msg("catalog loaded")
	return cat, rand.New(rand.NewSource(seed))
}

// humanController prompts for actions on the terminal.
type humanController struct {
	in  *bufio.Scanner
	out *os.File
}

func newHumanController(in *os.File, out *os.File) *humanController {
	return &humanController{in: bufio.NewScanner(in), out: out}
}

func (h *humanController) ChooseAction(ctx context.Context, state *game.GameState, actions []game.Action) (game.Action, error) {
	fmt.Fprintln(h.out)
	h.printState(state)
	if hint := playHint(state); hint != "" {
		fmt.Fprintln(h.out, hint)
	}
	fmt.Fprintln(h.out, "Your move:")
	for i, a := range actions {
		fmt.Fprintf(h.out, "  [%d] %s\n", i+1, a.Describe(state, state.TurnPlayer))
	}

	for {
		fmt.Fprint(h.out, "> ")
		if !h.in.Scan() {
			return game.Action{}, fmt.Errorf("input closed")
		}
		text := strings.TrimSpace(h.in.Text())
		n, err := strconv.Atoi(text)
		if err != nil || n < 1 || n > len(actions) {
			fmt.Fprintf(h.out, "enter a number between 1 and %d\n", len(actions))
			continue
		}
		return actions[n-1], nil
	}
}

func (h *humanController) printState(state *game.GameState) {
	you := state.Players[0]
	rival := state.Players[1]
	fmt.Fprintf(h.out, "Turn %d | You: %d LP, %d in deck | AI: %d LP, %d in hand, %d in deck\n",
		state.Turn, you.LifePoints, you.DeckCount(), rival.LifePoints, rival.HandCount(), rival.DeckCount())
	fmt.Fprintf(h.out, "  AI field:   %s\n", rival.Field)
	fmt.Fprintf(h.out, "  Your field: %s\n", you.Field)
	fmt.Fprintln(h.out, "  Your hand:")
	for i, ci := range you.Hand {
		fmt.Fprintf(h.out, "    %d. %s\n", i+1, ci.Card)
	}
}

func (h *humanController) Notify(ctx context.Context, event log.GameEvent) error {
	return nil
}

// playHint suggests a position and star for the strongest playable hand
// card, using the same heuristics the search orders moves with.
func playHint(state *game.GameState) string {
	you := state.Players[0]
	if you.Field != nil || len(you.Hand) == 0 {
		return ""
	}
	best := you.Hand[0].Card
	for _, ci := range you.Hand[1:] {
		if ci.Card.ATK > best.ATK {
			best = ci.Card
		}
	}
	pos, slot := ai.SuggestPlay(best, state.Players[1].Field)
	star := best.Star1
	if slot == 2 {
		star = best.Star2
	}
	return fmt.Sprintf("Hint: %s looks strongest in %s under %s", best.Name, pos, star)
}
