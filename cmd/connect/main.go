package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/ardanlabs/connect4/cmd/connect/ai"
	"github.com/ardanlabs/connect4/cmd/connect/board"
	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/ardanlabs/connect4/cmd/connect/history"
	"github.com/ardanlabs/connect4/foundation/logger"
	"github.com/ardanlabs/connect4/foundation/mongodb"
	"github.com/rs/zerolog"
)

var (
	depth     int
	first     string
	human     string
	rankAll   bool
	mongoHost string
	mongoUser string
	mongoPass string
	recent    int
	llmModel  string
	llmSystem string
	sound     bool
	imagesDir string
	logFile   string
	debugLog  bool
)

func init() {
	flag.IntVar(&depth, "depth", game.DefaultDepth, "search depth in plies for the AI")
	flag.StringVar(&first, "first", game.FirstRandom, "who moves first: human, ai or random")
	flag.StringVar(&human, "human", game.Players.Blue.String(), "color of the human player: Blue or Red")
	flag.BoolVar(&rankAll, "rank-all", false, "score every root move exactly instead of pruning at the root")
	flag.StringVar(&mongoHost, "mongo", "", "mongodb uri for storing finished games, empty to disable")
	flag.StringVar(&mongoUser, "mongo-user", "", "mongodb user name")
	flag.StringVar(&mongoPass, "mongo-pass", "", "mongodb password")
	flag.IntVar(&recent, "recent", 0, "print the most recent stored games and exit, needs -mongo")
	flag.StringVar(&llmModel, "llm", "", "model for the AI commentary, empty to disable")
	flag.StringVar(&llmSystem, "llm-system", ai.SystemOllama, "system that provides the llm")
	flag.BoolVar(&sound, "sound", false, "speak the AI commentary")
	flag.StringVar(&imagesDir, "images", "", "directory for images of finished games, empty to disable")
	flag.StringVar(&logFile, "log", "log.txt", "file to write logs to")
	flag.BoolVar(&debugLog, "debug", false, "write debug logs")

	flag.Parse()
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {

	// -------------------------------------------------------------------------
	// Construct the logger.

	zlog, closeLog, err := logger.NewFile(logFile, "connect4", debugLog)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer closeLog()

	zlog.Info().Int("depth", depth).Str("first", first).Bool("rankAll", rankAll).Msg("startup")
	defer func() { zlog.Info().Msg("shutdown") }()

	// -------------------------------------------------------------------------
	// Connect to mongo.

	var recorder board.Recorder

	if mongoHost != "" {
		fmt.Println("Connecting to MongoDB ...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongodb.Connect(ctx, mongoHost, mongoUser, mongoPass)
		if err != nil {
			return fmt.Errorf("mongo connect: %w", err)
		}
		defer client.Disconnect(context.Background())

		store, err := history.NewStore(ctx, client)
		if err != nil {
			return fmt.Errorf("history store: %w", err)
		}

		if recent > 0 {
			return printRecent(ctx, store, recent)
		}

		recorder = store
	}

	// -------------------------------------------------------------------------
	// Construct the AI api.

	var chat ai.Chatter

	if llmModel != "" {
		fmt.Println("Establish AI support ...")

		chat, err = ai.CreateChatter(llmSystem, llmModel)
		if err != nil {
			return fmt.Errorf("create chatter: %w", err)
		}
	}

	aiPlayer := ai.New(&zlog, chat, sound)

	// -------------------------------------------------------------------------
	// Construct the game.

	humanPlayer, err := game.ParsePlayer(human)
	if err != nil {
		return fmt.Errorf("human: %w", err)
	}

	g, err := game.New(game.Config{
		Depth:   depth,
		First:   first,
		Human:   humanPlayer,
		RankAll: rankAll,
		Log:     &zlog,
	})
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	return gaming(&zlog, g, aiPlayer, recorder)
}

// =============================================================================

func printRecent(ctx context.Context, store *history.Store, limit int) error {
	recs, err := store.Recent(ctx, limit)
	if err != nil {
		return fmt.Errorf("recent games: %w", err)
	}

	for _, rec := range recs {
		fmt.Printf("%s  %-9s  moves: %2d  depth: %d  human: %s  %s\n",
			rec.EndedAt.Format(time.DateTime), rec.Outcome, len(rec.Moves), rec.Depth, rec.Human, rec.GameID)
	}

	return nil
}

func gaming(log *zerolog.Logger, g *game.Game, aiPlayer *ai.AI, recorder board.Recorder) error {

	// -------------------------------------------------------------------------
	// Create the board and initialize the display

	board, err := board.New(board.Config{
		Log:       log,
		Game:      g,
		AI:        aiPlayer,
		Recorder:  recorder,
		ImagesDir: imagesDir,
	})
	if err != nil {
		return fmt.Errorf("new board: %w", err)
	}
	defer board.Shutdown()

	// -------------------------------------------------------------------------
	// Start handling board input

	<-board.Run()

	return nil
}
