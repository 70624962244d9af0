// Package history stores finished games in MongoDB.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/ardanlabs/connect4/foundation/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	dbName         = "connect4"
	collectionName = "games"
)

// Move represents a single move in a stored game.
type Move struct {
	Column int    `bson:"column"`
	Row    int    `bson:"row"`
	Player string `bson:"player"`
}

// Record represents a finished game.
type Record struct {
	GameID    string    `bson:"game_id"`
	Human     string    `bson:"human"`
	Depth     int       `bson:"depth"`
	Moves     []Move    `bson:"moves"`
	Outcome   string    `bson:"outcome"`
	Winner    string    `bson:"winner"`
	StartedAt time.Time `bson:"started_at"`
	EndedAt   time.Time `bson:"ended_at"`
}

// NewRecord converts a game summary into a record for storage.
func NewRecord(sum game.Summary) Record {
	moves := make([]Move, len(sum.Moves))
	for i, m := range sum.Moves {
		moves[i] = Move{
			Column: m.Column,
			Row:    m.Row,
			Player: m.Player.String(),
		}
	}

	return Record{
		GameID:    sum.GameID,
		Human:     sum.Human.String(),
		Depth:     sum.Depth,
		Moves:     moves,
		Outcome:   sum.Outcome.String(),
		Winner:    sum.Winner.String(),
		StartedAt: sum.StartedAt,
		EndedAt:   sum.EndedAt,
	}
}

// =============================================================================

// Store provides access to the stored games.
type Store struct {
	col *mongo.Collection
}

// NewStore constructs the store, creating the collection and its index if
// they don't already exist.
func NewStore(ctx context.Context, client *mongo.Client) (*Store, error) {
	db := client.Database(dbName)

	col, err := mongodb.CreateCollection(ctx, db, collectionName)
	if err != nil {
		return nil, fmt.Errorf("createCollection: %w", err)
	}

	unique := true
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "game_id", Value: 1}},
		Options: &options.IndexOptions{Unique: &unique},
	}

	if _, err := col.Indexes().CreateOne(ctx, indexModel); err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &Store{col: col}, nil
}

// Record saves the finished game, replacing any record with the same id.
func (s *Store) Record(ctx context.Context, sum game.Summary) error {
	rec := NewRecord(sum)

	filter := bson.D{{Key: "game_id", Value: rec.GameID}}
	opts := options.Replace().SetUpsert(true)

	if _, err := s.col.ReplaceOne(ctx, filter, rec, opts); err != nil {
		return fmt.Errorf("replace: %w", err)
	}

	return nil
}

// Recent returns the most recently finished games, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "ended_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := s.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	defer cur.Close(ctx)

	var recs []Record
	if err := cur.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("all: %w", err)
	}

	return recs, nil
}
