package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/trentd187/players-api/internal/models"
)

// playerDocument is the BSON shape of a player in the players collection.
// ID is omitempty so the same struct can be used as a $set payload without touching _id.
type playerDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Sport     string             `bson:"sport"`
	Team      string             `bson:"team"`
	Age       int                `bson:"age"`
	Rating    float64            `bson:"rating"`
	IsActive  bool               `bson:"isActive"`
}

func newPlayerDocument(p *models.Player) playerDocument {
	return playerDocument{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Sport:     p.Sport,
		Team:      p.Team,
		Age:       p.Age,
		Rating:    p.Rating,
		IsActive:  p.IsActive,
	}
}

func (d playerDocument) toModel() models.Player {
	return models.Player{
		ID:        d.ID.Hex(),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Sport:     d.Sport,
		Team:      d.Team,
		Age:       d.Age,
		Rating:    d.Rating,
		IsActive:  d.IsActive,
	}
}

// MongoStore keeps players in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// ConnectMongo connects to the server at uri, pings the primary and selects
// dbName.players. The driver pools connections internally; one client serves
// every request.
func ConnectMongo(ctx context.Context, uri, dbName string, log zerolog.Logger) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.Info().Str("database", dbName).Str("collection", PlayersCollection).Msg("Connected to MongoDB")
	return &MongoStore{
		client: client,
		coll:   client.Database(dbName).Collection(PlayersCollection),
	}, nil
}

// ValidID accepts 24-character hexadecimal ObjectIDs.
func (s *MongoStore) ValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

func (s *MongoStore) List(ctx context.Context) ([]models.Player, error) {
	cur, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var docs []playerDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	players := make([]models.Player, 0, len(docs))
	for _, d := range docs {
		players = append(players, d.toModel())
	}
	return players, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*models.Player, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc playerDocument
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p := doc.toModel()
	return &p, nil
}

func (s *MongoStore) Create(ctx context.Context, p *models.Player) (string, error) {
	doc := newPlayerDocument(p)
	doc.ID = primitive.NewObjectID()

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return doc.ID.Hex(), nil
}

func (s *MongoStore) Update(ctx context.Context, id string, p *models.Player) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": newPlayerDocument(p)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
