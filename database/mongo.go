package database

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fooddelivery/config"
)

var Client *mongo.Client
var DB *mongo.Database

func ConnectMongo() {
	uri := config.MustGetEnv("MONGO_URI")
	dbName := config.GetEnv("DB_NAME", "fooddelivery")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logrus.Fatalf("mongodb connection error: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		logrus.Fatalf("mongodb ping error: %v", err)
	}

	Client = client
	DB = client.Database(dbName)

	logrus.WithField("db", dbName).Info("connected to MongoDB")
}

var UserCollection *mongo.Collection
var RestaurantCollection *mongo.Collection
var ItemCollection *mongo.Collection
var CartCollection *mongo.Collection
var CredentialCollection *mongo.Collection

func InitCollections() {
	UserCollection = DB.Collection("users")
	RestaurantCollection = DB.Collection("restaurants")
	ItemCollection = DB.Collection("items")
	CartCollection = DB.Collection("shoppingCarts")
	CredentialCollection = DB.Collection("credentials")
}

// EnsureIndexes sets up the indexes the services rely on. The unique index
// on shoppingCarts.userId is what makes concurrent get-or-create safe: the
// loser of the race gets a duplicate key error and re-reads the winner's cart.
func EnsureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := CartCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logrus.Fatalf("create shoppingCarts.userId index: %v", err)
	}

	_, err = ItemCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "restaurantId", Value: 1}},
	})
	if err != nil {
		logrus.Fatalf("create items.restaurantId index: %v", err)
	}

	_, err = CredentialCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logrus.Fatalf("create credentials.email index: %v", err)
	}
}
