package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	CourtsCollection       *mongo.Collection
	ScheduleCollection     *mongo.Collection
	AvailabilityCollection *mongo.Collection
	ReservationsCollection *mongo.Collection
	SlotClaimsCollection   *mongo.Collection
	UserCollection         *mongo.Collection
	ActivityCollection     *mongo.Collection
	FilesCollection        *mongo.Collection
	Client                 *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ClientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), ClientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	CourtsCollection = Client.Database("canchadb").Collection("courts")
	ScheduleCollection = Client.Database("canchadb").Collection("schedule")
	AvailabilityCollection = Client.Database("canchadb").Collection("availability")
	ReservationsCollection = Client.Database("canchadb").Collection("reservations")
	SlotClaimsCollection = Client.Database("canchadb").Collection("slotclaims")
	UserCollection = Client.Database("canchadb").Collection("users")
	ActivityCollection = Client.Database("canchadb").Collection("activity")
	FilesCollection = Client.Database("canchadb").Collection("files")
}
