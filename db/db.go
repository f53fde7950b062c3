package db

import (
	"context"
	"database/sql"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Frezz12/AchStudentsBackend/app/model"
	"github.com/Frezz12/AchStudentsBackend/config"
)

var (
	DB    *gorm.DB
	SQL   *sql.DB
	Mongo *mongo.Database
)

func ConnectDB() {
	connectPostgres()
	connectMongo()
}

func connectPostgres() {
	var err error
	DB, err = gorm.Open(postgres.Open(config.Env.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}

	// The composite unique index on student_achievements comes from the
	// model tags; it is what makes concurrent duplicate claims lose.
	if err := DB.AutoMigrate(
		&model.User{},
		&model.Achievement{},
		&model.StudentAchievement{},
	); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}

	SQL, err = DB.DB()
	if err != nil {
		log.Fatal("Failed to get sql.DB handle:", err)
	}

	log.Println("Connected to PostgreSQL successfully")
}

func connectMongo() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.Env.MongoURI)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	Mongo = client.Database(config.Env.MongoDB)

	log.Println("Connected to MongoDB successfully")
}

func GetDB() *sql.DB {
	return SQL
}

func GetMongo() *mongo.Database {
	return Mongo
}
