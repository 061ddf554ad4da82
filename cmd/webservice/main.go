package main

import (
	"fmt"
	"log"

	"github.com/KamrujjamanRony/sura-tools-serverside/config"
	"github.com/KamrujjamanRony/sura-tools-serverside/internal/app"
	"github.com/KamrujjamanRony/sura-tools-serverside/internal/infrastructure/database/mongodb"
)

func main() {
	config := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort), config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	server := app.App{
		DB:     db,
		Config: config,
	}

	server.Start()
}
