package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type EnvConfig struct {
	AppPort   string
	DBDSN     string
	MongoURI  string
	MongoDB   string
	RedisAddr string
	JWTSecret string
}

var Env EnvConfig

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	Env.AppPort = os.Getenv("APP_PORT")
	Env.DBDSN = os.Getenv("DB_DSN")
	Env.MongoURI = os.Getenv("MONGO_URI")
	Env.MongoDB = os.Getenv("MONGO_DB_NAME")
	Env.RedisAddr = os.Getenv("REDIS_ADDR")
	Env.JWTSecret = os.Getenv("JWT_SECRET")

	if Env.AppPort == "" {
		Env.AppPort = "3000"
	}
	if Env.RedisAddr == "" {
		Env.RedisAddr = "localhost:6379"
	}
}

func GetJWTSecret() string {
	if Env.JWTSecret == "" {
		return "secretKey123123123123123123123"
	}
	return Env.JWTSecret
}
