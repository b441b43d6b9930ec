package main

import (
	"github.com/joho/godotenv"

	"empdir/internal/app/server"
)

func main() {
	// A missing .env is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	server.Run()
}
