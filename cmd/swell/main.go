package main

import (
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; explicit env and flags still win.
	_ = godotenv.Load()
	Execute()
}
