package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/eringen/folio"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	app := folio.New(folio.ConfigFromEnv())
	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
