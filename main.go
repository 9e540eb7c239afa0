package main

import (
	"github.com/joho/godotenv"

	"github.com/carnitrack/carnitrack/cmd/carnitrack"
)

func main() {
	// Optional; CARNITRACK_DB may also come from the environment directly.
	_ = godotenv.Load()
	carnitrack.Execute()
}
