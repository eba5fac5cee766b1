package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/moeloubani/language-transfer-hub-sub000/cmd"
)

func main() {
	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
