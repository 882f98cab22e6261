package config

import (
    "os"

    "github.com/joho/godotenv"
)

// loadDotenv loads a .env file from the working directory when one
// exists. Missing files are not an error; real environment variables
// always win over .env values.
func loadDotenv() {
    if _, err := os.Stat(".env"); err != nil {
        return
    }
    _ = godotenv.Load()
}
