package config

import (
	"bufio"
	"log"
	"os"
	"strings"
)

type Config struct {
	HTTPAddr string

	// RedisHost empty means the availability cache is disabled and counts
	// are always computed from the in-memory store.
	RedisHost string
	RedisPort string
}

// Load reads configuration from the environment, seeded from a .env file
// when one is present next to the binary.
func Load() Config {
	loadEnv(".env")

	return Config{
		HTTPAddr:  getenv("HTTP_ADDR", ":8080"),
		RedisHost: os.Getenv("REDIS_HOST"),
		RedisPort: getenv("REDIS_PORT", "6379"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadEnv(filepath string) {
	file, err := os.Open(filepath)
	if err != nil {
		return
	}

	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			os.Setenv(key, value)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Failed to read .env file: %v", err)
	}
}
