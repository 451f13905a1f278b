package env

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load pulls a .env file into the environment when one exists. Deployed
// instances configure through real environment variables instead.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment configuration")
	}
}

// NatsUrl assembles the NATS connection string from the environment.
func NatsUrl() string {
	username := os.Getenv("NATS_USERNAME")
	password := os.Getenv("NATS_PASSWORD")
	hostname := os.Getenv("NATS_HOSTNAME")
	port := os.Getenv("NATS_PORT")

	return fmt.Sprintf("nats://%s:%s@%s:%s", username, password, hostname, port)
}

// EnsurePrefixed prepends the deployment subject prefix, when configured, so
// several environments can share one NATS cluster.
func EnsurePrefixed(subject string) string {
	prefix := os.Getenv("WAGGLE_SUBJECT_PREFIX")
	if prefix == "" {
		return subject
	}
	return prefix + "." + subject
}

// ApiAddr is the listen address of the read-only snapshot API.
func ApiAddr() string {
	if addr := os.Getenv("WAGGLE_API_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}

// MetricsAddr is the listen address of the Prometheus endpoint.
func MetricsAddr() string {
	if addr := os.Getenv("WAGGLE_METRICS_ADDR"); addr != "" {
		return addr
	}
	return ":8081"
}
