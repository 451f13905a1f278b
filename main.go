package main

import (
	"log"

	"github.com/WaggleHQ/waggle/api"
	"github.com/WaggleHQ/waggle/app"
	"github.com/WaggleHQ/waggle/env"
	"github.com/WaggleHQ/waggle/handlers"
	"github.com/WaggleHQ/waggle/metrics"
	"github.com/nats-io/nats.go"
)

func main() {
	env.Load()

	// Initialize Prometheus metrics
	metrics.InitMetrics()
	metrics.ServeMetrics(env.MetricsAddr())

	// Connect to NATS server
	nc, err := nats.Connect(env.NatsUrl())
	if err != nil {
		log.Fatalf("Error connecting to NATS: %v", err)
	}
	defer nc.Close()
	log.Println("Connected to NATS!")

	// Initialize the registries with the seeded roster
	waggle := app.New()
	metrics.RosterSize.Set(float64(waggle.WalkerRegistry.Size()))
	metrics.OnlineWalkers.Set(float64(waggle.WalkerRegistry.OnlineCount()))
	metrics.FavoriteWalkers.Set(float64(waggle.WalkerRegistry.FavoriteCount()))

	// Set up handlers
	handlers.RegisterFavorites(nc, waggle)
	handlers.RegisterWalkers(nc, waggle)

	// Read-only snapshot API for the rendering surface
	api.Serve(env.ApiAddr(), waggle)

	// Keep the service running
	select {}
}
