package api

import (
	"log"
	"net/http"

	"github.com/WaggleHQ/waggle/app"
	"github.com/gorilla/mux"
)

// NewRouter builds the read-only snapshot API consumed by the rendering
// surface. Every mutation goes through the NATS subjects instead.
func NewRouter(waggle *app.Waggle) *mux.Router {
	h := &SnapshotHandler{waggle: waggle}

	r := mux.NewRouter()
	r.HandleFunc("/walkers", h.GetWalkers).Methods("GET")
	r.HandleFunc("/walkers/online", h.GetOnlineWalkers).Methods("GET")
	r.HandleFunc("/walkers/favorites", h.GetFavoriteWalkers).Methods("GET")
	r.HandleFunc("/favorites/requests", h.GetPendingRequests).Methods("GET")
	r.HandleFunc("/markers", h.GetMarkers).Methods("GET")
	r.HandleFunc("/counts", h.GetCounts).Methods("GET")
	return r
}

// Serve starts the snapshot API.
func Serve(addr string, waggle *app.Waggle) {
	router := NewRouter(waggle)
	go func() {
		log.Printf("Snapshot API listening on %s", addr)
		if err := http.ListenAndServe(addr, router); err != nil {
			log.Fatalf("Snapshot API failed: %v", err)
		}
	}()
}
