package api

import (
	"encoding/json"
	"net/http"

	"github.com/WaggleHQ/waggle/app"
	"github.com/WaggleHQ/waggle/favorites"
	"github.com/WaggleHQ/waggle/geo"
	"github.com/WaggleHQ/waggle/utils"
	"github.com/WaggleHQ/waggle/walkers"
)

type SnapshotHandler struct {
	waggle *app.Waggle
}

type WalkersResponse struct {
	Walkers []walkers.WalkerInfo `json:"walkers"`
	Count   int                  `json:"count"`
}

// PendingRequestView is a pending request joined with both walkers' display
// fields, the shape the request modal renders from.
type PendingRequestView struct {
	favorites.FavoriteRequest
	FromName    string `json:"from_name"`
	FromDogName string `json:"from_dog_name"`
	ToName      string `json:"to_name"`
	Age         string `json:"age"`
}

type PendingRequestsResponse struct {
	Requests []PendingRequestView `json:"requests"`
	Count    int                  `json:"count"`
}

// MarkerView is one walker already projected into panel space and visually
// encoded, computed once per walker per render pass.
type MarkerView struct {
	WalkerID string       `json:"walker_id"`
	DogName  string       `json:"dog_name"`
	Position geo.Position `json:"position"`
	Marker   geo.Marker   `json:"marker"`
}

type MarkersResponse struct {
	Markers []MarkerView `json:"markers"`
	Frame   geo.Frame    `json:"frame"`
}

type CountsResponse struct {
	Walkers         int `json:"walkers"`
	Online          int `json:"online"`
	Favorites       int `json:"favorites"`
	PendingRequests int `json:"pending_requests"`
}

func (h *SnapshotHandler) GetWalkers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, listResponse(h.waggle.WalkerRegistry.All()))
}

func (h *SnapshotHandler) GetOnlineWalkers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, listResponse(h.waggle.WalkerRegistry.Online()))
}

func (h *SnapshotHandler) GetFavoriteWalkers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, listResponse(h.waggle.WalkerRegistry.Favorites()))
}

func (h *SnapshotHandler) GetPendingRequests(w http.ResponseWriter, r *http.Request) {
	pending := h.waggle.FavoriteRequestRegistry.Pending()
	views := make([]PendingRequestView, 0, len(pending))
	for _, req := range pending {
		view := PendingRequestView{FavoriteRequest: req, Age: utils.TimeAgo(req.CreatedAt)}
		if from, ok := h.waggle.WalkerRegistry.Get(req.FromID); ok {
			view.FromName = from.Name
			view.FromDogName = from.DogName
		}
		if to, ok := h.waggle.WalkerRegistry.Get(req.ToID); ok {
			view.ToName = to.Name
		}
		views = append(views, view)
	}
	writeJSON(w, PendingRequestsResponse{Requests: views, Count: len(views)})
}

func (h *SnapshotHandler) GetMarkers(w http.ResponseWriter, r *http.Request) {
	all := h.waggle.WalkerRegistry.All()
	markers := make([]MarkerView, 0, len(all))
	for _, info := range all {
		markers = append(markers, MarkerView{
			WalkerID: info.ID,
			DogName:  info.DogName,
			Position: geo.Project(info.Location, h.waggle.Frame),
			Marker:   geo.MarkerFor(info.ID == walkers.SelfID, info.Online, info.Favorite),
		})
	}
	writeJSON(w, MarkersResponse{Markers: markers, Frame: h.waggle.Frame})
}

func (h *SnapshotHandler) GetCounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, CountsResponse{
		Walkers:         h.waggle.WalkerRegistry.Size(),
		Online:          h.waggle.WalkerRegistry.OnlineCount(),
		Favorites:       h.waggle.WalkerRegistry.FavoriteCount(),
		PendingRequests: h.waggle.FavoriteRequestRegistry.PendingCount(),
	})
}

func listResponse(list []walkers.WalkerInfo) WalkersResponse {
	return WalkersResponse{Walkers: list, Count: len(list)}
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}
