package handlers

import (
	"encoding/json"
	"log"

	"github.com/WaggleHQ/waggle/app"
	"github.com/WaggleHQ/waggle/env"
	"github.com/WaggleHQ/waggle/favorites"
	"github.com/WaggleHQ/waggle/metrics"
	"github.com/nats-io/nats.go"
)

// RegisterFavorites sets up the favorites command subjects.
func RegisterFavorites(nc *nats.Conn, waggle *app.Waggle) {
	requestHandler(nc, waggle)
	acceptHandler(nc, waggle)
	declineHandler(nc, waggle)
	removeHandler(nc, waggle)
}

func requestHandler(nc *nats.Conn, waggle *app.Waggle) {
	const subject = "favorites.request"

	_, err := nc.Subscribe(env.EnsurePrefixed(subject), func(msg *nats.Msg) {
		var packet favorites.FavoriteRequestPacket
		if err := json.Unmarshal(msg.Data, &packet); err != nil {
			log.Printf("Invalid FavoriteRequestPacket message format: %s", msg.Data)
			sendReply(msg, &favorites.GenericResponsePacket{Success: false, Message: "ERR_INVALID_MESSAGE_FORMAT"})
			return
		}

		req, errMsg := waggle.FavoriteRequestRegistry.Create(packet.FromID, packet.ToID)
		if len(errMsg) > 0 {
			metrics.RequestOutcomes.WithLabelValues(errMsg).Inc()
			sendReply(msg, &favorites.GenericResponsePacket{Success: false, Message: errMsg})
			return
		}

		metrics.RequestOutcomes.WithLabelValues("created").Inc()
		metrics.PendingRequests.Set(float64(waggle.FavoriteRequestRegistry.PendingCount()))

		serialized, err1 := json.Marshal(req)
		if err1 != nil {
			log.Printf("Error marshalling favorite request: %v", err1)
			sendReply(msg, &favorites.GenericResponsePacket{Success: false, Message: "ERR_MARSHAL_REQUEST"})
			return
		}
		sendReply(msg, &favorites.GenericResponsePacket{Success: true, Message: string(serialized)})

		// simulated delivery to the recipient's toast layer
		notify(nc, "favorites.request.notify", *req)
	})
	if err != nil {
		log.Fatalf("Error subscribing to subject %s: %v", subject, err)
	}
	log.Printf("Listening for favorite requests on subject '%s'", subject)
}

func acceptHandler(nc *nats.Conn, waggle *app.Waggle) {
	const subject = "favorites.accept"

	_, err := nc.Subscribe(env.EnsurePrefixed(subject), func(msg *nats.Msg) {
		var packet favorites.FavoriteResponsePacket
		if err := json.Unmarshal(msg.Data, &packet); err != nil {
			log.Printf("Invalid FavoriteResponsePacket message format: %s", msg.Data)
			return
		}

		success, req := waggle.FavoriteRequestRegistry.Accept(packet.ID)
		if !success {
			sendReply(msg, &favorites.GenericResponsePacket{Success: false, Message: favorites.ErrNotFound})
			return
		}

		metrics.RequestOutcomes.WithLabelValues("accepted").Inc()
		metrics.PendingRequests.Set(float64(waggle.FavoriteRequestRegistry.PendingCount()))
		metrics.FavoriteWalkers.Set(float64(waggle.WalkerRegistry.FavoriteCount()))

		sendReply(msg, &favorites.GenericResponsePacket{Success: true})
		notify(nc, "favorites.accept.notify", req)
	})
	if err != nil {
		log.Fatalf("Error subscribing to subject %s: %v", subject, err)
	}
	log.Printf("Listening for favorite acceptances on subject '%s'", subject)
}

func declineHandler(nc *nats.Conn, waggle *app.Waggle) {
	const subject = "favorites.decline"

	_, err := nc.Subscribe(env.EnsurePrefixed(subject), func(msg *nats.Msg) {
		var packet favorites.FavoriteResponsePacket
		if err := json.Unmarshal(msg.Data, &packet); err != nil {
			log.Printf("Invalid FavoriteResponsePacket message format: %s", msg.Data)
			return
		}

		success, req := waggle.FavoriteRequestRegistry.Decline(packet.ID)
		if !success {
			sendReply(msg, &favorites.GenericResponsePacket{Success: false, Message: favorites.ErrNotFound})
			return
		}

		metrics.RequestOutcomes.WithLabelValues("declined").Inc()
		metrics.PendingRequests.Set(float64(waggle.FavoriteRequestRegistry.PendingCount()))

		sendReply(msg, &favorites.GenericResponsePacket{Success: true})
		notify(nc, "favorites.decline.notify", req)
	})
	if err != nil {
		log.Fatalf("Error subscribing to subject %s: %v", subject, err)
	}
	log.Printf("Listening for favorite declinations on subject '%s'", subject)
}

func removeHandler(nc *nats.Conn, waggle *app.Waggle) {
	const subject = "favorites.remove"

	_, err := nc.Subscribe(env.EnsurePrefixed(subject), func(msg *nats.Msg) {
		var packet favorites.RemoveFavoritePacket
		if err := json.Unmarshal(msg.Data, &packet); err != nil {
			log.Printf("Invalid RemoveFavoritePacket message format: %s", msg.Data)
			return
		}

		if !waggle.FavoriteRequestRegistry.RemoveFavorite(packet.WalkerID) {
			sendReply(msg, &favorites.GenericResponsePacket{Success: false, Message: favorites.ErrNotFound})
			return
		}

		metrics.RequestOutcomes.WithLabelValues("removed").Inc()
		metrics.FavoriteWalkers.Set(float64(waggle.WalkerRegistry.FavoriteCount()))

		sendReply(msg, &favorites.GenericResponsePacket{Success: true})
		notify(nc, "favorites.remove.notify", packet)
	})
	if err != nil {
		log.Fatalf("Error subscribing to subject %s: %v", subject, err)
	}
	log.Printf("Listening for favorite removals on subject '%s'", subject)
}

func notify(nc *nats.Conn, subject string, payload interface{}) {
	marshal, errr := json.Marshal(payload)
	if errr != nil {
		log.Printf("Error marshalling notification for %s: %v", subject, errr)
		return
	}
	if err := nc.Publish(env.EnsurePrefixed(subject), marshal); err != nil {
		log.Printf("Error publishing notification on %s: %v", subject, err)
	}
}

func sendReply(msg *nats.Msg, data *favorites.GenericResponsePacket) {
	ack, err1 := json.Marshal(data)
	if err1 != nil {
		log.Printf("Error marshalling response packet: %v", err1)
		return
	}
	if err := msg.Respond(ack); err != nil {
		log.Printf("Error sending acknowledgment: %v", err)
	}
}
