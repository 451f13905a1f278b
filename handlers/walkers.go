package handlers

import (
	"encoding/json"
	"log"

	"github.com/WaggleHQ/waggle/app"
	"github.com/WaggleHQ/waggle/env"
	"github.com/WaggleHQ/waggle/geo"
	"github.com/WaggleHQ/waggle/metrics"
	"github.com/WaggleHQ/waggle/walkers"
	"github.com/nats-io/nats.go"
)

type WalkerStatusPacket struct {
	WalkerID string `json:"walker_id"`
	Status   string `json:"status"`
}

type WalkerLocationPacket struct {
	WalkerID string     `json:"walker_id"`
	Location *geo.Point `json:"location"` // nil falls back to the fixed center
}

type WalkerProfilePacket struct {
	WalkerID string                `json:"walker_id"`
	Profile  walkers.ProfileUpdate `json:"profile"`
}

type WalkerPresencePacket struct {
	WalkerID string `json:"walker_id"`
}

// RegisterWalkers Register handlers for the roster mutation subjects
func RegisterWalkers(nc *nats.Conn, waggle *app.Waggle) {
	statusHandler(nc, waggle)
	locationHandler(nc, waggle)
	profileHandler(nc, waggle)
	presenceHandler(nc, waggle, "walkers.connect", true)
	presenceHandler(nc, waggle, "walkers.disconnect", false)
}

func statusHandler(nc *nats.Conn, waggle *app.Waggle) {
	const subject = "walkers.status"

	_, err := nc.Subscribe(env.EnsurePrefixed(subject), func(msg *nats.Msg) {
		obj := WalkerStatusPacket{}
		if err := json.Unmarshal(msg.Data, &obj); err != nil {
			log.Println("Error parsing walker status packet: ", err)
			return
		}
		// the status message arrives verbatim, no validation
		if !waggle.WalkerRegistry.UpdateStatus(obj.WalkerID, obj.Status) {
			log.Printf("Status update for unknown walker %s dropped", obj.WalkerID)
		}
	})
	if err != nil {
		log.Fatalf("Error subscribing to subject %s: %v", subject, err)
	}
	log.Printf("Listening for status updates on subject '%s'", subject)
}

func locationHandler(nc *nats.Conn, waggle *app.Waggle) {
	const subject = "walkers.location"

	_, err := nc.Subscribe(env.EnsurePrefixed(subject), func(msg *nats.Msg) {
		obj := WalkerLocationPacket{}
		if err := json.Unmarshal(msg.Data, &obj); err != nil {
			log.Println("Error parsing walker location packet: ", err)
			return
		}
		loc := waggle.Frame.Center
		if obj.Location != nil {
			loc = *obj.Location
		}
		if !waggle.WalkerRegistry.UpdateLocation(obj.WalkerID, loc) {
			log.Printf("Location update for unknown walker %s dropped", obj.WalkerID)
		}
	})
	if err != nil {
		log.Fatalf("Error subscribing to subject %s: %v", subject, err)
	}
	log.Printf("Listening for location shares on subject '%s'", subject)
}

func profileHandler(nc *nats.Conn, waggle *app.Waggle) {
	const subject = "walkers.profile"

	_, err := nc.Subscribe(env.EnsurePrefixed(subject), func(msg *nats.Msg) {
		obj := WalkerProfilePacket{}
		if err := json.Unmarshal(msg.Data, &obj); err != nil {
			log.Println("Error parsing walker profile packet: ", err)
			return
		}
		if !waggle.WalkerRegistry.UpdateProfile(obj.WalkerID, obj.Profile) {
			log.Printf("Profile update for unknown walker %s dropped", obj.WalkerID)
		}
	})
	if err != nil {
		log.Fatalf("Error subscribing to subject %s: %v", subject, err)
	}
	log.Printf("Listening for profile updates on subject '%s'", subject)
}

func presenceHandler(nc *nats.Conn, waggle *app.Waggle, subject string, online bool) {
	_, err := nc.Subscribe(env.EnsurePrefixed(subject), func(msg *nats.Msg) {
		obj := WalkerPresencePacket{}
		if err := json.Unmarshal(msg.Data, &obj); err != nil {
			log.Println("Error parsing walker presence packet: ", err)
			return
		}
		if waggle.WalkerRegistry.SetOnline(obj.WalkerID, online) {
			metrics.OnlineWalkers.Set(float64(waggle.WalkerRegistry.OnlineCount()))
		}
	})
	if err != nil {
		log.Fatalf("Error subscribing to subject %s: %v", subject, err)
	}
	log.Printf("Listening for presence changes on subject '%s'", subject)
}
