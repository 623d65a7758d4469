package service

// Broadcaster interface for WebSocket live-feed events (avoids import cycle)
type Broadcaster interface {
	Broadcast(msgType string, payload interface{})
}
