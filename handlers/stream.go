package handlers

import (
	"io"
	"log"

	"pilgrimpath/store"
	"pilgrimpath/types"

	"github.com/gin-gonic/gin"
)

// streamBuffer bounds how far a slow SSE client may fall behind before
// events are dropped for it. The store itself never drops events.
const streamBuffer = 64

// StreamEvents subscribes the client to every store event and relays them
// as server-sent events until the connection closes.
func StreamEvents(c *gin.Context, s *store.Store) {
	events := make(chan types.Event, streamBuffer)
	unsubscribe := s.Subscribe(func(ev types.Event) {
		select {
		case events <- ev:
		default:
			log.Printf("stream: dropping %s event for slow client", ev.Kind())
		}
	})
	defer unsubscribe()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev := <-events:
			c.SSEvent(string(ev.Kind()), ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
