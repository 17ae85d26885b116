package realtime

import (
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func TestRegisterAndUnregisterClient(t *testing.T) {
	conn := &websocket.Conn{}
	other := &websocket.Conn{}

	RegisterClient("league-1", conn)
	RegisterClient("league-1", other)
	assert.Equal(t, 2, ClientCount("league-1"))
	assert.Equal(t, 0, ClientCount("league-2"))

	UnregisterClient("league-1", conn)
	assert.Equal(t, 1, ClientCount("league-1"))

	// Unregistering twice is harmless
	UnregisterClient("league-1", conn)
	assert.Equal(t, 1, ClientCount("league-1"))

	UnregisterClient("league-1", other)
	assert.Equal(t, 0, ClientCount("league-1"))
}
