package leagues

import (
	"net/http"

	"api/logging"
	"api/middleware"
	"api/models"
	"api/realtime"
	"api/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Cross-origin is already handled by the CORS middleware
		return true
	},
}

// LeagueWebSocket upgrades the connection and streams league notifications
// @Summary League live feed
// @Description Upgrade to a WebSocket and receive league notifications as they are published
// @Tags Leagues
// @Param id path string true "League ID"
// @Success 101
// @Failure 401,403 {object} map[string]string
// @Router /leagues/{id}/live [get]
// @Security Bearer
func LeagueWebSocket(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	leagueID := c.Param("id")
	var league models.League
	if err := services.GetAccessibleLeague(user.ID, leagueID, &league); err != nil {
		respondWithError(c, http.StatusForbidden, ErrNoPermissionView)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Log.Warnf("WebSocket upgrade failed for league %s: %v", leagueID, err)
		return
	}

	realtime.RegisterClient(leagueID, conn)
	defer func() {
		realtime.UnregisterClient(leagueID, conn)
		conn.Close()
	}()

	// The feed is one-way; reads only detect the client going away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
