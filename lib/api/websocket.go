package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

//	@Summary	Open websocket for realtime status information
//	@Router		/api/ws [get]
//	@Param		Upgrade	header	string	true	"websocket"
//	@Tags		base
//	@Success	101
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		// Upgrade has already replied to the client
		a.log().Warn(fmt.Sprintf("couldn't make websocket: %s", err))
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			a.log().Debug(fmt.Sprintf("could not close websocket: %s", err))
		}
	}(ws)

	a.setWsClient(ws, true)
	done := make(chan struct{})
	defer close(done)

	go a.websocketWriter(ws, done)

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			a.setWsClient(ws, false)
			break
		}
		a.log().Debug(fmt.Sprintf("Received: %s", msg))
	}
}

func (a *Api) setWsClient(ws *websocket.Conn, connected bool) {
	a.wsClientsMutex.Lock()
	defer a.wsClientsMutex.Unlock()
	if connected {
		a.wsClients[ws] = true
	} else {
		delete(a.wsClients, ws)
	}
	a.Stats.SetWsClients(len(a.wsClients))
}

func (a *Api) websocketWriter(ws *websocket.Conn, done <-chan struct{}) {
	timeout := 10 * time.Second
	send := func() bool {
		snap := a.Stats.Snapshot()
		packet, err := json.Marshal(&snap)
		if err != nil {
			return false
		}
		err = ws.SetWriteDeadline(time.Now().Add(timeout))
		if err != nil {
			a.log().Debug(fmt.Sprintf("could not set write deadline: %s", err))
			return false
		}
		return ws.WriteMessage(websocket.TextMessage, packet) == nil
	}

	if !send() {
		return
	}

	ticker := time.NewTicker(a.statsInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if !send() {
				return
			}
		}
	}
}
