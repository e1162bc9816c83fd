package config

import (
	"fmt"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
)

const defaultReadLimit = 4096

type WebSocket struct {
	Upgrader  websocket.Upgrader
	ReadLimit int64
}

// AllowedOrigins lists the origins in WS_ALLOWED_ORIGINS. An empty list allows
// every origin, for the upgrader and for CORS alike.
func AllowedOrigins() []string {
	s, ok := os.LookupEnv("WS_ALLOWED_ORIGINS")
	if !ok || s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func NewWebSocket() (*WebSocket, error) {
	readLimit := int64(defaultReadLimit)
	if s, ok := os.LookupEnv("WS_READ_LIMIT"); ok {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("WS_READ_LIMIT must be a positive int, got %q", s)
		}
		readLimit = n
	}

	origins := AllowedOrigins()

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if len(origins) == 0 {
				return true
			}
			return slices.Contains(origins, r.Header.Get("Origin"))
		},
	}

	ws := &WebSocket{
		Upgrader:  upgrader,
		ReadLimit: readLimit,
	}

	return ws, nil
}
