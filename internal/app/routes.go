package app

import (
	"net/http"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/handlers"
)

func (a *App) loadRoutes() {
	router := a.router
	if base := config.BasePath(); base != "" {
		router = router.PathPrefix(base).Subrouter()
	}

	game := handlers.NewGameHandler(a.logger, a.ws, a.defaults, a.limits, nil)

	gameRouter := router.PathPrefix("/game").Subrouter()
	gameRouter.Methods("GET").Path("/params").HandlerFunc(game.Defaults)
	gameRouter.Methods("GET").Path("/connect").HandlerFunc(game.ConnectWS)

	router.Methods("GET").Path("/status").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}
