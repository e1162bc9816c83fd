package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func SendJSON(w http.ResponseWriter, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	w.Header().Add("Content-Type", "application/json")
	return w.Write(payload)
}

func SendJSONOrLog(w http.ResponseWriter,
	logger *slog.Logger,
	v any,
) {
	_, err := SendJSON(w, v)
	if err != nil {
		logger.Error(
			"failed to send data",
			slog.Any("data", v),
			slog.Any("error", err),
		)
	}
}

type errorDTO struct {
	Error string `json:"error"`
}

func wrapError(err error) errorDTO {
	return errorDTO{Error: err.Error()}
}

func badRequest(w http.ResponseWriter, logger *slog.Logger, err error) {
	w.WriteHeader(http.StatusBadRequest)
	SendJSONOrLog(w, logger, wrapError(err))
}
