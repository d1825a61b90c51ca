package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/recommendme-server/internal/api/http/response"
	"github.com/dtroode/recommendme-server/internal/logger"
	"github.com/dtroode/recommendme-server/internal/model"
	"github.com/dtroode/recommendme-server/internal/service"
	"github.com/dtroode/recommendme-server/internal/validation"
)

var errInvalidBody = errors.New("invalid request body")

type validationReply struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func handleError(w http.ResponseWriter, lg *logger.Logger, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		response.JSON(w, http.StatusBadRequest, validationReply{Message: "validation failed", Errors: verr.Fields})
	case errors.Is(err, model.ErrUnauthorized):
		response.Error(w, http.StatusUnauthorized, "Unauthorized access")
	case errors.Is(err, model.ErrInvalidID):
		response.Error(w, http.StatusBadRequest, "invalid id")
	case errors.Is(err, service.ErrEmptyUpdate):
		response.Error(w, http.StatusBadRequest, "update has no fields")
	case errors.Is(err, errInvalidBody):
		response.Error(w, http.StatusBadRequest, "invalid request body")
	case errors.Is(err, model.ErrNotFound):
		response.Error(w, http.StatusNotFound, "not found")
	default:
		lg.Error("request failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
