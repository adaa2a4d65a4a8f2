// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/benjidennett/lego-app/internal/usecase"

	"go.uber.org/zap"
)

// Handler serves the HTTP surface using the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}
