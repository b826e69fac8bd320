package request_private_tour

import (
	"context"

	requestPrivateTour "github.com/amswalks/AWT-BookingFunnel/internal/usecase/request_private_tour"
)

type RequestPrivateTourUseCase interface {
	Execute(ctx context.Context, req *requestPrivateTour.Request) (*requestPrivateTour.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
