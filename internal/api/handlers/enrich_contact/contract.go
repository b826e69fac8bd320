package enrich_contact

import (
	"context"

	enrichContact "github.com/amswalks/AWT-BookingFunnel/internal/usecase/enrich_contact"
)

type EnrichContactUseCase interface {
	Execute(ctx context.Context, req *enrichContact.Request) (*enrichContact.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
