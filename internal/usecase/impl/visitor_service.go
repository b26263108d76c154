package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "koor/internal/delivery/context"
	"koor/internal/domain/entity"
	"koor/internal/domain/repository"
	"koor/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// visitorService implements the VisitorUsecase interface.
type visitorService struct {
	visitorRepo repository.VisitorRepository
	logger      *slog.Logger
}

// VisitorServiceParams holds dependencies for VisitorService, injected by Fx.
type VisitorServiceParams struct {
	fx.In

	VisitorRepo repository.VisitorRepository
	Logger      *slog.Logger
}

// NewVisitorService is the constructor for visitorService.
func NewVisitorService(params VisitorServiceParams) usecase.VisitorUsecase {
	return &visitorService{
		visitorRepo: params.VisitorRepo,
		logger:      params.Logger,
	}
}

func (srv *visitorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordVisit stores at most one row per (IP, calendar date); repeats on the
// same day are absorbed by the upsert.
func (srv *visitorService) RecordVisit(ctx context.Context, input usecase.RecordVisitInput) error {
	visitor := &entity.VisitorLog{
		IPAddress: input.IPAddress,
		Agent:     input.Agent,
		Date:      time.Now().UTC(),
	}

	if err := srv.visitorRepo.Upsert(ctx, visitor); err != nil {
		return errors.Wrap(err, "record visit")
	}

	srv.log(ctx).Debug("Visit recorded", slog.String("ip", input.IPAddress))

	return nil
}
