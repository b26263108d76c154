package usecase

import "context"

// RecordVisitInput carries the client metadata of an anonymous probe.
type RecordVisitInput struct {
	IPAddress string
	Agent     string
}

// VisitorUsecase records anonymous traffic, at most one row per IP per day.
type VisitorUsecase interface {
	RecordVisit(ctx context.Context, input RecordVisitInput) error
}
