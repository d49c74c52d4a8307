package ledger

import (
	"context"
	"time"

	"bankledger/internal/models"
	"bankledger/internal/store"
)

// ListFiltered resolves which query variant to run from the filters that
// are actually present. An operator together with a full period wins
// over the operator alone, which wins over the period alone; with
// nothing present every movement is listed. The period only counts as
// present when both bounds are supplied; a lone bound is ignored.
func (s *Service) ListFiltered(ctx context.Context, page store.PageRequest, operatorName string, from, to *time.Time) (store.Page[models.Movement], error) {
	switch {
	case operatorName != "" && from != nil && to != nil:
		return s.ListByOperatorAndPeriod(ctx, page, operatorName, *from, *to)
	case operatorName != "":
		return s.ListByOperator(ctx, page, operatorName)
	case from != nil && to != nil:
		return s.ListByPeriod(ctx, page, *from, *to)
	default:
		return s.ListAll(ctx, page)
	}
}
