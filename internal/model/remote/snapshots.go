package remote

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"max.ks1230/gastos-client/internal/entity/expense"
	"max.ks1230/gastos-client/internal/logger"
	"max.ks1230/gastos-client/internal/model/state"
)

func (s *Syncer) saveSnapshot(ctx context.Context, kind state.Kind, items interface{}) {
	if s.snapshots == nil {
		return
	}
	payload, err := json.Marshal(items)
	if err != nil {
		logger.Error("cannot marshal snapshot", zap.Stringer("collection", kind), zap.Error(err))
		return
	}
	if err = s.snapshots.SaveCollection(ctx, kind.String(), payload); err != nil {
		logger.Error("cannot save snapshot", zap.Stringer("collection", kind), zap.Error(err))
	}
}

// Warm seeds never-loaded collections from saved snapshots so something can be
// rendered before the first fetch returns. Missing snapshots are skipped.
func (s *Syncer) Warm(ctx context.Context) {
	if s.snapshots == nil {
		return
	}

	var (
		categories   []expense.Category
		paymentTypes []expense.PaymentType
		expenses     []expense.Expense
	)
	s.loadSnapshot(ctx, state.Categories, &categories)
	s.loadSnapshot(ctx, state.PaymentTypes, &paymentTypes)
	s.loadSnapshot(ctx, state.Expenses, &expenses)

	s.store.Restore(categories, paymentTypes, expenses)
}

func (s *Syncer) loadSnapshot(ctx context.Context, kind state.Kind, out interface{}) {
	payload, err := s.snapshots.LoadCollection(ctx, kind.String())
	if err != nil {
		logger.Info("no snapshot", zap.Stringer("collection", kind), zap.Error(err))
		return
	}
	if err = json.Unmarshal(payload, out); err != nil {
		logger.Error("cannot unmarshal snapshot", zap.Stringer("collection", kind), zap.Error(err))
	}
}
