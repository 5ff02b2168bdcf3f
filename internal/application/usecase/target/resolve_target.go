// Package target contains monthly-target use cases.
package target

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pulso-finanzas/backend/internal/application/adapter"
	"github.com/pulso-finanzas/backend/internal/domain/entity"
)

// Resolver resolves the effective monthly target for a period using an ordered
// list of strategies, short-circuiting on the first hit:
//
//  1. exact: a target saved for exactly the requested period;
//  2. inherited: the most recent target saved for any earlier period;
//  3. legacy: the old single-row goals table.
//
// Resolution never writes; inheritance only affects the read-time value.
type Resolver struct {
	targetRepo adapter.TargetRepository
}

// NewResolver creates a new Resolver instance.
func NewResolver(targetRepo adapter.TargetRepository) *Resolver {
	return &Resolver{
		targetRepo: targetRepo,
	}
}

type resolveStrategy func(ctx context.Context, workspaceID uuid.UUID, period entity.Period) (*entity.ResolvedTarget, error)

// Resolve returns the effective target for the period, or nil when no strategy
// produces one.
func (r *Resolver) Resolve(ctx context.Context, workspaceID uuid.UUID, period entity.Period) (*entity.ResolvedTarget, error) {
	strategies := []resolveStrategy{
		r.resolveExact,
		r.resolveInherited,
		r.resolveLegacy,
	}

	for _, strategy := range strategies {
		resolved, err := strategy(ctx, workspaceID, period)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve target: %w", err)
		}
		if resolved != nil {
			return resolved, nil
		}
	}

	return nil, nil
}

func (r *Resolver) resolveExact(ctx context.Context, workspaceID uuid.UUID, period entity.Period) (*entity.ResolvedTarget, error) {
	row, err := r.targetRepo.FindByPeriod(ctx, workspaceID, period)
	if err != nil || row == nil {
		return nil, err
	}
	return &entity.ResolvedTarget{
		SalesTarget:      row.SalesTarget,
		CollectionTarget: row.CollectionTarget,
		Source:           entity.TargetSourceExact,
		SourcePeriod:     row.Period(),
	}, nil
}

func (r *Resolver) resolveInherited(ctx context.Context, workspaceID uuid.UUID, period entity.Period) (*entity.ResolvedTarget, error) {
	row, err := r.targetRepo.FindLatestBefore(ctx, workspaceID, period)
	if err != nil || row == nil {
		return nil, err
	}
	return &entity.ResolvedTarget{
		SalesTarget:      row.SalesTarget,
		CollectionTarget: row.CollectionTarget,
		Source:           entity.TargetSourceInherited,
		SourcePeriod:     row.Period(),
	}, nil
}

// resolveLegacy is isolated as its own strategy so it can be removed once no
// workspace depends on the legacy goals table.
func (r *Resolver) resolveLegacy(ctx context.Context, workspaceID uuid.UUID, period entity.Period) (*entity.ResolvedTarget, error) {
	row, err := r.targetRepo.FindLegacy(ctx, workspaceID)
	if err != nil || row == nil {
		return nil, err
	}
	return &entity.ResolvedTarget{
		SalesTarget:      row.SalesTarget,
		CollectionTarget: row.CollectionTarget,
		Source:           entity.TargetSourceLegacy,
		SourcePeriod:     row.Period(),
	}, nil
}
