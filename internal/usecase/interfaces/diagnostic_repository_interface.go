package interfaces

import (
	"context"

	"repair_desk/internal/domain/entities"
)

// IDiagnosticRepository reads and overwrites the per-mode diagnostic records.
// Records are flat field-name -> flag maps; Put replaces the whole record.
type IDiagnosticRepository interface {
	Get(ctx context.Context, rc entities.RequestContext, orderID int64, mode entities.DiagnosticMode) (map[string]bool, error)
	Put(ctx context.Context, rc entities.RequestContext, orderID int64, mode entities.DiagnosticMode, fields map[string]bool) error
}
