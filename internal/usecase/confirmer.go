package usecase

import "context"

// Confirmer stands in for the desk's confirmation dialogs. Confirm blocks until
// the user answers and returns false when the action is declined.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	if f == nil {
		return false
	}
	return f(ctx, prompt)
}

// Preconfirmed answers every prompt with the same decision, as when the HTTP
// caller already confirmed (or refused) up front.
func Preconfirmed(ok bool) Confirmer {
	return ConfirmFunc(func(context.Context, string) bool { return ok })
}

func confirmed(ctx context.Context, c Confirmer, prompt string) bool {
	return c != nil && c.Confirm(ctx, prompt)
}
