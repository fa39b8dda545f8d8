package escalation

import "context"

type EscalationRepository interface {
	Create(ctx context.Context, e Escalation) (Escalation, error)
	List(ctx context.Context) ([]Escalation, error)
	Resolve(ctx context.Context, id, resolution string) (Escalation, error)
}
