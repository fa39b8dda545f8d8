package escalation

import "context"

type EscalationService interface {
	Create(ctx context.Context, req CreateEscalationRequest) (Escalation, error)
	List(ctx context.Context) ([]Escalation, error)
	Resolve(ctx context.Context, id string, req ResolveEscalationRequest) (Escalation, error)
}
