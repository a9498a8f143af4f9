package usecase

import "context"

type actorKey struct{}

// Actor is the authenticated user a mutation is attributed to.
type Actor struct {
	UserID   string
	Username string
}

func ContextWithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFromContext returns the zero Actor for unauthenticated calls.
func ActorFromContext(ctx context.Context) Actor {
	a, _ := ctx.Value(actorKey{}).(Actor)
	return a
}
