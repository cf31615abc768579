package lifecycle

import (
	"context"
	"errors"
	"fmt"
)

type HealthStatus struct {
	Ready   bool   `json:"ready"`
	Message string `json:"message,omitempty"`
}

// ManagedResource is a component started once at boot and stopped at shutdown.
type ManagedResource interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Health(ctx context.Context) HealthStatus
}

// Group starts resources in order and stops them in reverse.
type Group struct {
	resources []ManagedResource
	started   int
}

func NewGroup(resources ...ManagedResource) *Group {
	return &Group{resources: resources}
}

// Start starts every resource. If one fails, those already started are
// stopped again before the error is returned.
func (g *Group) Start(ctx context.Context) error {
	for i, r := range g.resources {
		if err := r.Start(ctx); err != nil {
			g.started = i
			stopErr := g.Stop(ctx)
			return errors.Join(fmt.Errorf("starting resource %d: %w", i, err), stopErr)
		}
	}
	g.started = len(g.resources)
	return nil
}

func (g *Group) Stop(ctx context.Context) error {
	var errs []error
	for i := g.started - 1; i >= 0; i-- {
		if err := g.resources[i].Stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stopping resource %d: %w", i, err))
		}
	}
	g.started = 0
	return errors.Join(errs...)
}

// Health is ready only when every resource is.
func (g *Group) Health(ctx context.Context) HealthStatus {
	for _, r := range g.resources {
		if h := r.Health(ctx); !h.Ready {
			return h
		}
	}
	return HealthStatus{Ready: true}
}
