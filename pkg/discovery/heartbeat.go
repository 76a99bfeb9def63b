package discovery

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Heartbeat registers the instance, reports it healthy every interval
// until ctx is done and deregisters it on the way out.
type Heartbeat struct {
	Registry    Registry
	InstanceID  string
	ServiceName string
	HostPort    string
	Interval    time.Duration
	Logger      *zap.Logger
}

// Serve runs the heartbeat loop.
func (h *Heartbeat) Serve(ctx context.Context) error {
	if err := h.Registry.Register(ctx, h.InstanceID, h.ServiceName, h.HostPort); err != nil {
		return err
	}
	defer func() {
		if err := h.Registry.Deregister(context.WithoutCancel(ctx), h.InstanceID, h.ServiceName); err != nil {
			h.Logger.Warn("Failed to deregister service", zap.Error(err))
		}
	}()
	ticker := time.NewTicker(h.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := h.Registry.ReportHealthyState(h.InstanceID, h.ServiceName); err != nil {
				h.Logger.Warn("Failed to report healthy state", zap.Error(err))
			}
		}
	}
}

func (h *Heartbeat) String() string {
	return "discovery-heartbeat"
}
