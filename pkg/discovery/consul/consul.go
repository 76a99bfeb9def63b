package consul

import (
	"context"
	"fmt"
	"net"
	"strconv"

	consul "github.com/hashicorp/consul/api"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"ugcengagement/pkg/discovery"
	"ugcengagement/pkg/logging"
)

const tracerID = "discovery-consul"

// checkTTL is how long an instance stays healthy without a heartbeat.
const checkTTL = "5s"

// Registry defines a Consul-based service registry.
type Registry struct {
	client *consul.Client
	logger *zap.Logger
}

// NewRegistry creates a new Consul-based service registry instance.
func NewRegistry(addr string, logger *zap.Logger) (*Registry, error) {
	logger = logger.With(
		zap.String(logging.FieldComponent, "discovery"),
		zap.String(logging.FieldType, "consul"),
	)
	config := consul.DefaultConfig()
	config.Address = addr
	client, err := consul.NewClient(config)
	if err != nil {
		return nil, err
	}
	return &Registry{client, logger}, nil
}

// Register creates a service record in the registry.
func (r *Registry) Register(ctx context.Context, instanceID string, serviceName string, hostPort string) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Register")
	defer span.End()
	host, rawPort, err := net.SplitHostPort(hostPort)
	if err != nil {
		return fmt.Errorf("hostPort must be in a form of <host>:<port>, example: localhost:8500: %w", err)
	}
	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	r.logger.Info("Registering instance",
		zap.String("instance", instanceID),
		zap.String("address", hostPort),
	)
	return r.client.Agent().ServiceRegister(&consul.AgentServiceRegistration{
		Address: host,
		ID:      instanceID,
		Name:    serviceName,
		Port:    port,
		Check: &consul.AgentServiceCheck{
			CheckID:                        instanceID,
			TTL:                            checkTTL,
			DeregisterCriticalServiceAfter: "1m",
		},
	})
}

// Deregister removes a service record from the registry.
func (r *Registry) Deregister(ctx context.Context, instanceID string, _ string) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Deregister")
	defer span.End()
	r.logger.Info("Deregistering instance", zap.String("instance", instanceID))
	return r.client.Agent().ServiceDeregister(instanceID)
}

// ServiceAddresses returns the list of addresses of active instance of the given service.
func (r *Registry) ServiceAddresses(ctx context.Context, serviceName string) ([]string, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "ServiceAddresses")
	defer span.End()
	entries, _, err := r.client.Health().Service(serviceName, "", true, (&consul.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, err
	} else if len(entries) == 0 {
		return nil, discovery.ErrNotFound
	}
	res := make([]string, 0, len(entries))
	for _, e := range entries {
		res = append(res, net.JoinHostPort(e.Service.Address, strconv.Itoa(e.Service.Port)))
	}
	return res, nil
}

// ReportHealthyState is a push mechanism for reporting healthy state to the registry.
func (r *Registry) ReportHealthyState(instanceID string, _ string) error {
	_, span := otel.Tracer(tracerID).Start(context.Background(), "ReportHealthyState")
	defer span.End()
	return r.client.Agent().UpdateTTL(instanceID, "", consul.HealthPassing)
}
