package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/ratelimit"
	"github.com/thejerf/suture/v4"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"ugcengagement/engagement/configs"
	"ugcengagement/engagement/internal/controller/engagement"
	grpchandler "ugcengagement/engagement/internal/handler/grpc"
	httphandler "ugcengagement/engagement/internal/handler/http"
	"ugcengagement/engagement/internal/identity"
	"ugcengagement/engagement/internal/ingester/kafka"
	"ugcengagement/engagement/internal/repository"
	"ugcengagement/engagement/internal/repository/memory"
	"ugcengagement/engagement/internal/repository/mongo"
	"ugcengagement/engagement/internal/repository/sqldb"
	"ugcengagement/engagement/internal/supervisor"
	"ugcengagement/gen"
	"ugcengagement/internal/grpcutil"
	"ugcengagement/pkg/discovery"
	"ugcengagement/pkg/discovery/consul"
	"ugcengagement/pkg/limiter"
	"ugcengagement/pkg/logging"
	"ugcengagement/pkg/metrics"
	"ugcengagement/pkg/tracing"
)

const serviceName = "engagement"

func main() {
	logConfig := zap.NewProductionConfig()
	log, err := logConfig.Build()
	if err != nil {
		panic(err)
	}
	log = log.With(zap.String(logging.FieldService, serviceName))
	defer func() { _ = log.Sync() }()

	cfg, err := configs.Load("defaults.yaml")
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("Service stopped", zap.Error(err))
	}
	log.Info("Gracefully stopped the service")
}

func run(ctx context.Context, cfg configs.ServiceConfig, log *zap.Logger) error {
	log.Info("Starting the service",
		zap.Int(logging.FieldPort, cfg.API.GRPCPort),
		zap.Int("httpPort", cfg.API.HTTPPort),
		zap.String(logging.FieldDriver, cfg.DatabaseConfig.Driver),
	)

	tp, err := tracing.NewJaegerProvider(ctx, cfg.Jaeger.URL, serviceName)
	if err != nil {
		return fmt.Errorf("initialize jaeger provider: %w", err)
	}
	defer func() {
		if err := tp.Shutdown(context.WithoutCancel(ctx)); err != nil {
			log.Warn("Failed to shutdown jaeger provider", zap.Error(err))
		}
	}()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	scope, closer, metricsHandler := metrics.NewMetricsReporter(serviceName)
	defer func() {
		if err := closer.Close(); err != nil {
			log.Warn("Failed to close Prometheus reporter scope", zap.Error(err))
		}
	}()

	store, err := openStore(ctx, cfg.DatabaseConfig, log)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.DatabaseConfig.Driver, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn("Failed to close store", zap.Error(err))
		}
	}()

	var svc *engagement.Controller
	kafkaCfg := cfg.MessengerConfig.Kafka
	if kafkaCfg.Enabled {
		ingester, err := kafka.NewIngester(kafkaCfg.Address, kafkaCfg.GroupID, kafkaCfg.Topic, log)
		if err != nil {
			return fmt.Errorf("create kafka ingester: %w", err)
		}
		svc = engagement.New(store, ingester, scope, log)
	} else {
		svc = engagement.New(store, nil, scope, log)
	}

	resolver := identity.NewResolver(cfg.Auth.JWTSecret)
	l := limiter.New(log, cfg.Limiter.Limit, cfg.Limiter.Burst)

	creds, err := grpcutil.Credentials(cfg.API.CertFile, cfg.API.KeyFile)
	if err != nil {
		return err
	}
	grpcSrv := grpc.NewServer(
		grpc.UnaryInterceptor(ratelimit.UnaryServerInterceptor(l)),
		grpc.Creds(creds),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)
	gen.RegisterEngagementServiceServer(grpcSrv, grpchandler.New(svc, resolver, scope, log))
	log.Info("Register reflection")
	reflection.Register(grpcSrv)

	grpcLis, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%d", cfg.API.GRPCPort))
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}
	httpLis, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%d", cfg.API.HTTPPort))
	if err != nil {
		return fmt.Errorf("listen http: %w", err)
	}

	metricsRouter := chi.NewRouter()
	metricsRouter.Handle("/metrics", metricsHandler)

	registry, err := consul.NewRegistry(cfg.ServiceDiscovery.Consul.Address, log)
	if err != nil {
		return fmt.Errorf("create consul registry: %w", err)
	}

	sup := supervisor.New(serviceName, log)
	sup.Add(&supervisor.GRPCServer{Server: grpcSrv, Listener: grpcLis})
	sup.Add(&supervisor.HTTPServer{
		Name:     "http-api",
		Server:   &http.Server{Handler: httphandler.New(svc, resolver, scope, log).Routes(l.Middleware)},
		Listener: httpLis,
	})
	sup.Add(&supervisor.HTTPServer{
		Name:   "metrics",
		Server: &http.Server{Addr: fmt.Sprintf(":%d", cfg.Prometheus.MetricsPort), Handler: metricsRouter},
	})
	sup.Add(&discovery.Heartbeat{
		Registry:    registry,
		InstanceID:  discovery.GenerateInstanceID(serviceName),
		ServiceName: serviceName,
		HostPort:    fmt.Sprintf("%s:%d", cfg.ServiceDiscovery.Consul.Host, cfg.API.GRPCPort),
		Interval:    time.Second,
		Logger:      log,
	})
	if kafkaCfg.Enabled {
		sup.Add(&supervisor.Func{Name: "kafka-ingestion", Run: func(ctx context.Context) error {
			err := svc.StartIngestion(ctx)
			if errors.Is(err, engagement.ErrNoIngester) {
				return suture.ErrDoNotRestart
			}
			return err
		}})
	}

	err = sup.Serve(ctx)
	log.Info("Supervisor stopped, shutting down", zap.Error(err))
	return err
}

func openStore(ctx context.Context, cfg configs.DatabaseConfig, log *zap.Logger) (repository.Store, error) {
	switch cfg.Driver {
	case configs.DriverMemory:
		return memory.New(log), nil
	case configs.DriverMySQL:
		return sqldb.NewMySQL(ctx, cfg.Mysql, log)
	case configs.DriverPostgres:
		return sqldb.NewPostgres(ctx, cfg.Postgres, log)
	case configs.DriverSQLite:
		return sqldb.NewSQLite(ctx, cfg.Sqlite, log)
	case configs.DriverMongo:
		return mongo.New(ctx, cfg.Mongo, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
