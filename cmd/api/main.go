package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi/salesapiclient"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ordering"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	// Permite rodar a partir de qualquer diretório encontrando o .env do projeto
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel, cfg.App.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	manualOrderRepo := repository.NewManualOrderRepository(pgConn)
	targetRepo := repository.NewTargetRepository(pgConn)
	sourceDataRepo := repository.NewSourceDataRepository(pgConn)

	mapper := reporting.NewBusinessUnitMapper(cfg.BusinessUnitAliases.Parsed)
	processor := reporting.NewRecordProcessor(cfg.Mapping, mapper)

	orderService := ordering.NewService(manualOrderRepo, mapper)
	if redisClient := redisconn(ctx, cfg.Redis); redisClient != nil {
		defer redisClient.Close()
		orderService = orderService.WithCache(cache.NewManualOrderCache(redisClient, cfg.Redis.ManualOrderTTL))
	}

	targetService := targeting.NewService(targetRepo, mapper)

	salesClient := salesapiclient.NewClient(cfg)
	salesIntegrator := salesapi.New(cfg, salesClient)

	dashboardService := dashboard.NewService(cfg, salesIntegrator, processor, orderService, targetService).
		WithCache(sourceDataRepo)

	authenticator := authenticating.NewService(cfg)

	sourceRefreshSyncService := scheduler.NewSourceRefreshSyncService(dashboardService, cfg)
	if err := sourceRefreshSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de coleta das APIs de vendas")
	} else {
		logrus.Info("Agendador de coleta das APIs de vendas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		orderService,
		targetService,
		authenticator,
		sourceRefreshSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do binário")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// redisconn cria o cliente do cache de pedidos manuais; sem redis o serviço segue só com o postgres
func redisconn(ctx context.Context, redisConfig config.Redis) *redis.Client {
	if !redisConfig.Enabled {
		logrus.Info("Cache de pedidos manuais desabilitado por configuração")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisConfig.Addr,
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).WithField("addr", redisConfig.Addr).Warn("Redis indisponível, cache de pedidos manuais desabilitado")
		_ = client.Close()
		return nil
	}

	logrus.WithField("addr", redisConfig.Addr).Info("Conexão com Redis estabelecida com sucesso")
	return client
}
