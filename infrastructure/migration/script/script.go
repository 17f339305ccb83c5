package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/formula"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var schema = []string{
	`CREATE TABLE IF NOT EXISTS manual_orders (
		id            VARCHAR(32)    PRIMARY KEY,
		user_id       VARCHAR(128)   NOT NULL,
		order_date    DATE           NOT NULL,
		customer_name VARCHAR(200)   NOT NULL,
		business_unit VARCHAR(50)    NOT NULL,
		order_value   NUMERIC(15, 2) NOT NULL DEFAULT 0,
		gross_margin  NUMERIC(7, 2)  NOT NULL DEFAULT 0,
		gross_profit  NUMERIC(15, 2) NOT NULL DEFAULT 0,
		salesperson   VARCHAR(100)   NOT NULL,
		created_at    TIMESTAMPTZ    NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_manual_orders_user_date ON manual_orders (user_id, order_date)`,
	`CREATE TABLE IF NOT EXISTS user_targets (
		user_id    VARCHAR(128) PRIMARY KEY,
		targets    JSONB        NOT NULL,
		created_at TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS source_data (
		id         BIGSERIAL   PRIMARY KEY,
		year       INTEGER     NOT NULL UNIQUE,
		data       JSONB       NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// legacyOrder é o formato exportado pelo armazenamento local do frontend antigo
type legacyOrder struct {
	ID           string  `json:"id"`
	OrderDate    string  `json:"orderDate"`
	CustomerName string  `json:"customerName"`
	BusinessUnit string  `json:"businessUnit"`
	ProductGroup string  `json:"productGroup"`
	OrderValue   float64 `json:"orderValue"`
	GrossMargin  float64 `json:"grossMargin"`
	Salesperson  string  `json:"salesperson"`
}

func main() {
	importFile := flag.String("import", "", "arquivo JSON com pedidos manuais exportados do frontend antigo")
	userID := flag.String("user", "", "usuário dono dos pedidos importados")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel, cfg.App.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := applySchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar o schema")
	}
	logrus.WithField("statements", len(schema)).Info("Schema aplicado com sucesso")

	if *importFile == "" {
		return
	}
	if *userID == "" {
		logrus.Fatal("Informe -user para importar pedidos")
	}

	mapper := reporting.NewBusinessUnitMapper(cfg.BusinessUnitAliases.Parsed)
	imported, skipped, err := importLegacyOrders(ctx, repository.NewManualOrderRepository(conn), mapper, *importFile, *userID)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao importar pedidos manuais")
	}

	logrus.WithFields(logrus.Fields{
		"imported": imported,
		"skipped":  skipped,
		"user_id":  *userID,
	}).Info("Importação de pedidos manuais concluída")
}

func applySchema(ctx context.Context, conn *postgres.Connection) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, statement := range schema {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return err
			}
		}
		return nil
	})
}

// importLegacyOrders grava os pedidos exportados; o lucro bruto é sempre recalculado
func importLegacyOrders(ctx context.Context, repo repository.ManualOrderRepository, mapper *reporting.BusinessUnitMapper, path, userID string) (int, int, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, err
	}

	var legacy []legacyOrder
	if err := json.Unmarshal(payload, &legacy); err != nil {
		return 0, 0, err
	}

	imported, skipped := 0, 0
	for i, item := range legacy {
		order, err := toManualOrder(item, mapper, userID)
		if err != nil {
			logrus.WithError(err).WithField("index", i).Warn("Pedido ignorado")
			skipped++
			continue
		}

		if err := repo.Create(ctx, order); err != nil {
			logrus.WithError(err).WithField("order_id", order.ID).Warn("Erro ao gravar pedido")
			skipped++
			continue
		}
		imported++
	}

	return imported, skipped, nil
}

func toManualOrder(item legacyOrder, mapper *reporting.BusinessUnitMapper, userID string) (*domain.ManualOrder, error) {
	orderDate, err := time.Parse(time.DateOnly, strings.TrimSpace(item.OrderDate))
	if err != nil {
		return nil, err
	}

	unit := item.BusinessUnit
	if strings.TrimSpace(unit) == "" {
		unit = item.ProductGroup
	}

	grossProfit, err := formula.Evaluate(formula.GrossProfit, map[string]float64{
		formula.VarOrderValue:  item.OrderValue,
		formula.VarGrossMargin: item.GrossMargin,
	})
	if err != nil {
		return nil, err
	}

	id := strings.TrimSpace(item.ID)
	if id == "" {
		if id, err = utils.GenerateOrderID(); err != nil {
			return nil, err
		}
	}

	return &domain.ManualOrder{
		ID:           id,
		UserID:       userID,
		OrderDate:    orderDate,
		CustomerName: strings.TrimSpace(item.CustomerName),
		BusinessUnit: mapper.MapFold(unit),
		OrderValue:   item.OrderValue,
		GrossMargin:  item.GrossMargin,
		GrossProfit:  grossProfit,
		Salesperson:  strings.TrimSpace(item.Salesperson),
	}, nil
}
