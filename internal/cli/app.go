package cli

import (
	"log/slog"

	"fintrack/internal/config"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"gorm.io/gorm"
)

// App is the service graph the CLI commands run against.
type App struct {
	Ledger      services.LedgerServiceInterface
	Categorizer services.CategorizerInterface
	Importer    services.ImportServiceInterface
	Sync        services.SyncServiceInterface
	Tokens      services.TokenServiceInterface
}

// NewApp wires the services over db. Metrics are not exported from the CLI.
func NewApp(db *gorm.DB, cfg *config.Config, logger *slog.Logger) *App {
	userRepo := repositories.NewUserRepository(db)
	ledgerRepo := repositories.NewLedgerRepository(db)
	ruleRepo := repositories.NewCategoryRuleRepository(db)
	connectionRepo := repositories.NewConnectionRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	audit := services.NewAuditLogger(logger)
	notifier := services.NewNotificationService(notificationRepo, nil, logger)
	categorizer := services.NewCategorizer(ruleRepo, services.NewAIClassifier(cfg.AI, logger), audit, nil, cfg.AI, logger)
	ledger := services.NewLedgerService(userRepo, ledgerRepo, categorizer, notifier, audit, nil, cfg.Ledger, logger)
	provider := services.NewSaltEdgeClient(&cfg.Provider, audit, nil, logger)

	return &App{
		Ledger:      ledger,
		Categorizer: categorizer,
		Importer:    services.NewImportService(userRepo, ledgerRepo, ledger, audit, nil, cfg.Ledger, logger),
		Sync: services.NewSyncService(userRepo, connectionRepo, ledgerRepo, ledger, categorizer,
			provider, notifier, audit, nil, logger),
		Tokens: services.NewTokenService(&cfg.JWT),
	}
}
