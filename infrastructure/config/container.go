package config

import (
	"context"
	"fmt"
	"math/big"

	"theta-oracle-keeper/application/services"
	"theta-oracle-keeper/application/usecases"
	"theta-oracle-keeper/domain/interfaces"
	"theta-oracle-keeper/infrastructure/blockchain"
	"theta-oracle-keeper/infrastructure/logger"
	"theta-oracle-keeper/infrastructure/metrics"
	"theta-oracle-keeper/infrastructure/notifier"
	"theta-oracle-keeper/infrastructure/pricefeed"
	"theta-oracle-keeper/infrastructure/repository"
	"theta-oracle-keeper/infrastructure/signer"

	"github.com/ethereum/go-ethereum/common"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Container represents the dependency injection container
type Container struct {
	Config *Config

	// Infrastructure
	Logger      interfaces.Logger
	DB          *gorm.DB
	ChainClient interfaces.ChainClient
	Contract    interfaces.OracleContract
	Signer      interfaces.SignerService
	PriceSource interfaces.PriceSource
	Submitter   interfaces.TransactionSubmitter
	Metrics     *metrics.Metrics
	Notifier    interfaces.Notifier

	// Persistence
	ConfigStore interfaces.ConfigStore

	// Services
	Guard     *services.UpdateGuard
	Scheduler *services.Scheduler

	// Use Cases
	UpdateOracleUseCase   interfaces.UpdateOracleUseCase
	DeriveWalletUseCase   interfaces.DeriveWalletUseCase
	RegisterOracleUseCase interfaces.RegisterOracleUseCase
}

// NewContainer creates a new dependency injection container
func NewContainer(config *Config) (*Container, error) {
	container := &Container{
		Config: config,
	}

	// Initialize logger
	container.Logger = logger.NewLogrusLogger(config.LogLevel)

	// Initialize metrics
	container.Metrics = metrics.NewMetrics()

	// Initialize blockchain client and contract binding
	if err := container.initBlockchain(); err != nil {
		return nil, fmt.Errorf("failed to initialize blockchain client: %w", err)
	}

	// Initialize database-backed config store
	if err := container.initDatabase(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize remote services
	container.Signer = signer.NewHTTPSigner(config.Signer.URL, config.Signer.AccountID, container.Logger)
	container.PriceSource = pricefeed.NewHTTPSource(container.Logger)
	container.Notifier = notifier.NewSlackNotifier(config.Slack.WebhookURL, config.Slack.Channel, container.Logger)
	container.Submitter = blockchain.NewLegacyTxSubmitter(
		container.ChainClient,
		container.Signer,
		big.NewInt(config.ChainID),
		container.Logger,
	)

	// Initialize services and use cases
	container.initUseCases()

	return container, nil
}

// initBlockchain initializes the chain client and the oracle contract
// binding.
func (c *Container) initBlockchain() error {
	chainClient, err := blockchain.NewEthereumClient(c.Config.RPCAddr, c.Config.ChainID)
	if err != nil {
		return err
	}
	c.ChainClient = chainClient

	contract, err := blockchain.NewOracleContract(
		common.HexToAddress(c.Config.ContractAddress),
		chainClient,
		c.Config.ChainID,
	)
	if err != nil {
		return err
	}
	c.Contract = contract

	return nil
}

// initDatabase initializes the database connection and the config
// store, including the one-time legacy-field migration.
func (c *Container) initDatabase() error {
	dsn := c.Config.Database.GetDatabaseDSN()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(c.Config.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.Config.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(c.Config.Database.ConnMaxLifetime)

	c.DB = db

	if err := repository.AutoMigrate(db); err != nil {
		return err
	}
	if err := repository.MigrateLegacyFields(context.Background(), db, c.Logger); err != nil {
		return err
	}

	c.ConfigStore = repository.NewOracleConfigStore(db)
	return nil
}

// initUseCases initializes services and use cases
func (c *Container) initUseCases() {
	c.Guard = services.NewUpdateGuard()

	c.UpdateOracleUseCase = usecases.NewUpdateOracleUseCase(
		c.ConfigStore,
		c.Contract,
		c.ChainClient,
		c.Signer,
		c.PriceSource,
		c.Submitter,
		c.Guard,
		c.Metrics,
		c.Notifier,
		c.Logger,
	)

	c.DeriveWalletUseCase = usecases.NewDeriveWalletUseCase(
		c.Signer,
		c.ChainClient,
		c.Logger,
	)

	c.RegisterOracleUseCase = usecases.NewRegisterOracleUseCase(
		c.ConfigStore,
		c.DeriveWalletUseCase,
		c.Logger,
	)

	c.Scheduler = services.NewScheduler(
		c.ConfigStore,
		c.Contract,
		c.UpdateOracleUseCase,
		c.Guard,
		c.Metrics,
		c.Logger,
	)
}

// Close closes all resources
func (c *Container) Close() error {
	// Stop the scheduler first so no update is mid-flight.
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}

	// Close blockchain client
	if c.ChainClient != nil {
		if err := c.ChainClient.Close(); err != nil {
			c.Logger.Error("Failed to close blockchain client", "error", err)
		}
	}

	// Close database
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				c.Logger.Error("Failed to close database", "error", err)
			}
		}
	}

	return nil
}
