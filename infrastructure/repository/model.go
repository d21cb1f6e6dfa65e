package repository

import (
	"time"

	"theta-oracle-keeper/domain/entities"

	"github.com/ethereum/go-ethereum/common"
)

// oracleConfigModel is the gorm mapping for one oracle configuration.
type oracleConfigModel struct {
	ID                    string `gorm:"primaryKey;size:50"`
	Description           string `gorm:"size:200"`
	APIEndpoint           string `gorm:"column:api_endpoint;not null"`
	DataPath              string `gorm:"not null"`
	UpdateIntervalMinutes int    `gorm:"not null;default:60"`
	DerivationPath        string `gorm:"size:50"`
	Address               string `gorm:"size:42"`
	PriceMultiplier       int64  `gorm:"not null;default:100"`
	IsActive              bool   `gorm:"not null;default:true"`

	LastUpdate   *time.Time
	LastErrorAt  *time.Time
	HasError     bool `gorm:"not null;default:false"`
	ErrorMessage string
	LastTxHash   string `gorm:"size:66"`
	LastValue    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName sets the table name for gorm.
func (oracleConfigModel) TableName() string {
	return "oracle_configs"
}

// toEntity converts the model to its domain entity.
func (m *oracleConfigModel) toEntity() entities.OracleConfig {
	return entities.OracleConfig{
		ID:                    m.ID,
		Description:           m.Description,
		APIEndpoint:           m.APIEndpoint,
		DataPath:              m.DataPath,
		UpdateIntervalMinutes: m.UpdateIntervalMinutes,
		DerivationPath:        m.DerivationPath,
		Address:               common.HexToAddress(m.Address),
		PriceMultiplier:       m.PriceMultiplier,
		IsActive:              m.IsActive,
		LastUpdate:            m.LastUpdate,
		LastErrorAt:           m.LastErrorAt,
		HasError:              m.HasError,
		ErrorMessage:          m.ErrorMessage,
		LastTxHash:            m.LastTxHash,
		LastValue:             m.LastValue,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// fromEntity converts a domain entity to its model.
func fromEntity(cfg *entities.OracleConfig) oracleConfigModel {
	return oracleConfigModel{
		ID:                    cfg.ID,
		Description:           cfg.Description,
		APIEndpoint:           cfg.APIEndpoint,
		DataPath:              cfg.DataPath,
		UpdateIntervalMinutes: cfg.UpdateIntervalMinutes,
		DerivationPath:        cfg.DerivationPath,
		Address:               cfg.Address.Hex(),
		PriceMultiplier:       cfg.PriceMultiplier,
		IsActive:              cfg.IsActive,
		LastUpdate:            cfg.LastUpdate,
		LastErrorAt:           cfg.LastErrorAt,
		HasError:              cfg.HasError,
		ErrorMessage:          cfg.ErrorMessage,
		LastTxHash:            cfg.LastTxHash,
		LastValue:             cfg.LastValue,
		CreatedAt:             cfg.CreatedAt,
		UpdatedAt:             cfg.UpdatedAt,
	}
}
