package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset types supported for pricing. Values are normalized to this
// canonical uppercase form before persistence.
const (
	AssetTypeStock      = "STOCK"
	AssetTypeMutualFund = "MUTUAL_FUND"
)

// Holding is a user's position in one asset. Only the fields below are
// persisted; valuation fields are recomputed on every read.
type Holding struct {
	ID            uuid.UUID       `db:"id"`
	AssetType     string          `db:"asset_type"`
	Symbol        string          `db:"symbol"`
	Quantity      decimal.Decimal `db:"quantity"`
	PurchasePrice decimal.Decimal `db:"purchase_price"`
	PurchaseDate  time.Time       `db:"purchase_date"`
	Category      string          `db:"category"`
	CreatedAt     time.Time       `db:"created_at"`
}
