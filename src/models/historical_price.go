package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HistoricalPrice is one (symbol, date, price) point used for trend
// display. Points are de-duplicated on (symbol, price_date) at insert.
type HistoricalPrice struct {
	ID        uuid.UUID       `db:"id"`
	Symbol    string          `db:"symbol"`
	Price     decimal.Decimal `db:"price"`
	PriceDate time.Time       `db:"price_date"`
}
