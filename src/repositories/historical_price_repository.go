package repositories

import (
	"context"

	"portfolio-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HistoricalPriceRepository interface {
	GetBySymbol(ctx context.Context, symbol string) ([]models.HistoricalPrice, error)
	GetDistinctSymbols(ctx context.Context) ([]string, error)
	SaveAll(ctx context.Context, prices []models.HistoricalPrice) error
}

type historicalPriceRepo struct {
	db *pgxpool.Pool
}

func NewHistoricalPriceRepository(db *pgxpool.Pool) HistoricalPriceRepository {
	return &historicalPriceRepo{db: db}
}

func (r *historicalPriceRepo) GetBySymbol(ctx context.Context, symbol string) ([]models.HistoricalPrice, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, symbol, price, price_date
		FROM historical_prices
		WHERE symbol = $1
		ORDER BY price_date ASC`,
		symbol)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prices []models.HistoricalPrice
	for rows.Next() {
		var p models.HistoricalPrice
		if err := rows.Scan(&p.ID, &p.Symbol, &p.Price, &p.PriceDate); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}

func (r *historicalPriceRepo) GetDistinctSymbols(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT symbol FROM historical_prices ORDER BY symbol`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		symbols = append(symbols, s)
	}
	return symbols, rows.Err()
}

// SaveAll upserts price points, de-duplicating on (symbol, price_date).
// A refetched point replaces the stored price for that day.
func (r *historicalPriceRepo) SaveAll(ctx context.Context, prices []models.HistoricalPrice) error {
	if len(prices) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i := range prices {
		if prices[i].ID == uuid.Nil {
			prices[i].ID = uuid.New()
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO historical_prices (id, symbol, price, price_date)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (symbol, price_date) DO UPDATE SET price = EXCLUDED.price`,
			prices[i].ID, prices[i].Symbol, prices[i].Price, prices[i].PriceDate)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
