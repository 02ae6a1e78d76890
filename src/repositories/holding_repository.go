package repositories

import (
	"context"
	"errors"

	"portfolio-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

type HoldingRepository interface {
	GetAll(ctx context.Context) ([]models.Holding, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Holding, error)
	GetByAssetType(ctx context.Context, assetType string) ([]models.Holding, error)
	Create(ctx context.Context, h *models.Holding) error
	Update(ctx context.Context, h *models.Holding) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type holdingRepo struct {
	db *pgxpool.Pool
}

func NewHoldingRepository(db *pgxpool.Pool) HoldingRepository {
	return &holdingRepo{db: db}
}

const holdingColumns = `id, asset_type, symbol, quantity, purchase_price, purchase_date, category, created_at`

func (r *holdingRepo) GetAll(ctx context.Context) ([]models.Holding, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+holdingColumns+`
		FROM holdings
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHoldings(rows)
}

func (r *holdingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Holding, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+holdingColumns+`
		FROM holdings
		WHERE id = $1`,
		id)

	var h models.Holding
	if err := row.Scan(&h.ID, &h.AssetType, &h.Symbol, &h.Quantity, &h.PurchasePrice, &h.PurchaseDate, &h.Category, &h.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *holdingRepo) GetByAssetType(ctx context.Context, assetType string) ([]models.Holding, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+holdingColumns+`
		FROM holdings
		WHERE asset_type = $1
		ORDER BY created_at ASC`,
		assetType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHoldings(rows)
}

func (r *holdingRepo) Create(ctx context.Context, h *models.Holding) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}

	// created_at is assigned by the database and never mutated afterwards.
	return r.db.QueryRow(ctx,
		`INSERT INTO holdings (id, asset_type, symbol, quantity, purchase_price, purchase_date, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		h.ID, h.AssetType, h.Symbol, h.Quantity, h.PurchasePrice, h.PurchaseDate, h.Category,
	).Scan(&h.CreatedAt)
}

func (r *holdingRepo) Update(ctx context.Context, h *models.Holding) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE holdings
		SET asset_type = $2, symbol = $3, quantity = $4, purchase_price = $5, purchase_date = $6, category = $7
		WHERE id = $1`,
		h.ID, h.AssetType, h.Symbol, h.Quantity, h.PurchasePrice, h.PurchaseDate, h.Category)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *holdingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM holdings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanHoldings(rows pgx.Rows) ([]models.Holding, error) {
	var holdings []models.Holding
	for rows.Next() {
		var h models.Holding
		if err := rows.Scan(&h.ID, &h.AssetType, &h.Symbol, &h.Quantity, &h.PurchasePrice, &h.PurchaseDate, &h.Category, &h.CreatedAt); err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}
