package catalog

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/catalog"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	storeColumns   = `id, name, type, address, is_open`
	productColumns = `id, store_id, name, price, category, available`
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) ListStores(ctx context.Context) ([]entities.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected catalog repository list stores error: %w", err)
	}
	defer rows.Close()

	stores := make([]entities.Store, 0)
	for rows.Next() {
		var s StoreDB
		if err := scanStore(rows, &s); err != nil {
			return nil, fmt.Errorf("unexpected catalog repository scan error: %w", err)
		}
		stores = append(stores, *StoreToDomain(&s))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected catalog repository rows error: %w", err)
	}
	return stores, nil
}

func (r *Repository) GetStore(ctx context.Context, id int64) (*entities.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`

	var storeModel StoreDB
	err := scanStore(r.querier.QueryRow(ctx, query, id), &storeModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrStoreNotFound
		}
		return nil, fmt.Errorf("unexpected catalog repository get store error: %w", err)
	}
	return StoreToDomain(&storeModel), nil
}

func (r *Repository) UpdateStoreOpen(ctx context.Context, id int64, isOpen bool) (*entities.Store, error) {
	query := `UPDATE stores SET is_open = $2 WHERE id = $1 RETURNING ` + storeColumns

	var storeModel StoreDB
	err := scanStore(r.querier.QueryRow(ctx, query, id, isOpen), &storeModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrStoreNotFound
		}
		return nil, fmt.Errorf("unexpected catalog repository update store error: %w", err)
	}
	return StoreToDomain(&storeModel), nil
}

func (r *Repository) ListProductsByStore(ctx context.Context, storeID int64) ([]entities.Product, error) {
	query, args, err := qb.
		Select(productColumns).
		From("products").
		Where(sq.Eq{"store_id": storeID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected catalog repository build query error: %w", err)
	}
	return r.queryProducts(ctx, query, args...)
}

// GetProductsByIDs пропускает неизвестные id без ошибки.
func (r *Repository) GetProductsByIDs(ctx context.Context, ids []int64) ([]entities.Product, error) {
	if len(ids) == 0 {
		return []entities.Product{}, nil
	}

	query, args, err := qb.
		Select(productColumns).
		From("products").
		Where(sq.Eq{"id": ids}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected catalog repository build query error: %w", err)
	}
	return r.queryProducts(ctx, query, args...)
}

func (r *Repository) CreateProduct(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error) {
	productModifyModel := FromDomainModify(&productModify)

	builder := qb.Insert("products")
	columns := make([]string, 0, 5)
	values := make([]interface{}, 0, 5)

	// опционные поля, незаданные берут значения по умолчанию из схемы
	if productModifyModel.StoreID != nil {
		columns, values = append(columns, "store_id"), append(values, *productModifyModel.StoreID)
	}
	if productModifyModel.Name != nil {
		columns, values = append(columns, "name"), append(values, *productModifyModel.Name)
	}
	if productModifyModel.Price != nil {
		columns, values = append(columns, "price"), append(values, *productModifyModel.Price)
	}
	if productModifyModel.Category != nil {
		columns, values = append(columns, "category"), append(values, *productModifyModel.Category)
	}
	if productModifyModel.Available != nil {
		columns, values = append(columns, "available"), append(values, *productModifyModel.Available)
	}

	query, args, err := builder.
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING " + productColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected catalog repository build query error: %w", err)
	}

	var productModel ProductDB
	err = scanProduct(r.querier.QueryRow(ctx, query, args...), &productModel)
	if err != nil {
		if repository.HasPgCode(err, repository.PgErrForeignKeyViolation) {
			return nil, catalog.ErrStoreNotFound
		}
		return nil, fmt.Errorf("unexpected catalog repository create product error: %w", err)
	}
	return ProductToDomain(&productModel), nil
}

func (r *Repository) ToggleProductAvailability(ctx context.Context, id int64) (*entities.Product, error) {
	query := `UPDATE products SET available = NOT available WHERE id = $1 RETURNING ` + productColumns

	var productModel ProductDB
	err := scanProduct(r.querier.QueryRow(ctx, query, id), &productModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, fmt.Errorf("unexpected catalog repository toggle product error: %w", err)
	}
	return ProductToDomain(&productModel), nil
}

func (r *Repository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]entities.Product, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected catalog repository list products error: %w", err)
	}
	defer rows.Close()

	products := make([]entities.Product, 0)
	for rows.Next() {
		var p ProductDB
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("unexpected catalog repository scan error: %w", err)
		}
		products = append(products, *ProductToDomain(&p))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected catalog repository rows error: %w", err)
	}
	return products, nil
}

func scanStore(row pgx.Row, s *StoreDB) error {
	return row.Scan(&s.ID, &s.Name, &s.Type, &s.Address, &s.IsOpen)
}

func scanProduct(row pgx.Row, p *ProductDB) error {
	return row.Scan(&p.ID, &p.StoreID, &p.Name, &p.Price, &p.Category, &p.Available)
}
