package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/accounts_backoffice/internal/core/ports/repositories"
)

const itemSelect = `
	SELECT i.item_id, i.code, i.description, i.item_type, i.unit_of_measure, i.is_active,
	       i.created_at, i.created_by, i.last_updated_at, i.last_updated_by,
	       m.item_id IS NOT NULL,
	       m.gl_account, m.goods_on_consignment, m.sales_revenue, m.trade_discounts,
	       m.cost_of_goods_sold, m.deferred_expenses, m.output_vat, m.input_vat
	FROM items i
	LEFT JOIN item_gl_mappings m ON m.item_id = i.item_id
`

type PgxItemRepository struct {
	BaseRepository
}

func newPgxItemRepository(pool *pgxpool.Pool) *PgxItemRepository {
	return &PgxItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ItemRepositoryFacade = (*PgxItemRepository)(nil)

func scanItem(row pgx.Row) (domain.Item, error) {
	var it domain.Item
	var m domain.ItemGLMapping
	var mapped bool
	err := row.Scan(
		&it.ItemID, &it.Code, &it.Description, &it.ItemType, &it.UnitOfMeasure, &it.IsActive,
		&it.CreatedAt, &it.CreatedBy, &it.LastUpdatedAt, &it.LastUpdatedBy,
		&mapped,
		&m.GLAccount, &m.GoodsOnConsignment, &m.SalesRevenue, &m.TradeDiscounts,
		&m.CostOfGoodsSold, &m.DeferredExpenses, &m.OutputVAT, &m.InputVAT,
	)
	if mapped {
		it.GLMapping = &m
	}
	return it, err
}

func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	query := `
		INSERT INTO items (item_id, code, description, item_type, unit_of_measure, is_active,
		                   created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		item.ItemID, item.Code, item.Description, item.ItemType, item.UnitOfMeasure, item.IsActive,
		item.CreatedAt, item.CreatedBy, item.LastUpdatedAt, item.LastUpdatedBy,
	)
	if err != nil {
		return writeErr(err, "item", item.Code)
	}
	return nil
}

func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	it, err := scanItem(r.Pool.QueryRow(ctx, itemSelect+` WHERE i.item_id = $1;`, itemID))
	if err != nil {
		return nil, notFoundOr(err, "item", itemID)
	}
	return &it, nil
}

// FindItemsByIDs loads every requested item with its mapping in a single round trip.
func (r *PgxItemRepository) FindItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.Item, error) {
	items := make(map[string]domain.Item, len(itemIDs))
	if len(itemIDs) == 0 {
		return items, nil
	}

	rows, err := r.Pool.Query(ctx, itemSelect+` WHERE i.item_id = ANY($1);`, itemIDs)
	if err != nil {
		return nil, queryErr(err, "items by id")
	}
	defer rows.Close()

	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, queryErr(err, "items by id")
		}
		items[it.ItemID] = it
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr(err, "items by id")
	}
	return items, nil
}

func (r *PgxItemRepository) ListItems(ctx context.Context, limit, offset int) ([]domain.Item, error) {
	rows, err := r.Pool.Query(ctx, itemSelect+` ORDER BY i.code LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, queryErr(err, "items")
	}
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, queryErr(err, "items")
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr(err, "items")
	}
	return items, nil
}

func (r *PgxItemRepository) UpsertItemGLMapping(ctx context.Context, itemID string, mapping domain.ItemGLMapping, userID string) error {
	query := `
		INSERT INTO item_gl_mappings (
			item_id, gl_account, goods_on_consignment, sales_revenue, trade_discounts,
			cost_of_goods_sold, deferred_expenses, output_vat, input_vat,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), $10, NOW(), $10)
		ON CONFLICT (item_id) DO UPDATE SET
			gl_account = EXCLUDED.gl_account,
			goods_on_consignment = EXCLUDED.goods_on_consignment,
			sales_revenue = EXCLUDED.sales_revenue,
			trade_discounts = EXCLUDED.trade_discounts,
			cost_of_goods_sold = EXCLUDED.cost_of_goods_sold,
			deferred_expenses = EXCLUDED.deferred_expenses,
			output_vat = EXCLUDED.output_vat,
			input_vat = EXCLUDED.input_vat,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query, itemID,
		mapping.GLAccount, mapping.GoodsOnConsignment, mapping.SalesRevenue, mapping.TradeDiscounts,
		mapping.CostOfGoodsSold, mapping.DeferredExpenses, mapping.OutputVAT, mapping.InputVAT, userID,
	)
	if err != nil {
		return writeErr(err, "item GL mapping", itemID)
	}
	return nil
}
