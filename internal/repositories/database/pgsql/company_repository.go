package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/accounts_backoffice/internal/core/ports/repositories"
)

// company columns followed by the optional GL mapping from a LEFT JOIN.
const companySelect = `
	SELECT c.company_id, c.code, c.name, c.company_type, c.tax_id, c.is_active,
	       c.created_at, c.created_by, c.last_updated_at, c.last_updated_by,
	       m.company_id IS NOT NULL,
	       m.accounts_receivable, m.advances_received, m.pdcs_received, m.contract_assets,
	       m.retention_receivables, m.retention_output_vat, m.accounts_payable, m.advances_paid,
	       m.pdcs_issued, m.retention_payables, m.retention_input_vat, m.unbilled_purchases,
	       m.advance_to_receive
	FROM companies c
	LEFT JOIN company_gl_mappings m ON m.company_id = c.company_id
`

type PgxCompanyRepository struct {
	BaseRepository
}

func newPgxCompanyRepository(pool *pgxpool.Pool) *PgxCompanyRepository {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

func scanCompany(row pgx.Row) (domain.Company, error) {
	var c domain.Company
	var m domain.CompanyGLMapping
	var mapped bool
	err := row.Scan(
		&c.CompanyID, &c.Code, &c.Name, &c.CompanyType, &c.TaxID, &c.IsActive,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
		&mapped,
		&m.AccountsReceivable, &m.AdvancesReceived, &m.PDCsReceived, &m.ContractAssets,
		&m.RetentionReceivables, &m.RetentionOutputVAT, &m.AccountsPayable, &m.AdvancesPaid,
		&m.PDCsIssued, &m.RetentionPayables, &m.RetentionInputVAT, &m.UnbilledPurchases,
		&m.AdvanceToReceive,
	)
	if mapped {
		c.GLMapping = &m
	}
	return c, err
}

func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	query := `
		INSERT INTO companies (company_id, code, name, company_type, tax_id, is_active,
		                       created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		company.CompanyID, company.Code, company.Name, company.CompanyType, company.TaxID, company.IsActive,
		company.CreatedAt, company.CreatedBy, company.LastUpdatedAt, company.LastUpdatedBy,
	)
	if err != nil {
		return writeErr(err, "company", company.Code)
	}
	return nil
}

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	c, err := scanCompany(r.Pool.QueryRow(ctx, companySelect+` WHERE c.company_id = $1;`, companyID))
	if err != nil {
		return nil, notFoundOr(err, "company", companyID)
	}
	return &c, nil
}

func (r *PgxCompanyRepository) ListCompanies(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	rows, err := r.Pool.Query(ctx, companySelect+` ORDER BY c.code LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, queryErr(err, "companies")
	}
	defer rows.Close()

	companies := make([]domain.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, queryErr(err, "companies")
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr(err, "companies")
	}
	return companies, nil
}

// UpsertCompanyGLMapping replaces every role of the mapping; roles absent from mapping become NULL.
func (r *PgxCompanyRepository) UpsertCompanyGLMapping(ctx context.Context, companyID string, mapping domain.CompanyGLMapping, userID string) error {
	query := `
		INSERT INTO company_gl_mappings (
			company_id, accounts_receivable, advances_received, pdcs_received, contract_assets,
			retention_receivables, retention_output_vat, accounts_payable, advances_paid,
			pdcs_issued, retention_payables, retention_input_vat, unbilled_purchases,
			advance_to_receive, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), $15, NOW(), $15)
		ON CONFLICT (company_id) DO UPDATE SET
			accounts_receivable = EXCLUDED.accounts_receivable,
			advances_received = EXCLUDED.advances_received,
			pdcs_received = EXCLUDED.pdcs_received,
			contract_assets = EXCLUDED.contract_assets,
			retention_receivables = EXCLUDED.retention_receivables,
			retention_output_vat = EXCLUDED.retention_output_vat,
			accounts_payable = EXCLUDED.accounts_payable,
			advances_paid = EXCLUDED.advances_paid,
			pdcs_issued = EXCLUDED.pdcs_issued,
			retention_payables = EXCLUDED.retention_payables,
			retention_input_vat = EXCLUDED.retention_input_vat,
			unbilled_purchases = EXCLUDED.unbilled_purchases,
			advance_to_receive = EXCLUDED.advance_to_receive,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query, companyID,
		mapping.AccountsReceivable, mapping.AdvancesReceived, mapping.PDCsReceived, mapping.ContractAssets,
		mapping.RetentionReceivables, mapping.RetentionOutputVAT, mapping.AccountsPayable, mapping.AdvancesPaid,
		mapping.PDCsIssued, mapping.RetentionPayables, mapping.RetentionInputVAT, mapping.UnbilledPurchases,
		mapping.AdvanceToReceive, userID,
	)
	if err != nil {
		return writeErr(err, "company GL mapping", companyID)
	}
	return nil
}
