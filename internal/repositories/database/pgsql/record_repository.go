package pgsql

import (
	"context"
	"fmt"

	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
	portsrepo "github.com/finconsulta/doc_ingest_app/internal/core/ports/repositories"
	"github.com/finconsulta/doc_ingest_app/internal/models"
	"github.com/finconsulta/doc_ingest_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRecordRepository struct {
	BaseRepository
}

// newPgxRecordRepository creates a new repository for financial records.
func newPgxRecordRepository(pool *pgxpool.Pool) portsrepo.RecordRepositoryFacade {
	return &PgxRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RecordRepositoryFacade = (*PgxRecordRepository)(nil)

const recordColumns = `id, extracted_data_id, upload_id, record_type,
		date, description, amount, currency,
		invoice_number, client_name, vat_amount, total_amount, due_date, payment_status,
		category, supplier,
		transaction_type, balance, reference,
		farm, delivery_note_number, product_code, product_name, product_quality,
		quantity_kg, unit_price, discount, pre_tax_billing,
		withholding_percent, withholding_amount, vat_percent, net_billing, net_unit_price,
		raw_data, created_at`

// SaveRecords inserts a batch of financial records within an existing
// transaction.
func (r *PgxRecordRepository) SaveRecords(ctx context.Context, tx pgx.Tx, records []domain.FinancialRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO financial_records (` + recordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35);
	`
	batch := &pgx.Batch{}
	for _, record := range records {
		modelRecord, err := mapping.ToModelFinancialRecord(record)
		if err != nil {
			return err
		}
		batch.Queue(query,
			modelRecord.RecordID,
			modelRecord.ExtractionID,
			modelRecord.UploadID,
			modelRecord.RecordType,
			modelRecord.Date,
			modelRecord.Description,
			modelRecord.Amount,
			modelRecord.Currency,
			modelRecord.InvoiceNumber,
			modelRecord.ClientName,
			modelRecord.VATAmount,
			modelRecord.TotalAmount,
			modelRecord.DueDate,
			modelRecord.PaymentStatus,
			modelRecord.Category,
			modelRecord.Supplier,
			modelRecord.TransactionType,
			modelRecord.Balance,
			modelRecord.Reference,
			modelRecord.Farm,
			modelRecord.DeliveryNoteNumber,
			modelRecord.ProductCode,
			modelRecord.ProductName,
			modelRecord.ProductQuality,
			modelRecord.QuantityKg,
			modelRecord.UnitPrice,
			modelRecord.Discount,
			modelRecord.PreTaxBilling,
			modelRecord.WithholdingPercent,
			modelRecord.WithholdingAmount,
			modelRecord.VATPercent,
			modelRecord.NetBilling,
			modelRecord.NetUnitPrice,
			modelRecord.RawData,
			modelRecord.CreatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute record batch for upload %s: %w", records[0].UploadID, err)
	}
	return nil
}

// ListRecordsByUploadID retrieves the financial records of an upload,
// newest record date first; undated records sort last.
func (r *PgxRecordRepository) ListRecordsByUploadID(ctx context.Context, uploadID string) ([]domain.FinancialRecord, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM financial_records
		WHERE upload_id = $1
		ORDER BY date DESC NULLS LAST, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, uploadID)
	if err != nil {
		return nil, fmt.Errorf("failed to query records for upload %s: %w", uploadID, err)
	}
	defer rows.Close()

	modelRecords, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FinancialRecord, error) {
		var record models.FinancialRecord
		err := row.Scan(
			&record.RecordID,
			&record.ExtractionID,
			&record.UploadID,
			&record.RecordType,
			&record.Date,
			&record.Description,
			&record.Amount,
			&record.Currency,
			&record.InvoiceNumber,
			&record.ClientName,
			&record.VATAmount,
			&record.TotalAmount,
			&record.DueDate,
			&record.PaymentStatus,
			&record.Category,
			&record.Supplier,
			&record.TransactionType,
			&record.Balance,
			&record.Reference,
			&record.Farm,
			&record.DeliveryNoteNumber,
			&record.ProductCode,
			&record.ProductName,
			&record.ProductQuality,
			&record.QuantityKg,
			&record.UnitPrice,
			&record.Discount,
			&record.PreTaxBilling,
			&record.WithholdingPercent,
			&record.WithholdingAmount,
			&record.VATPercent,
			&record.NetBilling,
			&record.NetUnitPrice,
			&record.RawData,
			&record.CreatedAt,
		)
		return record, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan records for upload %s: %w", uploadID, err)
	}

	return mapping.ToDomainFinancialRecordSlice(modelRecords)
}
