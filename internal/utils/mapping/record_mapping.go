package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
	"github.com/finconsulta/doc_ingest_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelFinancialRecord converts a domain FinancialRecord to a model
// FinancialRecord, snapshotting the source row into the raw_data column.
func ToModelFinancialRecord(d domain.FinancialRecord) (models.FinancialRecord, error) {
	var rawData json.RawMessage
	if d.RawRow != nil {
		var err error
		rawData, err = json.Marshal(d.RawRow)
		if err != nil {
			return models.FinancialRecord{}, fmt.Errorf("failed to marshal raw row: %w", err)
		}
	}

	return models.FinancialRecord{
		RecordID:     d.RecordID,
		ExtractionID: d.ExtractionID,
		UploadID:     d.UploadID,
		RecordType:   string(d.RecordType),

		Date:        d.Date,
		Description: d.Description,
		Amount:      d.Amount,
		Currency:    d.Currency,

		InvoiceNumber: d.InvoiceNumber,
		ClientName:    d.ClientName,
		VATAmount:     d.VATAmount,
		TotalAmount:   d.TotalAmount,
		DueDate:       d.DueDate,
		PaymentStatus: d.PaymentStatus,

		Category: d.Category,
		Supplier: d.Supplier,

		TransactionType: d.TransactionType,
		Balance:         d.Balance,
		Reference:       d.Reference,

		Farm:               d.Farm,
		DeliveryNoteNumber: d.DeliveryNoteNumber,
		ProductCode:        d.ProductCode,
		ProductName:        d.ProductName,
		ProductQuality:     d.ProductQuality,
		QuantityKg:         toNullDecimal(d.QuantityKg),
		UnitPrice:          d.UnitPrice,
		Discount:           d.Discount,
		PreTaxBilling:      d.PreTaxBilling,
		WithholdingPercent: toNullDecimal(d.WithholdingPercent),
		WithholdingAmount:  d.WithholdingAmount,
		VATPercent:         toNullDecimal(d.VATPercent),
		NetBilling:         d.NetBilling,
		NetUnitPrice:       d.NetUnitPrice,

		RawData:   rawData,
		CreatedAt: d.CreatedAt,
	}, nil
}

// ToDomainFinancialRecord converts a model FinancialRecord to a domain
// FinancialRecord.
func ToDomainFinancialRecord(m models.FinancialRecord) (domain.FinancialRecord, error) {
	d := domain.FinancialRecord{
		RecordID:     m.RecordID,
		ExtractionID: m.ExtractionID,
		UploadID:     m.UploadID,
		RecordType:   domain.RecordType(m.RecordType),

		Date:        m.Date,
		Description: m.Description,
		Amount:      m.Amount,
		Currency:    m.Currency,

		InvoiceNumber: m.InvoiceNumber,
		ClientName:    m.ClientName,
		VATAmount:     m.VATAmount,
		TotalAmount:   m.TotalAmount,
		DueDate:       m.DueDate,
		PaymentStatus: m.PaymentStatus,

		Category: m.Category,
		Supplier: m.Supplier,

		TransactionType: m.TransactionType,
		Balance:         m.Balance,
		Reference:       m.Reference,

		Farm:               m.Farm,
		DeliveryNoteNumber: m.DeliveryNoteNumber,
		ProductCode:        m.ProductCode,
		ProductName:        m.ProductName,
		ProductQuality:     m.ProductQuality,
		QuantityKg:         fromNullDecimal(m.QuantityKg),
		UnitPrice:          m.UnitPrice,
		Discount:           m.Discount,
		PreTaxBilling:      m.PreTaxBilling,
		WithholdingPercent: fromNullDecimal(m.WithholdingPercent),
		WithholdingAmount:  m.WithholdingAmount,
		VATPercent:         fromNullDecimal(m.VATPercent),
		NetBilling:         m.NetBilling,
		NetUnitPrice:       m.NetUnitPrice,

		CreatedAt: m.CreatedAt,
	}

	if len(m.RawData) > 0 {
		d.RawRow = domain.NewNormalizedRow()
		if err := json.Unmarshal(m.RawData, d.RawRow); err != nil {
			return domain.FinancialRecord{}, fmt.Errorf("failed to unmarshal raw row: %w", err)
		}
	}
	return d, nil
}

// ToDomainFinancialRecordSlice converts a slice of model FinancialRecords to
// a slice of domain FinancialRecords.
func ToDomainFinancialRecordSlice(ms []models.FinancialRecord) ([]domain.FinancialRecord, error) {
	ds := make([]domain.FinancialRecord, len(ms))
	for i, m := range ms {
		d, err := ToDomainFinancialRecord(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(nd decimal.NullDecimal) *decimal.Decimal {
	if !nd.Valid {
		return nil
	}
	d := nd.Decimal
	return &d
}
