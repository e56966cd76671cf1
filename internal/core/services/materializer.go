package services

import (
	"time"

	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
	"github.com/finconsulta/doc_ingest_app/internal/utils/coerce"
)

// Field lookup chains shared by every document type. The generic name is
// tried first, then the document-specific synonyms; the first field present
// in the row wins.
var (
	dateFields        = []string{"date", "fecha", "fechaAlbaran", "fechaFactura"}
	descriptionFields = []string{"description", "producto"}
	amountFields      = []string{"amount", "facturacionNeta"}
)

// MaterializeRecord turns one normalized row into a typed financial record.
// It never fails: malformed values degrade to zero/absent and are tallied in
// the returned stats. Fields irrelevant to the chosen variant stay unset so
// "not applicable" remains distinguishable from "coerced to zero".
func MaterializeRecord(row *domain.NormalizedRow, documentType domain.DocumentType, clientName string) (domain.FinancialRecord, domain.CoercionStats) {
	var stats domain.CoercionStats

	record := domain.FinancialRecord{
		RecordType:  domain.RecordTypeFor(documentType),
		Description: firstString(row, descriptionFields...),
		Currency:    defaultString(row.GetString("currency"), "EUR"),
		RawRow:      row,
	}

	record.Date = coerceDate(row, &stats, dateFields...)
	record.Amount = coerceAmount(row, &stats, amountFields...)

	switch record.RecordType {
	case domain.RecordTypeInvoice, domain.RecordTypeProductionSale:
		materializeInvoiceFields(row, &record, &stats, clientName)
	case domain.RecordTypeExpense:
		record.Category = ptr(row.GetString("category"))
		record.Supplier = ptr(row.GetString("supplier"))
	case domain.RecordTypeTransaction:
		record.TransactionType = ptr(defaultString(row.GetString("transactionType"), domain.TransactionTypeDebit))
		record.Balance = ptr(coerceAmount(row, &stats, "balance"))
		record.Reference = ptr(row.GetString("reference"))
	}

	if record.RecordType == domain.RecordTypeProductionSale {
		materializeProductionFields(row, &record, &stats)
	}

	return record, stats
}

// materializeInvoiceFields populates the invoice billing fields, shared by
// invoices and production sales.
func materializeInvoiceFields(row *domain.NormalizedRow, record *domain.FinancialRecord, stats *domain.CoercionStats, clientName string) {
	record.InvoiceNumber = ptr(firstString(row, "invoiceNumber", "numeroFactura"))
	record.ClientName = ptr(clientName)
	record.VATAmount = ptr(coerceAmount(row, stats, "vatAmount", "ivaEuros"))
	record.TotalAmount = ptr(coerceAmount(row, stats, "totalAmount", "facturacionNeta"))
	record.DueDate = coerceDate(row, stats, "dueDate")
	record.PaymentStatus = ptr(defaultString(row.GetString("paymentStatus"), domain.PaymentStatusPending))
}

// materializeProductionFields populates the production-sale specific fields.
// Unlike the invoice billing block, each field is set only when the source
// column is present.
func materializeProductionFields(row *domain.NormalizedRow, record *domain.FinancialRecord, stats *domain.CoercionStats) {
	if s := row.GetString("finca"); s != "" {
		record.Farm = &s
	}
	if s := row.GetString("numeroAlbaran"); s != "" {
		record.DeliveryNoteNumber = &s
	}
	if s := row.GetString("numeroProducto"); s != "" {
		record.ProductCode = &s
	}
	if s := row.GetString("producto"); s != "" {
		record.ProductName = &s
	}
	if s := row.GetString("tipoProducto"); s != "" {
		record.ProductQuality = &s
	}
	if present(row, "kgs") {
		q, ok := coerce.ToQuantity(row.GetString("kgs"))
		if !ok {
			stats.AmountFallbacks++
		}
		record.QuantityKg = &q
	}
	if present(row, "precio") {
		record.UnitPrice = ptr(coerceAmount(row, stats, "precio"))
	}
	if present(row, "descuento") {
		record.Discount = ptr(coerceAmount(row, stats, "descuento"))
	}
	if present(row, "facturacionAntesImpuestos") {
		record.PreTaxBilling = ptr(coerceAmount(row, stats, "facturacionAntesImpuestos"))
	}
	if present(row, "retencionesPercent") {
		q, ok := coerce.ToQuantity(row.GetString("retencionesPercent"))
		if !ok {
			stats.AmountFallbacks++
		}
		record.WithholdingPercent = &q
	}
	if present(row, "retencionesEuros") {
		record.WithholdingAmount = ptr(coerceAmount(row, stats, "retencionesEuros"))
	}
	if present(row, "ivaPercent") {
		q, ok := coerce.ToQuantity(row.GetString("ivaPercent"))
		if !ok {
			stats.AmountFallbacks++
		}
		record.VATPercent = &q
	}
	if present(row, "facturacionNeta") {
		record.NetBilling = ptr(coerceAmount(row, stats, "facturacionNeta"))
	}
	if present(row, "precioNeto") {
		record.NetUnitPrice = ptr(coerceAmount(row, stats, "precioNeto"))
	}
}

// coerceAmount converts the first present field of the chain to minor units,
// counting a fallback when a present value fails to parse.
func coerceAmount(row *domain.NormalizedRow, stats *domain.CoercionStats, fields ...string) int64 {
	value, found := firstPresent(row, fields...)
	if !found {
		return 0
	}
	cents, ok := coerce.ToMinorUnits(value)
	if !ok {
		stats.AmountFallbacks++
	}
	return cents
}

// coerceDate parses the first present field of the chain, counting a fallback
// when a present value fails to parse. Absent fields yield nil without a
// fallback.
func coerceDate(row *domain.NormalizedRow, stats *domain.CoercionStats, fields ...string) *time.Time {
	value, found := firstPresent(row, fields...)
	if !found {
		return nil
	}
	date, ok := coerce.ToDate(value)
	if !ok {
		stats.DateFallbacks++
	}
	return date
}

// firstPresent returns the first field of the chain with a non-empty value.
func firstPresent(row *domain.NormalizedRow, fields ...string) (any, bool) {
	for _, field := range fields {
		if row.GetString(field) != "" {
			value, _ := row.Get(field)
			return value, true
		}
	}
	return nil, false
}

func firstString(row *domain.NormalizedRow, fields ...string) string {
	for _, field := range fields {
		if s := row.GetString(field); s != "" {
			return s
		}
	}
	return ""
}

func present(row *domain.NormalizedRow, field string) bool {
	return row.GetString(field) != ""
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func ptr[T any](v T) *T {
	return &v
}
