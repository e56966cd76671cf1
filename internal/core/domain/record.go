package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment status values for invoice-like records.
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
	PaymentStatusOverdue = "overdue"
)

// Bank transaction direction values.
const (
	TransactionTypeDebit  = "debit"
	TransactionTypeCredit = "credit"
)

// FinancialRecord is one materialized row of an upload, tagged by RecordType.
// All monetary fields hold integer minor currency units (cents). Variant
// fields are pointers so that "not applicable" stays distinguishable from
// "coerced to zero": only the fields of the active variant are ever set.
type FinancialRecord struct {
	RecordID     string     `json:"recordID"`
	ExtractionID string     `json:"extractionID"`
	UploadID     string     `json:"uploadID"`
	RecordType   RecordType `json:"recordType"`

	// Common fields
	Date        *time.Time `json:"date,omitempty"`
	Description string     `json:"description"`
	Amount      int64      `json:"amount"` // minor units
	Currency    string     `json:"currency"`

	// Invoice variant (also populated for production sales)
	InvoiceNumber *string    `json:"invoiceNumber,omitempty"`
	ClientName    *string    `json:"clientName,omitempty"`
	VATAmount     *int64     `json:"vatAmount,omitempty"` // minor units
	TotalAmount   *int64     `json:"totalAmount,omitempty"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	PaymentStatus *string    `json:"paymentStatus,omitempty"`

	// Expense variant
	Category *string `json:"category,omitempty"`
	Supplier *string `json:"supplier,omitempty"`

	// Bank transaction variant
	TransactionType *string `json:"transactionType,omitempty"`
	Balance         *int64  `json:"balance,omitempty"` // minor units
	Reference       *string `json:"reference,omitempty"`

	// Production sale variant
	Farm               *string          `json:"farm,omitempty"`
	DeliveryNoteNumber *string          `json:"deliveryNoteNumber,omitempty"`
	ProductCode        *string          `json:"productCode,omitempty"`
	ProductName        *string          `json:"productName,omitempty"`
	ProductQuality     *string          `json:"productQuality,omitempty"`
	QuantityKg         *decimal.Decimal `json:"quantityKg,omitempty"`
	UnitPrice          *int64           `json:"unitPrice,omitempty"` // minor units
	Discount           *int64           `json:"discount,omitempty"`
	PreTaxBilling      *int64           `json:"preTaxBilling,omitempty"`
	WithholdingPercent *decimal.Decimal `json:"withholdingPercent,omitempty"`
	WithholdingAmount  *int64           `json:"withholdingAmount,omitempty"`
	VATPercent         *decimal.Decimal `json:"vatPercent,omitempty"`
	NetBilling         *int64           `json:"netBilling,omitempty"`
	NetUnitPrice       *int64           `json:"netUnitPrice,omitempty"`

	// RawRow holds the normalized row the record was materialized from,
	// preserved verbatim for audit and debugging.
	RawRow    *NormalizedRow `json:"rawRow,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}
