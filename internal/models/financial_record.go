package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// FinancialRecord is one normalized row from an extraction. Monetary columns
// are integer minor units; only the columns matching the record type are
// populated, the rest stay NULL.
type FinancialRecord struct {
	RecordID     string `json:"recordID"`
	ExtractionID string `json:"extractionID" db:"extracted_data_id"`
	UploadID     string `json:"uploadID" db:"upload_id"`
	RecordType   string `json:"recordType" db:"record_type"` // invoice, expense, transaction, production_sale, generic

	// Common fields
	Date        *time.Time `json:"date,omitempty"`
	Description string     `json:"description"`
	Amount      int64      `json:"amount"` // in cents to avoid floating point issues
	Currency    string     `json:"currency"`

	// Invoice specific
	InvoiceNumber *string    `json:"invoiceNumber,omitempty" db:"invoice_number"`
	ClientName    *string    `json:"clientName,omitempty" db:"client_name"`
	VATAmount     *int64     `json:"vatAmount,omitempty" db:"vat_amount"` // in cents
	TotalAmount   *int64     `json:"totalAmount,omitempty" db:"total_amount"`
	DueDate       *time.Time `json:"dueDate,omitempty" db:"due_date"`
	PaymentStatus *string    `json:"paymentStatus,omitempty" db:"payment_status"` // paid, pending, overdue

	// Expense specific
	Category *string `json:"category,omitempty"`
	Supplier *string `json:"supplier,omitempty"`

	// Bank transaction specific
	TransactionType *string `json:"transactionType,omitempty" db:"transaction_type"` // debit, credit
	Balance         *int64  `json:"balance,omitempty"`
	Reference       *string `json:"reference,omitempty"`

	// Production sale specific
	Farm               *string             `json:"farm,omitempty"`
	DeliveryNoteNumber *string             `json:"deliveryNoteNumber,omitempty" db:"delivery_note_number"`
	ProductCode        *string             `json:"productCode,omitempty" db:"product_code"`
	ProductName        *string             `json:"productName,omitempty" db:"product_name"`
	ProductQuality     *string             `json:"productQuality,omitempty" db:"product_quality"`
	QuantityKg         decimal.NullDecimal `json:"quantityKg,omitempty" db:"quantity_kg"`
	UnitPrice          *int64              `json:"unitPrice,omitempty" db:"unit_price"`
	Discount           *int64              `json:"discount,omitempty"`
	PreTaxBilling      *int64              `json:"preTaxBilling,omitempty" db:"pre_tax_billing"`
	WithholdingPercent decimal.NullDecimal `json:"withholdingPercent,omitempty" db:"withholding_percent"`
	WithholdingAmount  *int64              `json:"withholdingAmount,omitempty" db:"withholding_amount"`
	VATPercent         decimal.NullDecimal `json:"vatPercent,omitempty" db:"vat_percent"`
	NetBilling         *int64              `json:"netBilling,omitempty" db:"net_billing"`
	NetUnitPrice       *int64              `json:"netUnitPrice,omitempty" db:"net_unit_price"`

	// Metadata
	RawData   json.RawMessage `json:"rawData,omitempty" db:"raw_data"` // original normalized row
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}
