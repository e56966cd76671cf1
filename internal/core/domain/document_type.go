package domain

// DocumentType identifies which kind of financial document an upload carries.
// It selects the synonym dictionary used during header canonicalization and
// the record variant produced by materialization. Immutable once an upload
// has been created.
type DocumentType string

const (
	DocumentTypeInvoices        DocumentType = "invoices"
	DocumentTypeExpenses        DocumentType = "expenses"
	DocumentTypeBankStatements  DocumentType = "bank_statements"
	DocumentTypeCashFlow        DocumentType = "cash_flow"
	DocumentTypeProductionSales DocumentType = "production_sales"
	DocumentTypeOther           DocumentType = "other"
)

// KnownDocumentTypes lists every accepted document type value.
var KnownDocumentTypes = []DocumentType{
	DocumentTypeInvoices,
	DocumentTypeExpenses,
	DocumentTypeBankStatements,
	DocumentTypeCashFlow,
	DocumentTypeProductionSales,
	DocumentTypeOther,
}

// IsValid reports whether t is one of the known document types.
func (t DocumentType) IsValid() bool {
	for _, known := range KnownDocumentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// RecordType tags the variant of a materialized financial record.
type RecordType string

const (
	RecordTypeInvoice        RecordType = "invoice"
	RecordTypeExpense        RecordType = "expense"
	RecordTypeTransaction    RecordType = "transaction"
	RecordTypeProductionSale RecordType = "production_sale"
	RecordTypeGeneric        RecordType = "generic"
)

// RecordTypeFor maps a document type to the record variant its rows
// materialize into. Production sales keep their own tag but reuse the
// invoice billing population rules.
func RecordTypeFor(t DocumentType) RecordType {
	switch t {
	case DocumentTypeInvoices:
		return RecordTypeInvoice
	case DocumentTypeExpenses:
		return RecordTypeExpense
	case DocumentTypeProductionSales:
		return RecordTypeProductionSale
	case DocumentTypeBankStatements:
		return RecordTypeTransaction
	default:
		return RecordTypeGeneric
	}
}
