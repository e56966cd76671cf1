package fieldmap

import "github.com/finconsulta/doc_ingest_app/internal/core/domain"

// DefaultDictionary returns the built-in synonym tables, one per document
// type. Keys are normalized tokens as produced by NormalizeHeader, which is
// why Spanish headers appear both in their camel-cased and capitalized forms
// and why accented variants show up with the accented letter dropped
// ("fechaAlbarn" from "fecha albarán"). The "other" document type has no
// table: its headers pass through unchanged.
func DefaultDictionary() Dictionary {
	return Dictionary{
		domain.DocumentTypeInvoices: {
			"fecha":             "date",
			"Fecha":             "date",
			"fechaFactura":      "fechaFactura",
			"FechaFactura":      "fechaFactura",
			"nFactura":          "numeroFactura",
			"NFactura":          "numeroFactura",
			"numeroFactura":     "numeroFactura",
			"numFactura":        "numeroFactura",
			"cliente":           "clientName",
			"Cliente":           "clientName",
			"concepto":          "description",
			"Concepto":          "description",
			"descripcion":       "description",
			"Descripcion":       "description",
			"importe":           "amount",
			"Importe":           "amount",
			"baseImponible":     "amount",
			"total":             "totalAmount",
			"Total":             "totalAmount",
			"iva":               "ivaEuros",
			"IVA":               "ivaEuros",
			"ivaEuros":          "ivaEuros",
			"vencimiento":       "dueDate",
			"Vencimiento":       "dueDate",
			"fechaVencimiento":  "dueDate",
			"estado":            "paymentStatus",
			"Estado":            "paymentStatus",
			"estadoPago":        "paymentStatus",
		},
		domain.DocumentTypeExpenses: {
			"fecha":       "date",
			"Fecha":       "date",
			"concepto":    "description",
			"Concepto":    "description",
			"descripcion": "description",
			"Descripcion": "description",
			"importe":     "amount",
			"Importe":     "amount",
			"gasto":       "amount",
			"Gasto":       "amount",
			"categoria":   "category",
			"Categoria":   "category",
			"tipo":        "category",
			"Tipo":        "category",
			"proveedor":   "supplier",
			"Proveedor":   "supplier",
		},
		domain.DocumentTypeBankStatements: {
			"fecha":         "date",
			"Fecha":         "date",
			"fechaValor":    "date",
			"concepto":      "description",
			"Concepto":      "description",
			"descripcion":   "description",
			"importe":       "amount",
			"Importe":       "amount",
			"movimiento":    "amount",
			"saldo":         "balance",
			"Saldo":         "balance",
			"referencia":    "reference",
			"Referencia":    "reference",
			"tipo":          "transactionType",
			"Tipo":          "transactionType",
			"tipoMovimiento": "transactionType",
		},
		domain.DocumentTypeCashFlow: {
			"fecha":    "date",
			"Fecha":    "date",
			"periodo":  "period",
			"Periodo":  "period",
			"concepto": "description",
			"Concepto": "description",
			"entradas": "inflows",
			"Entradas": "inflows",
			"salidas":  "outflows",
			"Salidas":  "outflows",
			"importe":  "amount",
			"Importe":  "amount",
		},
		domain.DocumentTypeProductionSales: {
			"finca":                     "finca",
			"Finca":                     "finca",
			"fechaAlbaran":              "fechaAlbaran",
			"FechaAlbaran":              "fechaAlbaran",
			"fechaAlbarn":               "fechaAlbaran",
			"FechaAlbarn":               "fechaAlbaran",
			"nAlbaran":                  "numeroAlbaran",
			"NAlbarn":                   "numeroAlbaran",
			"N_Albarn":                  "numeroAlbaran",
			"numeroAlbaran":             "numeroAlbaran",
			"fechaFactura":              "fechaFactura",
			"FechaFactura":              "fechaFactura",
			"nFactura":                  "numeroFactura",
			"NFactura":                  "numeroFactura",
			"numeroFactura":             "numeroFactura",
			"fechaPago":                 "fechaPago",
			"FechaPago":                 "fechaPago",
			"nProducto":                 "numeroProducto",
			"NProducto":                 "numeroProducto",
			"numeroProducto":            "numeroProducto",
			"producto":                  "producto",
			"Producto":                  "producto",
			"tipoProducto":              "tipoProducto",
			"TipoProducto":              "tipoProducto",
			"tipo":                      "tipoProducto",
			"Tipo":                      "tipoProducto",
			"kgs":                       "kgs",
			"Kgs":                       "kgs",
			"kg":                        "kgs",
			"Kg":                        "kgs",
			"kilos":                     "kgs",
			"Kilos":                     "kgs",
			"precio":                    "precio",
			"Precio":                    "precio",
			"descuento":                 "descuento",
			"Descuento":                 "descuento",
			"desc":                      "descuento",
			"Desc":                      "descuento",
			"facturacionAntesImpuestos": "facturacionAntesImpuestos",
			"FacturacionAntesImpuestos": "facturacionAntesImpuestos",
			"precioAntesImpuestos":      "precioAntesImpuestos",
			"retenciones":               "retencionesPercent",
			"Retenciones":               "retencionesPercent",
			"retencionesPercent":        "retencionesPercent",
			"retencionesEuros":          "retencionesEuros",
			"RetencionesEuros":          "retencionesEuros",
			"iva":                       "ivaPercent",
			"Iva":                       "ivaPercent",
			"IVA":                       "ivaPercent",
			"ivaPercent":                "ivaPercent",
			"ivaEuros":                  "ivaEuros",
			"IvaEuros":                  "ivaEuros",
			"facturacionNeta":           "facturacionNeta",
			"FacturacionNeta":           "facturacionNeta",
			"precioNeto":                "precioNeto",
			"PrecioNeto":                "precioNeto",
			"facturacion":               "facturacion",
			"Facturacion":               "facturacion",
		},
	}
}
