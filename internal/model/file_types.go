package model

// FileType describes one of the six RIPS record types and its positional layout.
type FileType struct {
	Code    string   // 2-letter file prefix, e.g. "AC"
	Name    string   // human-readable name
	Columns []string // expected positional header list
	// UsesCatalog marks types whose service codes resolve against the CUPS catalog.
	UsesCatalog bool
	// BackfillsCodes marks types that carry a service name and repair invalid
	// service codes from other rows in the same file.
	BackfillsCodes bool
}

// AllFileTypes lists the RIPS file types in canonical processing order.
var AllFileTypes = []FileType{
	{
		Code: "AC", Name: "consultas", UsesCatalog: true,
		Columns: []string{
			"Factura", "Cod_IPS", "Tipo_id", "Identificacion", "Fecha",
			"Autorizacion", "cod_servicio", "finalidad", "causa_externa",
			"dx_principal", "dx_relacionado1", "dx_relacionado2",
			"dx_relacionado3", "tipo_dx", "Valor", "valor_moderadora", "valor_neto",
		},
	},
	{
		Code: "AP", Name: "procedimientos", UsesCatalog: true,
		Columns: []string{
			"Factura", "Cod_IPS", "Tipo_id", "Identificacion", "Fecha", "Autorizacion",
			"cod_servicio", "ambito", "finalidad", "personal_atiende", "dx_principal",
			"dx_relacionado", "dx_complicacion", "forma_realizacion", "Valor",
		},
	},
	{
		Code: "AM", Name: "medicamentos", BackfillsCodes: true,
		Columns: []string{
			"Factura", "Cod_IPS", "Tipo_id", "Identificacion", "Autorizacion",
			"cod_servicio", "tipo_medicamento", "Nombre_servicio", "forma_farmaceutica",
			"concentracion", "unidad_medida", "Cantidad", "Valor", "valor_total",
		},
	},
	{
		Code: "AT", Name: "otros_servicios", BackfillsCodes: true,
		Columns: []string{
			"Factura", "Cod_IPS", "Tipo_id", "Identificacion", "Autorizacion", "tipo_servicio",
			"cod_servicio", "Nombre_servicio", "Cantidad", "Valor", "valor_total",
		},
	},
	{
		Code: "AH", Name: "hospitalizacion",
		Columns: []string{
			"Factura", "Cod_IPS", "Tipo_id", "Identificacion", "Cod", "Fecha_ingreso", "Hora_ingreso", "Cod2",
			"Autorizacion", "dx_principal", "dx_relacionado1", "dx_relacionado2", "dx_relacionado3", "dx_relacionado4",
			"dx_relacionado5", "Cod3", "Cod4", "Fecha_salida", "Hora_salida",
		},
	},
	{
		Code: "AN", Name: "anexos", BackfillsCodes: true,
		Columns: []string{
			"Factura", "Cod_IPS", "Tipo_id", "Identificacion", "Autorizacion", "cod_servicio",
			"tipo_anexo", "Nombre_servicio", "Cantidad", "Valor", "valor_total",
		},
	},
}

// FileTypeByCode returns the FileType for the given 2-letter code, or ok=false.
func FileTypeByCode(code string) (FileType, bool) {
	for _, ft := range AllFileTypes {
		if ft.Code == code {
			return ft, true
		}
	}
	return FileType{}, false
}

// FileTypeCodes returns the 2-letter codes for all file types.
func FileTypeCodes() []string {
	codes := make([]string, len(AllFileTypes))
	for i, ft := range AllFileTypes {
		codes[i] = ft.Code
	}
	return codes
}
