package model

// Record is the normalized representation of one consolidatable RIPS row
// (types AC, AP, AM, AT, AN). Hospitalization rows use Hospitalization
// instead. Optional fields are pointers; nil means the source column was
// absent or empty.
type Record struct {
	// Archivo is the 2-letter type code taken from the file name.
	Archivo string
	// Periodo is the billing period token between the type prefix and the
	// extension of the file name.
	Periodo string

	// Source position, used for deterministic ordering and diagnostics.
	SourceFile string
	SourceRow  int

	Factura        string
	CodIPS         string
	TipoID         string
	Identificacion string
	// Fecha is the service date as dd/mm/yyyy text. Only AC and AP carry it
	// natively; for the other types it is back-filled during consolidation.
	Fecha          *string
	Autorizacion   string
	CodServicio    *string
	NombreServicio *string
	// Cantidad and Valor stay textual until the consolidation phase coerces
	// them; unparseable values degrade to missing, not zero.
	Cantidad *string
	Valor    *string
	// CIE10 is the principal diagnosis, populated for AC and AP only.
	CIE10 *string

	// DiasInternacion is written by the hospitalization linker; zero means
	// no matching stay.
	DiasInternacion int

	// Key uniquely identifies the logical record within its type.
	Key string
}

// Hospitalization is the normalized representation of one AH row. These
// records feed the stay-length linker and never reach the consolidated
// output.
type Hospitalization struct {
	Archivo string
	Periodo string

	SourceFile string
	SourceRow  int

	Factura        string
	CodIPS         string
	TipoID         string
	Identificacion string
	Autorizacion   string

	FechaIngreso *string
	FechaSalida  *string

	DxPrincipal    *string
	DxRelacionado1 *string
	DxRelacionado2 *string
	DxRelacionado3 *string
	DxRelacionado4 *string
	DxRelacionado5 *string

	Key string
}
