package model

// ConsolidatedRow is one aggregated row of the final dataset: the union of
// AC/AP/AM/AT/AN records reduced by Key and joined against affiliation data.
// Parquet tags drive the optional analytics export; ValorText is the
// locale-rendered presentation value and is excluded from it.
type ConsolidatedRow struct {
	Key    string `parquet:"key"`
	Key2   string `parquet:"key2"`
	KeyIps string `parquet:"key_ips"`

	Archivo        string  `parquet:"archivo"`
	Periodo        string  `parquet:"periodo"`
	CodIPS         string  `parquet:"cod_ips"`
	Identificacion string  `parquet:"identificacion"`
	Fecha          *string `parquet:"fecha,optional"`
	Factura        string  `parquet:"factura"`

	CodServicio    *string `parquet:"cod_servicio,optional"`
	NombreServicio *string `parquet:"nombre_servicio,optional"`

	// Valor is the mean of the group's parseable amounts; nil when none parsed.
	Valor     *float64 `parquet:"valor,optional"`
	ValorText string   `parquet:"-"`
	// Cantidad is the sum of the group's parseable quantities.
	Cantidad float64 `parquet:"cantidad"`

	CIE10           *string `parquet:"cie10,optional"`
	DiasInternacion int32   `parquet:"dias_internacion"`

	Municipio    string  `parquet:"municipio"`
	Departamento *string `parquet:"departamento,optional"`
}

// ConsolidatedColumns is the fixed column order of the consolidated artifact.
// Departamento is appended only when the affiliation sources carried it.
var ConsolidatedColumns = []string{
	"Key", "Key2", "Key-Ips", "Archivo", "Periodo", "Cod_IPS",
	"Identificacion", "Fecha", "Factura", "cod_servicio", "Nombre_servicio",
	"Valor", "Cantidad", "CIE10", "Dias_Internacion", "Municipio",
}
