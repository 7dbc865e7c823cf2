package normalize

import "strings"

const keySep = "-"

// ServiceToken picks the service-identity segment used in Key and Key2: the
// service code when it is usable, else the service name, else empty.
func ServiceToken(code, name *string) string {
	if !IsInvalidCode(code) {
		return *code
	}
	if name != nil {
		return *name
	}
	return ""
}

// BuildKey concatenates the primary identity key:
// invoice, provider, patient, period, service identity.
// Hospitalization records pass their authorization number as the token.
func BuildKey(factura, codIPS, identificacion, periodo, token string) string {
	return strings.Join([]string{factura, codIPS, identificacion, periodo, token}, keySep)
}

// BuildKey2 concatenates the date-scoped secondary key:
// provider, patient, date, service identity.
func BuildKey2(codIPS, identificacion, fecha, token string) string {
	return strings.Join([]string{codIPS, identificacion, fecha, token}, keySep)
}

// BuildKeyIps derives the affiliation join key from the service date when it
// parses, else from the first 7 characters of the period token. An empty
// string means the record cannot join and will carry the unaffiliated
// sentinel.
func BuildKeyIps(fecha *string, periodo, identificacion string) string {
	if fecha != nil && *fecha != "" {
		label, ok := PeriodLabel(*fecha)
		if !ok {
			return ""
		}
		return label + keySep + identificacion
	}
	p := periodo
	if len(p) > 7 {
		p = p[:7]
	}
	return p + keySep + identificacion
}
