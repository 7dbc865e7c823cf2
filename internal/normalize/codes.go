package normalize

import "strings"

// UnidentifiedService is the placeholder assigned when an invalid service
// code cannot be repaired from any other row in the same file.
const UnidentifiedService = "servicio_no_identificado"

// invalidCodes are the sentinel tokens that disqualify a service code, plus
// the small integers that producing systems emit in place of real codes.
var invalidCodes = map[string]bool{
	"": true, "null": true, "NA": true, "N/A": true,
	"0": true, "1": true, "2": true, "3": true, "4": true, "5": true,
	"6": true, "7": true, "8": true, "9": true, "10": true,
}

// IsInvalidCode reports whether a service code is unusable: missing, a known
// sentinel token, a bare small integer, or still date-shaped.
func IsInvalidCode(code *string) bool {
	if code == nil {
		return true
	}
	if invalidCodes[*code] {
		return true
	}
	return IsDateShaped(*code)
}

// cupsStrip removes the characters that pollute catalog codes in practice.
var cupsStrip = strings.NewReplacer("$", "", " ", "", ".", "")

// CleanCUPS trims a service code and strips the '$', ' ' and '.' sentinels
// found in malformed catalog references.
func CleanCUPS(code string) string {
	return cupsStrip.Replace(strings.TrimSpace(code))
}

// CodeBackfill repairs invalid service codes within a single file: the first
// valid code observed for a service name wins, and rows whose name has no
// valid code anywhere in the file get the UnidentifiedService placeholder.
// The lookup table is scoped to one file so that concurrent files cannot
// contaminate each other.
type CodeBackfill struct {
	byName map[string]string
}

// NewCodeBackfill builds the name→code table from one file's rows.
func NewCodeBackfill() *CodeBackfill {
	return &CodeBackfill{byName: make(map[string]string)}
}

// Observe records a valid code for a service name. Invalid codes and rows
// without a name are ignored; the first valid code per name is retained.
func (b *CodeBackfill) Observe(code, name *string) {
	if name == nil || IsInvalidCode(code) {
		return
	}
	if _, seen := b.byName[*name]; !seen {
		b.byName[*name] = *code
	}
}

// Repair returns the replacement for an invalid code: the first valid code
// seen for the same service name, else UnidentifiedService.
func (b *CodeBackfill) Repair(name *string) string {
	if name != nil {
		if code, ok := b.byName[*name]; ok {
			return code
		}
	}
	return UnidentifiedService
}
