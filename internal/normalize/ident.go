package normalize

import "strings"

var identSeparators = strings.NewReplacer(".", "", ",", "")

// CleanIdentification normalizes a patient identification: the spreadsheet
// float artifact ".0" is dropped from the tail, then every '.' and ','
// separator is removed.
func CleanIdentification(id string) string {
	id = strings.TrimSpace(id)
	id = strings.TrimSuffix(id, ".0")
	return identSeparators.Replace(id)
}
