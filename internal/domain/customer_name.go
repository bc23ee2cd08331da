package domain

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// CapitalNameDetail es el mensaje expuesto cuando el nombre no empieza con mayúscula.
const CapitalNameDetail = "The name must start with a capital letter"

// ValidateCustomerName comprueba que el primer carácter del nombre sea una letra mayúscula.
// El carácter se evalúa compuesto (NFC), así "A" + anillo combinante cuenta como "Å".
// El nombre no se modifica: la búsqueda usa el valor tal cual llega.
// Devuelve nil si es válido o un *ValidationError en caso contrario.
func ValidateCustomerName(name string) error {
	var it norm.Iter
	it.InitString(norm.NFC, name)
	r, _ := utf8.DecodeRune(it.Next())
	if r == utf8.RuneError || !unicode.IsUpper(r) {
		return &ValidationError{Field: "name", Detail: CapitalNameDetail}
	}
	return nil
}
