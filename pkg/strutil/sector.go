package strutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeSector canoniza el nombre de un sector antes de usarlo como parte
// de la clave (producto, sector): recorta espacios, colapsa espacios internos
// y aplica NFC para que un mismo sector escrito con distinta codificación de
// acentos no genere filas de saldo duplicadas.
func NormalizeSector(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return norm.NFC.String(s)
}
