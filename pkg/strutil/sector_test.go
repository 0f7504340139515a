package strutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-api/pkg/strutil"
)

func TestNormalizeSector(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"recorta espacios", "  Depósito A  ", "Depósito A"},
		{"colapsa espacios internos", "Depósito   A", "Depósito A"},
		{"tabs y saltos de línea", "\tDepósito\nA ", "Depósito A"},
		{"vacío queda vacío", "   ", ""},
		{"NFC: acento descompuesto", "Depo\u0301sito", "Dep\u00f3sito"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, strutil.NormalizeSector(tc.in))
		})
	}
}
