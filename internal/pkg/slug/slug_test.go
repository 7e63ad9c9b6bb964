package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Tubo PVC", "tubo-pvc"},
		{"  Tubo   PVC  ", "-tubo-pvc-"},
		{"Caño 1/2\"", "cao-12"},
		{"snake_case-ok", "snake_case-ok"},
		{"Línea\tNueva", "lnea-nueva"},
		{"a\u00a0b", "a-b"},
		{"Tubo\u2003\u00a0PVC", "tubo-pvc"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Make(tc.in), tc.in)
	}
}

func TestMakeIsIdempotent(t *testing.T) {
	for _, in := range []string{"Tubo PVC 3/4", "Mangueras & Accesorios", "ÁRBOL  de  levas"} {
		once := Make(in)
		assert.Equal(t, once, Make(once), in)
	}
}

func TestMakeOutputAlphabet(t *testing.T) {
	out := Make("¡Hola, Mundo! <script>alert(1)</script> 100%")
	assert.Regexp(t, `^[a-z0-9_-]*$`, out)
}
