package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeName(t *testing.T) {
	cases := []struct {
		identifier string
		prefix     string
		expected   ActionType
	}{
		{"one", "", "ONE"},
		{"helloWorld", "", "HELLO_WORLD"},
		{"helloWorld", "SUPER_", "SUPER_HELLO_WORLD"},
		{"getOneCreateFrom", "", "GET_ONE_CREATE_FROM"},
		{"HelloWorld", "", "HELLO_WORLD"},
		{"getHTTP", "", "GET_H_T_T_P"},
		{"version2", "v_", "v_VERSION2"},
		{"straße", "", "STRASSE"},
		{"éclairTime", "x_", "x_ÉCLAIR_TIME"},
	}

	for _, c := range cases {
		t.Run(c.identifier, func(t *testing.T) {
			assert.Equal(t, c.expected, TypeName(c.identifier, c.prefix))
		})
	}
}
