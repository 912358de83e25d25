package crud

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Types maps action identifiers to their action types.
type Types map[string]ActionType

// Names returns the identifiers in lexical order.
func (t Types) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// CreateTypes builds Types from whitespace separated identifiers.
//
//	types, _ := crud.CreateTypes("login logout", crud.WithPrefix("AUTH_"))
//	types["logout"] // AUTH_LOGOUT
func CreateTypes(names string, options ...Option) (Types, error) {
	identifiers := strings.Fields(names)
	if len(identifiers) == 0 {
		return nil, errors.Wrapf(ErrMissingTypes, "no identifiers in %q", names)
	}

	return typesOf(identifiers, Options(options...).Prefix), nil
}

func typesOf(identifiers []string, prefix string) Types {
	types := make(Types, len(identifiers))
	for _, identifier := range identifiers {
		types[identifier] = TypeName(identifier, prefix)
	}

	return types
}
