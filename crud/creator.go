package crud

// Creator builds an action from positional arguments.
type Creator func(args ...any) Action

// CreateFilter decides whether getOneCreateFrom may add element to result.
type CreateFilter func(result any, element any) bool

// NewCreator returns a creator for the action named name. Without fields the
// creator ignores its arguments and returns only the tag. Otherwise the
// arguments are zipped positionally onto fields: surplus arguments are
// dropped and missing ones leave their field absent.
func NewCreator(name string, fields []string, prefix string) Creator {
	actionType := TypeName(name, prefix)

	if len(fields) == 0 {
		return func(...any) Action {
			return Action{Type: actionType}
		}
	}

	names := append([]string(nil), fields...)
	return func(args ...any) Action {
		payload := make(Payload, len(names))
		for i, name := range names {
			if i >= len(args) {
				break
			}
			payload[name] = args[i]
		}

		return Action{Type: actionType, Payload: payload}
	}
}

// Declaration describes how the creator for one action is built. It is
// either a list of field names (Fields) or a caller supplied creator (Custom).
type Declaration interface {
	creator(name string, prefix string) Creator
	custom() bool
}

type fieldsDeclaration []string

func (d fieldsDeclaration) creator(name string, prefix string) Creator {
	return NewCreator(name, d, prefix)
}

func (fieldsDeclaration) custom() bool { return false }

// Fields declares a generated creator taking the named positional fields.
// Fields() with no names declares a type-only creator.
func Fields(names ...string) Declaration {
	return fieldsDeclaration(names)
}

type customDeclaration struct {
	create Creator
}

func (d customDeclaration) creator(string, string) Creator {
	return d.create
}

func (d customDeclaration) custom() bool { return d.create != nil }

// Custom declares a caller supplied creator. It replaces the generated
// creator, including the creators of default actions.
func Custom(create Creator) Declaration {
	return customDeclaration{create: create}
}
