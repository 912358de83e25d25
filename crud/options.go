package crud

// ActionOptions configure CreateTypes, CreateActions and CreateReducer. One
// option list can be shared by CreateActions and CreateReducer so both agree
// on prefix and default families.
type ActionOptions struct {
	Prefix   string
	Defaults Operations
	Types    Types
}

type Option func(options *ActionOptions)

func Options(options ...Option) ActionOptions {
	modifiers := &ActionOptions{}
	for _, option := range options {
		option(modifiers)
	}

	return *modifiers
}

// WithPrefix prepends prefix to every generated action type.
func WithPrefix(prefix string) Option {
	return func(modifier *ActionOptions) {
		modifier.Prefix = prefix
	}
}

// WithDefaults enables the default actions of the selected families.
func WithDefaults(operations Operations) Option {
	return func(modifier *ActionOptions) {
		modifier.Defaults = operations
	}
}

// WithTypes supplies the action types the reducer registers its default
// handlers under. Without it the types are derived from the prefix.
func WithTypes(types Types) Option {
	return func(modifier *ActionOptions) {
		modifier.Types = types
	}
}
