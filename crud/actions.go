package crud

import (
	"github.com/pkg/errors"
)

// Config declares custom actions by identifier. A nil declaration is a
// type-only action.
type Config map[string]Declaration

type Creators map[string]Creator

type Actions struct {
	Types    Types
	Creators Creators
}

// CreateActions builds the types and creators for the declared actions and
// the enabled default families.
func CreateActions(config Config, options ...Option) (*Actions, error) {
	if config == nil {
		return nil, errors.Wrap(ErrMissingConfig, "failed to create actions")
	}

	opts := Options(options...)
	defaults := opts.Defaults.Identifiers()

	identifiers := make([]string, 0, len(config)+len(defaults))
	for identifier := range config {
		identifiers = append(identifiers, identifier)
	}
	for _, identifier := range defaults {
		if _, declared := config[identifier]; !declared {
			identifiers = append(identifiers, identifier)
		}
	}

	creators := make(Creators, len(identifiers))
	for identifier, declaration := range config {
		creators[identifier] = creatorFor(identifier, declaration, opts.Prefix)
	}

	for _, identifier := range defaults {
		if declaration, declared := config[identifier]; declared && declaration != nil && declaration.custom() {
			continue
		}
		creators[identifier] = NewCreator(identifier, defaultFields[identifier], opts.Prefix)
	}

	return &Actions{
		Types:    typesOf(identifiers, opts.Prefix),
		Creators: creators,
	}, nil
}

func creatorFor(identifier string, declaration Declaration, prefix string) Creator {
	if declaration == nil {
		return NewCreator(identifier, nil, prefix)
	}

	if create := declaration.creator(identifier, prefix); create != nil {
		return create
	}

	return NewCreator(identifier, nil, prefix)
}
