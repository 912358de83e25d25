package crud

import (
	"github.com/pkg/errors"
)

// Handler computes the next state for one action type. Handlers must not
// modify state; they return a new State, or state itself for a no-op.
type Handler func(state *State, action Action) *State

type Handlers map[ActionType]Handler

// Reducer is the single transition function built by CreateReducer.
type Reducer func(state *State, action Action) *State

// CreateReducer builds a reducer over initial. Handlers are keyed by action
// type and take precedence over the default handlers enabled through
// WithDefaults. The default handlers are registered under the types given
// by WithTypes, or under types derived from WithPrefix.
//
// The reducer treats a nil state as initial, and returns state unchanged for
// an action without a type or without a handler.
func CreateReducer(initial *State, handlers Handlers, options ...Option) (Reducer, error) {
	if initial == nil {
		return nil, errors.Wrap(ErrInvalidInitialState, "failed to create reducer")
	}

	if handlers == nil {
		return nil, errors.Wrap(ErrInvalidHandlers, "failed to create reducer")
	}

	for key := range handlers {
		if key == "" || key == "undefined" {
			return nil, errors.Wrap(UndefinedHandler(key), "failed to create reducer")
		}
	}

	table, err := defaultHandlers(initial, Options(options...))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create reducer")
	}

	for key, handler := range handlers {
		if handler == nil {
			continue
		}
		table[key] = handler
	}

	return func(state *State, action Action) *State {
		if state == nil {
			state = initial
		}

		if action.Type == "" {
			return state
		}

		handler := table[action.Type]
		if handler == nil {
			return state
		}

		if next := handler(state, action); next != nil {
			return next
		}

		return state
	}, nil
}

func defaultHandlers(initial *State, options ActionOptions) (Handlers, error) {
	identifiers := options.Defaults.Identifiers()

	types := options.Types
	if types == nil {
		types = typesOf(identifiers, options.Prefix)
	}

	transitions := transitionsFor(initial)
	table := make(Handlers, len(identifiers))
	for _, identifier := range identifiers {
		handler := transitions[identifier]
		if handler == nil {
			continue
		}

		actionType, ok := types[identifier]
		if !ok || actionType == "" {
			return nil, errors.Wrapf(ErrMissingType, "%s", identifier)
		}

		table[actionType] = handler
	}

	return table, nil
}

func transitionsFor(initial *State) map[string]Handler {
	return map[string]Handler{
		GetRequest: getRequest,
		GetSuccess: getSuccess,
		GetFailure: getFailure,
		GetReset:   getReset,

		GetOneRequest:    getOneRequest,
		GetOneSuccess:    getOneSuccess,
		GetOneFailure:    getOneFailure,
		GetOneReset:      getOneReset(initial),
		GetOneCreateFrom: getOneCreateFrom,
		GetOneUpdateFrom: getOneUpdateFrom,
		GetOneRemoveFrom: getOneRemoveFrom,
		GetOneFromState:  getOneFromState,

		CreateRequest: createRequest,
		CreateSuccess: createSuccess,
		CreateFailure: createFailure,
		CreateReset:   createReset,

		UpdateRequest: updateRequest,
		UpdateSuccess: updateSuccess,
		UpdateFailure: updateFailure,
		UpdateReset:   updateReset,

		RemoveRequest: removeRequest,
		RemoveSuccess: removeSuccess,
		RemoveFailure: removeFailure,
		RemoveReset:   removeReset,

		Reset: func(*State, Action) *State {
			return initial
		},
	}
}
