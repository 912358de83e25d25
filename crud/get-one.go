package crud

import "github.com/weegigs/wee-crud-go/internal/decode"

func (s *State) getOne() GetOneState {
	if s.GetOne == nil {
		return *emptyGetOne(nil)
	}

	return *s.GetOne
}

func withGetOne(state *State, slice GetOneState) *State {
	next := state.Clone()
	next.GetOne = &slice

	return next
}

func getOneRequest(state *State, _ Action) *State {
	slice := state.getOne()
	slice.Fetching = true

	return withGetOne(state, slice)
}

// getOneSuccess stores the result. With noResolve set the request stays
// outstanding: fetching and id are left as they are so a result can be shown
// before the request resolves.
func getOneSuccess(state *State, action Action) *State {
	slice := state.getOne()
	slice.Error = nil
	slice.Result = normalize(action.Field("result"))

	if !truthy(action.Field("noResolve")) {
		slice.Fetching = false
		slice.ID = action.Field("id")
	}

	return withGetOne(state, slice)
}

func getOneFailure(state *State, action Action) *State {
	slice := state.getOne()
	slice.Fetching = false
	slice.ID = action.Field("id")
	slice.Error = action.Field("error")

	return withGetOne(state, slice)
}

func getOneReset(initial *State) Handler {
	var result any
	if initial.GetOne != nil {
		result = initial.GetOne.Result
	}

	return func(state *State, _ Action) *State {
		return withGetOne(state, *emptyGetOne(result))
	}
}

// nested resolves result[property] for the nested collection actions and
// returns a copy of result ready to take the new sequence.
func nested(state *State, property string) (Record, []any, bool) {
	if state.GetOne == nil {
		return nil, nil, false
	}

	result, ok := asRecord(state.GetOne.Result)
	if !ok {
		return nil, nil, false
	}

	value, ok := result[property]
	if !ok {
		return nil, nil, false
	}

	items, ok := decode.Sequence(value)
	if !ok {
		return nil, nil, false
	}

	return Merge(result, nil), items, true
}

func propertyOf(action Action) string {
	property, _ := action.Field("property").(string)
	return property
}

func filterOf(value any) (CreateFilter, bool) {
	switch filter := value.(type) {
	case CreateFilter:
		return filter, filter != nil
	case func(result any, element any) bool:
		return filter, filter != nil
	default:
		return nil, false
	}
}

// getOneCreateFrom appends newElement to result[property]. Without a property
// newElement replaces the result.
func getOneCreateFrom(state *State, action Action) *State {
	if state.GetOne == nil || state.GetOne.Result == nil {
		return state
	}

	element := normalize(action.Field("newElement"))
	if element == nil {
		return state
	}

	if filter, ok := filterOf(action.Field("customFilter")); ok {
		current := state.GetOne.Result
		if record, isRecord := asRecord(current); isRecord {
			current = decode.Clone(record)
		}
		if !filter(current, element) {
			return state
		}
	}

	slice := state.getOne()

	property := propertyOf(action)
	if property == "" {
		slice.Result = element
		return withGetOne(state, slice)
	}

	result, items, ok := nested(state, property)
	if !ok {
		return state
	}

	result[property] = appendItem(items, element)
	slice.Result = result

	return withGetOne(state, slice)
}

// getOneUpdateFrom merges newElement into the element of result[property]
// with the same id. Without a property newElement replaces the result.
func getOneUpdateFrom(state *State, action Action) *State {
	if state.GetOne == nil || state.GetOne.Result == nil {
		return state
	}

	slice := state.getOne()

	property := propertyOf(action)
	if property == "" {
		element := normalize(action.Field("newElement"))
		if element == nil {
			return state
		}
		slice.Result = element
		return withGetOne(state, slice)
	}

	element, ok := asRecord(normalize(action.Field("newElement")))
	if !ok {
		return state
	}

	id, ok := element.ID()
	if !ok {
		return state
	}

	result, items, ok := nested(state, property)
	if !ok {
		return state
	}

	index := indexOfID(items, id)
	if index < 0 {
		return state
	}

	updated := make([]any, len(items))
	copy(updated, items)
	updated[index] = mergeItem(updated[index], element)

	result[property] = updated
	slice.Result = result

	return withGetOne(state, slice)
}

func getOneRemoveFrom(state *State, action Action) *State {
	if state.GetOne == nil || state.GetOne.Result == nil {
		return state
	}

	result, items, ok := nested(state, propertyOf(action))
	if !ok {
		return state
	}

	result[propertyOf(action)] = withoutID(items, action.Field("id"))

	slice := state.getOne()
	slice.Result = result

	return withGetOne(state, slice)
}

// getOneFromState resolves getOne from an item already held in the state,
// by default the get collection.
func getOneFromState(state *State, action Action) *State {
	id := action.Field("id")
	if id == nil {
		return state
	}

	path, _ := action.Field("path").(string)
	items, ok := state.collection(path)
	if !ok {
		return state
	}

	index := indexOfID(items, id)
	if index < 0 {
		return state
	}

	slice := state.getOne()
	slice.Fetching = false
	slice.Error = nil
	slice.ID = id
	slice.Result = normalize(items[index])

	return withGetOne(state, slice)
}
