package crud

func (s *State) create() StatusState {
	if s.Create == nil {
		return *emptyStatus()
	}

	return *s.Create
}

func createRequest(state *State, _ Action) *State {
	slice := state.create()
	slice.Fetching = true

	next := state.Clone()
	next.Create = &slice
	return next
}

// createSuccess also appends the created item to the collection.
func createSuccess(state *State, action Action) *State {
	slice := state.create()
	slice.Fetching = false
	slice.Success = true

	next := state.Clone()
	next.Create = &slice

	result := normalize(action.Field("result"))
	if state.Get != nil && result != nil {
		collection := *state.Get
		collection.Results = appendItem(collection.Results, result)
		next.Get = &collection
	}

	return next
}

func createFailure(state *State, action Action) *State {
	slice := state.create()
	slice.Fetching = false
	slice.Error = action.Field("error")

	next := state.Clone()
	next.Create = &slice
	return next
}

func createReset(state *State, _ Action) *State {
	next := state.Clone()
	next.Create = emptyStatus()
	return next
}
