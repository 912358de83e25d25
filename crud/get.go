package crud

func (s *State) get() GetState {
	if s.Get == nil {
		return *emptyGet()
	}

	return *s.Get
}

func withGet(state *State, slice GetState) *State {
	next := state.Clone()
	next.Get = &slice

	return next
}

func getRequest(state *State, _ Action) *State {
	slice := state.get()
	slice.Fetching = true

	return withGet(state, slice)
}

func getSuccess(state *State, action Action) *State {
	return withGet(state, GetState{
		Fetching: false,
		Error:    nil,
		Results:  sequenceOf(action.Field("results")),
	})
}

func getFailure(state *State, action Action) *State {
	slice := state.get()
	slice.Fetching = false
	slice.Error = action.Field("error")

	return withGet(state, slice)
}

func getReset(state *State, _ Action) *State {
	return withGet(state, *emptyGet())
}
