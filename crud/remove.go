package crud

func (s *State) remove() RemoveState {
	if s.Remove == nil {
		return *emptyRemove()
	}

	return *s.Remove
}

// removeRequest remembers the id so removeSuccess can find the item without
// it being sent again.
func removeRequest(state *State, action Action) *State {
	slice := state.remove()
	slice.Fetching = true
	slice.Pending = action.Field("id")

	next := state.Clone()
	next.Remove = &slice
	return next
}

func removeSuccess(state *State, _ Action) *State {
	slice := state.remove()
	pending := slice.Pending
	slice.Fetching = false
	slice.Success = true
	slice.Pending = nil

	next := state.Clone()
	next.Remove = &slice

	if pending == nil {
		return next
	}

	if state.Get != nil {
		collection := *state.Get
		collection.Results = withoutID(collection.Results, pending)
		next.Get = &collection
	}

	if state.GetOne != nil && hasID(state.GetOne.Result, pending) {
		single := *state.GetOne
		single.Result = nil
		single.ID = nil
		next.GetOne = &single
	}

	return next
}

func removeFailure(state *State, action Action) *State {
	slice := state.remove()
	slice.Fetching = false
	slice.Error = action.Field("error")
	slice.Pending = nil

	next := state.Clone()
	next.Remove = &slice
	return next
}

func removeReset(state *State, _ Action) *State {
	next := state.Clone()
	next.Remove = emptyRemove()
	return next
}
