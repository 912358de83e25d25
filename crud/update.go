package crud

func (s *State) upgrade() StatusState {
	if s.Upgrade == nil {
		return *emptyStatus()
	}

	return *s.Upgrade
}

func updateRequest(state *State, _ Action) *State {
	slice := state.upgrade()
	slice.Fetching = true

	next := state.Clone()
	next.Upgrade = &slice
	return next
}

// updateSuccess merges the updated item into getOne.result and into the
// matching collection entry. Each side gets its own copy of the update.
func updateSuccess(state *State, action Action) *State {
	slice := state.upgrade()
	slice.Fetching = false
	slice.Success = true

	next := state.Clone()
	next.Upgrade = &slice

	result, ok := asRecord(normalize(action.Field("result")))
	if !ok {
		return next
	}

	id, ok := result.ID()
	if !ok {
		return next
	}

	if state.GetOne != nil && hasID(state.GetOne.Result, id) {
		current, _ := asRecord(state.GetOne.Result)
		single := *state.GetOne
		single.Result = Merge(current, copyRecord(result))
		next.GetOne = &single
	}

	if state.Get != nil {
		if index := indexOfID(state.Get.Results, id); index >= 0 {
			collection := *state.Get
			results := make([]any, len(collection.Results))
			copy(results, collection.Results)
			results[index] = mergeItem(results[index], copyRecord(result))
			collection.Results = results
			next.Get = &collection
		}
	}

	return next
}

func updateFailure(state *State, action Action) *State {
	slice := state.upgrade()
	slice.Fetching = false
	slice.Error = action.Field("error")

	next := state.Clone()
	next.Upgrade = &slice
	return next
}

func updateReset(state *State, _ Action) *State {
	next := state.Clone()
	next.Upgrade = emptyStatus()
	return next
}
