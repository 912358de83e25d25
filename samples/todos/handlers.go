package todos

import (
	"github.com/weegigs/wee-crud-go/crud"
)

func NewReducer(actions *crud.Actions, initial *crud.State, prefix Prefix) (crud.Reducer, error) {
	handlers := crud.Handlers{
		actions.Types[ToggleTodo]: toggleTodo,
		actions.Types[SetFilter]:  setFilter,
	}

	return crud.CreateReducer(initial, handlers, options(prefix)...)
}

// toggleTodo flips done on the collection item and on getOne when it holds
// the same todo.
func toggleTodo(state *crud.State, action crud.Action) *crud.State {
	id := action.Field("id")
	if id == nil || state.Get == nil {
		return state
	}

	index := -1
	for i, result := range state.Get.Results {
		if item, ok := result.(crud.Record); ok && crud.LooseEqual(item["id"], id) {
			index = i
			break
		}
	}
	if index < 0 {
		return state
	}

	item := state.Get.Results[index].(crud.Record)
	done, _ := item["done"].(bool)
	toggled := crud.Merge(item, crud.Record{"done": !done})

	results := make([]any, len(state.Get.Results))
	copy(results, state.Get.Results)
	results[index] = toggled

	collection := *state.Get
	collection.Results = results

	next := state.Clone()
	next.Get = &collection

	if state.GetOne != nil {
		if current, ok := state.GetOne.Result.(crud.Record); ok && crud.LooseEqual(current["id"], id) {
			single := *state.GetOne
			single.Result = crud.Merge(current, crud.Record{"done": !done})
			next.GetOne = &single
		}
	}

	return next
}

func setFilter(state *crud.State, action crud.Action) *crud.State {
	var filter Filter
	switch value := action.Field(filterField).(type) {
	case Filter:
		filter = value
	case string:
		filter = Filter(value)
	}

	if !filter.Valid() || filter == CurrentFilter(state) {
		return state
	}

	return state.WithCustom(crud.Record{filterField: filter})
}
