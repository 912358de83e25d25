// Package crud generates the boilerplate of a unidirectional state container
// for CRUD style resources: action types, action creators, an initial state
// and a reducer with default transitions.
//
//	operations := crud.AllOperations()
//	options := []crud.Option{crud.WithPrefix("TODO_"), crud.WithDefaults(operations)}
//
//	actions, _ := crud.CreateActions(crud.Config{"toggle": crud.Fields("id")}, options...)
//	initial, _ := crud.CreateState(crud.Record{"filter": "all"}, operations)
//	reducer, _ := crud.CreateReducer(initial, crud.Handlers{
//		actions.Types["toggle"]: toggle,
//	}, options...)
//
//	state := reducer(initial, actions.Creators[crud.GetRequest]())
//
// The state has one slice per selected family: get (a collection), getOne (a
// single item cache), create, upgrade (the update family) and remove.
// Transitions keep them consistent: a created item is appended to the
// collection, an updated item is merged into both the collection and the
// cached item, a removed item leaves both.
//
// Reducers are pure. They never modify the state they are given, so a
// Reducer can be shared freely between goroutines.
package crud
