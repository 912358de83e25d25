package todos

import "github.com/weegigs/wee-crud-go/crud"

// Todo is the item shape kept in the collection. Items are stored as records
// so the json tags name their fields.
type Todo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

type Filter string

const (
	FilterAll    Filter = "all"
	FilterActive Filter = "active"
	FilterDone   Filter = "done"
)

func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterActive, FilterDone:
		return true
	default:
		return false
	}
}

func (f Filter) Accepts(item crud.Record) bool {
	done, _ := item["done"].(bool)

	switch f {
	case FilterActive:
		return !done
	case FilterDone:
		return done
	default:
		return true
	}
}

// Prefix is prepended to every todo action type.
type Prefix string

const (
	ToggleTodo = "toggleTodo"
	SetFilter  = "setFilter"
)

const filterField = "filter"

func options(prefix Prefix) []crud.Option {
	return []crud.Option{crud.WithPrefix(string(prefix)), crud.WithDefaults(crud.AllOperations())}
}

func NewActions(prefix Prefix) (*crud.Actions, error) {
	return crud.CreateActions(crud.Config{
		ToggleTodo: crud.Fields("id"),
		SetFilter:  crud.Fields(filterField),
	}, options(prefix)...)
}

func InitialState() (*crud.State, error) {
	return crud.CreateState(crud.Record{filterField: FilterAll}, crud.AllOperations())
}

// CurrentFilter reads the filter field, falling back to FilterAll.
func CurrentFilter(state *crud.State) Filter {
	switch filter := state.Custom[filterField].(type) {
	case Filter:
		return filter
	case string:
		if Filter(filter).Valid() {
			return Filter(filter)
		}
	}

	return FilterAll
}

// Visible lists the todos accepted by the current filter.
func Visible(state *crud.State) []crud.Record {
	if state.Get == nil {
		return nil
	}

	filter := CurrentFilter(state)
	visible := make([]crud.Record, 0, len(state.Get.Results))
	for _, result := range state.Get.Results {
		item, ok := result.(crud.Record)
		if ok && filter.Accepts(item) {
			visible = append(visible, item)
		}
	}

	return visible
}
