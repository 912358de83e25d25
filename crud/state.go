package crud

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/weegigs/wee-crud-go/internal/decode"
)

// Slice keys as they appear in the serialized state. The update family is
// stored under "upgrade".
const (
	SliceGet     = "get"
	SliceGetOne  = "getOne"
	SliceCreate  = "create"
	SliceUpgrade = "upgrade"
	SliceRemove  = "remove"
)

type GetState struct {
	Fetching bool  `json:"fetching" mapstructure:"fetching"`
	Error    any   `json:"error" mapstructure:"error"`
	Results  []any `json:"results" mapstructure:"results"`
}

type GetOneState struct {
	Fetching bool `json:"fetching" mapstructure:"fetching"`
	Error    any  `json:"error" mapstructure:"error"`
	Result   any  `json:"result" mapstructure:"result"`
	ID       any  `json:"id" mapstructure:"id"`
}

// StatusState tracks create and update requests.
type StatusState struct {
	Fetching bool `json:"fetching" mapstructure:"fetching"`
	Error    any  `json:"error" mapstructure:"error"`
	Success  bool `json:"success" mapstructure:"success"`
}

type RemoveState struct {
	Fetching bool `json:"fetching" mapstructure:"fetching"`
	Pending  any  `json:"pending" mapstructure:"pending"`
	Error    any  `json:"error" mapstructure:"error"`
	Success  bool `json:"success" mapstructure:"success"`
}

// State is the tree managed by a reducer. A State is never modified once it
// has been handed out; transitions return a new State that shares every
// slice they did not touch. Slices of families that were not selected are
// nil.
type State struct {
	Get     *GetState
	GetOne  *GetOneState
	Create  *StatusState
	Upgrade *StatusState
	Remove  *RemoveState
	Custom  Record
}

// Clone returns a shallow copy for building the next state.
func (s *State) Clone() *State {
	next := *s
	return &next
}

// WithCustom returns a copy of s whose custom fields are merged with a copy
// of patch.
func (s *State) WithCustom(patch Record, options ...MergeOption) *State {
	next := s.Clone()
	next.Custom = Merge(s.Custom, copyRecord(patch), options...)

	return next
}

// Field reads a top level field: a slice by its key, or a custom field.
func (s *State) Field(key string) (any, bool) {
	switch key {
	case SliceGet:
		return s.Get, s.Get != nil
	case SliceGetOne:
		return s.GetOne, s.GetOne != nil
	case SliceCreate:
		return s.Create, s.Create != nil
	case SliceUpgrade:
		return s.Upgrade, s.Upgrade != nil
	case SliceRemove:
		return s.Remove, s.Remove != nil
	}

	value, ok := s.Custom[key]
	return value, ok
}

// collection resolves path to a sequence of items. "get" and "get.results"
// name the collection slice; any other path is a dotted path into the
// custom fields.
func (s *State) collection(path string) ([]any, bool) {
	switch path {
	case "", SliceGet, SliceGet + ".results":
		if s.Get == nil {
			return nil, false
		}
		return s.Get.Results, true
	}

	var current any = s.Custom
	for _, segment := range strings.Split(path, ".") {
		record, ok := asRecord(current)
		if !ok {
			return nil, false
		}
		if current, ok = record[segment]; !ok {
			return nil, false
		}
	}

	return decode.Sequence(current)
}

func (s *State) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(s.Custom)+5)
	for key, value := range s.Custom {
		flat[key] = value
	}

	if s.Get != nil {
		flat[SliceGet] = s.Get
	}
	if s.GetOne != nil {
		flat[SliceGetOne] = s.GetOne
	}
	if s.Create != nil {
		flat[SliceCreate] = s.Create
	}
	if s.Upgrade != nil {
		flat[SliceUpgrade] = s.Upgrade
	}
	if s.Remove != nil {
		flat[SliceRemove] = s.Remove
	}

	return json.Marshal(flat)
}

func emptyGet() *GetState {
	return &GetState{Results: []any{}}
}

func emptyGetOne(result any) *GetOneState {
	return &GetOneState{Result: result}
}

func emptyStatus() *StatusState {
	return &StatusState{}
}

func emptyRemove() *RemoveState {
	return &RemoveState{}
}

type stateConfig struct {
	getOneInitial any
}

type StateOption func(config *stateConfig)

// WithGetOneInitial sets the default getOne result. Without it the default
// is an empty Record.
func WithGetOneInitial(result any) StateOption {
	return func(config *stateConfig) {
		config.getOneInitial = result
	}
}

// CreateState builds the initial state for the selected families and merges
// custom on top. Custom fields win: a custom field named after a slice
// replaces that slice and may be given as the slice type or as a map.
func CreateState(custom Record, operations Operations, options ...StateOption) (*State, error) {
	config := stateConfig{getOneInitial: Record{}}
	for _, option := range options {
		option(&config)
	}

	state := &State{Custom: Record{}}
	if operations.Get {
		state.Get = emptyGet()
	}
	if operations.GetOne {
		state.GetOne = emptyGetOne(normalize(config.getOneInitial))
	}
	if operations.Create {
		state.Create = emptyStatus()
	}
	if operations.Update {
		state.Upgrade = emptyStatus()
	}
	if operations.Remove {
		state.Remove = emptyRemove()
	}

	for key, value := range custom {
		if err := state.assign(key, value); err != nil {
			return nil, err
		}
	}

	return state, nil
}

func (s *State) assign(key string, value any) error {
	var err error

	switch key {
	case SliceGet:
		s.Get, err = decodeSlice[GetState](key, value)
		if err == nil && s.Get != nil {
			s.Get.Results = sequenceOf(s.Get.Results)
		}
	case SliceGetOne:
		s.GetOne, err = decodeSlice[GetOneState](key, value)
		if err == nil && s.GetOne != nil {
			s.GetOne.Result = normalize(s.GetOne.Result)
		}
	case SliceCreate:
		s.Create, err = decodeSlice[StatusState](key, value)
	case SliceUpgrade:
		s.Upgrade, err = decodeSlice[StatusState](key, value)
	case SliceRemove:
		s.Remove, err = decodeSlice[RemoveState](key, value)
	default:
		s.Custom[key] = normalize(value)
	}

	return err
}

func decodeSlice[T any](key string, value any) (*T, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case *T:
		if v == nil {
			return nil, nil
		}
		slice := *v
		return &slice, nil
	case T:
		return &v, nil
	}

	var slice T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &slice,
	})
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidSlice, "%s: %v", key, err)
	}

	if err := decoder.Decode(value); err != nil {
		return nil, errors.Wrapf(ErrInvalidSlice, "%s: %v", key, err)
	}

	return &slice, nil
}
