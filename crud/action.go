package crud

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

type ActionType string

func (t ActionType) String() string {
	return string(t)
}

// Payload holds the named field values of an action.
type Payload map[string]any

// Action is a tagged message. On the wire it is a flat JSON object whose
// "type" key carries the tag; a field named "type" never overrides the tag.
type Action struct {
	Type    ActionType
	Payload Payload
}

func (a Action) Field(name string) any {
	return a.Payload[name]
}

func (a Action) Lookup(name string) (any, bool) {
	value, ok := a.Payload[name]
	return value, ok
}

func (a Action) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(a.Payload)+1)
	for name, value := range a.Payload {
		flat[name] = value
	}
	flat["type"] = a.Type

	return json.Marshal(flat)
}

func (a *Action) UnmarshalJSON(data []byte) error {
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return errors.Wrap(err, "failed to decode action")
	}

	var actionType ActionType
	if raw, ok := flat["type"]; ok && raw != nil {
		name, ok := raw.(string)
		if !ok {
			return errors.Errorf("action type must be a string, got %T", raw)
		}
		actionType = ActionType(name)
	}
	delete(flat, "type")

	a.Type = actionType
	a.Payload = nil
	if len(flat) > 0 {
		a.Payload = Payload(flat)
	}

	return nil
}
