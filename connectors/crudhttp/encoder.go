package crudhttp

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/weegigs/wee-crud-go/store"
)

// StateSerializer turns a snapshot into the resource body.
type StateSerializer func(snapshot store.Snapshot) (map[string]any, error)

func FlatSerializer(snapshot store.Snapshot) (map[string]any, error) {
	serialized, err := json.Marshal(snapshot.State)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode state")
	}

	resource := make(map[string]any)
	if err = json.Unmarshal(serialized, &resource); err != nil {
		return nil, errors.Wrap(err, "failed to decode state")
	}

	return resource, nil
}

type StateEncoder struct {
	Serializer StateSerializer
}

func (encoder StateEncoder) Encode(w http.ResponseWriter, r *http.Request, snapshot store.Snapshot) error {
	serialize := encoder.Serializer
	if serialize == nil {
		serialize = FlatSerializer
	}

	resource, err := serialize(snapshot)
	if err != nil {
		http.Error(w, "failed to encode state", http.StatusInternalServerError)
		return err
	}

	resource["$revision"] = snapshot.Revision

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	return json.NewEncoder(w).EncodeContext(r.Context(), resource)
}
