package crudhttp

import (
	"context"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/weegigs/wee-crud-go/crud"
	"github.com/weegigs/wee-crud-go/store"
)

// Dispatcher is the store surface the handler needs.
type Dispatcher interface {
	State() store.Snapshot
	Dispatch(ctx context.Context, action crud.Action) (store.Snapshot, error)
}

type HandlerOption func(service *httpService)

func Logger(log *zerolog.Logger) HandlerOption {
	return func(service *httpService) {
		service.log = log
	}
}

// Creators exposes the creators under POST /actions/{name}.
func Creators(creators crud.Creators) HandlerOption {
	return func(service *httpService) {
		service.creators = creators
	}
}

func Encoder(encoder StateEncoder) HandlerOption {
	return func(service *httpService) {
		service.encoder = encoder
	}
}

func NewHandler(dispatcher Dispatcher, options ...HandlerOption) http.Handler {
	service := &httpService{store: dispatcher, creators: crud.Creators{}}
	for _, option := range options {
		option(service)
	}
	if service.log == nil {
		service.log = &log.Logger
	}

	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Method("GET", "/state", service.getState())
	r.Method("POST", "/dispatch", service.dispatchAction())
	r.Method("POST", "/actions/{name}", service.createAction())

	return otelhttp.NewHandler(r, "crud-http")
}

type httpService struct {
	log      *zerolog.Logger
	store    Dispatcher
	creators crud.Creators
	encoder  StateEncoder
}

func (service *httpService) getState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		service.encode(w, r, service.store.State())
	}
}

func (service *httpService) dispatchAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := readJSON(w, r)
		if !ok {
			return
		}

		var action crud.Action
		if err := json.UnmarshalContext(r.Context(), body, &action); err != nil {
			service.log.Info().Err(DecodeError{Cause: err}).Msg("failed to unmarshal action")
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if action.Type == "" {
			http.Error(w, "action type is required", http.StatusBadRequest)
			return
		}

		service.dispatch(w, r, action)
	}
}

func (service *httpService) createAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strcase.ToLowerCamel(chi.URLParam(r, "name"))

		create := service.creators[name]
		if create == nil {
			service.log.Debug().Err(UnknownActionError{Name: name}).Msg("no creator for action")
			http.NotFound(w, r)
			return
		}

		body, ok := readJSON(w, r)
		if !ok {
			return
		}

		var args []any
		if len(body) > 0 {
			if err := json.UnmarshalContext(r.Context(), body, &args); err != nil {
				service.log.Info().Err(DecodeError{Cause: err}).Str("action", name).Msg("failed to unmarshal arguments")
				http.Error(w, "invalid request body", http.StatusBadRequest)
				return
			}
		}

		service.dispatch(w, r, create(args...))
	}
}

func (service *httpService) dispatch(w http.ResponseWriter, r *http.Request, action crud.Action) {
	snapshot, err := service.store.Dispatch(r.Context(), action)
	if err != nil {
		service.log.Info().Err(err).Str("action", action.Type.String()).Msg("failed to dispatch action")
		http.Error(w, "failed to dispatch action", http.StatusInternalServerError)
		return
	}

	service.encode(w, r, snapshot)
}

func (service *httpService) encode(w http.ResponseWriter, r *http.Request, snapshot store.Snapshot) {
	if err := service.encoder.Encode(w, r, snapshot); err != nil {
		service.log.Error().Err(errors.Cause(err)).Msg("failed to encode state")
	}
}

func readJSON(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-type"))
	if mediaType != "application/json" || err != nil {
		http.Error(w, "unsupported content type", http.StatusUnsupportedMediaType)
		return nil, false
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return nil, false
	}

	return body, true
}
