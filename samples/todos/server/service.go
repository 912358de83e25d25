package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/weegigs/wee-crud-go/connectors/crudhttp"
	"github.com/weegigs/wee-crud-go/crud"
	"github.com/weegigs/wee-crud-go/samples/todos"
	"github.com/weegigs/wee-crud-go/store"
	"github.com/weegigs/wee-crud-go/support"
)

const serviceName = "todos"

type Server struct {
	Address string
	Handler http.Handler
	Log     *zerolog.Logger
}

func NewServer(config support.Config, handler http.Handler, log *zerolog.Logger, _ *trace.TracerProvider) *Server {
	return &Server{
		Address: fmt.Sprintf(":%d", config.Port),
		Handler: withLogging(handler),
		Log:     log,
	}
}

func ActionPrefix(config support.Config) todos.Prefix {
	return todos.Prefix(config.ActionPrefix)
}

func TracerProvider(ctx context.Context, config support.Config) (*trace.TracerProvider, func(), error) {
	return support.TracerProvider(ctx, serviceName, config)
}

func NewStore(reducer crud.Reducer, initial *crud.State, log *zerolog.Logger) *store.Store {
	return store.New(reducer, initial, store.Logger(log))
}

func NewHandler(todoStore *store.Store, actions *crud.Actions, log *zerolog.Logger) http.Handler {
	return crudhttp.NewHandler(todoStore, crudhttp.Logger(log), crudhttp.Creators(actions.Creators))
}

var service = wire.NewSet(
	ActionPrefix,
	todos.NewActions,
	todos.InitialState,
	todos.NewReducer,
	NewStore,
	NewHandler,
)

var Live = wire.NewSet(
	support.LoadConfig,
	support.NewLogger,
	TracerProvider,
	service,
	NewServer,
)
