package routing

import (
	"net/http"

	"github.com/SystemBuilders/Containers/internal/containerservice"
	"github.com/gorilla/mux"
)

// SetupRouting adds all the routes on the http server.
func SetupRouting(cs containerservice.ContainerService, r *mux.Router) *mux.Router {
	r.HandleFunc("/containers", makeCreateHandler(cs)).Methods(http.MethodPost)
	r.HandleFunc("/containers", makeListHandler(cs)).Methods(http.MethodGet)
	r.HandleFunc("/containers/{id}", makeItemsHandler(cs)).Methods(http.MethodGet)
	r.HandleFunc("/containers/{id}", makeDropHandler(cs)).Methods(http.MethodDelete)
	r.HandleFunc("/containers/{id}/push", makePushHandler(cs)).Methods(http.MethodPost)
	r.HandleFunc("/containers/{id}/pop", makePopHandler(cs)).Methods(http.MethodPost)
	r.HandleFunc("/containers/{id}/peek", makePeekHandler(cs)).Methods(http.MethodGet)
	return r
}

func makeCreateHandler(cs containerservice.ContainerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		create(w, r, cs)
	}
}

func makeListHandler(cs containerservice.ContainerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list(w, r, cs)
	}
}

func makeItemsHandler(cs containerservice.ContainerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items(w, r, cs)
	}
}

func makeDropHandler(cs containerservice.ContainerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drop(w, r, cs)
	}
}

func makePushHandler(cs containerservice.ContainerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		push(w, r, cs)
	}
}

func makePopHandler(cs containerservice.ContainerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pop(w, r, cs)
	}
}

func makePeekHandler(cs containerservice.ContainerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		peek(w, r, cs)
	}
}
