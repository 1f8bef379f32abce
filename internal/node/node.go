package node

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/SystemBuilders/Containers/internal/containerservice"
	"github.com/SystemBuilders/Containers/internal/routing"
	"github.com/cockroachdb/errors"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// ErrInvalidPort is returned for ports outside the 0 to 65535 range.
var ErrInvalidPort = errors.New("port number must be between 0 and 65535")

// shutdownTimeout bounds how long in-flight requests may take to drain.
const shutdownTimeout = 10 * time.Second

// NewServer builds the http server for the service on the configured
// address, with all the routes set up.
func NewServer(cs containerservice.ContainerService, cfg containerservice.Config) (*http.Server, error) {
	if err := checkValidPort(cfg.Port()); err != nil {
		return nil, err
	}

	router := mux.NewRouter()
	router = routing.SetupRouting(cs, router)

	return &http.Server{
		Handler: router,
		Addr:    cfg.IP() + ":" + cfg.Port(),
	}, nil
}

// Start begins the node's operation as a http server. It blocks until
// the server stops, and after an interrupt it returns only once the
// in-flight requests have drained or the shutdown deadline has passed.
func Start(cs containerservice.ContainerService, cfg containerservice.Config, log zerolog.Logger) error {
	server, err := NewServer(cs, cfg)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return errors.Wrapf(err, "listening on %s", server.Addr)
	}

	interruptChan := make(chan os.Signal, 1)
	signal.Notify(interruptChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interruptChan)

	return serve(server, ln, interruptChan, log)
}

// serve runs server on ln until a value arrives on interrupt, then
// waits for the graceful shutdown to finish and returns its error.
func serve(server *http.Server, ln net.Listener, interrupt <-chan os.Signal, log zerolog.Logger) error {
	done := make(chan error, 1)
	go gracefulShutdown(server, interrupt, done, log)

	log.Info().Str("addr", ln.Addr().String()).Msg("starting server")
	if err := server.Serve(ln); err != nil && err != http.ErrServerClosed {
		return errors.Wrapf(err, "serving on %s", ln.Addr())
	}

	// Serve returns as soon as Shutdown closes the listeners; the
	// connections are still draining until done is written.
	return <-done
}

// gracefulShutdown shuts down the server on getting a ^C signal and
// reports the result of the shutdown on done.
func gracefulShutdown(server *http.Server, interrupt <-chan os.Signal, done chan<- error, log zerolog.Logger) {
	// Block until we receive our signal.
	<-interrupt
	log.Info().Msg("shutting down")

	// Create a deadline to wait for currently serving items.
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := server.Shutdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("shutdown")
		err = errors.Wrap(err, "shutting down")
	}
	done <- err
}

func checkValidPort(port string) error {
	portInt, err := strconv.Atoi(port)
	if err != nil {
		return errors.Wrapf(err, "parsing port %q", port)
	}
	if portInt < 0 || portInt > 65535 {
		return ErrInvalidPort
	}
	return nil
}
