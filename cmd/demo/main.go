package main

// An HTTP key router embedding the ring: each request names a key, and
// the response names the backend that should serve it, chosen with the
// bounded-load lookup. Load is incremented on selection and released a
// little later, standing in for the lifetime of a proxied request.

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/routamo/hashring"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// multiStringValue allows us to accept multiple occurrences of a given
// flag on the command line. Unfortunately this is not built into the flag
// library.
type multiStringValue []string

func (v *multiStringValue) Set(value string) error {
	*v = append(*v, value)
	return nil
}
func (v *multiStringValue) String() string {
	if v == nil {
		return ""
	}
	return strings.Join(*v, ", ")
}

// config is the demo's file configuration: ring parameters plus the
// initial set of backends.
type config struct {
	Ring  hashring.Config `yaml:"ring"`
	Hosts []string        `yaml:"hosts"`
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := &config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing %v: %w", path, err)
	}
	return c, nil
}

// router guards a ring with a single mutex, which is the supported way to
// share one between goroutines: Add and Remove restructure the index that
// lookups search, so there is no finer boundary to lock at.
type router struct {
	mu   sync.Mutex
	ring *hashring.Ring
}

// route picks a backend for key and claims a unit of load on it. The
// increment happens under the same lock as the lookup, so concurrent
// routes see each other's claims.
func (r *router) route(key string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	host, ok := r.ring.GetLeast(key)
	if ok {
		r.ring.IncLoad(host)
	}
	return host, ok
}

// release returns a previously claimed unit of load.
func (r *router) release(host string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ring.DecLoad(host)
}

func (r *router) hosts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ring.Hosts()
}

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	flgHTTPPort := flag.Int("http.port", 8080, "where to serve routing requests and metrics")
	flgConfig := flag.String("config", "", "path to a yaml file with ring settings and initial hosts")
	flgHold := flag.Duration("hold", time.Second*2, "how long a routed key counts against its host's load")
	flgHosts := &multiStringValue{}
	flag.Var(flgHosts, "host", "backend to register on start; can be passed multiple times")
	flag.Parse()

	ringConfig := hashring.Config{Name: "demo"}
	initial := []string(*flgHosts)
	if *flgConfig != "" {
		c, err := loadConfig(*flgConfig)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load config")
		}
		ringConfig = c.Ring
		initial = append(c.Hosts, initial...)
	}

	rt := &router{ring: hashring.New(ringConfig)}
	for _, host := range initial {
		rt.ring.Add(host)
	}
	logger.Info().
		Strs("hosts", rt.hosts()).
		Int("replication_factor", rt.ring.ReplicationFactor()).
		Msg("ring ready")

	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/hosts", func(w http.ResponseWriter, req *http.Request) {
		for _, host := range rt.hosts() {
			fmt.Fprintln(w, host)
		}
	})
	http.HandleFunc("/route", func(w http.ResponseWriter, req *http.Request) {
		key := req.URL.Query().Get("key")
		if key == "" {
			http.Error(w, "key parameter required", http.StatusBadRequest)
			return
		}
		host, ok := rt.route(key)
		if !ok {
			// nothing registered; the caller is expected to fall back
			// or queue
			http.Error(w, "no hosts registered", http.StatusServiceUnavailable)
			return
		}
		logger.Info().Str("key", key).Str("host", host).Msg("routed")

		// pretend the proxied request runs for a while, then release the
		// claimed unit of load
		go func() {
			time.Sleep(*flgHold)
			rt.release(host)
		}()
		fmt.Fprintln(w, host)
	})

	listener, err := net.Listen("tcp", ":"+strconv.Itoa(*flgHTTPPort))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start web server")
	}
	defer listener.Close()

	srv := &http.Server{
		ReadHeaderTimeout: time.Second * 10,
		IdleTimeout:       time.Minute * 3,
	}
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := srv.Serve(listener); err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("server did not close cleanly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println() // avoids "^C" being printed on the same line as the log

	logger.Info().Msg("waiting for in-progress requests to finish")
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Error().Err(err).Msg("failed to close listener")
	}
	wg.Wait()
}
