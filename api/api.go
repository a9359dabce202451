package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vocdoni/sigmacompiler/crypto/ecc"
	"github.com/vocdoni/sigmacompiler/log"
	"github.com/vocdoni/sigmacompiler/prooflog"
	"github.com/vocdoni/sigmacompiler/protocols"
)

// APIConfig is the configuration for the Σ-protocol compiler's HTTP API.
type APIConfig struct {
	Host  string
	Port  int
	Curve ecc.Point // required: the curve all registered protocols run over
	// ProofLog is optional: when set, every accepted /prove call is
	// appended to it and becomes retrievable via GET /proofs/{id}.
	ProofLog *prooflog.Log
}

// API is the Σ-protocol compiler's HTTP server: POST /prove, POST /verify,
// GET /spec/{protocol}, and optionally GET /proofs/{id}.
type API struct {
	router   *chi.Mux
	curve    ecc.Point
	registry map[string]protocols.Entry
	proofLog *prooflog.Log
}

// New creates a new API instance with the given configuration and starts
// its HTTP server in a background goroutine.
func New(conf *APIConfig) (*API, error) {
	if conf == nil {
		return nil, fmt.Errorf("missing API configuration")
	}
	if conf.Curve == nil {
		return nil, fmt.Errorf("missing curve")
	}
	a := &API{
		curve:    conf.Curve,
		registry: protocols.Registry(conf.Curve),
		proofLog: conf.ProofLog,
	}

	a.initRouter()
	go func() {
		log.Infow("starting API server", "host", conf.Host, "port", conf.Port)
		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", conf.Host, conf.Port), a.router); err != nil {
			log.Fatalf("failed to start the API server: %v", err)
		}
	}()
	return a, nil
}

// Router returns the chi router, for testing.
func (a *API) Router() *chi.Mux {
	return a.router
}

// registerHandlers registers all the HTTP handlers for the API endpoints.
func (a *API) registerHandlers() {
	log.Infow("register handler", "endpoint", PingEndpoint, "method", "GET")
	a.router.Get(PingEndpoint, func(w http.ResponseWriter, r *http.Request) {
		httpWriteOK(w)
	})
	log.Infow("register handler", "endpoint", ProveEndpoint, "method", "POST")
	a.router.Post(ProveEndpoint, a.prove)
	log.Infow("register handler", "endpoint", VerifyEndpoint, "method", "POST")
	a.router.Post(VerifyEndpoint, a.verify)
	log.Infow("register handler", "endpoint", SpecEndpoint, "method", "GET", "parameters", "protocol")
	a.router.Get(SpecEndpoint, a.spec)
	log.Infow("register handler", "endpoint", ProofEndpoint, "method", "GET", "parameters", "id")
	a.router.Get(ProofEndpoint, a.getProof)
}

// bufPool is a pool of bytes.Buffer to reduce logger allocations.
var bufPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// initRouter creates the router with all the routes and middleware.
func (a *API) initRouter() {
	logHandler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if log.Level() != "debug" || r.URL.Path == PingEndpoint {
				next.ServeHTTP(w, r)
				return
			}

			buf := bufPool.Get().(*bytes.Buffer)
			buf.Reset()

			bodyBytes, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "unable to read request body", http.StatusInternalServerError)
				bufPool.Put(buf)
				return
			}
			buf.Write(bodyBytes)

			log.Debugw("api request",
				"method", r.Method,
				"url", r.URL.String(),
				"body", strings.ReplaceAll(buf.String(), "\"", ""),
			)

			r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			bufPool.Put(buf)

			next.ServeHTTP(w, r)
		})
	}

	a.router = chi.NewRouter()
	a.router.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)
	a.router.Use(logHandler)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Throttle(100))
	a.router.Use(middleware.ThrottleBacklog(5000, 40000, 60*time.Second))
	a.router.Use(middleware.Timeout(45 * time.Second))

	a.registerHandlers()
}
