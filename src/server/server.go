// Package server exposes badge rendering over HTTP.
//
// Routes:
//
//	GET /badge/{status}
//	GET /badge/{label}/{status}
//	GET /healthz
//
// Badge routes take style, color, label-color, precision and approx query
// parameters. Responses are standalone SVG documents.
package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/image/font/sfnt"

	"github.com/sofmeright/badgen/src/badge"
	"github.com/sofmeright/badgen/src/config"
	"github.com/sofmeright/badgen/src/font"
	"github.com/sofmeright/badgen/src/fonts"
)

// Server renders badges over HTTP using the default built-in font.
type Server struct {
	cfg     config.Serve
	log     *accessLogger
	sf      *sfnt.Font
	metrics *font.Metrics
	pool    chan *renderer
	mux     *http.ServeMux
}

// renderer bundles per-request rendering state. A renderer is checked out
// of the pool for the duration of a request, so its fonts and buffers are
// reused but never shared between goroutines.
type renderer struct {
	sf      *sfnt.Font
	fonts   map[uint8]font.Font
	scratch bytes.Buffer
	out     bytes.Buffer
}

// font returns a cached glyph renderer for the given precision, building
// one on first use.
func (r *renderer) font(precision uint8) (font.Font, error) {
	if f, ok := r.fonts[precision]; ok {
		return f, nil
	}
	f, err := badge.NewFontPrecision(r.sf, precision)
	if err != nil {
		return nil, err
	}
	r.fonts[precision] = f
	return f, nil
}

// New builds a server for the given configuration.
func New(cfg config.Serve) (*Server, error) {
	sf, err := fonts.Default()
	if err != nil {
		return nil, err
	}
	metrics, err := font.NewMetrics(sf, fonts.DefaultFont, 11)
	if err != nil {
		return nil, fmt.Errorf("measuring default font: %w", err)
	}

	s := &Server{
		cfg:     cfg,
		log:     newAccessLogger(cfg.LogFile),
		sf:      sf,
		metrics: metrics,
		pool:    make(chan *renderer, runtime.NumCPU()*2),
		mux:     http.NewServeMux(),
	}
	for i := 0; i < cap(s.pool); i++ {
		s.pool <- &renderer{sf: sf, fonts: make(map[uint8]font.Font)}
	}

	s.mux.HandleFunc("GET /badge/{status}", s.handleBadge)
	s.mux.HandleFunc("GET /badge/{label}/{status}", s.handleBadge)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	return s, nil
}

// Handler returns the server's HTTP handler with access logging applied.
func (s *Server) Handler() http.Handler {
	return s.log.wrap(s.mux)
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	s.log.logger.Info("listening", "addr", s.cfg.Addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleBadge(w http.ResponseWriter, r *http.Request) {
	status := r.PathValue("status")
	label := r.PathValue("label")
	q := r.URL.Query()

	styleName := q.Get("style")
	if styleName == "" {
		styleName = "classic"
	}
	style, err := badge.ParseStyle(styleName)
	if err != nil {
		httpError(w, http.StatusBadRequest, err)
		return
	}

	if c := q.Get("color"); c != "" && c != "auto" {
		col, err := badge.ParseColor(c)
		if err != nil {
			httpError(w, http.StatusBadRequest, err)
			return
		}
		style.Background = col
	} else {
		style.Background = badge.StatusColor(status)
	}

	if c := q.Get("label-color"); c != "" {
		col, err := badge.ParseColor(c)
		if err != nil {
			httpError(w, http.StatusBadRequest, err)
			return
		}
		style.LabelBackground = &col
	}

	var precision uint8
	if p := q.Get("precision"); p != "" {
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil || n > 4 {
			httpError(w, http.StatusBadRequest, fmt.Errorf("precision %q: want 0 through 4", p))
			return
		}
		precision = uint8(n)
	}
	approx := q.Get("approx") == "1" || q.Get("approx") == "true"

	rend := <-s.pool
	defer func() { s.pool <- rend }()

	rend.out.Reset()
	if approx {
		err = badge.WriteBadgeApprox(&rend.out, &style, status, label, s.metrics)
	} else {
		f, ferr := rend.font(precision)
		if ferr != nil {
			httpError(w, http.StatusInternalServerError, ferr)
			return
		}
		err = badge.WriteBadgeWith(&rend.out, &style, status, label, f, &rend.scratch)
	}
	if err != nil {
		httpError(w, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(rend.out.Bytes())
}

func httpError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(err.Error() + "\n"))
}
