package site

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	g "maragu.dev/gomponents"

	"github.com/alexisbeaulieu97/storefront/internal/config"
	"github.com/alexisbeaulieu97/storefront/internal/logger"
	sferrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

// Handler serves the storefront: pages, the sign-up form and activations.
type Handler struct {
	cfg     *config.Config
	routes  Routes
	actions *Actions
	cache   *lru.Cache[string, []byte]
	log     *logger.Logger
	mux     *http.ServeMux
}

// NewHandler wires the route table, the action registry and the page cache.
func NewHandler(cfg *config.Config, log *logger.Logger) (*Handler, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	size := cfg.Server.CacheSize
	if size <= 0 {
		size = config.DefaultCacheSize
	}
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}

	siteLog := log.Component("site")
	h := &Handler{
		cfg:     cfg,
		routes:  DefaultRoutes(),
		actions: NewActions(siteLog, BuiltinActions(), cfg.Gallery),
		cache:   cache,
		log:     siteLog,
		mux:     http.NewServeMux(),
	}

	h.mux.HandleFunc("GET /", h.servePage)
	h.mux.HandleFunc("POST /actions/{name}", h.serveAction)
	h.mux.HandleFunc("POST /signUp", h.serveSignUp)
	h.mux.HandleFunc("POST /signup", h.serveSignUp)
	h.mux.HandleFunc("POST /subscribe", h.serveSubscribe)

	return h, nil
}

// Routes exposes the route table.
func (h *Handler) Routes() Routes { return h.routes }

// Actions exposes the action registry.
func (h *Handler) Actions() *Actions { return h.actions }

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	h.mux.ServeHTTP(rec, r)
	h.log.Request(r.Method, r.URL.Path, rec.status, time.Since(start))
}

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request) {
	route := h.routes.Match(r.URL.Path)

	if body, ok := h.cache.Get(route.Name); ok {
		h.writeHTML(w, route.Status, body)
		return
	}

	body, err := h.render(route, PageContext{Path: r.URL.Path})
	if err != nil {
		h.fail(w, err)
		return
	}
	h.cache.Add(route.Name, body)
	h.writeHTML(w, route.Status, body)
}

func (h *Handler) serveSignUp(w http.ResponseWriter, r *http.Request) {
	h.serveForm(w, r, "signup", func(values url.Values) *Flash {
		form := SignUpForm{
			Email:    strings.TrimSpace(values.Get("email")),
			Password: values.Get("password"),
		}
		if err := form.Validate(); err != nil {
			return h.rejected("sign-up", err)
		}
		h.log.Info("sign-up accepted")
		return &Flash{Success: true, Message: "Thanks for signing up, " + form.Email + "!"}
	})
}

func (h *Handler) serveSubscribe(w http.ResponseWriter, r *http.Request) {
	h.serveForm(w, r, "home", func(values url.Values) *Flash {
		form := SubscribeForm{Email: strings.TrimSpace(values.Get("email"))}
		if err := form.Validate(); err != nil {
			return h.rejected("subscription", err)
		}
		if err := h.actions.Activate("subscribe"); err != nil {
			h.log.Warn(err, "subscribe control did not fire")
		}
		return &Flash{Success: true, Message: "Subscribed " + form.Email + " to the newsletter."}
	})
}

// serveForm parses a posted form, lets submit decide the flash and re-renders
// the named route with it. Responses carrying a flash are never cached.
func (h *Handler) serveForm(w http.ResponseWriter, r *http.Request, routeName string, submit func(url.Values) *Flash) {
	route, _ := h.routes.Lookup(routeName)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	result := submit(r.PostForm)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}

	body, err := h.render(route, PageContext{Path: r.URL.Path, Flash: result})
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeHTML(w, status, body)
}

func (h *Handler) rejected(form string, err error) *Flash {
	message, field := err.Error(), "form"
	var validationErr *sferrors.ValidationError
	if errors.As(err, &validationErr) {
		message, field = validationErr.Message, validationErr.Field
	}
	h.log.WithFields(map[string]any{"form": form, "field": field}).Debug("submission rejected")
	return &Flash{Message: message}
}

func (h *Handler) serveAction(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	err := h.actions.Activate(name)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, ErrUnknownAction):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInertAction):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.fail(w, err)
	}
}

func (h *Handler) render(route Route, ctx PageContext) ([]byte, error) {
	ctx.Site = h.cfg.Site
	ctx.Actions = h.actions
	ctx.Log = h.log.WithFields(map[string]any{"route": route.Name})

	var content g.Node
	if route.Page != nil {
		content = route.Page(ctx)
	}

	var buf bytes.Buffer
	if err := Layout(h.cfg.Site, h.cfg.Nav, route.Title, content).Render(&buf); err != nil {
		return nil, sferrors.NewRenderError(route.Name, err)
	}
	return buf.Bytes(), nil
}

func (h *Handler) writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	h.log.Error(err, "request failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
