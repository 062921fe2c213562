package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-formcheck/pkg/display"
	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/schema"
	"github.com/goliatone/go-formcheck/pkg/submission"
)

type formResponse struct {
	Form   model.FormModel `json:"form"`
	Values form.FieldSet   `json:"values"`
}

type fieldRequest struct {
	Value json.RawMessage `json:"value"`
}

type outcomeResponse struct {
	Valid  bool              `json:"valid"`
	Record form.FieldSet     `json:"record"`
	Errors map[string]string `json:"errors"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handler struct {
	controller *submission.Controller
	opts       Options
}

// Mount registers the form routes on r under opts.RoutePath and returns the
// mount path:
//
//	GET   /form                  form model and current values
//	PATCH /form                  RFC 6902 patch over the current values
//	PUT   /form/fields/{field}   {"value": ...} updates one input
//	POST  /form/submit           validates and emits the stored values
//	POST  /form/validate         validates and emits the posted record
//	GET   /form/schema           OpenAPI document
func Mount(r chi.Router, controller *submission.Controller, fns ...OptionFn) (string, error) {
	if r == nil {
		return "", errors.New("httpapi: missing router")
	}
	if controller == nil {
		return "", errors.New("httpapi: missing submission controller")
	}
	opts := NewOptions(fns...)
	h := &handler{controller: controller, opts: opts}

	r.Route(opts.RoutePath, func(sub chi.Router) {
		sub.Use(h.guard)
		sub.Get("/", h.getForm)
		sub.Patch("/", h.patchForm)
		sub.Put("/fields/{field}", h.putField)
		sub.Post("/submit", h.submit)
		sub.Post("/validate", h.validate)
		sub.Get("/schema", h.schema)
	})
	return opts.RoutePath, nil
}

// NewHandler returns a standalone router serving the form routes.
func NewHandler(controller *submission.Controller, fns ...OptionFn) (http.Handler, error) {
	r := chi.NewRouter()
	if _, err := Mount(r, controller, fns...); err != nil {
		return nil, err
	}
	return r, nil
}

func (h *handler) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.opts.Guard != nil {
			if err := h.opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (h *handler) getForm(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, formResponse{
		Form:   h.opts.Form,
		Values: h.controller.Store().Snapshot(),
	})
}

func (h *handler) putField(w http.ResponseWriter, r *http.Request) {
	name := model.FieldName(chi.URLParam(r, "field"))
	if !name.Valid() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("unknown field %q", name)})
		return
	}

	var req fieldRequest
	if err := h.decode(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	var value any
	if err := json.Unmarshal(req.Value, &value); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "value is required"})
		return
	}
	if err := h.controller.Store().Set(name, value); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, formResponse{
		Form:   h.opts.Form,
		Values: h.controller.Store().Snapshot(),
	})
}

func (h *handler) patchForm(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	values, err := h.controller.Store().Patch(body)
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, form.ErrPatch) {
			code = http.StatusUnprocessableEntity
		}
		writeJSON(w, code, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, formResponse{Form: h.opts.Form, Values: values})
}

func (h *handler) submit(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.controller.Submit(r.Context())
	h.writeOutcome(w, r, outcome, err)
}

func (h *handler) validate(w http.ResponseWriter, r *http.Request) {
	var values form.FieldSet
	if err := h.decode(w, r, &values); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	outcome, err := h.controller.SubmitFieldSet(r.Context(), values)
	h.writeOutcome(w, r, outcome, err)
}

func (h *handler) schema(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, schema.Document(h.opts.Form))
}

func (h *handler) writeOutcome(w http.ResponseWriter, r *http.Request, outcome submission.Outcome, err error) {
	if err != nil && !errors.Is(err, submission.ErrEmit) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		// The record could not be emitted; the outcome is still reported.
		w.Header().Set("X-Emit-Error", err.Error())
	}

	if wantsHTML(r) {
		fragment, renderErr := display.HTMLErrors(outcome.Result)
		if renderErr != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, fragment)
		return
	}

	errs := outcome.Result.Errors()
	if errs == nil {
		errs = map[string]string{}
	}
	writeJSON(w, http.StatusOK, outcomeResponse{
		Valid:  outcome.Valid(),
		Record: outcome.Record,
		Errors: errs,
	})
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func wantsHTML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}
