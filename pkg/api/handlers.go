package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/easybox/pkg/board"
	"github.com/matzehuels/easybox/pkg/buildinfo"
	"github.com/matzehuels/easybox/pkg/config"
	"github.com/matzehuels/easybox/pkg/errors"
	"github.com/matzehuels/easybox/pkg/pointer"
)

// maxBodyBytes bounds request bodies; pointer events are tiny.
const maxBodyBytes = 64 << 10

// BoardHandler serves one board.
type BoardHandler struct {
	board *board.Board
}

// NewBoardHandler creates a handler for b.
func NewBoardHandler(b *board.Board) *BoardHandler {
	return &BoardHandler{board: b}
}

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

// Health handles GET /health
func (h *BoardHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

// List handles GET /boxes
func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.board.Snapshot())
}

// Get handles GET /boxes/{id}
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	v, err := h.board.Box(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Add handles POST /boxes
func (h *BoardHandler) Add(w http.ResponseWriter, r *http.Request) {
	var spec config.Box
	if err := decodeJSON(r, &spec); err != nil {
		writeError(w, err)
		return
	}
	v, err := h.board.Add(spec)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

// Remove handles DELETE /boxes/{id}
func (h *BoardHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.board.Remove(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type transformRequest struct {
	Transform string `json:"transform"`
}

// SetTransform handles PUT /boxes/{id}/transform
func (h *BoardHandler) SetTransform(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.board.SetTransform(id, req.Transform); err != nil {
		writeError(w, err)
		return
	}
	v, err := h.board.Box(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Dispatch handles POST /events
func (h *BoardHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var ev pointer.Event
	if err := decodeJSON(r, &ev); err != nil {
		writeError(w, err)
		return
	}
	if err := h.board.Dispatch(ev); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.board.Snapshot())
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.GetCode(err) != "" {
			return err
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}

type errorResponse struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, code.HTTPStatus(), errorResponse{Code: code, Error: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
