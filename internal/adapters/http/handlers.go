package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"svw.info/sudoku-play/internal/domain"
	"svw.info/sudoku-play/internal/generator"
	"svw.info/sudoku-play/internal/usecase"
)

type Handler struct {
	UC       *usecase.Service
	Removals int
	reg      *registry
}

func New(uc *usecase.Service, removals int) *Handler {
	if removals <= 0 {
		removals = generator.DefaultRemovals
	}
	return &Handler{UC: uc, Removals: removals, reg: newRegistry()}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/new", h.handleNew)
	mux.HandleFunc("/api/place", h.handlePlace)
	mux.HandleFunc("/api/clear", h.handleClear)
	mux.HandleFunc("/api/check", h.handleCheck)
	mux.HandleFunc("/api/reveal", h.handleReveal)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
}

// ---- New game ----

type newReq struct {
	Seed     int64 `json:"seed,omitempty"`
	Removals int   `json:"removals,omitempty"`
}

type newResp struct {
	ID         string       `json:"id,omitempty"`
	Board      domain.Board `json:"board,omitempty"`
	State      string       `json:"state,omitempty"`
	Seed       int64        `json:"seed,omitempty"`
	DurationMs int64        `json:"durationMs,omitempty"`
	Nodes      int          `json:"nodes,omitempty"`
	Error      string       `json:"error,omitempty"`
}

func (h *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req newReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(newResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	removals := req.Removals
	if removals == 0 {
		removals = h.Removals
	}
	s, st, err := h.UC.NewSession(r.Context(), seed, removals)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(newResp{Error: err.Error()})
		return
	}
	id := h.reg.add(s)
	_ = json.NewEncoder(w).Encode(newResp{
		ID:         id,
		Board:      s.Board,
		State:      s.State.String(),
		Seed:       seed,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Place / Clear ----

type moveReq struct {
	ID    string `json:"id"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Digit uint8  `json:"digit,omitempty"`
}

type moveResp struct {
	Applied bool   `json:"applied"`
	Won     bool   `json:"won,omitempty"`
	State   string `json:"state,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) handlePlace(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req moveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(moveResp{Error: "invalid JSON or missing id"})
		return
	}
	var resp moveResp
	found, err := h.reg.with(req.ID, func(s *domain.Session) error {
		applied, err := h.UC.PlaceDigit(s, req.Row, req.Col, req.Digit)
		if err != nil {
			return err
		}
		resp.Applied = applied
		if applied {
			won, err := h.UC.CheckWin(r.Context(), s)
			if err != nil {
				return err
			}
			resp.Won = won
		}
		resp.State = s.State.String()
		return nil
	})
	if !found {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(moveResp{Error: "unknown session"})
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(moveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleClear(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req moveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(moveResp{Error: "invalid JSON or missing id"})
		return
	}
	var resp moveResp
	found, err := h.reg.with(req.ID, func(s *domain.Session) error {
		applied, err := h.UC.ClearCell(s, req.Row, req.Col)
		if err != nil {
			return err
		}
		resp.Applied = applied
		resp.State = s.State.String()
		return nil
	})
	if !found {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(moveResp{Error: "unknown session"})
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(moveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- Check / Reveal ----

type sessionReq struct {
	ID string `json:"id"`
}

type checkResp struct {
	Won   bool   `json:"won"`
	State string `json:"state,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req sessionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(checkResp{Error: "invalid JSON or missing id"})
		return
	}
	var resp checkResp
	found, err := h.reg.with(req.ID, func(s *domain.Session) error {
		won, err := h.UC.CheckWin(r.Context(), s)
		if err != nil {
			return err
		}
		resp.Won = won
		resp.State = s.State.String()
		return nil
	})
	if !found {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(checkResp{Error: "unknown session"})
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(checkResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

type revealResp struct {
	Board domain.Board `json:"board,omitempty"`
	State string       `json:"state,omitempty"`
	Error string       `json:"error,omitempty"`
}

func (h *Handler) handleReveal(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req sessionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(revealResp{Error: "invalid JSON or missing id"})
		return
	}
	var resp revealResp
	found, err := h.reg.with(req.ID, func(s *domain.Session) error {
		if _, err := h.UC.Reveal(s); err != nil {
			return err
		}
		resp.Board = s.Board
		resp.State = s.State.String()
		return nil
	})
	if !found {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(revealResp{Error: "unknown session"})
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(revealResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- Hint ----

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req sessionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON or missing id"})
		return
	}
	var resp hintResp
	found, err := h.reg.with(req.ID, func(s *domain.Session) error {
		hh, ok, err := h.UC.Hint(r.Context(), &s.Board)
		if err != nil {
			return err
		}
		resp.Found = ok
		resp.Hint = hh
		return nil
	})
	if !found {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "unknown session"})
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- Solve / Validate (stateless assists) ----

type solveReq struct {
	Board domain.Grid `json:"board"`
}
type solveResp struct {
	Board      domain.Grid `json:"board,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Nodes      int         `json:"nodes,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	in := &domain.Board{Values: req.Board}
	out, st, err := h.UC.Solve(r.Context(), in)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
		return
	}
	_ = json.NewEncoder(w).Encode(solveResp{Board: out.Values, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

type validateReq struct {
	Board domain.Grid `json:"board"`
}
type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b := &domain.Board{Values: req.Board}
	ok, conflicts, err := h.UC.Validate(r.Context(), b)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}
