package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wcatz/widget-grid/internal/grid"
	"github.com/wcatz/widget-grid/internal/store"
)

// Engine operation handlers

type layoutRequest struct {
	Cols    int           `json:"cols"`
	Widgets []grid.Widget `json:"widgets"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	cols := s.colsOrDefault(req.Cols)
	report, err := grid.ValidateLayout(req.Widgets, cols)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

type placeRequest struct {
	Cols    int           `json:"cols"`
	Width   int           `json:"width"`
	Height  int           `json:"height"`
	Widgets []grid.Widget `json:"widgets"`
}

func (s *Server) handlePlace(w http.ResponseWriter, r *http.Request) {
	var req placeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	cfg := s.Config()
	cols := s.colsOrDefault(req.Cols)
	if req.Width == 0 {
		req.Width = cfg.Grid.DefaultWidth
	}
	if req.Height == 0 {
		req.Height = cfg.Grid.DefaultHeight
	}

	rects := make([]grid.Rect, len(req.Widgets))
	for i, wd := range req.Widgets {
		rects[i] = wd.Rect
	}
	placement, err := grid.FindAvailablePositionCapped(rects, req.Width, req.Height, cols, cfg.Grid.MaxScanRows)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if placement.Exhausted {
		s.logger.Warn("free-position search exhausted",
			zap.Int("width", req.Width), zap.Int("height", req.Height), zap.Int("cols", cols))
	}
	s.writeJSON(w, http.StatusOK, placement)
}

func (s *Server) handleCompact(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"widgets": grid.Compact(req.Widgets),
	})
}

func (s *Server) handleBreakpoint(w http.ResponseWriter, r *http.Request) {
	width, err := strconv.Atoi(r.URL.Query().Get("width"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New("width query parameter must be an integer"))
		return
	}
	table := s.Config().Table()
	name := table.BreakpointFor(width)
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"breakpoint": name,
		"cols":       table.ColumnsFor(name),
	})
}

// Stored layout handlers

func (s *Server) handleLayoutList(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"layouts": names})
}

func (s *Server) handleLayoutGet(w http.ResponseWriter, r *http.Request) {
	layout, err := s.store.Load(r.PathValue("name"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.writeError(w, http.StatusNotFound, err)
			return
		}
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, layout)
}

func (s *Server) handleLayoutPut(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	body, err := readBody(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	layout, err := store.Decode(body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	// Refuse to persist a layout the engine considers invalid; the report
	// tells the caller exactly what to fix.
	report, err := grid.ValidateLayout(layout.Widgets, layout.Cols)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if !report.Valid {
		s.writeJSON(w, http.StatusUnprocessableEntity, report)
		return
	}

	if err := s.store.Save(name, layout); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, layout)
}

type addWidgetRequest struct {
	ID     string `json:"id"`
	Width  int    `json:"w"`
	Height int    `json:"h"`
	MinW   int    `json:"minW"`
	MinH   int    `json:"minH"`
	MaxW   int    `json:"maxW"`
	MaxH   int    `json:"maxH"`
}

func (s *Server) handleWidgetAdd(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	var req addWidgetRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	layout, err := s.store.Load(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.writeError(w, http.StatusNotFound, err)
			return
		}
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	cfg := s.Config()
	if req.Width == 0 {
		req.Width = cfg.Grid.DefaultWidth
	}
	if req.Height == 0 {
		req.Height = cfg.Grid.DefaultHeight
	}
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	for _, existing := range layout.Widgets {
		if existing.ID == id {
			s.writeError(w, http.StatusConflict, errors.New("widget id already in layout"))
			return
		}
	}

	placement, err := grid.FindAvailablePositionCapped(layout.Rects(), req.Width, req.Height, layout.Cols, cfg.Grid.MaxScanRows)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if placement.Exhausted {
		// Persisting the fallback position could overlap existing widgets;
		// report instead of corrupting the stored layout.
		s.logger.Warn("widget not placed: search exhausted",
			zap.String("layout", name), zap.String("widget", id))
		s.writeJSON(w, http.StatusConflict, placement)
		return
	}

	widget := grid.Widget{ID: id, Rect: placement.Rect}
	widget.MinW, widget.MinH = req.MinW, req.MinH
	widget.MaxW, widget.MaxH = req.MaxW, req.MaxH
	layout.Widgets = append(layout.Widgets, widget)
	if err := s.store.Save(name, layout); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, widget)
}

func (s *Server) handleLayoutCompact(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	layout, err := s.store.Load(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.writeError(w, http.StatusNotFound, err)
			return
		}
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	layout.Widgets = grid.Compact(layout.Widgets)
	if err := s.store.Save(name, layout); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, layout)
}

// Operational handlers

func (s *Server) handleConfigReload(w http.ResponseWriter, r *http.Request) {
	if err := s.ReloadConfig(); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"reloaded": true})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
}

// Helpers

// colsOrDefault substitutes the configured column count for an omitted
// value. Negative values pass through so the engine rejects them.
func (s *Server) colsOrDefault(cols int) int {
	if cols != 0 {
		return cols
	}
	return s.Config().Grid.Cols
}

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
