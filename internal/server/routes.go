package server

func (s *Server) registerRoutes() {
	// Pure engine operations
	s.mux.HandleFunc("POST /api/layout/validate", s.handleValidate)
	s.mux.HandleFunc("POST /api/layout/place", s.handlePlace)
	s.mux.HandleFunc("POST /api/layout/compact", s.handleCompact)
	s.mux.HandleFunc("GET /api/breakpoint", s.handleBreakpoint)

	// Stored layouts
	s.mux.HandleFunc("GET /api/layouts", s.handleLayoutList)
	s.mux.HandleFunc("GET /api/layouts/{name}", s.handleLayoutGet)
	s.mux.HandleFunc("PUT /api/layouts/{name}", s.handleLayoutPut)
	s.mux.HandleFunc("POST /api/layouts/{name}/widgets", s.handleWidgetAdd)
	s.mux.HandleFunc("POST /api/layouts/{name}/compact", s.handleLayoutCompact)

	// Operational
	s.mux.HandleFunc("POST /api/config/reload", s.handleConfigReload)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
}
