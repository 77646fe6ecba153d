package app

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frudas24/pointerhook/internal/monitor"
)

// RegisterRoutes wires API and websocket handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/login", a.handleLogin)
	mux.HandleFunc("/logout", a.handleLogout)
	mux.HandleFunc("/api/monitors", a.handleMonitors)
	mux.HandleFunc("/api/state", a.handleState)
	mux.Handle("/ws/control", a.Bridge())
	if sig := a.Signaling(); sig != nil {
		mux.Handle("/ws/signal", sig)
	}
	mux.HandleFunc("/favicon.ico", handleFavicon)
}

type loginRequest struct {
	Password string `json:"password"`
}

type stateResponse struct {
	Authenticated bool   `json:"authenticated"`
	InputEnabled  bool   `json:"inputEnabled"`
	Capturing     bool   `json:"capturing"`
	HookRunning   bool   `json:"hookRunning"`
	Consumer      string `json:"consumer,omitempty"`
	TransportRTC  bool   `json:"transportRTC"`
	EdgeSide      string `json:"edgeSide"`
	Dropped       uint64 `json:"dropped"`
}

// handleLogin authenticates the session.
func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if !a.session.Authenticate(req.Password) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleLogout clears authentication state.
func (a *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.session.Logout()
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleMonitors returns the list of monitors, or one monitor when ?index= is given.
func (a *App) handleMonitors(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	list, err := a.ListMonitors()
	if err != nil {
		http.Error(w, "failed to list monitors", http.StatusInternalServerError)
		return
	}
	raw := r.URL.Query().Get("index")
	if raw == "" {
		_ = json.NewEncoder(w).Encode(list)
		return
	}
	idx, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, "bad index", http.StatusBadRequest)
		return
	}
	m, ok := monitor.GetMonitorByIndex(list, idx)
	if !ok {
		http.Error(w, "monitor not found", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(m)
}

// handleState returns the session, hook and transport state.
func (a *App) handleState(w http.ResponseWriter, _ *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	snap := a.session.Snapshot()
	resp := stateResponse{
		Authenticated: snap.Authenticated,
		InputEnabled:  snap.InputEnabled,
		Capturing:     a.switcher.Capturing(),
		HookRunning:   a.runner.Running(),
		Consumer:      snap.ConsumerID,
		TransportRTC:  snap.TransportRTC,
		EdgeSide:      a.cfg.EdgeSide,
		Dropped:       a.bridge.Dropped(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// requireAuth returns false and writes an error if the session is not authenticated.
func (a *App) requireAuth(w http.ResponseWriter) bool {
	if !a.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
