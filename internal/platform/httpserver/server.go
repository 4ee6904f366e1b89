package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	productservice "showcase/contexts/catalog-experience/product-service"
	identityservice "showcase/contexts/identity-access/identity-service"
	moderationservice "showcase/contexts/moderation-safety/moderation-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "showcase/internal/platform/httpserver/docs"
)

const sessionCookieName = "session_token"

type Server struct {
	mux        *http.ServeMux
	logger     *slog.Logger
	addr       string
	identity   identityservice.Module
	catalog    productservice.Module
	moderation moderationservice.Module
}

func New(
	identityModule identityservice.Module,
	catalogModule productservice.Module,
	moderationModule moderationservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:        http.NewServeMux(),
		logger:     logger,
		addr:       addr,
		identity:   identityModule,
		catalog:    catalogModule,
		moderation: moderationModule,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)

	s.mux.HandleFunc("POST /api/v1/auth/register", s.handleRegister)
	s.mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)
	s.mux.HandleFunc("POST /api/v1/auth/logout", s.handleLogout)
	s.mux.HandleFunc("GET /api/v1/auth/me", s.handleMe)

	s.mux.HandleFunc("GET /api/v1/products", s.handleListProducts)
	s.mux.HandleFunc("GET /api/v1/products/{product_id}", s.handleGetProduct)
	s.mux.HandleFunc("POST /api/v1/products", s.handleCreateProduct)
	s.mux.HandleFunc("POST /api/v1/products/{product_id}/like", s.handleLikeProduct)
	s.mux.HandleFunc("DELETE /api/v1/products/{product_id}/like", s.handleUnlikeProduct)

	s.mux.HandleFunc("GET /api/v1/admin/users", s.handleAdminListUsers)
	s.mux.HandleFunc("DELETE /api/v1/admin/users/{user_id}", s.handleAdminDeleteUser)
	s.mux.HandleFunc("POST /api/v1/admin/products", s.handleAdminCreateProduct)
	s.mux.HandleFunc("PATCH /api/v1/admin/products/{product_id}", s.handleAdminUpdateProduct)
	s.mux.HandleFunc("DELETE /api/v1/admin/products/{product_id}", s.handleAdminDeleteProduct)
	s.mux.HandleFunc("POST /api/v1/admin/products/{product_id}/restore", s.handleAdminRestoreProduct)
	s.mux.HandleFunc("POST /api/v1/admin/products/restore-all", s.handleAdminRestoreAllProducts)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// decodeJSON parses the request body into dst, answering 400 through
// writeError when the body is not valid JSON.
func (s *Server) decodeJSON(
	w http.ResponseWriter,
	r *http.Request,
	dst any,
	writeError func(w http.ResponseWriter, status int, code string, message string),
) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "request body must be valid JSON")
		return false
	}
	return true
}

func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
