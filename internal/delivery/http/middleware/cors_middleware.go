package middleware

import "net/http"

type CORSMiddleware struct {
	allowedOrigins map[string]bool
}

// NewCORSMiddleware allows the given origins; no origins, or "*", allows any.
func NewCORSMiddleware(origins ...string) *CORSMiddleware {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return &CORSMiddleware{allowedOrigins: allowed}
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if origin := m.allowOrigin(req.Header.Get("Origin")); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (m *CORSMiddleware) allowOrigin(origin string) string {
	if len(m.allowedOrigins) == 0 || m.allowedOrigins["*"] {
		return "*"
	}
	if origin != "" && m.allowedOrigins[origin] {
		return origin
	}
	return ""
}
