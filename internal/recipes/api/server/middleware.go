package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/ikaro-souza/recipe-app-api/internal/recipes/domain/models"
	"github.com/ikaro-souza/recipe-app-api/pkg/logger"
)

type ctxKey int

const userKey ctxKey = iota

// tokenScheme is the Authorization header prefix, "Token <key>".
const tokenScheme = "Token"

func loggingMiddleware(logg logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rr := httptest.NewRecorder()

			defer func() {
				latency := time.Since(start).String()

				logg.Infof("METHOD %s URI %s %s	STATUS %d Latency %s Client IP %s User Agent %s",
					r.Method,
					r.Proto,
					r.URL.RequestURI(),
					rr.Code,
					latency,
					r.RemoteAddr,
					r.UserAgent(),
				)
			}()

			next.ServeHTTP(rr, r)

			for k, v := range rr.Header() {
				w.Header()[k] = v
			}

			w.WriteHeader(rr.Code)

			if rr.Code >= 400 && rr.Body.Len() != 0 {
				logg.Errorf("error: %s", rr.Body)
			}

			_, err := rr.Body.WriteTo(w)
			if err != nil {
				logg.Errorf("middleware write error: %s", err.Error())
			}
		})
	}
}

// authRequired resolves the bearer key from the Authorization header and
// stores the owning user on the request context. Requests without a
// resolvable token never reach the handler.
func (s *Server) authRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")

		key, ok := bearerKey(r.Header.Get("Authorization"))
		if !ok {
			handleError(w, errAuthHeaderRequired, http.StatusUnauthorized)

			return
		}

		u, err := s.authService.Authenticate(r.Context(), key)
		if err != nil {
			handleError(w, errInvalidToken, http.StatusUnauthorized)

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
	})
}

func bearerKey(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != tokenScheme || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

func userFrom(r *http.Request) models.User {
	u, _ := r.Context().Value(userKey).(models.User)

	return u
}
