package serve

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nelhage/gomokutician/logs"
	"github.com/nelhage/gomokutician/pb"
)

// newRouter exposes Analyze as JSON over HTTP. When repo is non-nil the
// recorded games are served as well.
func newRouter(s *server, repo *logs.Repository) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Post("/analyze", func(w http.ResponseWriter, r *http.Request) {
		var req pb.AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid payload")
			return
		}
		resp, err := s.Analyze(r.Context(), &req)
		if err != nil {
			code := http.StatusInternalServerError
			if status.Code(err) == codes.InvalidArgument {
				code = http.StatusBadRequest
			}
			writeError(w, code, status.Convert(err).Message())
			return
		}
		writeJSON(w, http.StatusOK, resp)
	})

	if repo == nil {
		return r
	}

	r.Get("/standings", func(w http.ResponseWriter, r *http.Request) {
		st, err := repo.Standings()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, st)
	})
	r.Get("/games/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid id")
			return
		}
		g, err := repo.Game(id)
		if err == sql.ErrNoRows {
			writeError(w, http.StatusNotFound, "no such game")
			return
		} else if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, g)
	})
	r.Get("/matches/{match}", func(w http.ResponseWriter, r *http.Request) {
		gs, err := repo.Match(chi.URLParam(r, "match"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if len(gs) == 0 {
			writeError(w, http.StatusNotFound, "no such match")
			return
		}
		writeJSON(w, http.StatusOK, gs)
	})
	return r
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
