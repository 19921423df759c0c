package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"holdem-resolver/internal/app/results"
	"holdem-resolver/internal/store"
)

func resolveHandler(svc *results.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req results.ResolveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := svc.Resolve(r.Context(), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func resultsHandler(svc *results.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := queryInt(r, "limit")
		offset := queryInt(r, "offset")
		resp, err := svc.Recent(r.Context(), limit, offset)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func resultHandler(svc *results.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := svc.Get(r.Context(), chi.URLParam(r, "result_id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func healthHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if st != nil {
			if err := st.Ping(r.Context()); err != nil {
				writeHTTPError(w, http.StatusServiceUnavailable, "db_unreachable")
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, results.ErrInvalidRequest):
		writeHTTPErrorDetail(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, results.ErrResultNotFound):
		writeHTTPError(w, http.StatusNotFound, "result_not_found")
	case errors.Is(err, results.ErrArchiveDisabled):
		writeHTTPError(w, http.StatusServiceUnavailable, "archive_disabled")
	default:
		writeHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}

func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}
