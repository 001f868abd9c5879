package coa_service

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gudangkita/coa_service/coa_core"
	"github.com/gudangkita/coa_service/directory"
	"github.com/gudangkita/coa_service/suggestion"
	"gorm.io/gorm"
)

type RegisterHandler func()

// NewRegister wires the JSON API onto the mux.
func NewRegister(
	db *gorm.DB,
	mux *http.ServeMux,
	engine *coa_core.Engine,
	dir directory.Provider,
) RegisterHandler {
	return func() {
		accountSrv := NewAccountService(db)
		suggestionSrv := suggestion.NewSuggestionService(db, engine, dir)

		mux.HandleFunc("POST /api/v1/suggestions", func(w http.ResponseWriter, r *http.Request) {
			var req suggestion.SuggestionCreateRequest
			if !readJSON(w, r, &req) {
				return
			}
			res, err := suggestionSrv.SuggestionCreate(r.Context(), &req)
			writeResult(w, res, err)
		})

		mux.HandleFunc("GET /api/v1/suggestions", func(w http.ResponseWriter, r *http.Request) {
			req := suggestion.SuggestionListRequest{
				Status: coa_core.SuggestionStatus(r.URL.Query().Get("status")),
				Page:   queryInt(r, "page"),
				Limit:  queryInt(r, "limit"),
			}
			res, err := suggestionSrv.SuggestionList(r.Context(), &req)
			writeResult(w, res, err)
		})

		mux.HandleFunc("POST /api/v1/suggestions/{id}/approve", func(w http.ResponseWriter, r *http.Request) {
			id, ok := pathID(w, r)
			if !ok {
				return
			}
			res, err := suggestionSrv.SuggestionApprove(r.Context(), &suggestion.SuggestionApproveRequest{ID: id})
			writeResult(w, res, err)
		})

		mux.HandleFunc("POST /api/v1/suggestions/{id}/reject", func(w http.ResponseWriter, r *http.Request) {
			id, ok := pathID(w, r)
			if !ok {
				return
			}
			res, err := suggestionSrv.SuggestionReject(r.Context(), &suggestion.SuggestionRejectRequest{ID: id})
			writeResult(w, res, err)
		})

		mux.HandleFunc("POST /api/v1/accounts", func(w http.ResponseWriter, r *http.Request) {
			var req AccountCreateRequest
			if !readJSON(w, r, &req) {
				return
			}
			res, err := accountSrv.AccountCreate(r.Context(), &req)
			writeResult(w, res, err)
		})

		mux.HandleFunc("GET /api/v1/accounts", func(w http.ResponseWriter, r *http.Request) {
			class, _ := strconv.Atoi(r.URL.Query().Get("class"))
			req := AccountListRequest{
				Class:        coa_core.AccountClass(class),
				PostableOnly: r.URL.Query().Get("postable") == "true",
				ActiveOnly:   r.URL.Query().Get("active") == "true",
				Page:         queryInt(r, "page"),
				Limit:        queryInt(r, "limit"),
			}
			res, err := accountSrv.AccountList(r.Context(), &req)
			writeResult(w, res, err)
		})

		mux.HandleFunc("POST /api/v1/accounts/{id}/deactivate", func(w http.ResponseWriter, r *http.Request) {
			id, ok := pathID(w, r)
			if !ok {
				return
			}
			res, err := accountSrv.AccountDeactivate(r.Context(), &AccountDeactivateRequest{ID: id})
			writeResult(w, res, err)
		})
	}
}

type apiError struct {
	Error string `json:"error"`
}

func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, &apiError{Error: "invalid json payload"})
		return false
	}
	return true
}

func queryInt(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(key))
	return n
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, &apiError{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func writeResult(w http.ResponseWriter, res any, err error) {
	if err != nil {
		writeJSON(w, statusFor(err), &apiError{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// statusFor maps the core error taxonomy onto http statuses. Unknown errors
// stay 500.
func statusFor(err error) int {
	var invalidDesc *coa_core.InvalidDescriptionError
	var invalidParent *coa_core.InvalidParentCodeError
	var missingParent *coa_core.MissingParentAccountError

	switch {
	case errors.As(err, &invalidDesc):
		return http.StatusBadRequest
	case errors.As(err, &invalidParent), errors.As(err, &missingParent):
		return http.StatusUnprocessableEntity
	case errors.Is(err, coa_core.ErrCodeRangeExhausted):
		return http.StatusConflict
	case errors.Is(err, coa_core.ErrDirectoryUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("write response failed", "err", err.Error())
	}
}
