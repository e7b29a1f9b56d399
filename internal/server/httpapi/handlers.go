// Package httpapi exposes the service layer over HTTP. Handlers stay thin:
// they parse the request, call one service operation and map the error
// taxonomy onto status codes. All bodies are JSON except content downloads.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/filevault/internal/common"
	"github.com/dmitrijs2005/filevault/internal/logging"
	"github.com/dmitrijs2005/filevault/internal/server/models"
	"github.com/dmitrijs2005/filevault/internal/server/services"
)

type Handler struct {
	app    *services.AppService
	users  *services.UserService
	auth   *services.AuthService
	files  *services.FileService
	logger logging.Logger
}

func NewHandler(app *services.AppService, users *services.UserService, auth *services.AuthService, files *services.FileService, logger logging.Logger) *Handler {
	return &Handler{app: app, users: users, auth: auth, files: files, logger: logger}
}

// Router wires every route onto a fresh mux router.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/status", h.GetStatus).Methods("GET")
	r.HandleFunc("/stats", h.GetStats).Methods("GET")

	r.HandleFunc("/users", h.PostUsers).Methods("POST")
	r.HandleFunc("/connect", h.GetConnect).Methods("GET")
	r.HandleFunc("/disconnect", h.GetDisconnect).Methods("GET")
	r.HandleFunc("/users/me", h.GetMe).Methods("GET")

	r.HandleFunc("/files", h.PostFiles).Methods("POST")
	r.HandleFunc("/files", h.GetFiles).Methods("GET")
	r.HandleFunc("/files/{id}", h.GetFile).Methods("GET")
	r.HandleFunc("/files/{id}/publish", h.PutPublish).Methods("PUT")
	r.HandleFunc("/files/{id}/unpublish", h.PutUnpublish).Methods("PUT")
	r.HandleFunc("/files/{id}/data", h.GetFileData).Methods("GET")

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError maps the error taxonomy onto the wire contract. Validation
// messages pass through verbatim; everything unexpected becomes a 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *common.ValidationError
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "Unauthorized"})
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: ve.Message})
	case errors.Is(err, common.ErrorAlreadyExists):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Already exist"})
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Not found"})
	default:
		h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal server error"})
	}
}

func token(r *http.Request) string {
	return r.Header.Get(common.TokenHeaderName)
}

// authorize resolves the session token or fails the request with 401.
func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, err := h.auth.Resolve(r.Context(), token(r))
	if err != nil {
		h.writeError(w, r, err)
		return "", false
	}
	return userID, true
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.Status(r.Context()))
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.app.Stats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) PostUsers(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	// an unreadable body behaves like empty fields
	_ = json.NewDecoder(r.Body).Decode(&req)

	user, err := h.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) GetConnect(w http.ResponseWriter, r *http.Request) {
	tok, err := h.auth.Login(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": tok})
}

func (h *Handler) GetDisconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), token(r)); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.CurrentUser(r.Context(), token(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) PostFiles(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var req services.UploadRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	file, err := h.files.Upload(r.Context(), userID, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, file)
}

func (h *Handler) GetFile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	file, err := h.files.Get(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, file)
}

func (h *Handler) GetFiles(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	parent := models.ParseParentID(r.URL.Query().Get("parentId"))
	page, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if err != nil || page < 0 {
		page = 0
	}

	entries, listErr := h.files.List(r.Context(), userID, parent, page)
	if listErr != nil {
		h.writeError(w, r, listErr)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) PutPublish(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, true)
}

func (h *Handler) PutUnpublish(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, false)
}

func (h *Handler) setVisibility(w http.ResponseWriter, r *http.Request, isPublic bool) {
	userID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	file, err := h.files.SetVisibility(r.Context(), userID, mux.Vars(r)["id"], isPublic)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, file)
}

// thumbnail widths addressable through the size query parameter
var allowedSizes = map[string]int{"500": 500, "250": 250, "100": 100}

func (h *Handler) GetFileData(w http.ResponseWriter, r *http.Request) {
	// the token is optional here: public files are served to anyone
	viewerID, _ := h.auth.Resolve(r.Context(), token(r))

	width := allowedSizes[r.URL.Query().Get("size")]

	data, mimeType, err := h.files.ReadContent(r.Context(), viewerID, mux.Vars(r)["id"], width)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", mimeType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
