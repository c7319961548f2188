package user

import (
	"net/http"

	"mediasocial/internal/common"
	"mediasocial/internal/database"

	"github.com/gorilla/mux"
)

// Handler exposes the user service over HTTP.
type Handler struct {
	userService UserService
}

func NewHandler(userService UserService) *Handler {
	return &Handler{userService: userService}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	Message string         `json:"message"`
	User    *database.User `json:"user,omitempty"`
}

type loginResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    *database.User `json:"user"`
}

type deleteResponse struct {
	Message string `json:"message"`
	User    struct {
		UserID uint64 `json:"user_id"`
	} `json:"user"`
}

// RegisterRoutes mounts the public and authenticated user routes on r.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/users", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/users", h.List).Methods(http.MethodGet)
	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/users/{id:[0-9]+}", h.Get).Methods(http.MethodGet)

	authed := r.NewRoute().Subrouter()
	authed.Use(common.AuthMiddleware)
	authed.HandleFunc("/users/token", h.Me).Methods(http.MethodGet)
	authed.HandleFunc("/users", h.ModifySelf).Methods(http.MethodPut)
	authed.HandleFunc("/users", h.DeleteSelf).Methods(http.MethodDelete)
	authed.HandleFunc("/users/customize", h.Customize).Methods(http.MethodPut)
	authed.HandleFunc("/users/{id:[0-9]+}", h.Modify).Methods(http.MethodPut)
	authed.HandleFunc("/users/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	user, outcome, err := h.userService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	if outcome == common.OutcomeAlreadyExists {
		common.WriteOutcome(w, outcome, "", "username or email already exists")
		return
	}
	common.WriteJSON(w, http.StatusCreated, userResponse{Message: "user created", User: user})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	user, token, err := h.userService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, loginResponse{Message: "Login successful", Token: token, User: user})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, users)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(r.Context(), actor.UserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, userResponse{Message: "token is valid", User: user})
}

func (h *Handler) Customize(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}

	var req Customization
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.userService.Customize(r.Context(), actor, req); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, common.MessageResponse{Message: "user customized"})
}

func (h *Handler) ModifySelf(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	h.modify(w, r, actor, actor.UserID)
}

func (h *Handler) Modify(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	h.modify(w, r, actor, id)
}

func (h *Handler) modify(w http.ResponseWriter, r *http.Request, actor common.Actor, id uint64) {
	var req Modification
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	user, err := h.userService.Modify(r.Context(), actor, id, req)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, userResponse{Message: "user updated", User: user})
}

func (h *Handler) DeleteSelf(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	h.delete(w, r, actor, actor.UserID)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	h.delete(w, r, actor, id)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, actor common.Actor, id uint64) {
	if _, err := h.userService.Delete(r.Context(), actor, id); err != nil {
		common.WriteError(w, err)
		return
	}

	resp := deleteResponse{Message: "User deleted"}
	resp.User.UserID = id
	common.WriteJSON(w, http.StatusOK, resp)
}
