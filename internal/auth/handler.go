package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/globetrotter/globetrotter/internal/rest"
	"github.com/globetrotter/globetrotter/pkg/user"
	log "github.com/sirupsen/logrus"
)

type CredentialsDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenPairDTO struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type SessionDTO struct {
	User   user.UserDTO `json:"user"`
	Tokens TokenPairDTO `json:"tokens"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refreshToken"`
}

// SessionClearer drops the per-user session state on logout.
type SessionClearer interface {
	Clear(userID string)
}

type Handler struct {
	authenticator Authenticator
	issuer        *TokenIssuer
	users         user.Service
	sessions      SessionClearer
}

func NewHandler(authenticator Authenticator, issuer *TokenIssuer, users user.Service, sessions SessionClearer) *Handler {
	return &Handler{
		authenticator: authenticator,
		issuer:        issuer,
		users:         users,
		sessions:      sessions,
	}
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Registering new account")

	var dto SignupDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	if dto.Name == "" || dto.Email == "" || dto.Password == "" {
		rest.WriteError(w, http.StatusBadRequest, "Name, email and password are required", "")
		return
	}

	created, err := h.users.CreateUser(r.Context(), user.User{Name: dto.Name, Email: dto.Email}, dto.Password)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			rest.WriteError(w, http.StatusBadRequest, "Email already registered", "")
			return
		}
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	h.respondWithSession(w, r, created, http.StatusCreated)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto CredentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	u, err := h.authenticator.Authenticate(r.Context(), dto.Email, dto.Password)
	if err != nil {
		log.Debugf("login rejected for %s: %v", dto.Email, err)
		rest.WriteError(w, http.StatusUnauthorized, "Invalid email or password", "")
		return
	}

	h.respondWithSession(w, r, u, http.StatusOK)
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto RefreshDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	claims, err := h.issuer.ValidateRefresh(dto.RefreshToken)
	if err != nil {
		rest.WriteError(w, http.StatusUnauthorized, "Invalid or expired token", "")
		return
	}

	stored, err := h.users.RefreshToken(r.Context(), claims.Subject)
	if err != nil || stored != dto.RefreshToken {
		rest.WriteError(w, http.StatusUnauthorized, "Invalid or expired token", "")
		return
	}

	u, err := h.users.GetUser(r.Context(), claims.Subject)
	if err != nil {
		rest.WriteError(w, http.StatusUnauthorized, "Invalid or expired token", "")
		return
	}

	h.respondWithSession(w, r, u, http.StatusOK)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, err := user.CurrentID(r.Context())
	if err != nil {
		rest.WriteError(w, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	if err := h.users.StoreRefreshToken(r.Context(), userID, ""); err != nil {
		log.Warnf("failed to clear refresh token for %s: %v", userID, err)
	}
	h.sessions.Clear(userID)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondWithSession(w http.ResponseWriter, r *http.Request, u user.User, status int) {
	tokens, err := h.issuer.Issue(u.ID, u.Email)
	if err != nil {
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}
	if err := h.users.StoreRefreshToken(r.Context(), u.ID, tokens.RefreshToken); err != nil {
		log.Warnf("failed to store refresh token for %s: %v", u.ID, err)
	}

	w.WriteHeader(status)
	response := SessionDTO{
		User: user.ToDTO(u),
		Tokens: TokenPairDTO{
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
		},
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
