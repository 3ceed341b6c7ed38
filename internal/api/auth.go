package api

import (
	"log/slog"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/andib0/onyx/internal/db"
)

const refreshCookieName = "refresh_token"

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	var req struct {
		Email    string   `json:"email"`
		Password string   `json:"password"`
		Username *string  `json:"username"`
		Age      *int     `json:"age"`
		Weight   *float64 `json:"weight"`
	}
	if !decodeBody(w, r, a.cfg.Limits.MaxBodyBytes, &req) {
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		respondError(w, http.StatusBadRequest, "invalid email address")
		return
	}
	if len(req.Password) < 8 {
		respondError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	hash, err := a.auth.HashPassword(req.Password)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	user, err := a.db.CreateUser(db.CreateUserInput{
		Email:        req.Email,
		PasswordHash: hash,
		Username:     req.Username,
		Age:          req.Age,
		Weight:       req.Weight,
	})
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			respondError(w, http.StatusConflict, "email already registered")
			return
		}
		slog.Error("creating user", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	accessToken, refreshToken, err := a.issueTokens(w, user.ID, user.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	a.auditEvent("auth.register", user.ID, nil, started)
	respond(w, http.StatusCreated, map[string]any{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, a.cfg.Limits.MaxBodyBytes, &req) {
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, hash, err := a.db.GetUserByEmail(req.Email)
	if err != nil || !a.auth.CheckPassword(hash, req.Password) {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	accessToken, refreshToken, err := a.issueTokens(w, user.ID, user.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	a.auditEvent("auth.login", user.ID, nil, started)
	respond(w, http.StatusOK, map[string]any{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// handleRefresh rotates the refresh token: the presented token must match a
// stored hash, which is deleted and replaced in the same exchange. A token
// replayed after rotation finds no matching row and is rejected.
func (a *API) handleRefresh(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	tokenStr := refreshTokenFrom(r)
	if tokenStr == "" {
		respondError(w, http.StatusUnauthorized, "refresh token required")
		return
	}

	claims, err := a.auth.ValidateRefreshToken(tokenStr)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	stored, err := a.db.ListValidRefreshTokens(claims.UserID)
	if err != nil {
		slog.Error("loading refresh tokens", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	matchedID := ""
	digest := tokenDigestInput(tokenStr)
	for _, t := range stored {
		if bcrypt.CompareHashAndPassword([]byte(t.TokenHash), digest) == nil {
			matchedID = t.ID
			break
		}
	}
	if matchedID == "" {
		respondError(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}
	if err := a.db.DeleteRefreshToken(matchedID); err != nil {
		slog.Error("rotating refresh token", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	user, err := a.db.GetUserByID(claims.UserID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	accessToken, refreshToken, err := a.issueTokens(w, user.ID, user.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	a.auditEvent("auth.refresh", user.ID, nil, started)
	respond(w, http.StatusOK, map[string]any{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	if err := a.db.DeleteAllRefreshTokens(userID); err != nil {
		slog.Error("deleting refresh tokens", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	clearRefreshCookie(w)
	a.auditEvent("auth.logout", userID, nil, started)
	respondMessage(w, http.StatusOK, nil, "logged out")
}

func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	user, err := a.db.GetUserByID(userID)
	if err != nil {
		dbError(w, err, "user")
		return
	}
	respond(w, http.StatusOK, user)
}

// issueTokens creates the access/refresh pair, stores a bcrypt hash of the
// refresh token, and sets it as an httpOnly cookie. The raw refresh token is
// also returned in the body for non-browser clients.
func (a *API) issueTokens(w http.ResponseWriter, userID, email string) (access, refresh string, err error) {
	access, err = a.auth.GenerateAccessToken(userID, email)
	if err != nil {
		return "", "", err
	}
	refresh, err = a.auth.GenerateRefreshToken(userID, email)
	if err != nil {
		return "", "", err
	}
	// bcrypt input is capped at 72 bytes; hash only the signature tail,
	// which carries the token's entropy.
	hash, err := bcrypt.GenerateFromPassword(tokenDigestInput(refresh), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	expiresAt := a.auth.RefreshExpiry()
	if err := a.db.StoreRefreshToken(userID, string(hash), expiresAt); err != nil {
		return "", "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    refresh,
		Path:     "/api/auth",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	return access, refresh, nil
}

func tokenDigestInput(token string) []byte {
	if i := strings.LastIndexByte(token, '.'); i >= 0 {
		token = token[i+1:]
	}
	if len(token) > 72 {
		token = token[len(token)-72:]
	}
	return []byte(token)
}

func refreshTokenFrom(r *http.Request) string {
	if c, err := r.Cookie(refreshCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	// Body fallback for clients without cookie support.
	_ = decodeInto(r, &req)
	return req.RefreshToken
}

func clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/api/auth",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
