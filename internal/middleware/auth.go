package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/sirupsen/logrus"
)

type ContextKey string

const AdminKey ContextKey = "isAdmin"

const adminSessionKey = "isAdmin"

var ErrInvalidCredentials = errors.New("invalid username or password")

// Auth guards the admin routes with a single configured credential pair.
// Logged in state lives in the scs session.
type Auth struct {
	sessions *scs.SessionManager
	username string
	password string
}

func NewAuth(sessions *scs.SessionManager, username, password string) *Auth {
	return &Auth{sessions: sessions, username: username, password: password}
}

// Login checks the credentials and marks the session as admin.
// Without configured credentials nobody can log in.
func (a *Auth) Login(ctx context.Context, username, password string) error {
	if a.username == "" || a.password == "" {
		return ErrInvalidCredentials
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	if !userOK || !passOK {
		logrus.WithField("username", username).Warn("failed admin login")
		return ErrInvalidCredentials
	}

	if err := a.sessions.RenewToken(ctx); err != nil {
		return err
	}
	a.sessions.Put(ctx, adminSessionKey, true)
	logrus.WithField("username", username).Info("admin logged in")
	return nil
}

func (a *Auth) Logout(ctx context.Context) error {
	return a.sessions.Destroy(ctx)
}

// LoadAdmin puts the admin flag of the session on the request context.
// Must run after the session manager's LoadAndSave.
func (a *Auth) LoadAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isAdmin := a.sessions.GetBool(r.Context(), adminSessionKey)
		ctx := context.WithValue(r.Context(), AdminKey, isAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.sessions.GetBool(r.Context(), adminSessionKey) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func IsAdmin(ctx context.Context) bool {
	isAdmin, _ := ctx.Value(AdminKey).(bool)
	return isAdmin
}
