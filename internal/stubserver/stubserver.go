// Package stubserver is an in-memory double of the user-management backend,
// faithful to its REST surface and status texts. It backs local development
// (cmd/stubserver) and the end-to-end tests; it is not a production server.
package stubserver

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"
)

const otpValidity = 5 * time.Minute

type admin struct {
	id           int64
	name         string
	email        string
	passwordHash []byte
	otp          string
	otpExpiry    time.Time
}

type managedUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Server holds the in-memory state behind the REST surface. All access is
// serialized by mu; the double favors simplicity over throughput.
type Server struct {
	mu         sync.Mutex
	admins     map[string]*admin // keyed by lower-cased email
	users      []managedUser     // insertion-ordered, as the backend returns them
	nextAdmin  int64
	nextUser   int64
	secretKey  []byte
	tokenValid time.Duration
}

// New creates an empty stub backend signing tokens with secretKey.
func New(secretKey []byte) *Server {
	return &Server{
		admins:     make(map[string]*admin),
		nextAdmin:  1,
		nextUser:   1,
		secretKey:  secretKey,
		tokenValid: time.Hour,
	}
}

// WithTokenValidity overrides the issued-token lifetime; tests use short
// values to exercise expiry.
func (s *Server) WithTokenValidity(d time.Duration) *Server {
	s.tokenValid = d
	return s
}

// Handler returns the routed REST surface under /api/auth.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/auth").Subrouter()
	api.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/forgot-password", s.handleForgotPassword).Methods(http.MethodPost)
	api.HandleFunc("/reset-password", s.handleResetPassword).Methods(http.MethodPost)
	api.HandleFunc("/users/list", s.authenticated(s.handleListUsers)).Methods(http.MethodGet)
	api.HandleFunc("/users/add", s.authenticated(s.handleAddUser)).Methods(http.MethodPost)
	api.HandleFunc("/users/delete/{id}", s.authenticated(s.handleDeleteUser)).Methods(http.MethodDelete)

	return r
}

func decodeBody(r *http.Request) (map[string]string, error) {
	defer r.Body.Close()
	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(body["email"]))
	password := body["password"]

	if len(strings.TrimSpace(password)) < 6 {
		writeText(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.admins[email]; exists {
		writeText(w, http.StatusBadRequest, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		writeText(w, http.StatusInternalServerError, "hashing failure")
		return
	}

	a := &admin{id: s.nextAdmin, name: body["name"], email: email, passwordHash: hash}
	s.nextAdmin++
	s.admins[email] = a

	writeJSON(w, map[string]any{"id": a.id, "name": a.name, "email": a.email})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(body["email"]))

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.admins[email]
	if !ok || bcrypt.CompareHashAndPassword(a.passwordHash, []byte(body["password"])) != nil {
		writeText(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := s.generateToken(a.email)
	if err != nil {
		writeText(w, http.StatusInternalServerError, "token failure")
		return
	}

	writeJSON(w, map[string]any{
		"token": token,
		"type":  "Bearer",
		"email": a.email,
		"id":    a.id,
	})
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(body["email"]))

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.admins[email]
	if !ok {
		writeText(w, http.StatusNotFound, "Email not found")
		return
	}

	a.otp = randomOTP()
	a.otpExpiry = time.Now().Add(otpValidity)

	// A real deployment would email the code here.
	writeText(w, http.StatusOK, "OTP sent successfully")
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(body["email"]))
	newPassword := body["newPassword"]

	if len(strings.TrimSpace(newPassword)) < 6 {
		writeText(w, http.StatusOK, "Password must be at least 6 characters")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.admins[email]
	if !ok {
		writeText(w, http.StatusNotFound, "Email not found")
		return
	}

	switch {
	case a.otp == "":
		writeText(w, http.StatusOK, "OTP not requested")
	case a.otp != body["otp"]:
		writeText(w, http.StatusOK, "Invalid OTP")
	case a.otpExpiry.Before(time.Now()):
		writeText(w, http.StatusOK, "OTP expired")
	default:
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			writeText(w, http.StatusInternalServerError, "hashing failure")
			return
		}
		a.passwordHash = hash
		a.otp = ""
		a.otpExpiry = time.Time{}
		writeText(w, http.StatusOK, "Password reset successfully")
	}
}

// authenticated verifies the bearer token before invoking next.
func (s *Server) authenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			writeText(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		if _, err := s.emailFromToken(parts[1]); err != nil {
			writeText(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		next(w, r)
	}
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]managedUser, len(s.users))
	copy(users, s.users)
	writeJSON(w, users)
}

func (s *Server) handleAddUser(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := managedUser{ID: s.nextUser, Name: body["name"], Email: strings.ToLower(body["email"])}
	s.nextUser++
	s.users = append(s.users, u)

	writeJSON(w, u)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.users[:0]
	found := false
	for _, u := range s.users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	s.users = kept

	if !found {
		writeText(w, http.StatusNotFound, "User not found")
		return
	}
	writeText(w, http.StatusOK, "User deleted successfully")
}

type claims struct {
	jwt.RegisteredClaims
}

func (s *Server) generateToken(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenValid)),
		},
	})
	return token.SignedString(s.secretKey)
}

func (s *Server) emailFromToken(tokenString string) (string, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	return c.Subject, nil
}

func randomOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand failing is not survivable for a test double
		panic(err)
	}
	return strconv.FormatInt(100000+n.Int64(), 10)
}

// IssuedOTP exposes the pending OTP for an email so tests can complete the
// reset flow without an email channel.
func (s *Server) IssuedOTP(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.admins[strings.ToLower(email)]; ok {
		return a.otp
	}
	return ""
}
