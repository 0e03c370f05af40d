// Package fakebookstore is an in-memory stand-in for the BookStore service. It reproduces the
// service's observable behavior closely enough for the suite to run against it: the same routes,
// status codes, bodies and headers, including validation errors in the service's format.
package fakebookstore

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/servicedef"

	"github.com/go-chi/chi/v5"
)

const (
	ServerHeader = "uvicorn"

	MessageUserCreated      = "User created successfully"
	MessageBookDeleted      = "Book deleted successfully"
	DetailEmailRegistered   = "Email already registered"
	DetailInvalidCredential = "Invalid credentials"
	DetailBookNotFound      = "Book not found"
	DetailInvalidToken      = "Invalid access token"
	DetailNotAuthenticated  = "Not authenticated"
)

type user struct {
	id       int
	password string
}

// Server is an http.Handler. The zero value is not usable; call New.
type Server struct {
	router      chi.Router
	tokens      *tokenIssuer
	requireAuth bool

	lock      sync.Mutex
	seedUsers map[string]user
	users     map[string]user
	books     map[int]servicedef.BookResponse
	nextID    int
}

type Option func(*Server)

// WithAuthRequired makes the book routes require a bearer token issued by this server's login
// route. By default, like the real service, they accept any request.
func WithAuthRequired() Option {
	return func(s *Server) { s.requireAuth = true }
}

// WithUser adds a user that exists before any signup, and survives Reset.
func WithUser(id int, email, password string) Option {
	return func(s *Server) { s.seedUsers[email] = user{id: id, password: password} }
}

// WithTokenLifetime sets how long issued access tokens stay valid when auth is required.
func WithTokenLifetime(d time.Duration) Option {
	return func(s *Server) { s.tokens.lifetime = d }
}

func New(opts ...Option) *Server {
	s := &Server{
		tokens:    newTokenIssuer(),
		seedUsers: map[string]user{},
	}
	for _, o := range opts {
		o(s)
	}
	s.Reset()

	r := chi.NewRouter()
	r.Use(serverHeader)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/health", s.health)
	r.Post("/signup", s.signup)
	r.Post("/login", s.login)
	r.Group(func(r chi.Router) {
		if s.requireAuth {
			r.Use(s.bearerAuth)
		}
		r.Get("/books/", s.listBooks)
		r.Post("/books/", s.createBook)
		r.Get("/books/{bookId}", s.getBook)
		r.Put("/books/{bookId}", s.updateBook)
		r.Delete("/books/{bookId}", s.deleteBook)
	})
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Reset discards all signed-up users, books and tokens.
func (s *Server) Reset() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.users = make(map[string]user, len(s.seedUsers))
	for email, u := range s.seedUsers {
		s.users[email] = u
	}
	s.books = make(map[int]servicedef.BookResponse)
	s.nextID = 1
}

func (s *Server) Books() []servicedef.BookResponse {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.sortedBooks()
}

func (s *Server) HasUser(email string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	_, ok := s.users[email]
	return ok
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, servicedef.HealthResponse{Status: "up"})
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var params servicedef.SignupParams
	if !decodeBody(w, r, signupSchema, &params) {
		return
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, exists := s.users[params.Email]; exists {
		writeDetail(w, http.StatusBadRequest, DetailEmailRegistered)
		return
	}
	s.users[params.Email] = user{id: params.ID, password: params.Password}
	writeJSON(w, http.StatusOK, servicedef.Message{Message: MessageUserCreated})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var params servicedef.LoginParams
	if !decodeBody(w, r, loginSchema, &params) {
		return
	}
	s.lock.Lock()
	u, ok := s.users[params.Email]
	s.lock.Unlock()
	if !ok || u.password != params.Password {
		writeDetail(w, http.StatusUnauthorized, DetailInvalidCredential)
		return
	}
	token, err := s.tokens.issue(params.Email)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, servicedef.LoginResponse{AccessToken: token, TokenType: servicedef.TokenTypeBearer})
}

func (s *Server) listBooks(w http.ResponseWriter, _ *http.Request) {
	s.lock.Lock()
	books := s.sortedBooks()
	s.lock.Unlock()
	writeJSON(w, http.StatusOK, books)
}

func (s *Server) createBook(w http.ResponseWriter, r *http.Request) {
	var params servicedef.BookParams
	if !decodeBody(w, r, bookSchema, &params) {
		return
	}
	s.lock.Lock()
	book := bookFromParams(s.nextID, params)
	s.books[book.ID] = book
	s.nextID++
	s.lock.Unlock()
	writeJSON(w, http.StatusCreated, book)
}

func (s *Server) getBook(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}
	s.lock.Lock()
	book, found := s.books[id]
	s.lock.Unlock()
	if !found {
		writeDetail(w, http.StatusNotFound, DetailBookNotFound)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (s *Server) updateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}
	var params servicedef.BookParams
	if !decodeBody(w, r, bookSchema, &params) {
		return
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, found := s.books[id]; !found {
		writeDetail(w, http.StatusNotFound, DetailBookNotFound)
		return
	}
	book := bookFromParams(id, params)
	s.books[id] = book
	writeJSON(w, http.StatusOK, book)
}

func (s *Server) deleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, found := s.books[id]; !found {
		writeDetail(w, http.StatusNotFound, DetailBookNotFound)
		return
	}
	delete(s.books, id)
	writeJSON(w, http.StatusOK, servicedef.Message{Message: MessageBookDeleted})
}

func (s *Server) bearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		token := strings.TrimPrefix(auth, "Bearer ")
		if auth == "" || token == auth || token == "" {
			writeDetail(w, http.StatusForbidden, DetailNotAuthenticated)
			return
		}
		if _, err := s.tokens.verify(token); err != nil {
			writeDetail(w, http.StatusUnauthorized, DetailInvalidToken)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// sortedBooks must be called with the lock held.
func (s *Server) sortedBooks() []servicedef.BookResponse {
	ret := make([]servicedef.BookResponse, 0, len(s.books))
	for id := 1; id < s.nextID; id++ {
		if b, ok := s.books[id]; ok {
			ret = append(ret, b)
		}
	}
	return ret
}

func bookFromParams(id int, p servicedef.BookParams) servicedef.BookResponse {
	return servicedef.BookResponse{
		ID:          id,
		Title:       p.Title,
		Author:      p.Author,
		Description: p.Description,
		Price:       p.Price,
	}
}

func bookID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "bookId")
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeValidationErrors(w, []servicedef.ValidationItem{{
			Loc:  loc("path", "book_id"),
			Msg:  "value is not a valid integer",
			Type: "type_error.integer",
		}})
		return 0, false
	}
	return id, true
}

func serverHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", ServerHeader)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
