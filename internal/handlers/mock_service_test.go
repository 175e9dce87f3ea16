package handlers

import (
	"context"
	"net/http"

	"wordbook"
	"wordbook/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	authID     int64
	authOK     bool
	authErr    error
	signInID   int64
	signInSec  string
	signInOK   bool
	signInErr  error
	sessionSec string
	sessionErr error
	resolveID  int64
	resolveOK  bool
	resolveErr error
	identity   service.Identity
	identErr   error

	lastUsername  string
	lastPassword  string
	lastUserAgent string
	lastSecret    string
}

func (m *mockAuth) AuthenticateByPassword(_ context.Context, username, password string) (int64, bool, error) {
	m.lastUsername = username
	m.lastPassword = password
	return m.authID, m.authOK, m.authErr
}

func (m *mockAuth) SignIn(_ context.Context, username, password, userAgent string) (int64, string, bool, error) {
	m.lastUsername = username
	m.lastPassword = password
	m.lastUserAgent = userAgent
	return m.signInID, m.signInSec, m.signInOK, m.signInErr
}

func (m *mockAuth) CreateSession(_ context.Context, _ int64, userAgent string) (string, error) {
	m.lastUserAgent = userAgent
	return m.sessionSec, m.sessionErr
}

func (m *mockAuth) ResolveSession(_ context.Context, secret string) (int64, bool, error) {
	m.lastSecret = secret
	return m.resolveID, m.resolveOK, m.resolveErr
}

func (m *mockAuth) ResolveIdentity(_ context.Context, secret string) (service.Identity, error) {
	m.lastSecret = secret
	if secret == "" {
		return service.Identity{}, service.ErrNotAuthenticated
	}
	return m.identity, m.identErr
}

type mockCategories struct {
	list      []wordbook.Category
	listErr   error
	one       wordbook.Category
	err       error
	lastWho   service.Identity
	lastID    int64
	lastName  *string
	deleteHit int
}

func (m *mockCategories) List(context.Context) ([]wordbook.Category, error) {
	return m.list, m.listErr
}

func (m *mockCategories) Get(_ context.Context, id int64) (wordbook.Category, error) {
	m.lastID = id
	return m.one, m.err
}

func (m *mockCategories) Create(_ context.Context, who service.Identity, name *string) (wordbook.Category, error) {
	m.lastWho, m.lastName = who, name
	return m.one, m.err
}

func (m *mockCategories) Rename(_ context.Context, who service.Identity, id int64, name *string) (wordbook.Category, error) {
	m.lastWho, m.lastID, m.lastName = who, id, name
	return m.one, m.err
}

func (m *mockCategories) Delete(_ context.Context, who service.Identity, id int64) error {
	m.lastWho, m.lastID = who, id
	m.deleteHit++
	return m.err
}

type mockWords struct {
	list       []wordbook.Word
	one        wordbook.Word
	err        error
	lastWho    service.Identity
	lastCat    int64
	lastWordID int64
	lastWord   string
}

func (m *mockWords) List(_ context.Context, who service.Identity, categoryID int64) ([]wordbook.Word, error) {
	m.lastWho, m.lastCat = who, categoryID
	return m.list, m.err
}

func (m *mockWords) Create(_ context.Context, who service.Identity, categoryID int64, word string) (wordbook.Word, error) {
	m.lastWho, m.lastCat, m.lastWord = who, categoryID, word
	return m.one, m.err
}

func (m *mockWords) Delete(_ context.Context, who service.Identity, categoryID, wordID int64) error {
	m.lastWho, m.lastCat, m.lastWordID = who, categoryID, wordID
	return m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, SessionCookie{})
	return h.InitRoutes()
}

func sessionCookie(secret string) *http.Cookie {
	return &http.Cookie{Name: defaultCookieName, Value: secret}
}
