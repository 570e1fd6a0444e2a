package session

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Options struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	Secure     bool
}

// Manager binds sessions to cookies on gin requests.
type Manager struct {
	store Store
	opts  Options
}

func NewManager(store Store, opts Options) *Manager {
	if opts.CookieName == "" {
		opts.CookieName = "sid"
	}
	if opts.TTL <= 0 {
		opts.TTL = 7 * 24 * time.Hour
	}
	return &Manager{store: store, opts: opts}
}

// Load returns the session id and data carried by the request cookie.
// A missing, forged, or expired cookie yields ErrNotFound.
func (m *Manager) Load(c *gin.Context) (string, *Data, error) {
	raw, err := c.Cookie(m.opts.CookieName)
	if err != nil || raw == "" {
		return "", nil, ErrNotFound
	}
	sid, err := parseToken(raw, m.opts.Secret)
	if err != nil {
		return "", nil, ErrNotFound
	}
	d, err := m.store.Get(c.Request.Context(), sid)
	if err != nil {
		return "", nil, err
	}
	return sid, d, nil
}

// Start creates a fresh session and sets its cookie.
func (m *Manager) Start(c *gin.Context, d *Data) (string, error) {
	sid := uuid.NewString()
	if err := m.store.Save(c.Request.Context(), sid, d, m.opts.TTL); err != nil {
		return "", err
	}
	token, err := signToken(sid, m.opts.Secret, m.opts.TTL)
	if err != nil {
		return "", err
	}
	m.setCookie(c, token, int(m.opts.TTL.Seconds()))
	return sid, nil
}

// Save overwrites the data of an existing session.
func (m *Manager) Save(ctx context.Context, sid string, d *Data) error {
	return m.store.Save(ctx, sid, d, m.opts.TTL)
}

// Destroy removes the session and clears the cookie.
func (m *Manager) Destroy(c *gin.Context, sid string) error {
	m.setCookie(c, "", -1)
	if sid == "" {
		return nil
	}
	return m.store.Delete(c.Request.Context(), sid)
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.opts.CookieName, value, maxAge, "/", "", m.opts.Secure, true)
}

func (m *Manager) CookieName() string { return m.opts.CookieName }
