// Package uistate keeps per-browser UI state in a signed cookie.
//
// The only state kept today is the staff tasks modal: which staff member
// it was opened for and which status filter is selected, so the filter
// control can re-query without the page re-sending the identity.
package uistate

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	modalStaffIDKey   = "modal_staff_id"
	modalStaffNameKey = "modal_staff_name"
	modalFilterKey    = "modal_filter"
)

// ModalIdentity is the staff member the tasks modal was last opened for.
type ModalIdentity struct {
	StaffID   string
	StaffName string
	Filter    string
}

// Store wraps a gorilla cookie store.
type Store struct {
	cs   *sessions.CookieStore
	name string
	log  *zap.Logger
}

// New creates a Store. An empty sessionKey generates a random key, which
// is fine for a single dev instance but invalidates cookies on restart.
//
// When secure is true cookies are Secure with SameSite=None; otherwise
// SameSite=Lax so plain-http localhost works.
func New(sessionKey, sessionName, domain string, secure bool, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sessionName == "" {
		return nil, fmt.Errorf("session name is empty")
	}

	key := []byte(sessionKey)
	switch {
	case len(key) == 0:
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, fmt.Errorf("generate session key: no entropy")
		}
		logger.Warn("session key not configured; using a random key")
	case len(key) < 32:
		logger.Warn("session key is short; 32+ chars recommended", zap.Int("length", len(key)))
	}

	cs := sessions.NewCookieStore(key)
	cs.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
		MaxAge:   86400 * 7,
	}
	if secure {
		cs.Options.SameSite = http.SameSiteNoneMode
	} else {
		cs.Options.SameSite = http.SameSiteLaxMode
	}

	logger.Info("ui state store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &Store{cs: cs, name: sessionName, log: logger}, nil
}

// session returns the browser's session. A cookie signed with an old key
// is discarded and a fresh session returned.
func (s *Store) session(r *http.Request) *sessions.Session {
	sess, err := s.cs.Get(r, s.name)
	if err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			s.log.Debug("discarding undecodable ui state cookie")
		} else {
			s.log.Warn("ui state cookie error", zap.Error(err))
		}
		sess, _ = s.cs.New(r, s.name)
	}
	return sess
}

// ModalIdentity returns the remembered modal identity, if any.
func (s *Store) ModalIdentity(r *http.Request) (ModalIdentity, bool) {
	sess := s.session(r)
	id, _ := sess.Values[modalStaffIDKey].(string)
	if id == "" {
		return ModalIdentity{}, false
	}
	name, _ := sess.Values[modalStaffNameKey].(string)
	filter, _ := sess.Values[modalFilterKey].(string)
	return ModalIdentity{StaffID: id, StaffName: name, Filter: filter}, true
}

// SaveModalIdentity remembers id for this browser.
func (s *Store) SaveModalIdentity(w http.ResponseWriter, r *http.Request, id ModalIdentity) error {
	sess := s.session(r)
	sess.Values[modalStaffIDKey] = id.StaffID
	sess.Values[modalStaffNameKey] = id.StaffName
	sess.Values[modalFilterKey] = id.Filter
	return sess.Save(r, w)
}

// ClearModal forgets the modal identity.
func (s *Store) ClearModal(w http.ResponseWriter, r *http.Request) error {
	sess := s.session(r)
	delete(sess.Values, modalStaffIDKey)
	delete(sess.Values, modalStaffNameKey)
	delete(sess.Values, modalFilterKey)
	return sess.Save(r, w)
}
