// Package turnrest issues coturn-compatible TURN REST credentials
// (draft-uberti-behave-turn-rest): the username encodes an expiry
// timestamp and the credential is an HMAC-SHA1 of the username under a
// secret shared with the TURN server. Any coturn deployment running with
// use-auth-secret accepts these, so no external telephony API is involved.
package turnrest

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNoSecret = errors.New("turn shared secret is not configured")

type Generator struct {
	secret []byte
	ttl    int64
	prefix string
	uris   []string

	// now is swappable for deterministic tests.
	now func() time.Time
}

func NewGenerator(secret string, ttl int64, prefix string, uris []string) (*Generator, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if ttl <= 0 {
		return nil, errors.New("turn ttl must be positive")
	}
	if strings.Contains(prefix, ":") {
		return nil, errors.New("turn username prefix must not contain ':'")
	}
	return &Generator{
		secret: []byte(secret),
		ttl:    ttl,
		prefix: prefix,
		uris:   uris,
		now:    time.Now,
	}, nil
}

type Credentials struct {
	Username   string   `json:"username"`
	Credential string   `json:"credential"`
	TTL        int64    `json:"ttl"`
	URIs       []string `json:"uris"`
}

// Generate mints a short-lived credential pair. The username is
// <expiry>:<prefix>:<session>, the credential base64(hmac-sha1(secret, username)).
func (g *Generator) Generate(session string) Credentials {
	if session == "" {
		session = uuid.NewString()
	}
	expiry := g.now().UTC().Unix() + g.ttl
	username := fmt.Sprintf("%d:%s:%s", expiry, g.prefix, session)

	mac := hmac.New(sha1.New, g.secret)
	mac.Write([]byte(username))
	credential := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return Credentials{
		Username:   username,
		Credential: credential,
		TTL:        g.ttl,
		URIs:       g.uris,
	}
}
