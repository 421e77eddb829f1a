// Package token issues and confirms the signed, time-boxed tokens used to
// prove control of an email address across two HTTP round trips.
package token

import "github.com/gorilla/securecookie"

// purpose is the label tokens are bound to; a token signed for another
// purpose never confirms.
const purpose = "email-confirm"

// Signer produces tamper-evident tokens carrying an email address and an
// issuance timestamp. Verification needs no server-side storage.
type Signer struct {
	codec *securecookie.SecureCookie
}

// NewSigner builds a Signer from the process secret. maxAgeSeconds bounds how
// old a token may be at confirmation time.
func NewSigner(secret string, maxAgeSeconds int) *Signer {
	codec := securecookie.New([]byte(secret), nil)
	codec.MaxAge(maxAgeSeconds)
	return &Signer{codec: codec}
}

// Issue signs email under the fixed purpose label.
func (s *Signer) Issue(email string) (string, error) {
	return s.codec.Encode(purpose, email)
}

// Confirm verifies the token's signature, purpose, and age, returning the
// embedded email address. Any failure — altered token, wrong purpose,
// expiry — collapses to ok=false with no distinction.
func (s *Signer) Confirm(tok string) (string, bool) {
	var email string
	if err := s.codec.Decode(purpose, tok, &email); err != nil {
		return "", false
	}
	return email, true
}
