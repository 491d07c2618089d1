// Package upload signs client-side ImageKit upload requests.
//
// The browser uploads images directly to ImageKit's CDN; the server's only
// job is to hand an authenticated client a one-time signature proving the
// upload was sanctioned. The private key never leaves the server.
//
// Signature scheme (per ImageKit's upload API): HMAC-SHA1 over the
// concatenation of the token and the expiry timestamp, keyed with the
// private key, hex-encoded.
package upload

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/xid"
)

// Params is the response body of GET /api/upload-auth. The client passes
// these straight to the ImageKit upload SDK.
type Params struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"` // unix seconds
	Signature string `json:"signature"`
	PublicKey string `json:"publicKey"`
}

// Signer produces upload auth params for one ImageKit account.
type Signer struct {
	privateKey string
	publicKey  string
}

// NewSigner creates a Signer with the account's key pair.
func NewSigner(privateKey, publicKey string) *Signer {
	return &Signer{
		privateKey: privateKey,
		publicKey:  publicKey,
	}
}

// tokenTTL bounds how long a signed token stays usable. ImageKit rejects
// expiry timestamps more than an hour out.
const tokenTTL = 30 * time.Minute

// Sign mints a fresh single-use token and its signature.
func (s *Signer) Sign() Params {
	token := xid.New().String()
	expire := time.Now().Add(tokenTTL).Unix()

	mac := hmac.New(sha1.New, []byte(s.privateKey))
	fmt.Fprintf(mac, "%s%d", token, expire)

	return Params{
		Token:     token,
		Expire:    expire,
		Signature: hex.EncodeToString(mac.Sum(nil)),
		PublicKey: s.publicKey,
	}
}
