package woocommerce

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OAuth parameter names and fixed values.
const (
	ParamConsumerKey     = "oauth_consumer_key"
	ParamNonce           = "oauth_nonce"
	ParamSignatureMethod = "oauth_signature_method"
	ParamTimestamp       = "oauth_timestamp"
	ParamVersion         = "oauth_version"
	ParamSignature       = "oauth_signature"

	SignatureMethodHMACSHA1 = "HMAC-SHA1"
	OAuthVersion            = "1.0"
	AuthSchemeOAuth         = "OAuth"
)

// Params is a complete set of request parameters including the OAuth ones.
type Params map[string]string

// Signer computes OAuth 1.0a signatures for one consumer.
type Signer struct {
	consumerKey    string
	consumerSecret string
	now            func() time.Time
	nonce          func() string
}

// NewSigner creates a signer for the given consumer credentials.
func NewSigner(consumerKey, consumerSecret string) *Signer {
	return &Signer{
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		now:            time.Now,
		nonce:          generateNonce,
	}
}

// SetClock replaces the timestamp source
func (s *Signer) SetClock(now func() time.Time) {
	s.now = now
}

// SetNonceSource replaces the nonce generator
func (s *Signer) SetNonceSource(nonce func() string) {
	s.nonce = nonce
}

// Sign returns every parameter needed to authenticate a call to rawURL: the
// OAuth base set, the caller's extra parameters and oauth_signature. Values in
// extra override generated ones of the same name. An empty method means GET.
//
// The returned oauth_signature is already percent-encoded; the shop decodes it
// once more when verifying.
func (s *Signer) Sign(rawURL, method string, extra map[string]string) Params {
	if method == "" {
		method = "GET"
	}

	params := Params{
		ParamConsumerKey:     s.consumerKey,
		ParamNonce:           s.nonce(),
		ParamSignatureMethod: SignatureMethodHMACSHA1,
		ParamTimestamp:       strconv.FormatInt(s.now().Unix(), 10),
		ParamVersion:         OAuthVersion,
	}
	for k, v := range extra {
		params[k] = v
	}

	base := SignatureBaseString(method, rawURL, params)
	mac := hmac.New(sha1.New, []byte(PercentEncode(s.consumerSecret)+"&"))
	mac.Write([]byte(base))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	params[ParamSignature] = PercentEncode(signature)
	return params
}

// SignatureBaseString builds METHOD&url&params as defined by OAuth 1.0a. The
// query string of rawURL is ignored; query parameters must be passed in params.
func SignatureBaseString(method, rawURL string, params map[string]string) string {
	baseURL, _, _ := strings.Cut(rawURL, "?")
	return strings.ToUpper(method) + "&" + PercentEncode(baseURL) + "&" + PercentEncode(normalizeParams(params))
}

// normalizeParams sorts params by name and joins encoded pairs with "&".
func normalizeParams(params map[string]string) string {
	keys := sortedKeys(params)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, PercentEncode(k)+"="+PercentEncode(params[k]))
	}
	return strings.Join(pairs, "&")
}

// PercentEncode escapes s per RFC 3986: everything except A-Z a-z 0-9 - . _ ~
func PercentEncode(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}

// Query returns the parameters as URL query values.
func (p Params) Query() url.Values {
	q := make(url.Values, len(p))
	for k, v := range p {
		q.Set(k, v)
	}
	return q
}

// Header renders the Authorization header value: OAuth k="v", ... with values
// percent-encoded and names sorted.
func (p Params) Header() string {
	keys := sortedKeys(p)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+`="`+PercentEncode(p[k])+`"`)
	}
	return AuthSchemeOAuth + " " + strings.Join(parts, ", ")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// generateNonce returns 32 random alphanumeric characters.
func generateNonce() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
