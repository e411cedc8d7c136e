// Package cookie writes and reads HMAC-signed HTTP cookies with secret
// rotation. The dashboard uses it to carry the preview plan identifier.
package cookie
