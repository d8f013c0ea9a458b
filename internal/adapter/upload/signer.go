package upload

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"snaplink/internal/config/configs"
	"snaplink/internal/core/port"
)

// ErrNotConfigured is returned when upload credentials are missing.
var ErrNotConfigured = errors.New("upload signing is not configured")

// Signer issues Cloudinary style signatures for direct browser uploads of
// link thumbnails.
type Signer struct {
	cfg configs.Upload
}

var _ port.UploadSigner = (*Signer)(nil)

// NewSigner returns a Signer for the given credentials.
func NewSigner(cfg configs.Upload) *Signer {
	return &Signer{cfg: cfg}
}

// Sign returns hex(sha1("timestamp=<unix>" + secret)) for now.
func (s *Signer) Sign(now time.Time) (*port.UploadSignature, error) {
	if s.cfg.CloudName == "" || s.cfg.APIKey == "" || s.cfg.APISecret == "" {
		return nil, ErrNotConfigured
	}
	ts := now.Unix()
	sum := sha1.Sum([]byte("timestamp=" + strconv.FormatInt(ts, 10) + s.cfg.APISecret))
	return &port.UploadSignature{
		Signature: hex.EncodeToString(sum[:]),
		Timestamp: ts,
		APIKey:    s.cfg.APIKey,
		CloudName: s.cfg.CloudName,
	}, nil
}
