// Package visits records privacy-conscious page views in SQLite. Raw IP
// addresses are never stored; only a salted, truncated SHA-256 hash is kept.
package visits

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"
)

// Visit is one recorded page view.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// PageStat is the view count of one path.
type PageStat struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// Stats summarises recorded visits for the admin dashboard.
type Stats struct {
	TotalVisits    int64      `json:"total_visits"`
	UniqueVisitors int64      `json:"unique_visitors"`
	VisitsToday    int64      `json:"visits_today"`
	VisitsThisWeek int64      `json:"visits_this_week"`
	TopPages       []PageStat `json:"top_pages"`
	RecentVisits   []Visit    `json:"recent_visits"`
	GeneratedAt    time.Time  `json:"generated_at"`
}

// Hasher hashes client IPs with a per-process salt, so hashes are stable
// within a run but cannot be joined across restarts.
type Hasher struct {
	salt string
}

// NewHasher draws a random salt.
func NewHasher() (Hasher, error) {
	salt, err := RandomToken()
	if err != nil {
		return Hasher{}, err
	}
	return Hasher{salt: salt}, nil
}

// NewHasherWithSalt is for tests and deterministic setups.
func NewHasherWithSalt(salt string) Hasher {
	return Hasher{salt: salt}
}

// Hash returns the first 16 hex characters of sha256(ip + salt).
func (h Hasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RandomToken returns 32 random bytes hex encoded.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "generate token")
	}
	return hex.EncodeToString(b), nil
}
