package services

import (
	"fmt"
	"math/rand"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// OtpStore keeps one-time codes keyed by email. Expiry is handled by the
// cache: entries live five minutes and a successful verify consumes the
// code.
type OtpStore struct {
	cache *gocache.Cache
}

func NewOtpStore() *OtpStore {
	return &OtpStore{cache: gocache.New(5*time.Minute, 10*time.Minute)}
}

func (s *OtpStore) Generate(email string) string {
	code := fmt.Sprintf("%06d", rand.Intn(900000)+100000)
	s.cache.Set(email, code, gocache.DefaultExpiration)
	return code
}

func (s *OtpStore) Verify(email string, code string) bool {
	stored, found := s.cache.Get(email)
	if !found {
		return false
	}
	if stored.(string) != code {
		return false
	}
	s.cache.Delete(email)
	return true
}
