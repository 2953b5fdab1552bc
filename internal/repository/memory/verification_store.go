package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// VerificationStore keeps short-lived email verification codes in memory.
type VerificationStore struct {
	cache *cache.Cache
}

func NewVerificationStore() *VerificationStore {
	// Codes expire after 15 minutes, purged every 10.
	c := cache.New(15*time.Minute, 10*time.Minute)
	return &VerificationStore{
		cache: c,
	}
}

func (s *VerificationStore) Save(email, code string) {
	s.cache.Set(email, code, cache.DefaultExpiration)
}

func (s *VerificationStore) Get(email string) (string, bool) {
	if x, found := s.cache.Get(email); found {
		return x.(string), true
	}
	return "", false
}

func (s *VerificationStore) Delete(email string) {
	s.cache.Delete(email)
}
