package repository

import (
	"BalaghAPI/ent"
	"BalaghAPI/internal/adapter"
)

type Repository struct {
	User      *UserRepository
	Report    *ReportRepository
	Draft     *DraftRepository
	Session   *SessionRepository
	RateLimit *RateLimitRepository
}

func NewRepository(client *ent.Client, redisAdapter *adapter.RedisAdapter) *Repository {
	return &Repository{
		User:      NewUserRepository(client),
		Report:    NewReportRepository(client),
		Draft:     NewDraftRepository(redisAdapter),
		Session:   NewSessionRepository(redisAdapter),
		RateLimit: NewRateLimitRepository(redisAdapter),
	}
}
