package repo

import (
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/cache"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/database"
	httpx "github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http"
)

/**
 * @time: 2024/11/4 20:40
 * @file: repo.go
 * @description: repository aggregate
 */

// Repositories collects every repository behind one injection point.
type Repositories struct {
	User        IUserRepository
	Meeting     IMeetingRepository
	Participant IParticipantRepository
}

func NewRepositories(db database.IDatabase, cache cache.ICache, auth httpx.Auth) *Repositories {
	return &Repositories{
		User:        NewUserRepo(db, cache, auth.RedisKeyPrefix),
		Meeting:     NewMeetingRepo(db),
		Participant: NewParticipantRepo(db),
	}
}
