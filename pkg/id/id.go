package id

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/teris-io/shortid"
)

/**
 * @time: 2024/11/2 23:48
 * @file: id.go
 * @description: id util
 */

var mu = &sync.Mutex{}

// GetUUID generates a new UUID
func GetUUID() string {
	mu.Lock()
	defer mu.Unlock()
	return uuid.NewString()
}

// GetUUIDWithoutDashes generates a new UUID not horizontal line
func GetUUIDWithoutDashes() string {
	mu.Lock()
	defer mu.Unlock()

	return strings.Replace(uuid.NewString(), "-", "", -1)
}

// ShortId generates a short human-shareable code, used as the external
// meeting code.
func ShortId() string {
	id, err := shortid.Generate()
	if err != nil {
		return ""
	}
	return id
}
