package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"

	"sunwatch/internal/types"
)

// Finder looks a zone up without a network call
type Finder interface {
	Find(coords types.Coords) (string, error)
}

// offlineFinder implements Finder using tzf polygon data
type offlineFinder struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *offlineFinder
	once     sync.Once
	initErr  error
)

// NewOfflineFinder creates or returns the singleton tzf-backed finder.
// tzf loads its polygon set into memory on first use, so it is shared.
func NewOfflineFinder() (Finder, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &offlineFinder{
			finder: finder,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// Find returns the IANA zone name for coords, like "Europe/Paris"
func (f *offlineFinder) Find(coords types.Coords) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	name := f.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates %s", coords)
	}

	return name, nil
}
