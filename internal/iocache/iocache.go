// Package iocache persists journeys behind the JourneyStore contract.
package iocache

import (
	"sync"

	"github.com/huangsam/attribution/internal/contract"
)

// JourneyStoreManager holds the process-wide JourneyStore instance.
type JourneyStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	journeys     contract.JourneyStore
}

var _ contract.StoreManager = &JourneyStoreManager{} // Compile-time check

// GetJourneyStore returns the journey store, or nil before InitStores.
func (mgr *JourneyStoreManager) GetJourneyStore() contract.JourneyStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.journeys
}
