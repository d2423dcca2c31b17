package config

import "sync"

// WorldGenSettings holds world generation configuration
type WorldGenSettings struct {
	mu sync.RWMutex
	// Fixed default seed keeps startup scenes and performance numbers
	// comparable between runs.
	worldSeed             uint64
	bootstrapRegionRadius int // regions generated eagerly at startup
	regionViewRadius      int // regions kept generated around the camera
	cavesEnabled          bool
}

var globalWorldGenSettings = &WorldGenSettings{
	worldSeed:             0xeaafa35aaa8eafdf,
	bootstrapRegionRadius: 1,
	regionViewRadius:      1,
	cavesEnabled:          true,
}

// GetWorldSeed returns the configured world seed
func GetWorldSeed() uint64 {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.worldSeed
}

// SetWorldSeed sets the world seed
func SetWorldSeed(seed uint64) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.worldSeed = seed
}

// GetBootstrapRegionRadius returns the eager startup generation radius in regions
func GetBootstrapRegionRadius() int {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.bootstrapRegionRadius
}

// SetBootstrapRegionRadius sets the eager startup generation radius in regions
func SetBootstrapRegionRadius(radius int) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	if radius < 0 {
		radius = 0
	}
	globalWorldGenSettings.bootstrapRegionRadius = radius
}

// GetRegionViewRadius returns the streaming radius around the camera in regions
func GetRegionViewRadius() int {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.regionViewRadius
}

// SetRegionViewRadius sets the streaming radius around the camera in regions
func SetRegionViewRadius(radius int) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	if radius < 0 {
		radius = 0
	}
	globalWorldGenSettings.regionViewRadius = radius
}

// GetCavesEnabled returns whether cave carving runs during generation
func GetCavesEnabled() bool {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.cavesEnabled
}

// SetCavesEnabled toggles cave carving for subsequently generated regions
func SetCavesEnabled(enabled bool) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.cavesEnabled = enabled
}
