package keys

import (
	"strings"
)

const (
	// PfxCatalog is used for prefixing catalog snapshot cache keys
	PfxCatalog = "catalog"
	// PfxPlanApi is used for prefixing upstream client cache keys
	PfxPlanApi = "planapi"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// CacheKey is used to join the cache key by componets
func CacheKey(components ...string) string {
	return CustomKey(":", components...)
}
