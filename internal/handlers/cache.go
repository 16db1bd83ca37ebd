package handlers

import (
	"context"
	"time"

	"viewcrumbs_echo/internal/services"
)

// The plan list embeds each plan's owner, so user changes invalidate it too.
const (
	planListCacheKey = "plans:list"
	planListCacheTTL = 5 * time.Minute
)

func invalidatePlanList(cache *services.RedisCache, ctx context.Context) {
	services.Invalidate(cache, ctx, planListCacheKey)
}
