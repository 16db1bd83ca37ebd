package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"viewcrumbs_echo/internal/breadcrumbs"
	"viewcrumbs_echo/internal/services"
	"viewcrumbs_echo/internal/testutil"
)

const cachePrefix = "test:"

// newDryRunDB builds SQL without ever connecting to Postgres.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=1 user=test dbname=test sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return db
}

func newCachedTestServer(t *testing.T) (*echo.Echo, *testutil.FakeRedis) {
	t.Helper()
	server, client := testutil.NewFakeRedis(t)
	e := echo.New()
	e.Renderer = &captureRenderer{}
	Register(e, Deps{
		DB:          newDryRunDB(t),
		Cache:       services.NewRedisCacheFromClient(client, cachePrefix, zap.NewNop()),
		Breadcrumbs: breadcrumbs.DefaultConfig(),
		Log:         zap.NewNop(),
	})
	return e, server
}

func TestUpdateUserInvalidatesPlanList(t *testing.T) {
	e, server := newCachedTestServer(t)
	server.Put(cachePrefix+planListCacheKey, `[{"id":1,"owner":{"name":"Alice"}}]`)

	form := url.Values{"name": {"Alicia"}, "email": {"alice@example.com"}}
	req := httptest.NewRequest(http.MethodPost, "/users/1/update", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.False(t, server.Has(cachePrefix+planListCacheKey))
	assert.Contains(t, server.Commands("del"), []string{cachePrefix + planListCacheKey})
}

func TestInvalidatePlanList(t *testing.T) {
	server, client := testutil.NewFakeRedis(t)
	cache := services.NewRedisCacheFromClient(client, cachePrefix, zap.NewNop())
	server.Put(cachePrefix+planListCacheKey, `[]`)

	invalidatePlanList(cache, context.Background())

	assert.False(t, server.Has(cachePrefix+planListCacheKey))
}

func TestInvalidatePlanListWithoutCache(t *testing.T) {
	assert.NotPanics(t, func() {
		invalidatePlanList(nil, context.Background())
	})
}
