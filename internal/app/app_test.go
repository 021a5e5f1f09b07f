package app

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/passhash-api/internal/domain/vo"
	configmocks "github.com/joshuarp/passhash-api/internal/mock/shared/config"
	sharedhash "github.com/joshuarp/passhash-api/internal/shared/hash"
	sharedjwt "github.com/joshuarp/passhash-api/internal/shared/jwt"
)

type AppHelpersSuite struct {
	suite.Suite

	cfg *configmocks.ConfigProvider
}

func (s *AppHelpersSuite) SetupTest() {
	s.cfg = configmocks.NewConfigProvider(s.T())
}

func (s *AppHelpersSuite) TestIsSingleBinaryBin_TableDriven() {
	tests := []struct {
		name   string
		bin    string
		expect bool
	}{
		{name: "empty is single binary", bin: "", expect: true},
		{name: "all is single binary", bin: "all", expect: true},
		{name: "mixed case all is single binary", bin: " All ", expect: true},
		{name: "auth is module binary", bin: "auth", expect: false},
		{name: "hash is module binary", bin: "hash", expect: false},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			assert.Equal(s.T(), tc.expect, isSingleBinaryBin(tc.bin))
		})
	}
}

func (s *AppHelpersSuite) TestModuleDBString_TableDriven() {
	tests := []struct {
		name            string
		useModuleConfig bool
		setupMock       func()
		expect          string
	}{
		{
			name:            "prefer module key",
			useModuleConfig: true,
			setupMock: func() {
				s.cfg.EXPECT().IsSet("database.auth.host").Return(true)
				s.cfg.EXPECT().GetString("database.auth.host").Return("auth-host")
			},
			expect: "auth-host",
		},
		{
			name:            "fallback to global key when module key missing",
			useModuleConfig: true,
			setupMock: func() {
				s.cfg.EXPECT().IsSet("database.auth.host").Return(false)
				s.cfg.EXPECT().GetString("database.host").Return("global-host")
			},
			expect: "global-host",
		},
		{
			name:            "single binary reads global key only",
			useModuleConfig: false,
			setupMock: func() {
				s.cfg.EXPECT().GetString("database.host").Return("localhost")
			},
			expect: "localhost",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMock()

			value := moduleDBString(s.cfg, authDBModule, "host", tc.useModuleConfig)
			assert.Equal(s.T(), tc.expect, value)
		})
	}
}

func (s *AppHelpersSuite) TestModuleDBInt_TableDriven() {
	tests := []struct {
		name            string
		useModuleConfig bool
		setupMock       func()
		expect          int
	}{
		{
			name:            "prefer module int",
			useModuleConfig: true,
			setupMock: func() {
				s.cfg.EXPECT().IsSet("database.auth.port").Return(true)
				s.cfg.EXPECT().GetInt("database.auth.port").Return(5433)
			},
			expect: 5433,
		},
		{
			name:            "fallback to global int",
			useModuleConfig: false,
			setupMock: func() {
				s.cfg.EXPECT().GetInt("database.port").Return(5432)
			},
			expect: 5432,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMock()

			value := moduleDBInt(s.cfg, authDBModule, "port", tc.useModuleConfig)
			assert.Equal(s.T(), tc.expect, value)
		})
	}
}

func (s *AppHelpersSuite) TestPostgresDSN() {
	s.cfg.EXPECT().GetString("database.host").Return("db")
	s.cfg.EXPECT().GetInt("database.port").Return(5432)
	s.cfg.EXPECT().GetString("database.user").Return("passhash")
	s.cfg.EXPECT().GetString("database.password").Return("secret")
	s.cfg.EXPECT().GetString("database.name").Return("passhash")
	s.cfg.EXPECT().GetString("database.ssl_mode").Return("disable")

	dsn := postgresDSN(s.cfg, "all", authDBModule)
	assert.Equal(s.T(), "host=db port=5432 user=passhash password=secret dbname=passhash sslmode=disable", dsn)
}

func (s *AppHelpersSuite) TestProvideFiberApp_TableDriven() {
	tests := []struct {
		name       string
		readValue  time.Duration
		writeValue time.Duration
		expRead    time.Duration
		expWrite   time.Duration
	}{
		{name: "defaults when config missing", expRead: 30 * time.Second, expWrite: 30 * time.Second},
		{name: "uses configured timeout", readValue: 10 * time.Second, writeValue: 12 * time.Second, expRead: 10 * time.Second, expWrite: 12 * time.Second},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.cfg.EXPECT().GetString("app.name").Return("passhash-api")
			s.cfg.EXPECT().GetDuration("server.read_timeout").Return(tc.readValue)
			s.cfg.EXPECT().GetDuration("server.write_timeout").Return(tc.writeValue)

			fiberApp := provideFiberApp(s.cfg)
			require.NotNil(s.T(), fiberApp)
			assert.Equal(s.T(), tc.expRead, fiberApp.Config().ReadTimeout)
			assert.Equal(s.T(), tc.expWrite, fiberApp.Config().WriteTimeout)
			assert.Equal(s.T(), "passhash-api", fiberApp.Config().AppName)
		})
	}
}

func (s *AppHelpersSuite) TestProvidePasswordHasher_TableDriven() {
	tests := []struct {
		name      string
		cost      int
		assertion func(sharedhash.Hasher, error)
	}{
		{
			name: "zero cost uses bcrypt default",
			cost: 0,
			assertion: func(hasher sharedhash.Hasher, err error) {
				require.NoError(s.T(), err)
				password, parseErr := hasher.Parse("$2a$10$K8y0i4Wyqyei3SiGHLEd.OweXJt7sno2HdPVrMvVf06kGgAZvPkga")
				require.NoError(s.T(), parseErr)
				assert.False(s.T(), hasher.NeedsRehash(password))
			},
		},
		{
			name: "configured cost drives rehash",
			cost: 12,
			assertion: func(hasher sharedhash.Hasher, err error) {
				require.NoError(s.T(), err)
				password, parseErr := hasher.Parse("$2a$10$K8y0i4Wyqyei3SiGHLEd.OweXJt7sno2HdPVrMvVf06kGgAZvPkga")
				require.NoError(s.T(), parseErr)
				assert.True(s.T(), hasher.NeedsRehash(password))
			},
		},
		{
			name: "out of range cost fails",
			cost: 40,
			assertion: func(hasher sharedhash.Hasher, err error) {
				assert.Nil(s.T(), hasher)
				assert.ErrorContains(s.T(), err, "app: failed to init password hasher")
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.cfg.EXPECT().GetInt("hash.bcrypt.cost").Return(tc.cost)

			tc.assertion(providePasswordHasher(s.cfg))
		})
	}
}

func (s *AppHelpersSuite) TestProvideHashInspectService_TableDriven() {
	const cost15Hash = "$2a$15$K8y0i4Wyqyei3SiGHLEd.OweXJt7sno2HdPVrMvVf06kGgAZvPkga"

	tests := []struct {
		name    string
		maxCost int
		reason  string
	}{
		{name: "unset limit falls back to default", maxCost: 0, reason: "cost 15, maximum 14"},
		{name: "configured limit", maxCost: 12, reason: "cost 15, maximum 12"},
	}

	hasher, err := sharedhash.NewBcrypt(4)
	s.Require().NoError(err)

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.cfg.EXPECT().GetInt("hash.verify.max_cost").Return(tc.maxCost)

			service := provideHashInspectService(s.cfg, hasher)
			_, verifyErr := service.Verify(context.Background(), cost15Hash, "candidate")
			assert.ErrorIs(s.T(), verifyErr, vo.ErrHashCostTooHigh)
			assert.ErrorContains(s.T(), verifyErr, tc.reason)
		})
	}
}

func (s *AppHelpersSuite) TestProvideJWTTokenManager_TableDriven() {
	tests := []struct {
		name      string
		setupMock func()
		assertion func(sharedjwt.TokenManager, error)
	}{
		{
			name: "uses security jwt secret and ttl",
			setupMock: func() {
				s.cfg.EXPECT().GetString("security.jwt.secret").Return("12345678901234567890123456789012")
				s.cfg.EXPECT().GetDuration("security.jwt.ttl").Return(15 * time.Minute)
				s.cfg.EXPECT().GetString("security.jwt.issuer").Return("passhash-api")
			},
			assertion: func(manager sharedjwt.TokenManager, err error) {
				require.NoError(s.T(), err)
				token, signErr := manager.Sign(context.Background(), sharedjwt.Claims{Subject: "cred-1"})
				require.NoError(s.T(), signErr)
				claims, verifyErr := manager.Verify(context.Background(), token)
				require.NoError(s.T(), verifyErr)
				assert.Equal(s.T(), "passhash-api", claims.Issuer)
			},
		},
		{
			name: "missing secret fails",
			setupMock: func() {
				s.cfg.EXPECT().GetString("security.jwt.secret").Return("")
			},
			assertion: func(manager sharedjwt.TokenManager, err error) {
				assert.Nil(s.T(), manager)
				assert.ErrorContains(s.T(), err, "security.jwt.secret is required")
			},
		},
		{
			name: "short secret fails",
			setupMock: func() {
				s.cfg.EXPECT().GetString("security.jwt.secret").Return("short")
				s.cfg.EXPECT().GetDuration("security.jwt.ttl").Return(time.Duration(0))
				s.cfg.EXPECT().GetString("security.jwt.issuer").Return("")
			},
			assertion: func(manager sharedjwt.TokenManager, err error) {
				assert.Nil(s.T(), manager)
				assert.ErrorContains(s.T(), err, "app: failed to init JWT manager")
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMock()

			tc.assertion(provideJWTTokenManager(s.cfg))
		})
	}
}

func (s *AppHelpersSuite) TestProvideUIDGenerator_TableDriven() {
	tests := []struct {
		name      string
		setupMock func()
		expectErr bool
	}{
		{
			name: "uuidv7 by default",
			setupMock: func() {
				s.cfg.EXPECT().GetString("uid.strategy").Return("")
				s.cfg.EXPECT().GetInt("uid.node_id").Return(1)
			},
		},
		{
			name: "snowflake with node id",
			setupMock: func() {
				s.cfg.EXPECT().GetString("uid.strategy").Return("snowflake")
				s.cfg.EXPECT().GetInt("uid.node_id").Return(7)
			},
		},
		{
			name: "snowflake node id out of range",
			setupMock: func() {
				s.cfg.EXPECT().GetString("uid.strategy").Return("snowflake")
				s.cfg.EXPECT().GetInt("uid.node_id").Return(4096)
			},
			expectErr: true,
		},
		{
			name: "unknown strategy",
			setupMock: func() {
				s.cfg.EXPECT().GetString("uid.strategy").Return("ulid")
			},
			expectErr: true,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMock()

			generator, err := provideUIDGenerator(s.cfg)
			if tc.expectErr {
				assert.Nil(s.T(), generator)
				assert.ErrorContains(s.T(), err, "app: failed to init uid generator")
				return
			}

			require.NoError(s.T(), err)
			id, err := generator.Generate(context.Background())
			require.NoError(s.T(), err)
			assert.NotEmpty(s.T(), id)
		})
	}
}

func (s *AppHelpersSuite) TestProvideRedisClient_TableDriven() {
	tests := []struct {
		name      string
		host      string
		port      int
		password  string
		db        int
		expAddr   string
		expDB     int
		expPasswd string
	}{
		{
			name:      "uses configured redis settings",
			host:      "redis.internal",
			port:      6380,
			password:  "topsecret",
			db:        2,
			expAddr:   "redis.internal:6380",
			expDB:     2,
			expPasswd: "topsecret",
		},
		{
			name:    "uses default host and port when not configured",
			expAddr: "localhost:6379",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.cfg.EXPECT().GetString("redis.host").Return(tc.host)
			s.cfg.EXPECT().GetInt("redis.port").Return(tc.port)
			s.cfg.EXPECT().GetString("redis.password").Return(tc.password)
			s.cfg.EXPECT().GetInt("redis.db").Return(tc.db)

			client := provideRedisClient(s.cfg)
			require.NotNil(s.T(), client)
			defer client.Close()

			opts := client.Options()
			assert.Equal(s.T(), tc.expAddr, opts.Addr)
			assert.Equal(s.T(), tc.expDB, opts.DB)
			assert.Equal(s.T(), tc.expPasswd, opts.Password)
		})
	}
}

func (s *AppHelpersSuite) TestProvideLoginAttemptsLimiter_UsesDefaults() {
	server := miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	s.cfg.EXPECT().GetInt("rate_limit.login.max_attempts").Return(0)
	s.cfg.EXPECT().GetDuration("rate_limit.login.window").Return(time.Duration(0))

	limiter, err := provideLoginAttemptsLimiter(s.cfg, client, nil)
	require.NoError(s.T(), err)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		result, allowErr := limiter.Allow(ctx, "login:user@example.com")
		require.NoError(s.T(), allowErr)
		assert.True(s.T(), result.Allowed)
	}

	result, err := limiter.Allow(ctx, "login:user@example.com")
	require.NoError(s.T(), err)
	assert.False(s.T(), result.Allowed)
	assert.True(s.T(), server.Exists("passhash:login:login:user@example.com"))
	assert.Equal(s.T(), 15*time.Minute, server.TTL("passhash:login:login:user@example.com"))
}

func (s *AppHelpersSuite) TestProvideHashVerifyLimiter_UsesConfig() {
	server := miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	s.cfg.EXPECT().GetInt("rate_limit.hash_verify.limit").Return(2)
	s.cfg.EXPECT().GetDuration("rate_limit.hash_verify.window").Return(30 * time.Second)

	limiter, err := provideHashVerifyLimiter(s.cfg, client, nil)
	require.NoError(s.T(), err)

	result, err := limiter.Allow(context.Background(), "hash_verify:user:cred-1")
	require.NoError(s.T(), err)
	assert.EqualValues(s.T(), 2, result.Limit)
	assert.EqualValues(s.T(), 1, result.Remaining)
}

func (s *AppHelpersSuite) TestNewScopedLimiter_RequiresRedis() {
	limiter, err := newScopedLimiter(s.cfg, nil, nil, limiterScope{name: "login"})
	assert.Nil(s.T(), limiter)
	assert.ErrorContains(s.T(), err, "redis client is required for login rate limiter")
}

func TestAppHelpersSuite(t *testing.T) {
	suite.Run(t, new(AppHelpersSuite))
}
