package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var configEnvKeys = []string{
	"RUN_ADDRESS", "DATABASE_URI", "MIGRATIONS_DIR", "JWT_SECRET",
	"ACCESS_TOKEN_TTL", "REFRESH_TOKEN_TTL", "ADMIN_USERNAME", "ADMIN_PASSWORD",
}

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	// каталог без .env, окружение очищено от наших ключей.
	s.T().Chdir(s.T().TempDir())
	for _, key := range configEnvKeys {
		s.T().Setenv(key, "")
		s.Require().NoError(os.Unsetenv(key))
	}
}

func (s *ConfigTestSuite) TestFlagsWithDefaults() {
	conf, err := LoadConfig([]string{"-d", "postgres://flags", "-s", "secret"})
	s.Require().NoError(err)

	s.Equal(defaultRunAddress, conf.RunAddress)
	s.Equal("postgres://flags", conf.DatabaseDSN)
	s.Equal(defaultMigrationsDir, conf.MigrationsDir)
	s.Equal("secret", conf.JWTSecret)
	s.Equal(defaultAccessTokenTTL, conf.AccessTokenTTL)
	s.Equal(defaultRefreshTokenTTL, conf.RefreshTokenTTL)
	s.False(conf.HasAdminCredentials())
}

func (s *ConfigTestSuite) TestEnvOverridesFlags() {
	s.T().Setenv("RUN_ADDRESS", ":9090")
	s.T().Setenv("DATABASE_URI", "postgres://env")
	s.T().Setenv("JWT_SECRET", "env-secret")
	s.T().Setenv("ACCESS_TOKEN_TTL", "5m")
	s.T().Setenv("ADMIN_USERNAME", "root")
	s.T().Setenv("ADMIN_PASSWORD", "toor")

	conf, err := LoadConfig([]string{"-a", ":7070", "-d", "postgres://flags", "-access-ttl", "1h"})
	s.Require().NoError(err)

	s.Equal(":9090", conf.RunAddress)
	s.Equal("postgres://env", conf.DatabaseDSN)
	s.Equal("env-secret", conf.JWTSecret)
	s.Equal(5*time.Minute, conf.AccessTokenTTL)
	s.Equal(defaultRefreshTokenTTL, conf.RefreshTokenTTL)
	s.True(conf.HasAdminCredentials())
}

func (s *ConfigTestSuite) TestDotEnvFile() {
	content := "DATABASE_URI=postgres://dotenv\nJWT_SECRET=dotenv-secret\nREFRESH_TOKEN_TTL=2h\n"
	s.Require().NoError(os.WriteFile(filepath.Join(".", ".env"), []byte(content), 0o600))
	s.T().Cleanup(func() {
		for _, key := range configEnvKeys {
			_ = os.Unsetenv(key)
		}
	})

	conf, err := LoadConfig(nil)
	s.Require().NoError(err)

	s.Equal("postgres://dotenv", conf.DatabaseDSN)
	s.Equal("dotenv-secret", conf.JWTSecret)
	s.Equal(2*time.Hour, conf.RefreshTokenTTL)
}

func (s *ConfigTestSuite) TestRequiredValues() {
	_, err := LoadConfig([]string{"-s", "secret"})
	s.Require().ErrorIs(err, ErrEmptyDSN)

	_, err = LoadConfig([]string{"-d", "postgres://flags"})
	s.Require().ErrorIs(err, ErrEmptyJWTSecret)
}

func (s *ConfigTestSuite) TestBadFlag() {
	_, err := LoadConfig([]string{"-unknown"})
	s.Require().Error(err)
}
