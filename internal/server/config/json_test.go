package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson(t *testing.T) {
	content := `{
		"endpoint_addr_grpc": ":6060",
		"database_dsn": "postgres://u:p@db:5432/vc",
		"redis_addr": "cache:6379",
		"redis_db": 3,
		"challenge_ttl": "2m",
		"session_ttl": "12h",
		"presence_ttl": "45s",
		"queue_ttl": "6h",
		"keygen_workers": 8,
		"s3_root_user": "root",
		"s3_root_password": "pw",
		"s3_bucket": "blobs",
		"s3_region": "eu-west-1",
		"s3_base_endpoint": "http://s3:9000/",
		"attachment_url_ttl": "5m"
	}`

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":6060", cfg.EndpointAddrGRPC)
	assert.Equal(t, "postgres://u:p@db:5432/vc", cfg.DatabaseDSN)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 2*time.Minute, cfg.ChallengeTTL)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 45*time.Second, cfg.PresenceTTL)
	assert.Equal(t, 6*time.Hour, cfg.QueueTTL)
	assert.Equal(t, 8, cfg.KeygenWorkers)
	assert.Equal(t, "blobs", cfg.S3Bucket)
	assert.Equal(t, 5*time.Minute, cfg.AttachmentURLTTL)
}

func TestParseJsonNoFile(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	// untouched defaults
	assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
}
