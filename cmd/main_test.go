package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "v1.0.0") ||
		!contains(output, "abcd1234") ||
		!contains(output, "2025-09-26") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if cfg.appHost != "localhost" || cfg.appPort != "8080" || cfg.logLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", cfg.appHost, cfg.appPort, cfg.logLevel)
	}
	if cfg.apiToken != "default_token_for_development" {
		t.Errorf("unexpected api token: %v", cfg.apiToken)
	}

	// PostgreSQL
	if cfg.pgHost != "localhost" || cfg.pgPort != 5432 || cfg.pgUser != "user" || cfg.pgPassword != "password" || cfg.pgDB != "database" ||
		cfg.pgMaxOpenConns != 16 || cfg.pgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config")
	}

	// Optional capabilities default to disabled
	if cfg.redisHost != "" || cfg.kafkaAddr != "" || cfg.obsBucket != "" {
		t.Errorf("expected redis, kafka and object storage to be disabled by default")
	}
	if cfg.cacheTTL != 300*time.Second {
		t.Errorf("unexpected cache TTL: %v", cfg.cacheTTL)
	}
	if cfg.kafkaTopic != "currency-rate-events" {
		t.Errorf("unexpected kafka topic: %v", cfg.kafkaTopic)
	}
	if cfg.obsLinkTTL != 3600*time.Second {
		t.Errorf("unexpected link TTL: %v", cfg.obsLinkTTL)
	}

	// Shortener
	if cfg.shortenerURL != "https://spoo.me/" {
		t.Errorf("unexpected shortener url: %v", cfg.shortenerURL)
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("API_TOKEN", "supersecret")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_CACHE_TTL_SECOND", "120")

	os.Setenv("KAFKA_ADDR", "kafka.example.com:9092")
	os.Setenv("KAFKA_TOPIC", "rate-events")

	os.Setenv("OBS_ENDPOINT", "https://obs.example.com")
	os.Setenv("OBS_REGION", "eu-west-1")
	os.Setenv("OBS_BUCKET", "rates")
	os.Setenv("OBS_ACCESS_KEY", "ak")
	os.Setenv("OBS_SECRET_KEY", "sk")
	os.Setenv("OBS_LINK_TTL_SECOND", "600")

	os.Setenv("SHORTENER_URL", "https://short.example.com/")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.appHost != "127.0.0.1" || cfg.appPort != "9090" || cfg.logLevel != "debug" || cfg.apiToken != "supersecret" {
		t.Errorf("unexpected app config")
	}
	if cfg.pgHost != "pg.example.com" || cfg.pgPort != 5433 || cfg.pgUser != "admin" || cfg.pgPassword != "secret" || cfg.pgDB != "mydb" ||
		cfg.pgMaxOpenConns != 20 || cfg.pgMaxIdleConns != 10 {
		t.Errorf("unexpected postgres config")
	}
	if cfg.redisHost != "redis.example.com" || cfg.redisPort != 6380 || cfg.redisDB != 2 || cfg.redisPassword != "redispass" ||
		cfg.cacheTTL != 120*time.Second {
		t.Errorf("unexpected redis config")
	}
	if cfg.kafkaAddr != "kafka.example.com:9092" || cfg.kafkaTopic != "rate-events" {
		t.Errorf("unexpected kafka config")
	}
	if cfg.obsEndpoint != "https://obs.example.com" || cfg.obsRegion != "eu-west-1" || cfg.obsBucket != "rates" ||
		cfg.obsAccessKey != "ak" || cfg.obsSecretKey != "sk" || cfg.obsLinkTTL != 600*time.Second {
		t.Errorf("unexpected object storage config")
	}
	if cfg.shortenerURL != "https://short.example.com/" {
		t.Errorf("unexpected shortener url")
	}
}

func TestParseConfig_BadPort(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-number")

	_, err := parseConfig("nonexistent.env")
	if err == nil {
		t.Fatal("expected error for non-numeric POSTGRES_PORT")
	}
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// Redis, Kafka and object storage stay disabled: the service must come
	// up with only Postgres available.
	cfg := config{
		appHost:        "127.0.0.1",
		appPort:        "8086",
		logLevel:       "debug",
		apiToken:       "testtoken",
		pgHost:         pgHost,
		pgPort:         pgPort.Int(),
		pgUser:         "user",
		pgPassword:     "password",
		pgDB:           "testdb",
		pgMaxOpenConns: 5,
		pgMaxIdleConns: 2,
		cacheTTL:       time.Minute,
		obsLinkTTL:     time.Hour,
		shortenerURL:   "https://spoo.me/",
	}

	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(11 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
		t.Log("run completed successfully")
	}
}
