package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/fakhrul62/product-recommendation-server/internal/config"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-10-16"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2026-10-16")
}

func TestNewKafkaWriter(t *testing.T) {
	kw := newKafkaWriter([]string{"broker-1:9092", "broker-2:9092"}, "recommendation-events")
	defer kw.Close()

	assert.Equal(t, "recommendation-events", kw.Topic)
	assert.NotNil(t, kw.Addr)
	assert.IsType(t, &kafka.Hash{}, kw.Balancer)
}

func TestRun_UnreachableStore(t *testing.T) {
	cfg := &config.Config{
		AppPort:   "0",
		LogLevel:  "error",
		MongoURI:  "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200",
		MongoDB:   "recDB",
		JWTSecret: "secret",
		JWTExp:    time.Hour,
	}

	err := run(context.Background(), cfg)
	assert.Error(t, err)
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := run(context.Background(), &config.Config{LogLevel: "loud"})
	assert.Error(t, err)
}

func freePort(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()
	_, port, _ := net.SplitHostPort(lis.Addr().String())
	return port
}

func TestRun_ServesAndShutsDown(t *testing.T) {
	ctx := context.Background()

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer mongoC.Terminate(ctx)

	host, _ := mongoC.Host(ctx)
	port, _ := mongoC.MappedPort(ctx, "27017")

	cfg := &config.Config{
		AppHost:     "127.0.0.1",
		AppPort:     freePort(t),
		Environment: "development",
		LogLevel:    "info",
		CORSOrigins: []string{"http://localhost:5173"},
		MongoURI:    fmt.Sprintf("mongodb://%s:%s", host, port.Port()),
		MongoDB:     "recDB",
		JWTSecret:   "secret",
		JWTExp:      time.Hour,
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- run(runCtx, cfg) }()

	base := "http://" + net.JoinHostPort(cfg.AppHost, cfg.AppPort)
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && strings.Contains(string(body), "IS RUNNING")
	}, 30*time.Second, 200*time.Millisecond)

	resp, err := http.Get(base + "/queries-home")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(body))

	resp, err = http.Post(base+"/queries", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
}
