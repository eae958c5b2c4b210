package main

import (
	"context"
	"io"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sun1tar/task-service/internal/config"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func memoryConfig(port string) *config.Config {
	cfg := config.Default()
	cfg.TasksPort = port
	cfg.DB.Driver = config.DriverMemory
	cfg.ShutdownTimeout = 2 * time.Second
	return cfg
}

func TestRun_PortInUse_ReturnsError(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("net.Listen() err=%v", err)
	}
	defer ln.Close()

	port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)

	done := make(chan error, 1)
	go func() { done <- run(context.Background(), memoryConfig(port), quietLogger()) }()

	select {
	case err := <-done:
		if err == nil {
			t.Fatalf("run() err=nil, want bind error")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("run() did not return while port %s was taken", port)
	}
}

func TestRun_CanceledContext_ReturnsNil(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- run(ctx, memoryConfig("0"), quietLogger()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run() err=%v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("run() did not stop after cancel")
	}
}

func TestRun_UnsupportedDriver(t *testing.T) {
	cfg := memoryConfig("0")
	cfg.DB.Driver = "oracle"

	if err := run(context.Background(), cfg, quietLogger()); err == nil {
		t.Fatalf("run() err=nil, want unsupported driver error")
	}
}
