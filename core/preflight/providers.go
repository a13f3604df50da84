package preflight

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

// FilesystemInfo reports disk capacity and mount layout. Injected so
// checks run in tests without touching the real filesystem.
type FilesystemInfo interface {
	AvailableBytes(path string) (uint64, error)

	IsMountPoint(path string) (bool, error)
}

// HeadClient issues a bounded HTTP HEAD probe and reports the status
// code. Any response, even a server error, proves reachability.
type HeadClient interface {
	Head(ctx context.Context, url string) (int, error)
}

// BrokerDialer probes a single broker endpoint.
type BrokerDialer interface {
	Ping(ctx context.Context, addr string) error
}

type RealFilesystemInfo struct{}

func (RealFilesystemInfo) AvailableBytes(path string) (uint64, error) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return 0, fmt.Errorf("statfs %s: %w", path, err)
	}
	return stat.Bavail * uint64(stat.Bsize), nil
}

// IsMountPoint compares the device of path with the device of its
// parent; a differing device means path is its own mount.
func (RealFilesystemInfo) IsMountPoint(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	parentInfo, err := os.Stat(filepath.Dir(path))
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", filepath.Dir(path), err)
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return false, fmt.Errorf("no stat data for %s", path)
	}
	parentStat, ok := parentInfo.Sys().(*syscall.Stat_t)
	if !ok {
		return false, fmt.Errorf("no stat data for %s", filepath.Dir(path))
	}

	return stat.Dev != parentStat.Dev, nil
}

type RealHeadClient struct {
	Client *http.Client
}

func NewRealHeadClient(timeout time.Duration) *RealHeadClient {
	return &RealHeadClient{Client: &http.Client{Timeout: timeout}}
}

func (c *RealHeadClient) Head(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// RealBrokerDialer dials the Kafka port of a peer node. A successful
// TCP handshake is enough; the broker may not be serving yet.
type RealBrokerDialer struct {
	Timeout time.Duration
}

func (d *RealBrokerDialer) Ping(ctx context.Context, addr string) error {
	dialer := &kafka.Dialer{Timeout: d.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	return conn.Close()
}

// MockFilesystemInfo implements FilesystemInfo for testing
type MockFilesystemInfo struct {
	Available  map[string]uint64
	Mounts     map[string]bool
	StatError  error
	MountError error
	AvailCalls int
	MountCalls int
}

func NewMockFilesystemInfo() *MockFilesystemInfo {
	return &MockFilesystemInfo{
		Available: make(map[string]uint64),
		Mounts:    make(map[string]bool),
	}
}

func (m *MockFilesystemInfo) AvailableBytes(path string) (uint64, error) {
	m.AvailCalls++
	if m.StatError != nil {
		return 0, m.StatError
	}
	return m.Available[path], nil
}

func (m *MockFilesystemInfo) IsMountPoint(path string) (bool, error) {
	m.MountCalls++
	if m.MountError != nil {
		return false, m.MountError
	}
	return m.Mounts[path], nil
}

// MockHeadClient implements HeadClient for testing
type MockHeadClient struct {
	Status int
	Err    error
	Calls  int
}

func (m *MockHeadClient) Head(ctx context.Context, url string) (int, error) {
	m.Calls++
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Status, nil
}

// MockBrokerDialer implements BrokerDialer for testing
type MockBrokerDialer struct {
	Unreachable map[string]error
	Calls       []string
}

func NewMockBrokerDialer() *MockBrokerDialer {
	return &MockBrokerDialer{Unreachable: make(map[string]error)}
}

func (m *MockBrokerDialer) Ping(ctx context.Context, addr string) error {
	m.Calls = append(m.Calls, addr)
	if err, exists := m.Unreachable[addr]; exists {
		return err
	}
	return nil
}
