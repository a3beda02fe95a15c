package server

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/kaltdl/kaltdl/filesystem"
	"github.com/kaltdl/kaltdl/where"
)

// BasePort is where the search for a free port starts.
const BasePort = 17170

const portRange = 100

// ErrAlreadyRunning is returned by Lock while another bridge holds the lock file.
var ErrAlreadyRunning = errors.New("bridge is already running")

// Listen binds host:port. Port 0 takes the first free port from BasePort on.
func Listen(host string, port int) (int, net.Listener, error) {
	if port > 0 {
		ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
		if err != nil {
			return 0, nil, fmt.Errorf("could not bind to port %d: %w", port, err)
		}
		return port, ln, nil
	}

	for p := BasePort; p < BasePort+portRange; p++ {
		ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(p)))
		if err == nil {
			return p, ln, nil
		}
	}
	return 0, nil, fmt.Errorf("no free port in %d-%d", BasePort, BasePort+portRange-1)
}

// Lock takes the single-instance lock. Release it with Unlock.
func Lock() (*flock.Flock, error) {
	path := where.LockFile()
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}

	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return nil, ErrAlreadyRunning
	}
	return lock, nil
}

// SavePort advertises port for extension discovery.
func SavePort(port int) error {
	return filesystem.WriteAtomic(where.PortFile(), []byte(strconv.Itoa(port)), 0o644)
}

// RemovePort withdraws the advertised port.
func RemovePort() error {
	err := filesystem.API().Remove(where.PortFile())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ReadPort returns the port a running bridge advertised.
func ReadPort() (int, error) {
	data, err := filesystem.API().ReadFile(where.PortFile())
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}
