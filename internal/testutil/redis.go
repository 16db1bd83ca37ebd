package testutil

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// FakeRedis is an in-memory server speaking enough RESP2 for the cache:
// PING, GET, SET and DEL. Every command it receives is recorded.
type FakeRedis struct {
	ln net.Listener

	mu       sync.Mutex
	data     map[string]string
	commands [][]string
}

// NewFakeRedis starts a server on a loopback port and returns it with a
// connected client. Both are closed when the test ends.
func NewFakeRedis(t *testing.T) (*FakeRedis, *redis.Client) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	f := &FakeRedis{ln: ln, data: make(map[string]string)}
	go f.accept()

	client := redis.NewClient(&redis.Options{
		Addr:            ln.Addr().String(),
		Protocol:        2,
		DisableIdentity: true,
	})
	t.Cleanup(func() {
		client.Close()
		ln.Close()
	})
	return f, client
}

// URL returns a redis:// URL pointing at the server.
func (f *FakeRedis) URL() string {
	return "redis://" + f.ln.Addr().String()
}

// Has reports whether key is stored.
func (f *FakeRedis) Has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok
}

// Put stores a raw value.
func (f *FakeRedis) Put(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
}

// Commands returns the recorded invocations of the named command, each
// without the command name.
func (f *FakeRedis) Commands(name string) [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out [][]string
	for _, cmd := range f.commands {
		if strings.EqualFold(cmd[0], name) {
			out = append(out, cmd[1:])
		}
	}
	return out
}

func (f *FakeRedis) accept() {
	for {
		conn, err := f.ln.Accept()
		if err != nil {
			return
		}
		go f.serve(conn)
	}
}

func (f *FakeRedis) serve(conn net.Conn) {
	defer conn.Close()
	r := bufio.NewReader(conn)
	for {
		args, err := readCommand(r)
		if err != nil {
			return
		}
		if _, err := io.WriteString(conn, f.handle(args)); err != nil {
			return
		}
	}
}

func (f *FakeRedis) handle(args []string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, args)

	switch strings.ToUpper(args[0]) {
	case "PING":
		return "+PONG\r\n"
	case "GET":
		if len(args) < 2 {
			break
		}
		v, ok := f.data[args[1]]
		if !ok {
			return "$-1\r\n"
		}
		return fmt.Sprintf("$%d\r\n%s\r\n", len(v), v)
	case "SET":
		if len(args) < 3 {
			break
		}
		f.data[args[1]] = args[2]
		return "+OK\r\n"
	case "DEL":
		n := 0
		for _, k := range args[1:] {
			if _, ok := f.data[k]; ok {
				delete(f.data, k)
				n++
			}
		}
		return fmt.Sprintf(":%d\r\n", n)
	}
	return fmt.Sprintf("-ERR unknown command '%s'\r\n", args[0])
}

func readCommand(r *bufio.Reader) ([]string, error) {
	line, err := readLine(r)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(line, "*") {
		return nil, fmt.Errorf("expected array, got %q", line)
	}
	n, err := strconv.Atoi(line[1:])
	if err != nil || n < 1 {
		return nil, fmt.Errorf("bad array header %q", line)
	}

	args := make([]string, 0, n)
	for i := 0; i < n; i++ {
		header, err := readLine(r)
		if err != nil {
			return nil, err
		}
		if !strings.HasPrefix(header, "$") {
			return nil, fmt.Errorf("expected bulk string, got %q", header)
		}
		size, err := strconv.Atoi(header[1:])
		if err != nil {
			return nil, err
		}
		buf := make([]byte, size+2)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		args = append(args, string(buf[:size]))
	}
	return args, nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
