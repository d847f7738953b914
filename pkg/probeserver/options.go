package probeserver

import (
	"log/slog"
	"time"

	"github.com/considonet/g-env/pkg/host/htmlhost"
)

// Option configures the server.
type Option func(*options)

type options struct {
	addr              string
	readHeaderTimeout time.Duration
	writeTimeout      time.Duration
	shutdownTimeout   time.Duration
	log               *slog.Logger
	hostOpts          []htmlhost.Option
	onListen          []func(addr string)
}

func defaultOptions() *options {
	return &options{
		addr:              ":8080",
		readHeaderTimeout: 5 * time.Second,
		writeTimeout:      10 * time.Second,
		shutdownTimeout:   5 * time.Second,
	}
}

func WithAddr(addr string) Option {
	if addr == "" {
		panic("WithAddr: addr cannot be empty")
	}
	return func(o *options) { o.addr = addr }
}

func WithReadHeaderTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithReadHeaderTimeout: duration must be > 0")
	}
	return func(o *options) { o.readHeaderTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithWriteTimeout: duration must be > 0")
	}
	return func(o *options) { o.writeTimeout = d }
}

// WithShutdownTimeout bounds graceful shutdown once Run's context is done.
func WithShutdownTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithShutdownTimeout: duration must be > 0")
	}
	return func(o *options) { o.shutdownTimeout = d }
}

// WithLogger sets the logger for server and request logs. Logs are discarded
// without one.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithHostOptions is passed to every per-request host, e.g. to declare which
// style properties clients are assumed to support.
func WithHostOptions(opts ...htmlhost.Option) Option {
	return func(o *options) { o.hostOpts = append(o.hostOpts, opts...) }
}

// WithListenHook registers a callback invoked with the bound address once the
// listener is open. Useful with ":0".
func WithListenHook(fn func(addr string)) Option {
	if fn == nil {
		panic("WithListenHook: nil hook")
	}
	return func(o *options) { o.onListen = append(o.onListen, fn) }
}
