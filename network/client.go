// Package network builds the HTTP client used for upstream requests.
package network

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/bilihot/bilihot/constant"
	"github.com/bilihot/bilihot/key"
	"github.com/spf13/viper"
	"golang.org/x/net/publicsuffix"
)

// ErrClientUnavailable is returned when the HTTP client cannot be constructed.
var ErrClientUnavailable = errors.New("http client unavailable")

// Options shape the client returned by New.
type Options struct {
	// Proxy is an absolute proxy URL. Empty falls back to the environment.
	Proxy string
	// TLSFingerprint dials with a Chrome ClientHello.
	TLSFingerprint bool
	// Timeout bounds a whole round trip.
	Timeout time.Duration
}

// OptionsFromConfig reads Options from the global configuration.
func OptionsFromConfig() Options {
	return Options{
		Proxy:          viper.GetString(key.NetProxy),
		TLSFingerprint: viper.GetBool(key.NetTLSFingerprint),
		Timeout:        constant.RequestTimeout,
	}
}

// New returns a client scoped to a single run, with its own cookie jar.
func New(opts Options) (*http.Client, error) {
	transport, err := newTransport(opts)
	if err != nil {
		return nil, err
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("%w: cookie jar: %v", ErrClientUnavailable, err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = constant.RequestTimeout
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
		Jar:       jar,
	}, nil
}

func newTransport(opts Options) (*http.Transport, error) {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 4
	t.MaxIdleConnsPerHost = 2
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = constant.RequestTimeout

	if proxy := strings.TrimSpace(opts.Proxy); proxy != "" {
		u, err := url.Parse(proxy)
		if err != nil {
			return nil, fmt.Errorf("%w: proxy %q: %v", ErrClientUnavailable, proxy, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("%w: proxy %q is not an absolute URL", ErrClientUnavailable, proxy)
		}
		t.Proxy = http.ProxyURL(u)
	}

	if opts.TLSFingerprint {
		t.DialTLSContext = dialChrome
		t.ForceAttemptHTTP2 = false
		t.TLSNextProto = make(map[string]func(string, *tls.Conn) http.RoundTripper)
	}

	return t, nil
}
