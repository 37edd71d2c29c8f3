package drivercaps

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/http/httpproxy"
)

// Environ describes a manual proxy record as environment variables,
// returned as "KEY=VALUE" strings suitable for use in exec.Cmd.Env. Hosts
// without an explicit scheme are given http://. SOCKS settings become an
// ALL_PROXY URL, carrying credentials and the protocol version when set.
//
// Only ProxyManual records translate; the environment-variable protocol
// cannot express PAC, autodetection, or system lookup, so every other
// type yields nil.
func (p *Proxy) Environ() []string {
	if p.proxyType != ProxyManual {
		return nil
	}

	var env []string
	if p.httpProxy != "" {
		u := ensureScheme(p.httpProxy)
		env = append(env, "HTTP_PROXY="+u, "http_proxy="+u)
	}
	if p.sslProxy != "" {
		u := ensureScheme(p.sslProxy)
		env = append(env, "HTTPS_PROXY="+u, "https_proxy="+u)
	}
	if p.ftpProxy != "" {
		u := ensureScheme(p.ftpProxy)
		env = append(env, "FTP_PROXY="+u, "ftp_proxy="+u)
	}
	if p.socksProxy != "" {
		u := p.socksURL()
		env = append(env, "ALL_PROXY="+u, "all_proxy="+u)
	}
	if p.noProxy != "" {
		env = append(env, "NO_PROXY="+p.noProxy, "no_proxy="+p.noProxy)
	}
	return env
}

// HTTPConfig describes a manual proxy record as an httpproxy.Config for
// Go HTTP clients running in the controlled process. Non-manual records
// yield nil.
func (p *Proxy) HTTPConfig() *httpproxy.Config {
	if p.proxyType != ProxyManual {
		return nil
	}
	cfg := &httpproxy.Config{NoProxy: p.noProxy}
	if p.httpProxy != "" {
		cfg.HTTPProxy = ensureScheme(p.httpProxy)
	}
	if p.sslProxy != "" {
		cfg.HTTPSProxy = ensureScheme(p.sslProxy)
	}
	return cfg
}

// socksURL renders the SOCKS settings as a proxy URL.
func (p *Proxy) socksURL() string {
	scheme := "socks5"
	if p.socksVersion == 4 {
		scheme = "socks" + strconv.Itoa(p.socksVersion)
	}
	u := &url.URL{Scheme: scheme, Host: p.socksProxy}
	if p.socksUsername != "" {
		u.User = url.UserPassword(p.socksUsername, p.socksPassword)
	}
	return u.String()
}

// ensureScheme prefixes http:// when the host carries no scheme, the
// usual wire form for manual proxy fields.
func ensureScheme(host string) string {
	if strings.Contains(host, "://") {
		return host
	}
	return "http://" + host
}
