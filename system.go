package drivercaps

import (
	"strings"
)

// fromWinINET builds a Proxy record from the WinINET per-user values.
// A PAC URL wins over manual settings, matching WinINET's own precedence;
// with neither present the record is pinned to ProxyDirect.
func fromWinINET(autoConfigURL string, proxyEnable bool, proxyServer, proxyOverride string) (*Proxy, error) {
	p := NewProxy()
	if autoConfigURL != "" {
		if err := p.SetAutoconfigURL(autoConfigURL); err != nil {
			return nil, err
		}
		return p, nil
	}
	if !proxyEnable || proxyServer == "" {
		if err := p.SetType(ProxyDirect); err != nil {
			return nil, err
		}
		return p, nil
	}

	if err := applyWinINETServer(p, proxyServer); err != nil {
		return nil, err
	}
	if bypass := winINETBypass(proxyOverride); bypass != "" {
		if err := p.SetNoProxy(bypass); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// applyWinINETServer parses the ProxyServer value. WinINET stores either
// a single host:port applied to every protocol, or a semicolon list of
// proto=host:port entries.
func applyWinINETServer(p *Proxy, server string) error {
	if !strings.Contains(server, "=") {
		if err := p.SetHTTPProxy(server); err != nil {
			return err
		}
		return p.SetSSLProxy(server)
	}

	for _, entry := range strings.Split(server, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		proto, host, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		host = strings.TrimSpace(host)
		if host == "" {
			continue
		}
		var err error
		switch strings.ToLower(strings.TrimSpace(proto)) {
		case "http":
			err = p.SetHTTPProxy(host)
		case "https":
			err = p.SetSSLProxy(host)
		case "ftp":
			err = p.SetFTPProxy(host)
		case "socks":
			err = p.SetSocksProxy(host)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// winINETBypass converts the semicolon-separated ProxyOverride list to the
// comma-separated noProxy form. The "<local>" marker covers plain
// hostnames without dots; loopback names are the closest portable
// rendering.
func winINETBypass(override string) string {
	var out []string
	for _, entry := range strings.Split(override, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.EqualFold(entry, "<local>") {
			out = append(out, "localhost", "127.0.0.1")
			continue
		}
		out = append(out, entry)
	}
	return strings.Join(out, ",")
}
