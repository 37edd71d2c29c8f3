package drivercaps

import (
	"github.com/zhangyunhao116/drivercaps/internal/capval"
)

// Wire names of the proxy capability fields.
const (
	capProxyType     = "proxyType"
	capFTPProxy      = "ftpProxy"
	capHTTPProxy     = "httpProxy"
	capNoProxy       = "noProxy"
	capAutoconfigURL = "proxyAutoconfigUrl"
	capSSLProxy      = "sslProxy"
	capAutodetect    = "autodetect"
	capSocksProxy    = "socksProxy"
	capSocksUsername = "socksUsername"
	capSocksPassword = "socksPassword"
	capSocksVersion  = "socksVersion"
)

// Proxy is a single-typed proxy settings record. The first successful
// setter pins the record to the proxy type it implies; later setters must
// agree with that type or fail with an *IncompatibleTypeError. The zero
// value is a fresh record of type ProxyUnspecified.
//
// A Proxy is not safe for concurrent mutation; callers sharing one across
// goroutines must synchronize externally.
type Proxy struct {
	proxyType     ProxyType
	autodetect    bool
	ftpProxy      string
	httpProxy     string
	sslProxy      string
	socksProxy    string
	noProxy       string
	autoconfigURL string
	socksUsername string
	socksPassword string
	socksVersion  int // 0 means unset
}

// NewProxy returns a fresh all-defaults record.
func NewProxy() *Proxy {
	return &Proxy{}
}

// FromCapabilities builds a Proxy from a raw capability mapping. Recognized
// keys are applied through the validating setters in a fixed order
// (proxyType first, then the manual host fields, the autoconfig URL, and
// the socks fields); keys whose value is falsy (empty string, false, zero
// number) are skipped as not provided, and unrecognized keys are ignored.
// The first validation failure aborts construction.
//
// One legacy quirk is preserved deliberately: a raw sslProxy value is
// written to the field directly, without the compatibility check and
// without pinning the record to ProxyManual. Setting SSLProxy through the
// accessor after construction behaves normally.
func FromCapabilities(raw map[string]any) (*Proxy, error) {
	p := NewProxy()
	if raw == nil {
		return p, nil
	}

	if v, ok := raw[capProxyType]; ok && capval.Truthy(v) {
		t, err := LookupProxyType(v)
		if err != nil {
			return nil, err
		}
		if err := p.SetType(t); err != nil {
			return nil, err
		}
	}
	if err := p.applyString(raw, capFTPProxy, p.SetFTPProxy); err != nil {
		return nil, err
	}
	if err := p.applyString(raw, capHTTPProxy, p.SetHTTPProxy); err != nil {
		return nil, err
	}
	if err := p.applyString(raw, capNoProxy, p.SetNoProxy); err != nil {
		return nil, err
	}
	if err := p.applyString(raw, capAutoconfigURL, p.SetAutoconfigURL); err != nil {
		return nil, err
	}
	if v, ok := raw[capSSLProxy]; ok && capval.Truthy(v) {
		s, ok := capval.AsString(v)
		if !ok {
			return nil, &InvalidValueError{Field: capSSLProxy, Value: v, Want: "a string"}
		}
		p.sslProxy = s // direct write, legacy quirk
	}
	if v, ok := raw[capAutodetect]; ok && capval.Truthy(v) {
		b, ok := capval.AsBool(v)
		if !ok {
			return nil, &InvalidValueError{Field: capAutodetect, Value: v, Want: "a boolean"}
		}
		if err := p.SetAutodetect(b); err != nil {
			return nil, err
		}
	}
	if err := p.applyString(raw, capSocksProxy, p.SetSocksProxy); err != nil {
		return nil, err
	}
	if err := p.applyString(raw, capSocksUsername, p.SetSocksUsername); err != nil {
		return nil, err
	}
	if err := p.applyString(raw, capSocksPassword, p.SetSocksPassword); err != nil {
		return nil, err
	}
	if v, ok := raw[capSocksVersion]; ok && capval.Truthy(v) {
		n, ok := capval.AsInt(v)
		if !ok {
			return nil, &InvalidValueError{Field: capSocksVersion, Value: v, Want: "an integer"}
		}
		if err := p.SetSocksVersion(n); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// applyString applies one truthy raw string field through its setter.
func (p *Proxy) applyString(raw map[string]any, key string, set func(string) error) error {
	v, ok := raw[key]
	if !ok || !capval.Truthy(v) {
		return nil
	}
	s, ok := capval.AsString(v)
	if !ok {
		return &InvalidValueError{Field: key, Value: v, Want: "a string"}
	}
	return set(s)
}

// verifyTypeCompat enforces the single-typed lifetime invariant: a record
// pinned to a concrete type rejects writes implying any other type. It is
// called before every field write, so a failed check mutates nothing.
func (p *Proxy) verifyTypeCompat(want ProxyType) error {
	if p.proxyType != ProxyUnspecified && p.proxyType != want {
		return &IncompatibleTypeError{Current: p.proxyType, Requested: want}
	}
	return nil
}

// Type returns the proxy type the record is pinned to, or
// ProxyUnspecified for a fresh record.
func (p *Proxy) Type() ProxyType { return p.proxyType }

// SetType pins the record to t. Re-asserting the current type is a no-op;
// moving a pinned record to a different type fails, as does a value
// outside the ProxyType vocabulary.
func (p *Proxy) SetType(t ProxyType) error {
	if !t.valid() {
		return &UnknownProxyTypeError{Value: t}
	}
	if err := p.verifyTypeCompat(t); err != nil {
		return err
	}
	p.proxyType = t
	return nil
}

// Autodetect reports whether proxy autodetection is requested.
func (p *Proxy) Autodetect() bool { return p.autodetect }

// SetAutodetect requests proxy autodetection, pinning the record to
// ProxyAutodetect.
func (p *Proxy) SetAutodetect(v bool) error {
	if err := p.verifyTypeCompat(ProxyAutodetect); err != nil {
		return err
	}
	p.proxyType = ProxyAutodetect
	p.autodetect = v
	return nil
}

// FTPProxy returns the FTP proxy host.
func (p *Proxy) FTPProxy() string { return p.ftpProxy }

// SetFTPProxy sets the FTP proxy host, pinning the record to ProxyManual.
func (p *Proxy) SetFTPProxy(v string) error {
	if err := p.verifyTypeCompat(ProxyManual); err != nil {
		return err
	}
	p.proxyType = ProxyManual
	p.ftpProxy = v
	return nil
}

// HTTPProxy returns the HTTP proxy host.
func (p *Proxy) HTTPProxy() string { return p.httpProxy }

// SetHTTPProxy sets the HTTP proxy host, pinning the record to ProxyManual.
func (p *Proxy) SetHTTPProxy(v string) error {
	if err := p.verifyTypeCompat(ProxyManual); err != nil {
		return err
	}
	p.proxyType = ProxyManual
	p.httpProxy = v
	return nil
}

// SSLProxy returns the HTTPS proxy host.
func (p *Proxy) SSLProxy() string { return p.sslProxy }

// SetSSLProxy sets the HTTPS proxy host, pinning the record to ProxyManual.
func (p *Proxy) SetSSLProxy(v string) error {
	if err := p.verifyTypeCompat(ProxyManual); err != nil {
		return err
	}
	p.proxyType = ProxyManual
	p.sslProxy = v
	return nil
}

// SocksProxy returns the SOCKS proxy host.
func (p *Proxy) SocksProxy() string { return p.socksProxy }

// SetSocksProxy sets the SOCKS proxy host, pinning the record to
// ProxyManual.
func (p *Proxy) SetSocksProxy(v string) error {
	if err := p.verifyTypeCompat(ProxyManual); err != nil {
		return err
	}
	p.proxyType = ProxyManual
	p.socksProxy = v
	return nil
}

// NoProxy returns the addresses that bypass the proxy.
func (p *Proxy) NoProxy() string { return p.noProxy }

// SetNoProxy sets the addresses that bypass the proxy, pinning the record
// to ProxyManual.
func (p *Proxy) SetNoProxy(v string) error {
	if err := p.verifyTypeCompat(ProxyManual); err != nil {
		return err
	}
	p.proxyType = ProxyManual
	p.noProxy = v
	return nil
}

// AutoconfigURL returns the PAC autoconfiguration URL.
func (p *Proxy) AutoconfigURL() string { return p.autoconfigURL }

// SetAutoconfigURL sets the PAC autoconfiguration URL, pinning the record
// to ProxyPAC.
func (p *Proxy) SetAutoconfigURL(v string) error {
	if err := p.verifyTypeCompat(ProxyPAC); err != nil {
		return err
	}
	p.proxyType = ProxyPAC
	p.autoconfigURL = v
	return nil
}

// SocksUsername returns the SOCKS proxy username.
func (p *Proxy) SocksUsername() string { return p.socksUsername }

// SetSocksUsername sets the SOCKS proxy username, pinning the record to
// ProxyManual.
func (p *Proxy) SetSocksUsername(v string) error {
	if err := p.verifyTypeCompat(ProxyManual); err != nil {
		return err
	}
	p.proxyType = ProxyManual
	p.socksUsername = v
	return nil
}

// SocksPassword returns the SOCKS proxy password.
func (p *Proxy) SocksPassword() string { return p.socksPassword }

// SetSocksPassword sets the SOCKS proxy password, pinning the record to
// ProxyManual.
func (p *Proxy) SetSocksPassword(v string) error {
	if err := p.verifyTypeCompat(ProxyManual); err != nil {
		return err
	}
	p.proxyType = ProxyManual
	p.socksPassword = v
	return nil
}

// SocksVersion returns the SOCKS protocol version, or 0 when unset.
func (p *Proxy) SocksVersion() int { return p.socksVersion }

// SetSocksVersion sets the SOCKS protocol version, pinning the record to
// ProxyManual. The value itself is not validated.
func (p *Proxy) SetSocksVersion(v int) error {
	if err := p.verifyTypeCompat(ProxyManual); err != nil {
		return err
	}
	p.proxyType = ProxyManual
	p.socksVersion = v
	return nil
}

// Capabilities returns the wire-level capability mapping for the record:
// always the lowercase proxyType, plus every field whose value is truthy
// under its wire name. socksVersion is emitted as a native int. The
// method is pure; calling it never changes the record.
func (p *Proxy) Capabilities() map[string]any {
	caps := map[string]any{capProxyType: p.proxyType.String()}
	if p.autodetect {
		caps[capAutodetect] = p.autodetect
	}
	if p.ftpProxy != "" {
		caps[capFTPProxy] = p.ftpProxy
	}
	if p.httpProxy != "" {
		caps[capHTTPProxy] = p.httpProxy
	}
	if p.autoconfigURL != "" {
		caps[capAutoconfigURL] = p.autoconfigURL
	}
	if p.sslProxy != "" {
		caps[capSSLProxy] = p.sslProxy
	}
	if p.noProxy != "" {
		caps[capNoProxy] = p.noProxy
	}
	if p.socksProxy != "" {
		caps[capSocksProxy] = p.socksProxy
	}
	if p.socksUsername != "" {
		caps[capSocksUsername] = p.socksUsername
	}
	if p.socksPassword != "" {
		caps[capSocksPassword] = p.socksPassword
	}
	if p.socksVersion != 0 {
		caps[capSocksVersion] = p.socksVersion
	}
	return caps
}
