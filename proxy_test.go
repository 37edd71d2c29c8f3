package drivercaps

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFreshProxyCapabilities(t *testing.T) {
	p := NewProxy()

	want := map[string]any{"proxyType": "unspecified"}
	if diff := cmp.Diff(want, p.Capabilities()); diff != "" {
		t.Errorf("Capabilities() mismatch (-want +got):\n%s", diff)
	}
}

func TestZeroValueProxyUsable(t *testing.T) {
	var p Proxy
	if p.Type() != ProxyUnspecified {
		t.Fatalf("Type(): got %v, want ProxyUnspecified", p.Type())
	}
	if err := p.SetHTTPProxy("proxy.example.com:8080"); err != nil {
		t.Fatalf("SetHTTPProxy: unexpected error: %v", err)
	}
	if p.Type() != ProxyManual {
		t.Errorf("Type(): got %v, want ProxyManual", p.Type())
	}
}

func TestSetterPinsType(t *testing.T) {
	tests := []struct {
		name string
		set  func(p *Proxy) error
		want ProxyType
	}{
		{"SetAutodetect", func(p *Proxy) error { return p.SetAutodetect(true) }, ProxyAutodetect},
		{"SetFTPProxy", func(p *Proxy) error { return p.SetFTPProxy("ftp.example.com:2121") }, ProxyManual},
		{"SetHTTPProxy", func(p *Proxy) error { return p.SetHTTPProxy("proxy.example.com:8080") }, ProxyManual},
		{"SetSSLProxy", func(p *Proxy) error { return p.SetSSLProxy("ssl.example.com:8080") }, ProxyManual},
		{"SetSocksProxy", func(p *Proxy) error { return p.SetSocksProxy("socks.example.com:1080") }, ProxyManual},
		{"SetNoProxy", func(p *Proxy) error { return p.SetNoProxy("localhost") }, ProxyManual},
		{"SetAutoconfigURL", func(p *Proxy) error { return p.SetAutoconfigURL("http://pac.example.com/wpad.dat") }, ProxyPAC},
		{"SetSocksUsername", func(p *Proxy) error { return p.SetSocksUsername("user") }, ProxyManual},
		{"SetSocksPassword", func(p *Proxy) error { return p.SetSocksPassword("secret") }, ProxyManual},
		{"SetSocksVersion", func(p *Proxy) error { return p.SetSocksVersion(5) }, ProxyManual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProxy()
			if err := tt.set(p); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Type() != tt.want {
				t.Errorf("Type(): got %v, want %v", p.Type(), tt.want)
			}
		})
	}
}

func TestHTTPProxySideEffectObservable(t *testing.T) {
	p := NewProxy()
	if err := p.SetHTTPProxy("proxy.example.com:8080"); err != nil {
		t.Fatalf("SetHTTPProxy: unexpected error: %v", err)
	}

	want := map[string]any{
		"proxyType": "manual",
		"httpProxy": "proxy.example.com:8080",
	}
	if diff := cmp.Diff(want, p.Capabilities()); diff != "" {
		t.Errorf("Capabilities() mismatch (-want +got):\n%s", diff)
	}
}

func TestIncompatibleTypeRejected(t *testing.T) {
	p := NewProxy()
	if err := p.SetHTTPProxy("proxy.example.com:8080"); err != nil {
		t.Fatalf("SetHTTPProxy: unexpected error: %v", err)
	}

	err := p.SetAutoconfigURL("http://x/pac")
	if !errors.Is(err, ErrIncompatibleProxyType) {
		t.Fatalf("SetAutoconfigURL: got %v, want ErrIncompatibleProxyType", err)
	}

	var ite *IncompatibleTypeError
	if !errors.As(err, &ite) {
		t.Fatalf("got %T, want *IncompatibleTypeError", err)
	}
	if ite.Current != ProxyManual || ite.Requested != ProxyPAC {
		t.Errorf("error fields: got current=%v requested=%v, want manual/pac", ite.Current, ite.Requested)
	}

	// A failed check must leave the record untouched.
	if p.Type() != ProxyManual {
		t.Errorf("Type(): got %v, want ProxyManual", p.Type())
	}
	if p.HTTPProxy() != "proxy.example.com:8080" {
		t.Errorf("HTTPProxy(): got %q, want %q", p.HTTPProxy(), "proxy.example.com:8080")
	}
	if p.AutoconfigURL() != "" {
		t.Errorf("AutoconfigURL(): got %q, want empty", p.AutoconfigURL())
	}
}

func TestSameTypeReassertionAllowed(t *testing.T) {
	p := NewProxy()
	if err := p.SetHTTPProxy("a.example.com:8080"); err != nil {
		t.Fatalf("SetHTTPProxy: unexpected error: %v", err)
	}
	if err := p.SetSSLProxy("b.example.com:8080"); err != nil {
		t.Fatalf("SetSSLProxy: unexpected error: %v", err)
	}
	if err := p.SetType(ProxyManual); err != nil {
		t.Fatalf("SetType(ProxyManual): unexpected error: %v", err)
	}
	if err := p.SetType(ProxyPAC); !errors.Is(err, ErrIncompatibleProxyType) {
		t.Errorf("SetType(ProxyPAC): got %v, want ErrIncompatibleProxyType", err)
	}
}

func TestSetTypeRejectsUnknownVariant(t *testing.T) {
	p := NewProxy()
	if err := p.SetType(ProxyType(42)); !errors.Is(err, ErrUnknownProxyType) {
		t.Errorf("SetType(42): got %v, want ErrUnknownProxyType", err)
	}
	if p.Type() != ProxyUnspecified {
		t.Errorf("Type(): got %v, want ProxyUnspecified after failed write", p.Type())
	}
}

func TestAutodetectPinsType(t *testing.T) {
	p := NewProxy()
	if err := p.SetAutodetect(true); err != nil {
		t.Fatalf("SetAutodetect: unexpected error: %v", err)
	}
	if p.Type() != ProxyAutodetect {
		t.Errorf("Type(): got %v, want ProxyAutodetect", p.Type())
	}
	if !p.Autodetect() {
		t.Error("Autodetect(): got false, want true")
	}
}

func TestFromCapabilitiesRoundTrip(t *testing.T) {
	p, err := FromCapabilities(map[string]any{
		"proxyType":          "PAC",
		"proxyAutoconfigUrl": "http://x/pac",
	})
	if err != nil {
		t.Fatalf("FromCapabilities: unexpected error: %v", err)
	}

	want := map[string]any{
		"proxyType":          "pac",
		"proxyAutoconfigUrl": "http://x/pac",
	}
	if diff := cmp.Diff(want, p.Capabilities()); diff != "" {
		t.Errorf("Capabilities() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromCapabilitiesNilRaw(t *testing.T) {
	p, err := FromCapabilities(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Type() != ProxyUnspecified {
		t.Errorf("Type(): got %v, want ProxyUnspecified", p.Type())
	}
}

func TestFromCapabilitiesSkipsFalsyValues(t *testing.T) {
	p, err := FromCapabilities(map[string]any{
		"httpProxy":    "",
		"autodetect":   false,
		"socksVersion": 0,
		"noProxy":      "",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]any{"proxyType": "unspecified"}
	if diff := cmp.Diff(want, p.Capabilities()); diff != "" {
		t.Errorf("Capabilities() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromCapabilitiesIgnoresUnknownKeys(t *testing.T) {
	p, err := FromCapabilities(map[string]any{
		"httpProxy":  "proxy.example.com:8080",
		"browser":    "firefox",
		"retryCount": 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.HTTPProxy() != "proxy.example.com:8080" {
		t.Errorf("HTTPProxy(): got %q, want %q", p.HTTPProxy(), "proxy.example.com:8080")
	}
	if _, present := p.Capabilities()["browser"]; present {
		t.Error("unknown key leaked into capabilities")
	}
}

func TestFromCapabilitiesConflictFailsFast(t *testing.T) {
	// httpProxy is applied before proxyAutoconfigUrl, so the PAC field
	// hits an already-manual record.
	_, err := FromCapabilities(map[string]any{
		"httpProxy":          "proxy.example.com:8080",
		"proxyAutoconfigUrl": "http://x/pac",
	})
	if !errors.Is(err, ErrIncompatibleProxyType) {
		t.Errorf("got %v, want ErrIncompatibleProxyType", err)
	}
}

func TestFromCapabilitiesSSLProxyBypass(t *testing.T) {
	// A raw sslProxy value skips the validating setter: it neither pins
	// the type nor runs the compatibility check.
	p, err := FromCapabilities(map[string]any{"sslProxy": "ssl.example.com:8080"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Type() != ProxyUnspecified {
		t.Errorf("Type(): got %v, want ProxyUnspecified", p.Type())
	}

	want := map[string]any{
		"proxyType": "unspecified",
		"sslProxy":  "ssl.example.com:8080",
	}
	if diff := cmp.Diff(want, p.Capabilities()); diff != "" {
		t.Errorf("Capabilities() mismatch (-want +got):\n%s", diff)
	}

	// It also does not conflict with a PAC record, unlike the accessor.
	p, err = FromCapabilities(map[string]any{
		"proxyAutoconfigUrl": "http://x/pac",
		"sslProxy":           "ssl.example.com:8080",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Type() != ProxyPAC {
		t.Errorf("Type(): got %v, want ProxyPAC", p.Type())
	}
	if p.SSLProxy() != "ssl.example.com:8080" {
		t.Errorf("SSLProxy(): got %q, want %q", p.SSLProxy(), "ssl.example.com:8080")
	}
}

func TestFromCapabilitiesAutodetectShape(t *testing.T) {
	// A truthy non-boolean autodetect is a shape error, not a coercion.
	_, err := FromCapabilities(map[string]any{"autodetect": "yes"})
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf(`autodetect "yes": got %v, want ErrInvalidValue`, err)
	}

	p, err := FromCapabilities(map[string]any{"autodetect": true})
	if err != nil {
		t.Fatalf("autodetect true: unexpected error: %v", err)
	}
	if p.Type() != ProxyAutodetect {
		t.Errorf("Type(): got %v, want ProxyAutodetect", p.Type())
	}
}

func TestFromCapabilitiesBadProxyType(t *testing.T) {
	_, err := FromCapabilities(map[string]any{"proxyType": "bogus"})
	if !errors.Is(err, ErrUnknownProxyType) {
		t.Errorf("got %v, want ErrUnknownProxyType", err)
	}
}

func TestFromCapabilitiesWrappedProxyType(t *testing.T) {
	p, err := FromCapabilities(map[string]any{
		"proxyType": map[string]any{"string": "MANUAL"},
		"httpProxy": "proxy.example.com:8080",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Type() != ProxyManual {
		t.Errorf("Type(): got %v, want ProxyManual", p.Type())
	}
}

func TestSocksVersionSerializedAsInt(t *testing.T) {
	p := NewProxy()
	if err := p.SetSocksProxy("socks.example.com:1080"); err != nil {
		t.Fatalf("SetSocksProxy: unexpected error: %v", err)
	}
	if err := p.SetSocksVersion(5); err != nil {
		t.Fatalf("SetSocksVersion: unexpected error: %v", err)
	}

	v, present := p.Capabilities()["socksVersion"]
	if !present {
		t.Fatal("socksVersion missing from capabilities")
	}
	n, ok := v.(int)
	if !ok {
		t.Fatalf("socksVersion: got %T, want int", v)
	}
	if n != 5 {
		t.Errorf("socksVersion: got %d, want 5", n)
	}
}

func TestFromCapabilitiesSocksVersionJSONNumber(t *testing.T) {
	// JSON decoding hands numbers over as float64.
	p, err := FromCapabilities(map[string]any{
		"socksProxy":   "socks.example.com:1080",
		"socksVersion": float64(5),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.SocksVersion() != 5 {
		t.Errorf("SocksVersion(): got %d, want 5", p.SocksVersion())
	}

	_, err = FromCapabilities(map[string]any{"socksVersion": 5.5})
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("socksVersion 5.5: got %v, want ErrInvalidValue", err)
	}
}

func TestFromCapabilitiesFullManualRecord(t *testing.T) {
	raw := map[string]any{
		"proxyType":     "manual",
		"ftpProxy":      "ftp.example.com:2121",
		"httpProxy":     "proxy.example.com:8080",
		"sslProxy":      "ssl.example.com:8080",
		"noProxy":       "localhost,127.0.0.1",
		"socksProxy":    "socks.example.com:1080",
		"socksUsername": "user",
		"socksPassword": "secret",
		"socksVersion":  5,
	}
	p, err := FromCapabilities(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(raw, p.Capabilities()); diff != "" {
		t.Errorf("Capabilities() mismatch (-want +got):\n%s", diff)
	}
}

func TestCapabilitiesPure(t *testing.T) {
	p := NewProxy()
	if err := p.SetHTTPProxy("proxy.example.com:8080"); err != nil {
		t.Fatalf("SetHTTPProxy: unexpected error: %v", err)
	}

	first := p.Capabilities()
	second := p.Capabilities()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Capabilities() calls differ (-first +second):\n%s", diff)
	}

	// Mutating a returned mapping must not affect the record.
	first["httpProxy"] = "tampered"
	if p.HTTPProxy() != "proxy.example.com:8080" {
		t.Errorf("HTTPProxy(): got %q after external map mutation", p.HTTPProxy())
	}
}

func TestInstancesDoNotShareState(t *testing.T) {
	// Two records configured differently must stay independent.
	a := NewProxy()
	if err := a.SetHTTPProxy("a.example.com:8080"); err != nil {
		t.Fatalf("SetHTTPProxy: unexpected error: %v", err)
	}

	b := NewProxy()
	if b.Type() != ProxyUnspecified {
		t.Errorf("b.Type(): got %v, want ProxyUnspecified", b.Type())
	}
	if b.HTTPProxy() != "" {
		t.Errorf("b.HTTPProxy(): got %q, want empty", b.HTTPProxy())
	}
	if err := b.SetAutoconfigURL("http://x/pac"); err != nil {
		t.Fatalf("b.SetAutoconfigURL: unexpected error: %v", err)
	}
	if a.Type() != ProxyManual {
		t.Errorf("a.Type(): got %v, want ProxyManual", a.Type())
	}
}
