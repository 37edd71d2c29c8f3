// Package drivercaps models browser session settings that a remote
// automation server applies on the client's behalf, exchanged as
// capability mappings.
//
// The central type is Proxy, a single-typed settings record: the first
// field written pins the record to one proxy scheme (manual host lists,
// a PAC autoconfig URL, autodetection, ...) and every later write must
// agree with it. Records serialize to and from the wire-level
// capability mapping with Capabilities and FromCapabilities.
//
// Key features:
//   - Closed ProxyType vocabulary with case-insensitive lookup
//   - Validating setters enforcing the single-typed lifetime invariant
//   - Truthy-only capability round-trips matching the wire protocol
//   - Bridges describing settings as environment variables or an
//     httpproxy.Config for a controlled process
//
// Basic usage:
//
//	p := drivercaps.NewProxy()
//	if err := p.SetHTTPProxy("proxy.example.com:8080"); err != nil {
//	    log.Fatal(err)
//	}
//	caps := p.Capabilities() // {"proxyType": "manual", "httpProxy": ...}
//
// The package never opens a connection to any proxy; it only describes
// configuration for another process to apply.
package drivercaps
