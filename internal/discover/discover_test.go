package discover

import "testing"

func TestDiscoverer_SimplifyDomains(t *testing.T) {
	d := &Discoverer{
		Domains: []string{
			"a.com",
			"1.a.com",
			"2.a.com",
			"3.a.com",
			"4.a.com",
			"xyz.jkl.a.com",
			"b.com",
		},
	}

	d.SimplifyDomains()

	if len(d.Domains) != 4 {
		t.Fatalf("number of simplified domains should be %d not %d", 4, len(d.Domains))
	}
}

func TestDiscoverer_AppendExternalDomain(t *testing.T) {
	d := &Discoverer{}

	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"https-absolute", "https://cdn.example.com/a.js", true},
		{"protocol-relative", "//cdn.example.com/a.js", true},
		{"relative-path", "/static/a.js", false},
		{"bare-filename", "a.js", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := d.appendExternalDomain(c.in)
			if got != c.want {
				t.Errorf("appendExternalDomain(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}

	if len(d.Domains) != 2 {
		t.Fatalf("expected 2 recorded domains, got %d: %v", len(d.Domains), d.Domains)
	}
}

func TestResolveScriptURL(t *testing.T) {
	cases := []struct {
		name         string
		in           string
		wantResolved string
		wantKey      string
	}{
		{"protocol-relative", "//cdn.example.com/a.js", "https://cdn.example.com/a.js", "cdn.example.com/a.js"},
		{"absolute-https", "https://cdn.example.com/a.js", "https://cdn.example.com/a.js", "cdn.example.com/a.js"},
		{"site-relative", "/a.js", "https://a.js", "a.js"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resolved, key := resolveScriptURL(c.in)
			if resolved != c.wantResolved || key != c.wantKey {
				t.Errorf("resolveScriptURL(%q) = (%q, %q), want (%q, %q)", c.in, resolved, key, c.wantResolved, c.wantKey)
			}
		})
	}
}
