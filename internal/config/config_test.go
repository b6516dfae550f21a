package config

import "testing"

func TestResolveBaseURLProductionHost(t *testing.T) {
	b := BackendConfig{
		ProductionHost: "helpdesk.example.com",
		ProductionURL:  "https://api.helpdesk.example.com",
		LocalURL:       "http://localhost:5192",
	}

	if got := b.ResolveBaseURL("helpdesk.example.com"); got != b.ProductionURL {
		t.Fatalf("expected production URL, got %s", got)
	}
	if got := b.ResolveBaseURL("HELPDESK.EXAMPLE.COM"); got != b.ProductionURL {
		t.Fatalf("hostname match must be case-insensitive, got %s", got)
	}
}

func TestResolveBaseURLFallsBackToLocal(t *testing.T) {
	b := BackendConfig{
		ProductionHost: "helpdesk.example.com",
		ProductionURL:  "https://api.helpdesk.example.com",
		LocalURL:       "http://localhost:5192",
	}

	for _, host := range []string{"", "dev-laptop", "staging.example.com"} {
		if got := b.ResolveBaseURL(host); got != b.LocalURL {
			t.Fatalf("hostname %q: expected local URL, got %s", host, got)
		}
	}
}

func TestResolveBaseURLExplicitOverride(t *testing.T) {
	b := BackendConfig{
		BaseURL:        "http://backend.internal:8080",
		ProductionHost: "helpdesk.example.com",
		ProductionURL:  "https://api.helpdesk.example.com",
		LocalURL:       "http://localhost:5192",
	}

	if got := b.ResolveBaseURL("helpdesk.example.com"); got != b.BaseURL {
		t.Fatalf("explicit base URL must win, got %s", got)
	}
}
