package market

import "testing"

func TestDemoProviderLookup(t *testing.T) {
	p := &DemoProvider{}

	info, err := p.Lookup("AAPL")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if info.CompanyName != "Apple Inc." || info.MarketCap == 0 {
		t.Errorf("unexpected entry: %+v", info)
	}
}

func TestDemoProviderUnknownTicker(t *testing.T) {
	p := &DemoProvider{}

	info, err := p.Lookup("ZZZZ")
	if err != nil {
		t.Fatalf("Lookup must not fail: %v", err)
	}
	if info.CompanyName != "ZZZZ Corp." {
		t.Errorf("CompanyName = %q, want generic placeholder", info.CompanyName)
	}
	if info.MarketCap != 0 || info.CurrentPrice != 0 {
		t.Errorf("placeholder must carry zero market data: %+v", info)
	}
}
