package i18n

import "testing"

func TestResolveHonorsQValues(t *testing.T) {
    b, err := Load("../../locales", "zh", []string{"zh", "en"})
    if err != nil {
        t.Fatalf("load: %v", err)
    }
    got := b.Resolve("zh;q=0.8, en;q=0.9")
    if got != "en" {
        t.Fatalf("expected en, got %s", got)
    }
}

func TestResolveFallsBackToChinese(t *testing.T) {
    b, err := Load("../../locales", "zh", []string{"zh", "en"})
    if err != nil {
        t.Fatalf("load: %v", err)
    }
    if got := b.Resolve("fr-FR, de;q=0.5"); got != "zh" {
        t.Fatalf("expected zh, got %s", got)
    }
}

func TestTFallsBackThroughChain(t *testing.T) {
    b, err := Load("../../locales", "zh", []string{"zh", "en"})
    if err != nil {
        t.Fatalf("load: %v", err)
    }
    if got := b.T("en", "no.such.key"); got != "no.such.key" {
        t.Fatalf("expected key echo, got %s", got)
    }
}
