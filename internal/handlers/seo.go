package handlers

// SEOData is the per-page metadata rendered into the document head.
type SEOData struct {
    Title       string
    Description string
    Canonical   string
    Robots      string
    OG          struct {
        Title       string
        Description string
        Image       string
        Type        string
        URL         string
        SiteName    string
    }
}

// DefaultSEO fills in the site-wide metadata for pages without overrides.
func DefaultSEO(title string) SEOData {
    s := SEOData{
        Title:       title,
        Description: "考核助手：零风险交易考核，通过阶梯式挑战获得真实资金操作资格。",
    }
    s.OG.SiteName = "考核助手"
    s.OG.Type = "website"
    return s
}
