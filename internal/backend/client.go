package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTimeout  = 8 * time.Second
	defaultCacheTTL = time.Minute
)

// Client talks to the hosted data platform: table reads under /rest/v1 and
// edge-function RPCs under /functions/v1, both authenticated with one static
// key. When baseURL is empty the client serves built-in sample data, which
// keeps local development working without a provisioned backend.
type Client struct {
	baseURL string
	key     string
	http    *http.Client
	log     *zap.Logger

	cacheMu  sync.RWMutex
	cache    map[string]cacheEntry
	cacheTTL time.Duration
}

type cacheEntry struct {
	rows    any
	expires time.Time
}

// NewClient constructs a backend client. logger may be nil.
func NewClient(baseURL, key string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:  baseURL,
		key:      key,
		http:     &http.Client{Timeout: defaultTimeout},
		log:      logger,
		cache:    map[string]cacheEntry{},
		cacheTTL: defaultCacheTTL,
	}
}

// SetCacheTTL overrides the table-read cache duration; d <= 0 disables
// caching (primarily for tests).
func (c *Client) SetCacheTTL(d time.Duration) {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()
	c.cacheTTL = d
}

func (c *Client) restURL(table, rawQuery string) string {
	return c.baseURL + "/rest/v1/" + url.PathEscape(table) + "?" + rawQuery
}

func (c *Client) functionURL(name string) string {
	return c.baseURL + "/functions/v1/" + name
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
}

// listRows fetches every active row of a table in the given order. label is
// the human-readable table name interpolated into the user-facing failure
// message. Successful reads are cached briefly; failures are never cached so
// a retry always goes back to the wire.
func listRows[T any](ctx context.Context, c *Client, table, label, orderColumn string) ([]T, error) {
	rawQuery := "select=*&is_active=eq.true&order=" + orderColumn + ".asc"
	cacheKey := table + "?" + rawQuery
	if rows, ok := cachedRows[T](c, cacheKey); ok {
		return rows, nil
	}

	rows, err := fetchRows[T](ctx, c, c.restURL(table, rawQuery), label)
	if err != nil {
		return nil, err
	}
	storeRows(c, cacheKey, rows)
	return rows, nil
}

func fetchRows[T any](ctx context.Context, c *Client, endpoint, label string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, userErr(MsgCheckNetwork, err)
	}
	c.authorize(req)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isNetworkError(err) {
			return nil, userErr(MsgNetwork, err)
		}
		return nil, userErr(MsgCheckNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("table read failed",
			zap.String("endpoint", req.URL.Path),
			zap.Int("status", resp.StatusCode))
		return nil, userErr(fmt.Sprintf("获取%s失败，状态码: %d", label, resp.StatusCode), nil)
	}

	var rows []T
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, userErr(MsgBadResponse, err)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

func cachedRows[T any](c *Client, key string) ([]T, bool) {
	c.cacheMu.RLock()
	defer c.cacheMu.RUnlock()
	if c.cacheTTL <= 0 {
		return nil, false
	}
	entry, ok := c.cache[key]
	if !ok || time.Now().After(entry.expires) {
		return nil, false
	}
	rows, ok := entry.rows.([]T)
	return rows, ok
}

func storeRows[T any](c *Client, key string, rows []T) {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()
	if c.cacheTTL <= 0 {
		return
	}
	c.cache[key] = cacheEntry{rows: rows, expires: time.Now().Add(c.cacheTTL)}
}

// Highlights returns the active home-page selling points.
func (c *Client) Highlights(ctx context.Context) ([]Highlight, error) {
	if c.baseURL == "" {
		return fakeHighlights(), nil
	}
	return listRows[Highlight](ctx, c, "highlights", "核心亮点列表", "display_order")
}

// CaseStudies returns the active shared trading cases.
func (c *Client) CaseStudies(ctx context.Context) ([]CaseStudy, error) {
	if c.baseURL == "" {
		return fakeCaseStudies(), nil
	}
	return listRows[CaseStudy](ctx, c, "case_studies", "案例分享列表", "display_order")
}

// FinanceLiveStreams returns the active market commentary streams.
func (c *Client) FinanceLiveStreams(ctx context.Context) ([]FinanceLiveStream, error) {
	if c.baseURL == "" {
		return fakeFinanceLiveStreams(), nil
	}
	return listRows[FinanceLiveStream](ctx, c, "finance_live_streams", "财经直播流列表", "display_order")
}

// ProgramContent returns the active program introduction blocks.
func (c *Client) ProgramContent(ctx context.Context) ([]ProgramContent, error) {
	if c.baseURL == "" {
		return fakeProgramContent(), nil
	}
	return listRows[ProgramContent](ctx, c, "program_content", "计划介绍内容列表", "display_order")
}

// GettingStartedSteps returns the active onboarding steps.
func (c *Client) GettingStartedSteps(ctx context.Context) ([]GettingStartedStep, error) {
	if c.baseURL == "" {
		return fakeGettingStartedSteps(), nil
	}
	return listRows[GettingStartedStep](ctx, c, "getting_started_steps", "启动流程步骤列表", "display_order")
}

// ViolationRules returns the active rule descriptions.
func (c *Client) ViolationRules(ctx context.Context) ([]ViolationRule, error) {
	if c.baseURL == "" {
		return fakeViolationRules(), nil
	}
	return listRows[ViolationRule](ctx, c, "violation_rules", "违规说明规则列表", "display_order")
}

// FAQItems returns the active questions.
func (c *Client) FAQItems(ctx context.Context) ([]FAQItem, error) {
	if c.baseURL == "" {
		return fakeFAQItems(), nil
	}
	return listRows[FAQItem](ctx, c, "faq_items", "常见问题列表", "display_order")
}

// RiskWarning returns the single active risk disclosure, or nil when the
// table is empty.
func (c *Client) RiskWarning(ctx context.Context) (*RiskWarning, error) {
	if c.baseURL == "" {
		w := fakeRiskWarning()
		return &w, nil
	}
	rawQuery := "select=*&is_active=eq.true&limit=1"
	rows, err := fetchRows[RiskWarning](ctx, c, c.restURL("risk_warnings", rawQuery), "风险提示内容")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// SupportTeams returns the active support contacts, unfiltered; callers
// apply the channel-visibility predicate.
func (c *Client) SupportTeams(ctx context.Context) ([]SupportTeam, error) {
	if c.baseURL == "" {
		return fakeSupportTeams(), nil
	}
	return listRows[SupportTeam](ctx, c, "support_teams", "支持团队列表", "id")
}

// MoreTips returns the active supplementary notices, unfiltered.
func (c *Client) MoreTips(ctx context.Context) ([]MoreTip, error) {
	if c.baseURL == "" {
		return fakeMoreTips(), nil
	}
	return listRows[MoreTip](ctx, c, "more_tips", "更多提示列表", "display_order")
}

// MenuItems returns the active assistant menu entries, unfiltered.
func (c *Client) MenuItems(ctx context.Context) ([]MenuItem, error) {
	if c.baseURL == "" {
		return fakeMenuItems(), nil
	}
	return listRows[MenuItem](ctx, c, "menu_items", "菜单项", "order_index")
}
