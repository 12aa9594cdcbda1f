package backend

// Row types mirror the data platform's tables column for column. Nullable
// text columns map to *string so an absent value stays distinguishable from
// an empty one.

// Highlight is a core selling point shown on the home page.
type Highlight struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
	CreatedAt    string `json:"created_at"`
}

// CaseStudy is a shared trading case with an attached video.
type CaseStudy struct {
	ID           int64   `json:"id"`
	Name         *string `json:"name"`
	VideoURL     *string `json:"video_url"`
	IsActive     bool    `json:"is_active"`
	DisplayOrder int     `json:"display_order"`
	CreatedAt    string  `json:"created_at"`
}

// FinanceLiveStream is a live market commentary stream (HLS URL).
type FinanceLiveStream struct {
	ID           int64   `json:"id"`
	Name         *string `json:"name"`
	StreamURL    *string `json:"stream_url"`
	IsActive     bool    `json:"is_active"`
	DisplayOrder int     `json:"display_order"`
	CreatedAt    string  `json:"created_at"`
}

// ProgramContent is one block of the program introduction page. section_type
// decides which of the sparse columns are meaningful for the block.
type ProgramContent struct {
	ID            int64   `json:"id"`
	SectionType   string  `json:"section_type"`
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	StageName     *string `json:"stage_name"`
	MinEquity     *string `json:"min_equity"`
	EdgeScore     *string `json:"edge_score"`
	MaxMultiplier *string `json:"max_multiplier"`
	MaxCapital    *string `json:"max_capital"`
	ProfitShare   *string `json:"profit_share"`
	ProfitTarget  *string `json:"profit_target"`
	StageDuration *string `json:"stage_duration"`
	TradesPerStage *string `json:"trades_per_stage"`
	Leverage      *string `json:"leverage"`
	MaxLoss       *string `json:"max_loss"`
	Keyword       *string `json:"keyword"`
	Definition    *string `json:"definition"`
	LinkText      *string `json:"link_text"`
	LinkTarget    *string `json:"link_target"`
	IsActive      bool    `json:"is_active"`
	DisplayOrder  int     `json:"display_order"`
	CreatedAt     string  `json:"created_at"`
}

// GettingStartedStep is one step of the onboarding walkthrough.
type GettingStartedStep struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Detail       string  `json:"detail"`
	IconName     *string `json:"icon_name"`
	Links        *string `json:"links"`
	IsActive     bool    `json:"is_active"`
	DisplayOrder int     `json:"display_order"`
	CreatedAt    string  `json:"created_at"`
}

// ViolationRule describes one prohibited behaviour and its consequence.
type ViolationRule struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Definition   string `json:"definition"`
	Consequence  string `json:"consequence"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
	CreatedAt    string `json:"created_at"`
}

// FAQItem is a question/answer pair. Answers may contain markdown.
type FAQItem struct {
	ID           int64  `json:"id"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
	CreatedAt    string `json:"created_at"`
}

// RiskWarning is the single active risk disclosure block.
type RiskWarning struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// SupportTeam is a support contact entry; channel-specific rows only show
// under their channel.
type SupportTeam struct {
	ID                int64   `json:"id"`
	TeamNameEN        string  `json:"team_name_en"`
	TeamNameCN        string  `json:"team_name_cn"`
	Email             string  `json:"email"`
	IsActive          bool    `json:"is_active"`
	IsChannelSpecific bool    `json:"is_channel_specific"`
	Channel           *string `json:"channel_code"`
	CreatedAt         *string `json:"created_at"`
	UpdatedAt         *string `json:"updated_at"`
}

func (t SupportTeam) ChannelSpecific() bool { return t.IsChannelSpecific }
func (t SupportTeam) ChannelCode() string {
	if t.Channel == nil {
		return ""
	}
	return *t.Channel
}

// MoreTip is a supplementary notice block (risk notes, disclaimers), possibly
// channel-specific; content may contain markdown.
type MoreTip struct {
	ID                int64   `json:"id"`
	TipType           string  `json:"tip_type"`
	Title             string  `json:"title"`
	Content           string  `json:"content"`
	DisplayOrder      int     `json:"display_order"`
	IsActive          bool    `json:"is_active"`
	IsChannelSpecific bool    `json:"is_channel_specific"`
	Channel           *string `json:"channel_code"`
	CreatedAt         *string `json:"created_at"`
	UpdatedAt         *string `json:"updated_at"`
}

func (t MoreTip) ChannelSpecific() bool { return t.IsChannelSpecific }
func (t MoreTip) ChannelCode() string {
	if t.Channel == nil {
		return ""
	}
	return *t.Channel
}

// MenuItem is one entry of the assistant menu, possibly channel-specific.
type MenuItem struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	URL               string  `json:"url"`
	Icon              *string `json:"icon"`
	OrderIndex        int     `json:"order_index"`
	IsActive          bool    `json:"is_active"`
	IsChannelSpecific bool    `json:"is_channel_specific"`
	Channel           *string `json:"channel_code"`
}

func (m MenuItem) ChannelSpecific() bool { return m.IsChannelSpecific }
func (m MenuItem) ChannelCode() string {
	if m.Channel == nil {
		return ""
	}
	return *m.Channel
}
