package backend

// Built-in sample data served when no backend URL is configured, so the site
// stays fully navigable in local development. The shapes track what the
// hosted tables return in production.

// fakeVerificationCode is the code the sample verifier accepts.
const fakeVerificationCode = "246810"

func strPtr(s string) *string { return &s }

func fakeCodeDelivery() CodeDelivery {
	return CodeDelivery{
		Message: "验证码已发送到您的邮箱（示例环境，验证码：" + fakeVerificationCode + "）",
		DevCode: fakeVerificationCode,
	}
}

func fakeHighlights() []Highlight {
	return []Highlight{
		{ID: 1, Title: "零风险考核", Description: "使用模拟资金完成考核，无需承担真实亏损风险。", IsActive: true, DisplayOrder: 1},
		{ID: 2, Title: "阶梯式成长", Description: "通过多阶段考核逐步提升资金额度与分润比例。", IsActive: true, DisplayOrder: 2},
		{ID: 3, Title: "专业支持团队", Description: "注册后即可联系对应渠道的支持团队获取帮助。", IsActive: true, DisplayOrder: 3},
	}
}

func fakeCaseStudies() []CaseStudy {
	return []CaseStudy{
		{ID: 1, Name: strPtr("学员案例：稳健通过第一阶段"), VideoURL: strPtr("https://media.example.com/cases/stage-one.mp4"), IsActive: true, DisplayOrder: 1},
		{ID: 2, Name: strPtr("学员案例：资金翻倍之路"), VideoURL: strPtr("https://media.example.com/cases/double-up.mp4"), IsActive: true, DisplayOrder: 2},
	}
}

func fakeFinanceLiveStreams() []FinanceLiveStream {
	return []FinanceLiveStream{
		{ID: 1, Name: strPtr("每日盘前直播"), StreamURL: strPtr("https://media.example.com/live/premarket.m3u8"), IsActive: true, DisplayOrder: 1},
	}
}

func fakeProgramContent() []ProgramContent {
	return []ProgramContent{
		{ID: 1, SectionType: "intro", Title: strPtr("计划介绍"), Content: strPtr("交易考核计划帮助交易者以模拟资金证明实力，逐步获得真实资金操作资格。"), IsActive: true, DisplayOrder: 1},
		{ID: 2, SectionType: "stage", StageName: strPtr("第一阶段"), MinEquity: strPtr("$5,000"), ProfitTarget: strPtr("8%"), StageDuration: strPtr("30天"), MaxLoss: strPtr("5%"), IsActive: true, DisplayOrder: 2},
		{ID: 3, SectionType: "stage", StageName: strPtr("第二阶段"), MinEquity: strPtr("$10,000"), ProfitTarget: strPtr("5%"), StageDuration: strPtr("60天"), MaxLoss: strPtr("5%"), IsActive: true, DisplayOrder: 3},
		{ID: 4, SectionType: "glossary", Keyword: strPtr("分润比例"), Definition: strPtr("考核通过后，盈利部分按约定比例与交易者分成。"), IsActive: true, DisplayOrder: 4},
	}
}

func fakeGettingStartedSteps() []GettingStartedStep {
	return []GettingStartedStep{
		{ID: 1, Title: "注册账户", Detail: "使用邮箱完成验证注册。", IconName: strPtr("user"), IsActive: true, DisplayOrder: 1},
		{ID: 2, Title: "开通考核账户", Detail: "通过加入链接开通考核账户并填写推广码。", IconName: strPtr("play"), Links: strPtr("开通账户"), IsActive: true, DisplayOrder: 2},
		{ID: 3, Title: "开始交易", Detail: "在考核周期内达成目标即可晋级。", IconName: strPtr("chart"), IsActive: true, DisplayOrder: 3},
	}
}

func fakeViolationRules() []ViolationRule {
	return []ViolationRule{
		{ID: 1, Title: "隔夜持仓", Definition: "在规定的收盘时间后仍持有未平仓头寸。", Consequence: "当次考核成绩作废，需重新开始。", IsActive: true, DisplayOrder: 1},
		{ID: 2, Title: "超额杠杆", Definition: "使用超过计划允许的杠杆倍数。", Consequence: "警告一次，累计两次取消资格。", IsActive: true, DisplayOrder: 2},
	}
}

func fakeFAQItems() []FAQItem {
	return []FAQItem{
		{ID: 1, Question: "考核需要多长时间？", Answer: "每个阶段有独立的考核周期，最快 **30 天** 可完成第一阶段。", IsActive: true, DisplayOrder: 1},
		{ID: 2, Question: "验证码没有收到怎么办？", Answer: "请检查垃圾邮件，60 秒后可重新获取。", IsActive: true, DisplayOrder: 2},
	}
}

func fakeRiskWarning() RiskWarning {
	return RiskWarning{
		ID:       1,
		Title:    "风险提示",
		Content:  "交易涉及风险，过往表现不代表未来收益。请在充分了解规则后参与考核。",
		IsActive: true,
	}
}

func fakeSupportTeams() []SupportTeam {
	return []SupportTeam{
		{ID: 1, TeamNameEN: "General Support", TeamNameCN: "通用支持团队", Email: "support@example.com", IsActive: true},
		{ID: 2, TeamNameEN: "Channel A Desk", TeamNameCN: "A 渠道专属支持", Email: "channel-a@example.com", IsActive: true, IsChannelSpecific: true, Channel: strPtr("channelA")},
		{ID: 3, TeamNameEN: "Channel B Desk", TeamNameCN: "B 渠道专属支持", Email: "channel-b@example.com", IsActive: true, IsChannelSpecific: true, Channel: strPtr("channelB")},
	}
}

func fakeMoreTips() []MoreTip {
	return []MoreTip{
		{ID: 1, TipType: "risk", Title: "风险提示", Content: "考核账户为模拟环境，升级真实账户前请确认当地法规。", DisplayOrder: 1, IsActive: true},
		{ID: 2, TipType: "notice", Title: "A 渠道专属活动", Content: "A 渠道用户本月开户可享额外考核次数。", DisplayOrder: 2, IsActive: true, IsChannelSpecific: true, Channel: strPtr("channelA")},
	}
}

func fakeMenuItems() []MenuItem {
	return []MenuItem{
		{ID: "m1", Title: "开户指引", URL: "https://help.example.com/open-account", OrderIndex: 1, IsActive: true},
		{ID: "m2", Title: "A 渠道活动页", URL: "https://promo.example.com/channel-a", OrderIndex: 2, IsActive: true, IsChannelSpecific: true, Channel: strPtr("channelA")},
		{ID: "m3", Title: "B 渠道活动页", URL: "https://promo.example.com/channel-b", OrderIndex: 3, IsActive: true, IsChannelSpecific: true, Channel: strPtr("channelB")},
	}
}
