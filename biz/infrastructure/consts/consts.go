package consts

// 数据库相关
const (
	CreateTime = "create_time"
)

// Post http
const (
	Post = "POST"
)

// 操作名
const (
	OpConcernAnalyze    = "concern-analyze"
	OpGenerateQuestions = "generate-questions"
	OpFinalReport       = "final-report"
)

// 风险等级, 由上游确定性组件给出, 本服务只透传
const (
	RiskLow      = "Low"
	RiskModerate = "Moderate"
	RiskHigh     = "High"
)

// 默认值
const (
	DefaultLocale = "en-US"
)
