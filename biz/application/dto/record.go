package dto

// RecordEvent 一次成功操作产生的记录消息, 经MQ落库
type RecordEvent struct {
	Id          string `json:"id"`
	Operation   string `json:"operation"`
	SessionId   string `json:"sessionId,omitempty"`
	ConcernType string `json:"concernType,omitempty"`
	RiskLevel   string `json:"riskLevel,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}
