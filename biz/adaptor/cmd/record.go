package cmd

// ListRecordReq 调用记录分页查询
type ListRecordReq struct {
	Paging
}

type ListRecordResp struct {
	Code    int       `json:"code"`
	Msg     string    `json:"msg"`
	Records []*Record `json:"records"`
	Total   int64     `json:"total"`
}

// Record 一次操作的调用记录
type Record struct {
	ID          string `json:"id,omitempty"`
	Operation   string `json:"operation"`
	SessionId   string `json:"session_id,omitempty"`
	ConcernType string `json:"concern_type,omitempty"`
	RiskLevel   string `json:"risk_level,omitempty"`
	Summary     string `json:"summary,omitempty"`
	CreateTime  int64  `json:"create_time"`
}
