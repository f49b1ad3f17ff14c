package cmd

type (
	// ConcernAnalyzeReq 主诉分析请求
	ConcernAnalyzeReq struct {
		// 用户的自由文本主诉, 去除空白后至少10个字符
		FreeTextConcern string `json:"freeTextConcern"`
		// 调用方会话标记, 可选, 存在时原样回显
		SessionId string `json:"sessionId,omitempty"`
		// 人口学背景, 均可选
		AgeYears               *int   `json:"ageYears,omitempty"`
		SexAtBirth             string `json:"sexAtBirth,omitempty"`
		CurrentPregnancyStatus string `json:"currentPregnancyStatus,omitempty"`
		// 语言区域, 默认en-US
		Locale string `json:"locale,omitempty"`
	}

	// ConcernAnalyzeResp 主诉分析响应
	ConcernAnalyzeResp struct {
		SessionId string `json:"sessionId,omitempty"`
		// 最可能的主诉类型
		PrimaryCategory string `json:"primaryCategory"`
		// 候选类型, 首位为PrimaryCategory, 1~5个
		CandidateCategories []string `json:"candidateCategories"`
		// 1~4句的临床摘要
		ClinicalSummary string `json:"clinicalSummary"`
		// 是否提及心理社会因素
		PsychosocialFactorsMentioned bool     `json:"psychosocialFactorsMentioned"`
		DurationText                 string   `json:"durationText,omitempty"`
		BodyLocations                []string `json:"bodyLocations"`
		SafetyNotes                  []string `json:"safetyNotes"`
	}

	// QuestionsReq 追问生成请求
	QuestionsReq struct {
		ConcernType     string `json:"concernType"`
		ClinicalSummary string `json:"clinicalSummary"`
		DurationText    string `json:"durationText,omitempty"`
		// 身体部位, 缺省为空列表
		BodyLocations []string `json:"bodyLocations,omitempty"`
		// 是否提及心理社会因素, 缺省false
		PsychosocialFactorsMentioned bool `json:"psychosocialFactorsMentioned,omitempty"`
	}

	// QuestionsResp 追问生成响应
	QuestionsResp struct {
		// 始终使用请求中的值
		ConcernType string `json:"concernType"`
		// 5~8个追问
		Questions []string `json:"questions"`
		// 面向开发者的出题依据
		RationaleNotes []string `json:"rationaleNotes"`
		SafetyNotes    []string `json:"safetyNotes"`
	}

	// FinalReportReq 最终报告请求
	// riskLevel与recommendations由上游确定性组件给出, 本服务只透传
	FinalReportReq struct {
		RiskLevel       string   `json:"riskLevel"`
		ConcernType     string   `json:"concernType"`
		SymptomSummary  string   `json:"symptomSummary"`
		RedFlags        []string `json:"redFlags"`
		Recommendations []string `json:"recommendations"`
	}

	// FinalReportResp 最终报告响应
	FinalReportResp struct {
		// 始终使用请求中的值, 模型无权修改
		RiskLevel   string `json:"riskLevel"`
		ConcernType string `json:"concernType"`
		// 面向用户的总结段落
		Summary string `json:"summary"`
		// 分析段落
		Analysis        string   `json:"analysis"`
		Recommendations []string `json:"recommendations"`
		Disclaimer      string   `json:"disclaimer"`
		SafetyNotes     []string `json:"safetyNotes"`
	}
)
