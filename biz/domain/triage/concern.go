package triage

import (
	"encoding/json"

	"github.com/xh-polaris/health-triage/biz/adaptor/cmd"
	"github.com/xh-polaris/health-triage/biz/application/dto"
	"github.com/xh-polaris/health-triage/biz/infrastructure/consts"
)

// ConcernAnalyzeOp 主诉分析操作
var ConcernAnalyzeOp = &Operation{
	Name:      consts.OpConcernAnalyze,
	Validate:  validateConcern,
	Compose:   composeConcern,
	Normalize: normalizeConcern,
}

// validateConcern 逐项校验, 第一处不合法即返回
func validateConcern(body []byte) (any, error) {
	m, err := decodeObject(body)
	if err != nil {
		return nil, err
	}
	if err = requireString(m, "freeTextConcern", 10); err != nil {
		return nil, err
	}

	var req cmd.ConcernAnalyzeReq
	if err = bindRequest(body, &req); err != nil {
		return nil, err
	}
	if req.Locale == "" {
		req.Locale = consts.DefaultLocale
	}
	return &req, nil
}

// composeConcern 渲染指令与任务内容
// 内容是请求规范化视图的确定性序列化, 字段顺序固定, 缺省字段取中性值
func composeConcern(r any) *dto.Prompt {
	req := r.(*cmd.ConcernAnalyzeReq)
	view := struct {
		FreeTextConcern        string `json:"freeTextConcern"`
		SessionId              string `json:"sessionId"`
		AgeYears               *int   `json:"ageYears"`
		SexAtBirth             string `json:"sexAtBirth"`
		CurrentPregnancyStatus string `json:"currentPregnancyStatus"`
		Locale                 string `json:"locale"`
	}{
		FreeTextConcern:        req.FreeTextConcern,
		SessionId:              req.SessionId,
		AgeYears:               req.AgeYears,
		SexAtBirth:             req.SexAtBirth,
		CurrentPregnancyStatus: req.CurrentPregnancyStatus,
		Locale:                 req.Locale,
	}
	content, _ := json.Marshal(view)
	return &dto.Prompt{
		Instructions: concernInstructions,
		Content:      "Patient concern to analyze:\n" + string(content),
	}
}

// normalizeConcern 修复列表字段并保证调用方的会话标记存活
func normalizeConcern(text string, r any) (any, error) {
	req := r.(*cmd.ConcernAnalyzeReq)
	m, err := parseCompletion(consts.OpConcernAnalyze, text)
	if err != nil {
		return nil, err
	}

	resp := &cmd.ConcernAnalyzeResp{
		SessionId:                    getString(m, "sessionId"),
		PrimaryCategory:              getString(m, "primaryCategory"),
		CandidateCategories:          getStringList(m, "candidateCategories"),
		ClinicalSummary:              getString(m, "clinicalSummary"),
		PsychosocialFactorsMentioned: getBool(m, "psychosocialFactorsMentioned"),
		DurationText:                 getString(m, "durationText"),
		BodyLocations:                getStringList(m, "bodyLocations"),
		SafetyNotes:                  getStringList(m, "safetyNotes"),
	}

	// 模型可以不回显会话标记, 但调用方给过的值必须存活
	if req.SessionId != "" {
		resp.SessionId = req.SessionId
	}

	// 候选类型缺失或不合法时, 由主类型合成单元素列表
	if !hasList(m, "candidateCategories") && resp.PrimaryCategory != "" {
		resp.CandidateCategories = []string{resp.PrimaryCategory}
	}
	return resp, nil
}
