package triage

import (
	"encoding/json"

	"github.com/xh-polaris/health-triage/biz/adaptor/cmd"
	"github.com/xh-polaris/health-triage/biz/application/dto"
	"github.com/xh-polaris/health-triage/biz/infrastructure/consts"
)

// GenerateQuestionsOp 追问生成操作
var GenerateQuestionsOp = &Operation{
	Name:      consts.OpGenerateQuestions,
	Validate:  validateQuestions,
	Compose:   composeQuestions,
	Normalize: normalizeQuestions,
}

func validateQuestions(body []byte) (any, error) {
	m, err := decodeObject(body)
	if err != nil {
		return nil, err
	}
	if err = requireString(m, "concernType", 1); err != nil {
		return nil, err
	}
	if err = requireString(m, "clinicalSummary", 1); err != nil {
		return nil, err
	}

	var req cmd.QuestionsReq
	if err = bindRequest(body, &req); err != nil {
		return nil, err
	}
	if req.BodyLocations == nil {
		req.BodyLocations = make([]string, 0)
	}
	return &req, nil
}

func composeQuestions(r any) *dto.Prompt {
	req := r.(*cmd.QuestionsReq)
	view := struct {
		ConcernType                  string   `json:"concernType"`
		ClinicalSummary              string   `json:"clinicalSummary"`
		DurationText                 string   `json:"durationText"`
		BodyLocations                []string `json:"bodyLocations"`
		PsychosocialFactorsMentioned bool     `json:"psychosocialFactorsMentioned"`
	}{
		ConcernType:                  req.ConcernType,
		ClinicalSummary:              req.ClinicalSummary,
		DurationText:                 req.DurationText,
		BodyLocations:                req.BodyLocations,
		PsychosocialFactorsMentioned: req.PsychosocialFactorsMentioned,
	}
	content, _ := json.Marshal(view)
	return &dto.Prompt{
		Instructions: questionsInstructions,
		Content:      "Categorized concern to write follow-up questions for:\n" + string(content),
	}
}

func normalizeQuestions(text string, r any) (any, error) {
	req := r.(*cmd.QuestionsReq)
	m, err := parseCompletion(consts.OpGenerateQuestions, text)
	if err != nil {
		return nil, err
	}

	resp := &cmd.QuestionsResp{
		// 主诉类型始终以请求为准
		ConcernType:    req.ConcernType,
		Questions:      getStringList(m, "questions"),
		RationaleNotes: getStringList(m, "rationaleNotes"),
		SafetyNotes:    getStringList(m, "safetyNotes"),
	}
	return resp, nil
}
