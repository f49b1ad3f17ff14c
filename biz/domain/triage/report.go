package triage

import (
	"encoding/json"

	"github.com/xh-polaris/health-triage/biz/adaptor/cmd"
	"github.com/xh-polaris/health-triage/biz/application/dto"
	"github.com/xh-polaris/health-triage/biz/infrastructure/consts"
)

// FinalReportOp 最终报告操作
// 风险等级与建议由上游确定性组件给出, 模型只负责成文
var FinalReportOp = &Operation{
	Name:      consts.OpFinalReport,
	Validate:  validateReport,
	Compose:   composeReport,
	Normalize: normalizeReport,
}

func validateReport(body []byte) (any, error) {
	m, err := decodeObject(body)
	if err != nil {
		return nil, err
	}
	if err = requireEnum(m, "riskLevel", consts.RiskLow, consts.RiskModerate, consts.RiskHigh); err != nil {
		return nil, err
	}
	if err = requireString(m, "concernType", 1); err != nil {
		return nil, err
	}
	if err = requireString(m, "symptomSummary", 1); err != nil {
		return nil, err
	}
	if err = requireList(m, "redFlags"); err != nil {
		return nil, err
	}
	if err = requireList(m, "recommendations"); err != nil {
		return nil, err
	}

	var req cmd.FinalReportReq
	if err = bindRequest(body, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func composeReport(r any) *dto.Prompt {
	req := r.(*cmd.FinalReportReq)
	view := struct {
		RiskLevel       string   `json:"riskLevel"`
		ConcernType     string   `json:"concernType"`
		SymptomSummary  string   `json:"symptomSummary"`
		RedFlags        []string `json:"redFlags"`
		Recommendations []string `json:"recommendations"`
	}{
		RiskLevel:       req.RiskLevel,
		ConcernType:     req.ConcernType,
		SymptomSummary:  req.SymptomSummary,
		RedFlags:        req.RedFlags,
		Recommendations: req.Recommendations,
	}
	content, _ := json.Marshal(view)
	return &dto.Prompt{
		Instructions: reportInstructions,
		Content:      "Structured triage result to write the report from:\n" + string(content),
	}
}

func normalizeReport(text string, r any) (any, error) {
	req := r.(*cmd.FinalReportReq)
	m, err := parseCompletion(consts.OpFinalReport, text)
	if err != nil {
		return nil, err
	}

	resp := &cmd.FinalReportResp{
		// 权威字段始终以请求为准, 模型输出无论如何都会被覆盖
		RiskLevel:       req.RiskLevel,
		ConcernType:     req.ConcernType,
		Summary:         getString(m, "summary"),
		Analysis:        getString(m, "analysis"),
		Recommendations: getStringList(m, "recommendations"),
		Disclaimer:      getString(m, "disclaimer"),
		SafetyNotes:     getStringList(m, "safetyNotes"),
	}
	return resp, nil
}
