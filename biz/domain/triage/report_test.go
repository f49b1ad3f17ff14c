package triage

import (
	"reflect"
	"strings"
	"testing"

	"github.com/xh-polaris/health-triage/biz/adaptor/cmd"
)

func TestValidateReport(t *testing.T) {
	valid := `{"riskLevel":"High","concernType":"Chest pain","symptomSummary":"Sharp chest pain.",` +
		`"redFlags":["radiating pain"],"recommendations":["seek urgent care"]}`

	cases := []struct {
		name string
		body string
		want string
	}{
		{"正常请求", valid, ""},
		{"空数组合法", `{"riskLevel":"Low","concernType":"Cough","symptomSummary":"Dry cough.","redFlags":[],"recommendations":[]}`, ""},
		{"缺少风险等级", `{"concernType":"Cough","symptomSummary":"x","redFlags":[],"recommendations":[]}`, "riskLevel"},
		{"风险等级大小写敏感", `{"riskLevel":"high","concernType":"Cough","symptomSummary":"x","redFlags":[],"recommendations":[]}`, "riskLevel"},
		{"风险等级不在闭集", `{"riskLevel":"Severe","concernType":"Cough","symptomSummary":"x","redFlags":[],"recommendations":[]}`, "riskLevel"},
		{"缺少redFlags", `{"riskLevel":"Low","concernType":"Cough","symptomSummary":"x","recommendations":[]}`, "redFlags"},
		{"redFlags非数组", `{"riskLevel":"Low","concernType":"Cough","symptomSummary":"x","redFlags":"none","recommendations":[]}`, "redFlags"},
		{"recommendations非数组", `{"riskLevel":"Low","concernType":"Cough","symptomSummary":"x","redFlags":[],"recommendations":{}}`, "recommendations"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := validateReport([]byte(c.body))
			if c.want == "" {
				if err != nil {
					t.Fatalf("expect pass, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("error %v should mention %s", err, c.want)
			}
		})
	}
}

func TestNormalizeReportAuthoritativeOverwrite(t *testing.T) {
	req := &cmd.FinalReportReq{
		RiskLevel:       "High",
		ConcernType:     "Chest pain",
		SymptomSummary:  "Sharp chest pain.",
		RedFlags:        []string{"radiating pain"},
		Recommendations: []string{"seek urgent care"},
	}

	// 模型试图降级风险等级
	text := `{"riskLevel":"Low","concernType":"Indigestion","summary":"s","analysis":"a",` +
		`"recommendations":["rest"],"disclaimer":"d"}`
	out, err := normalizeReport(text, req)
	if err != nil {
		t.Fatal(err)
	}
	resp := out.(*cmd.FinalReportResp)
	if resp.RiskLevel != "High" {
		t.Fatalf("riskLevel must come from the request, got %s", resp.RiskLevel)
	}
	if resp.ConcernType != "Chest pain" {
		t.Fatalf("concernType must come from the request, got %s", resp.ConcernType)
	}
}

func TestNormalizeReportRoundTripAndIdempotence(t *testing.T) {
	req := &cmd.FinalReportReq{
		RiskLevel:       "Moderate",
		ConcernType:     "Cough",
		SymptomSummary:  "Dry cough for a week.",
		RedFlags:        []string{},
		Recommendations: []string{"see a GP this week"},
	}
	text := `{"riskLevel":"Moderate","concernType":"Cough","summary":"A week of dry cough.",` +
		`"analysis":"Usually self-limiting.","recommendations":["see a GP this week"],` +
		`"disclaimer":"Education only.","safetyNotes":[]}`

	out1, err := normalizeReport(text, req)
	if err != nil {
		t.Fatal(err)
	}
	want := &cmd.FinalReportResp{
		RiskLevel:       "Moderate",
		ConcernType:     "Cough",
		Summary:         "A week of dry cough.",
		Analysis:        "Usually self-limiting.",
		Recommendations: []string{"see a GP this week"},
		Disclaimer:      "Education only.",
		SafetyNotes:     []string{},
	}
	if !reflect.DeepEqual(out1, want) {
		t.Fatalf("round trip mismatch: %+v", out1)
	}

	out2, err := normalizeReport(text, req)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out1, out2) {
		t.Fatal("normalize must be idempotent")
	}
}

func TestNormalizeReportListCoercion(t *testing.T) {
	req := &cmd.FinalReportReq{RiskLevel: "Low", ConcernType: "Cough", SymptomSummary: "x",
		RedFlags: []string{}, Recommendations: []string{}}

	out, err := normalizeReport(`{"summary":"s","recommendations":"rest","safetyNotes":null}`, req)
	if err != nil {
		t.Fatal(err)
	}
	resp := out.(*cmd.FinalReportResp)
	if resp.Recommendations == nil || resp.SafetyNotes == nil {
		t.Fatal("list fields must never be nil")
	}
	if len(resp.Recommendations) != 0 {
		t.Fatalf("non-list value should coerce to empty list, got %v", resp.Recommendations)
	}
}
