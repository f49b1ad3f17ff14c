package triage

import (
	"reflect"
	"strings"
	"testing"

	"github.com/xh-polaris/health-triage/biz/adaptor/cmd"
)

func TestValidateQuestions(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"正常请求", `{"concernType":"Headache","clinicalSummary":"Headache for a week."}`, ""},
		{"缺少摘要", `{"concernType":"Headache"}`, "clinicalSummary"},
		{"摘要为空白", `{"concernType":"Headache","clinicalSummary":"   "}`, "clinicalSummary"},
		{"缺少类型", `{"clinicalSummary":"Headache for a week."}`, "concernType"},
		{"类型非字符串", `{"concernType":1,"clinicalSummary":"x"}`, "concernType"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req, err := validateQuestions([]byte(c.body))
			if c.want == "" {
				if err != nil {
					t.Fatalf("expect pass, got %v", err)
				}
				// 可选列表缺省为空列表
				if req.(*cmd.QuestionsReq).BodyLocations == nil {
					t.Fatal("bodyLocations should default to an empty list")
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("error %v should mention %s", err, c.want)
			}
		})
	}
}

func TestNormalizeQuestionsOverwritesConcernType(t *testing.T) {
	req := &cmd.QuestionsReq{ConcernType: "Headache", ClinicalSummary: "Headache for a week."}

	// 模型试图改写concernType
	out, err := normalizeQuestions(`{"concernType":"Migraine","questions":["Where is the pain?"]}`, req)
	if err != nil {
		t.Fatal(err)
	}
	resp := out.(*cmd.QuestionsResp)
	if resp.ConcernType != "Headache" {
		t.Fatalf("concernType must come from the request, got %s", resp.ConcernType)
	}
	if !reflect.DeepEqual(resp.Questions, []string{"Where is the pain?"}) {
		t.Fatalf("questions mismatch: %v", resp.Questions)
	}
	if resp.RationaleNotes == nil || resp.SafetyNotes == nil {
		t.Fatal("list fields must never be nil")
	}
}
