package service

import (
	"context"
	"time"

	"github.com/bytedance/gopkg/util/gopool"
	"github.com/google/uuid"
	"github.com/google/wire"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/health-triage/biz/adaptor/cmd"
	"github.com/xh-polaris/health-triage/biz/application/dto"
	"github.com/xh-polaris/health-triage/biz/domain/triage"
	"github.com/xh-polaris/health-triage/biz/infrastructure/consts"
	"github.com/xh-polaris/health-triage/biz/infrastructure/mq"
	"github.com/xh-polaris/health-triage/biz/infrastructure/util"
)

type ITriageService interface {
	AnalyzeConcern(ctx context.Context, body []byte) (*cmd.ConcernAnalyzeResp, error)
	GenerateQuestions(ctx context.Context, body []byte) (*cmd.QuestionsResp, error)
	FinalReport(ctx context.Context, body []byte) (*cmd.FinalReportResp, error)
}

// TriageService 三个操作共用一个流水线引擎, 只在操作定义上不同
type TriageService struct {
	Engine *triage.Engine
}

var TriageServiceSet = wire.NewSet(
	wire.Struct(new(TriageService), "*"),
	wire.Bind(new(ITriageService), new(*TriageService)),
)

func (s *TriageService) AnalyzeConcern(ctx context.Context, body []byte) (*cmd.ConcernAnalyzeResp, error) {
	out, err := s.Engine.Run(triage.ConcernAnalyzeOp, body)
	if err != nil {
		return nil, err
	}
	resp := out.(*cmd.ConcernAnalyzeResp)

	s.record(ctx, &dto.RecordEvent{
		Operation:   consts.OpConcernAnalyze,
		SessionId:   resp.SessionId,
		ConcernType: resp.PrimaryCategory,
		Summary:     resp.ClinicalSummary,
	})
	return resp, nil
}

func (s *TriageService) GenerateQuestions(ctx context.Context, body []byte) (*cmd.QuestionsResp, error) {
	out, err := s.Engine.Run(triage.GenerateQuestionsOp, body)
	if err != nil {
		return nil, err
	}
	resp := out.(*cmd.QuestionsResp)

	s.record(ctx, &dto.RecordEvent{
		Operation:   consts.OpGenerateQuestions,
		ConcernType: resp.ConcernType,
	})
	return resp, nil
}

func (s *TriageService) FinalReport(ctx context.Context, body []byte) (*cmd.FinalReportResp, error) {
	out, err := s.Engine.Run(triage.FinalReportOp, body)
	if err != nil {
		return nil, err
	}
	resp := out.(*cmd.FinalReportResp)

	// 高风险报告触发预警邮件, 失败只记录日志
	if resp.RiskLevel == consts.RiskHigh {
		concernType := resp.ConcernType
		gopool.Go(func() {
			if err := util.AlertEMail(concernType); err != nil {
				log.Error("邮件发送失败: %v", err)
			}
		})
	}

	s.record(ctx, &dto.RecordEvent{
		Operation:   consts.OpFinalReport,
		ConcernType: resp.ConcernType,
		RiskLevel:   resp.RiskLevel,
		Summary:     resp.Summary,
	})
	return resp, nil
}

// record 异步发送调用记录消息, 不影响本次响应
func (s *TriageService) record(ctx context.Context, event *dto.RecordEvent) {
	event.Id = uuid.NewString()
	event.Timestamp = time.Now().Unix()
	gopool.CtxGo(ctx, func() {
		if err := mq.GetRecordProducer().Produce(ctx, event); err != nil {
			log.Error("记录消息发送失败, operation: %s, err: %v", event.Operation, err)
		}
	})
}
