package service

import (
	"context"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/xh-polaris/health-triage/biz/adaptor/cmd"
	"github.com/xh-polaris/health-triage/biz/infrastructure/mapper/record"
)

type IRecordService interface {
	ListRecord(ctx context.Context, req *cmd.ListRecordReq) (*cmd.ListRecordResp, error)
}

type RecordService struct {
	RecordMapper *record.MongoMapper
}

var RecordServiceSet = wire.NewSet(
	wire.Struct(new(RecordService), "*"),
	wire.Bind(new(IRecordService), new(*RecordService)),
)

func (s *RecordService) ListRecord(ctx context.Context, req *cmd.ListRecordReq) (*cmd.ListRecordResp, error) {
	data, total, err := s.RecordMapper.FindMany(ctx, &req.Paging)
	if err != nil {
		return nil, err
	}

	records := make([]*cmd.Record, 0, len(data))
	for _, r := range data {
		cr := &cmd.Record{}
		if err := copier.Copy(cr, r); err != nil {
			return nil, err
		}
		cr.ID = r.ID.Hex()
		cr.CreateTime = r.CreateTime.Unix()
		records = append(records, cr)
	}
	return &cmd.ListRecordResp{
		Code:    0,
		Msg:     "success",
		Records: records,
		Total:   total,
	}, nil
}
