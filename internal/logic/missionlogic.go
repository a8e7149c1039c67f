// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"errors"

	"mission-api/internal/svc"
	"mission-api/internal/types"
	"mission-api/pkg/mission"

	"github.com/zeromicro/go-zero/core/logx"
)

// ErrMissingParams is returned when either query parameter is absent or empty.
var ErrMissingParams = errors.New("missing description or total_points")

type MissionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewMissionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MissionLogic {
	return &MissionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Mission decodes the description and asks the model for details. Upstream
// and parse failures are carried in AIGeneratedDetails, never as err.
func (l *MissionLogic) Mission(req *types.MissionRequest) (resp *types.MissionResponse, err error) {
	if req == nil || req.Description == "" || req.TotalPoints == "" {
		return nil, ErrMissingParams
	}

	decoded := mission.Decode(req.Description)
	details := l.svcCtx.Missions.Generate(l.ctx, decoded, req.TotalPoints)
	if !details.OK() {
		l.Infof("mission details unavailable: %s", details.Failure.Error)
	}

	return &types.MissionResponse{
		OriginalMission:    decoded,
		TotalPoints:        req.TotalPoints,
		AIGeneratedDetails: details,
	}, nil
}
