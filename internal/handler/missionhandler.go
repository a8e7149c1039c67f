package handler

import (
	"errors"
	"net/http"

	"mission-api/internal/logic"
	"mission-api/internal/svc"
	"mission-api/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func MissionHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.MissionRequest
		if err := httpx.Parse(r, &req); err != nil {
			// net/url rejects malformed escapes; read the raw query instead.
			req = lenientMissionRequest(r.URL.RawQuery)
		}

		l := logic.NewMissionLogic(r.Context(), svcCtx)
		resp, err := l.Mission(&req)
		if err != nil {
			if errors.Is(err, logic.ErrMissingParams) {
				httpx.WriteJsonCtx(r.Context(), w, http.StatusBadRequest, types.ErrorResponse{Error: types.MsgMissingParams})
				return
			}
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
