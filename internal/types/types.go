// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

import "mission-api/pkg/mission"

// MsgMissingParams is the 400 body when a query parameter is absent.
const MsgMissingParams = "Missing required parameters: description or total_points."

type MissionRequest struct {
	Description string `form:"description,optional"`
	TotalPoints string `form:"total_points,optional"`
}

type MissionResponse struct {
	OriginalMission    string         `json:"original_mission"`
	TotalPoints        string         `json:"total_points"`
	AIGeneratedDetails mission.Result `json:"ai_generated_details"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
