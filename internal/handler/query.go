package handler

import (
	"strings"

	"mission-api/internal/types"
	"mission-api/pkg/mission"
)

// lenientMissionRequest reads the mission parameters from a raw query that
// url.ParseQuery refused. Pairs split on "&" only, "+" means space, and a
// value whose escapes cannot be decoded is kept as written. The first
// occurrence of a key wins.
func lenientMissionRequest(rawQuery string) types.MissionRequest {
	var req types.MissionRequest
	var seenDesc, seenPoints bool
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		switch lenientUnescape(key) {
		case "description":
			if !seenDesc {
				req.Description, seenDesc = lenientUnescape(value), true
			}
		case "total_points":
			if !seenPoints {
				req.TotalPoints, seenPoints = lenientUnescape(value), true
			}
		}
	}
	return req
}

func lenientUnescape(s string) string {
	return mission.Decode(strings.ReplaceAll(s, "+", " "))
}
