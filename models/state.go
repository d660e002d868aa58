package models

// State là toàn bộ blob được lưu: danh sách survey, chỉ mục phản hồi
// theo survey id và survey đang chọn (chỉ giữ id, view được tra cứu lại).
type State struct {
	Surveys         []Survey              `json:"surveys"`
	Responses       map[string][]Response `json:"responses"`
	CurrentSurveyID string                `json:"currentSurveyId,omitempty"`
}

func EmptyState() State {
	return State{
		Surveys:   []Survey{},
		Responses: map[string][]Response{},
	}
}

func (s *State) SurveyIndex(id string) int {
	for i := range s.Surveys {
		if s.Surveys[i].ID == id {
			return i
		}
	}
	return -1
}

// Current trả về survey đang chọn, nil nếu chưa chọn hoặc đã bị xoá.
func (s *State) Current() *Survey {
	if s.CurrentSurveyID == "" {
		return nil
	}
	if i := s.SurveyIndex(s.CurrentSurveyID); i >= 0 {
		return &s.Surveys[i]
	}
	return nil
}

func (s State) Clone() State {
	out := State{
		Surveys:         make([]Survey, len(s.Surveys)),
		Responses:       make(map[string][]Response, len(s.Responses)),
		CurrentSurveyID: s.CurrentSurveyID,
	}
	for i, sv := range s.Surveys {
		out.Surveys[i] = sv.Clone()
	}
	for id, list := range s.Responses {
		cp := make([]Response, len(list))
		for i, r := range list {
			cp[i] = r.Clone()
		}
		out.Responses[id] = cp
	}
	return out
}
