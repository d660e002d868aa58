package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vnkhanh/survey-engine/metrics"
	"github.com/vnkhanh/survey-engine/models"
)

// Store là nơi duy nhất giữ State. Mỗi lệnh chạy trọn vẹn (apply + save)
// dưới một mutex, nên người đọc chỉ thấy state sau lệnh.
type Store struct {
	mu      sync.Mutex
	state   models.State
	persist Persister
	now     func() time.Time
	newID   func() string
	log     *slog.Logger
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New tạo Store với state rỗng. persist có thể nil (chỉ giữ trong RAM).
func New(persist Persister, opts ...Option) *Store {
	s := &Store{
		state:   models.EmptyState(),
		persist: persist,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   func() string { return uuid.New().String() },
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open tạo Store và nạp state đã lưu. Blob hỏng không làm dừng khởi động:
// ghi log rồi dùng state rỗng. Lỗi I/O khác được trả về cho caller.
func Open(ctx context.Context, persist Persister, opts ...Option) (*Store, error) {
	s := New(persist, opts...)
	if persist == nil {
		return s, nil
	}
	st, err := persist.Load(ctx)
	switch {
	case errors.Is(err, ErrCorruptState):
		s.log.Warn("Saved survey state is malformed, starting empty", "err", err)
	case err != nil:
		return nil, err
	default:
		s.state = st
	}
	s.log.Info("Survey state loaded", "surveys", len(s.state.Surveys), "response_sets", len(s.state.Responses))
	return s, nil
}

// dispatch phải được gọi khi đang giữ s.mu.
func (s *Store) dispatch(ctx context.Context, cmd Command) {
	s.state = Apply(s.state, cmd)
	metrics.CommandsApplied.WithLabelValues(cmd.Name()).Inc()
	s.save(ctx, cmd.Name())
}

func (s *Store) save(ctx context.Context, command string) {
	if s.persist == nil {
		return
	}
	start := time.Now()
	err := s.persist.Save(ctx, s.state)
	metrics.SaveDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SaveFailures.Inc()
		s.log.Error("Save survey state failed", "command", command, "err", err)
	}
}

func (s *Store) CreateSurvey(ctx context.Context, title, description *string) models.Survey {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := CreateSurvey{ID: s.newID(), Title: title, Description: description, At: s.now()}
	s.dispatch(ctx, cmd)
	sv := s.state.Current()
	return sv.Clone()
}

func (s *Store) UpdateSurvey(ctx context.Context, id string, patch SurveyPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatch(ctx, UpdateSurvey{ID: id, Patch: patch, At: s.now()})
}

func (s *Store) DeleteSurvey(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatch(ctx, DeleteSurvey{ID: id})
}

// SetCurrentSurvey với id rỗng là bỏ chọn.
func (s *Store) SetCurrentSurvey(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatch(ctx, SetCurrentSurvey{ID: id})
}

// AddQuestion trả về false khi chưa có survey đang chọn hoặc type không hợp lệ.
func (s *Store) AddQuestion(ctx context.Context, t models.QuestionType, title *string, options []string) (models.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := AddQuestion{ID: s.newID(), Type: t, Title: title, Options: options, At: s.now()}
	s.dispatch(ctx, cmd)
	sv := s.state.Current()
	if sv == nil {
		return models.Question{}, false
	}
	i := sv.QuestionIndex(cmd.ID)
	if i < 0 {
		return models.Question{}, false
	}
	return sv.Questions[i].Clone(), true
}

func (s *Store) UpdateQuestion(ctx context.Context, patch QuestionPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatch(ctx, UpdateQuestion{Patch: patch, At: s.now()})
}

func (s *Store) DeleteQuestion(ctx context.Context, questionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatch(ctx, DeleteQuestion{QuestionID: questionID, At: s.now()})
}

func (s *Store) ReorderQuestions(ctx context.Context, order []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatch(ctx, ReorderQuestions{Order: order, At: s.now()})
}

// RecordResponse ghi phản hồi mà không kiểm tra; dùng SubmitResponse cho luồng thường.
func (s *Store) RecordResponse(ctx context.Context, surveyID string, answers map[string]models.Answer) models.Response {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record(ctx, surveyID, answers)
}

func (s *Store) record(ctx context.Context, surveyID string, answers map[string]models.Answer) models.Response {
	cmd := RecordResponse{ID: s.newID(), SurveyID: surveyID, Answers: answers, At: s.now()}
	s.dispatch(ctx, cmd)
	list := s.state.Responses[surveyID]
	return list[len(list)-1].Clone()
}

// SubmitResponse chuẩn hoá, kiểm tra câu bắt buộc rồi mới ghi, tất cả trong
// một lần giữ khoá. Thiếu câu bắt buộc thì trả về *ValidationError và không ghi gì.
func (s *Store) SubmitResponse(ctx context.Context, surveyID string, answers map[string]models.Answer) (models.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.state.SurveyIndex(surveyID)
	if i < 0 {
		metrics.Submissions.WithLabelValues("not_found").Inc()
		return models.Response{}, ErrSurveyNotFound
	}
	sv := s.state.Surveys[i]
	normalized := NormalizeAnswers(sv, answers)
	if err := ValidateAnswers(sv, normalized); err != nil {
		metrics.Submissions.WithLabelValues("invalid").Inc()
		return models.Response{}, err
	}
	metrics.Submissions.WithLabelValues("accepted").Inc()
	return s.record(ctx, surveyID, normalized), nil
}

// Snapshot trả về bản sao sâu của toàn bộ state.
func (s *Store) Snapshot() models.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Store) Surveys() []models.Survey {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Survey, len(s.state.Surveys))
	for i, sv := range s.state.Surveys {
		out[i] = sv.Clone()
	}
	return out
}

func (s *Store) Survey(id string) (models.Survey, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.state.SurveyIndex(id)
	if i < 0 {
		return models.Survey{}, false
	}
	return s.state.Surveys[i].Clone(), true
}

func (s *Store) Current() (models.Survey, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sv := s.state.Current()
	if sv == nil {
		return models.Survey{}, false
	}
	return sv.Clone(), true
}

// Responses chỉ trả phản hồi của survey còn tồn tại; phản hồi mồ côi
// của survey đã xoá không truy cập được qua đây.
func (s *Store) Responses(surveyID string) ([]models.Response, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.SurveyIndex(surveyID) < 0 {
		return nil, false
	}
	list := s.state.Responses[surveyID]
	out := make([]models.Response, len(list))
	for i, r := range list {
		out[i] = r.Clone()
	}
	return out, true
}

// ResponseCount tiện cho dashboard: số phản hồi của mỗi survey còn tồn tại.
func (s *Store) ResponseCount(surveyID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.SurveyIndex(surveyID) < 0 {
		return 0
	}
	return len(s.state.Responses[surveyID])
}
