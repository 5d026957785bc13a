// Package diagnosis turns the answers of the career diagnosis into a
// normalized result: raw answers, a closed profile classification and the
// skills the learner needs for the target job.
package diagnosis

// Question IDs of the fixed diagnosis flow.
const (
	QuestionCurrentJob    = 1
	QuestionExperience    = 2
	QuestionTargetJob     = 3
	QuestionWeakArea      = 4
	QuestionLearningHours = 5
)

// Question is one step of the diagnosis flow.
type Question struct {
	ID      int
	Text    string
	Options []string
}

var commonJobs = []string{
	"개발자 (프론트엔드)",
	"개발자 (백엔드)",
	"개발자 (풀스택)",
	"데이터 분석가",
	"프로덕트 매니저",
	"디자이너",
	"마케터",
	"기타",
}

var questions = []Question{
	{
		ID:      QuestionCurrentJob,
		Text:    "현재 직무는 무엇인가요?",
		Options: append(append([]string{}, commonJobs...), "취준생 (직무 미정)"),
	},
	{
		ID:   QuestionExperience,
		Text: "경력 기간은 얼마나 되나요?",
		Options: []string{
			"신입 (1년 미만)",
			"주니어 (1-3년)",
			"미들 (3-5년)",
			"시니어 (5-10년)",
			"리드 (10년 이상)",
		},
	},
	{
		ID:      QuestionTargetJob,
		Text:    "목표 직무는 무엇인가요?",
		Options: append(append([]string{}, commonJobs...), "현재 직무 유지 및 역량 강화"),
	},
	{
		ID:   QuestionWeakArea,
		Text: "현재 가장 부족하다고 느끼는 역량은 무엇인가요?",
		Options: []string{
			"기술적 역량 (프로그래밍, 도구 사용 등)",
			"비즈니스 이해도",
			"커뮤니케이션 능력",
			"프로젝트 관리 능력",
			"리더십",
			"전문 도메인 지식",
		},
	},
	{
		ID:   QuestionLearningHours,
		Text: "주당 학습 가능한 시간은 얼마나 되나요?",
		Options: []string{
			"5시간 미만",
			"5-10시간",
			"10-20시간",
			"20시간 이상",
		},
	},
}

// Questions returns the diagnosis questions in asking order.
func Questions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

// QuestionByID returns the question with the given id.
func QuestionByID(id int) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			q.Options = append([]string(nil), q.Options...)
			return q, true
		}
	}
	return Question{}, false
}
