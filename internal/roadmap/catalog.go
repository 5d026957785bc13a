package roadmap

import "github.com/abhisek/careerpath/internal/model"

const defaultProvider = "인프런"

// Generic module ids. Job-specific modules use "<track>-1".
const (
	ModuleFoundation = "1"
	ModuleProject    = "2"
	ModulePortfolio  = "3"
	ModuleInterview  = "4"
)

func foundationModule(level model.Level, duration string, skills []string) model.RoadmapModule {
	return model.RoadmapModule{
		ID:            ModuleFoundation,
		Title:         "기초 역량 강화",
		EnglishTitle:  "Foundation Skills",
		Subtitle:      "Basic Programming & Core Concepts",
		Description:   "목표 직무에 필요한 기본 기술과 개념을 학습합니다. 처음 개발을 시작하는 분들께 강력 추천합니다.",
		Duration:      duration,
		Level:         level,
		Skills:        skills,
		Prerequisites: []string{},
		Provider:      defaultProvider,
		Price:         0,
	}
}

func projectModule(level model.Level, skills []string) model.RoadmapModule {
	return model.RoadmapModule{
		ID:            ModuleProject,
		Title:         "실무 프로젝트 경험",
		EnglishTitle:  "Practical Project Experience",
		Subtitle:      "Real-world Development & Collaboration",
		Description:   "실제 프로젝트를 통해 실무 역량을 키웁니다. 팀 협업과 프로젝트 관리 경험을 쌓을 수 있습니다.",
		Duration:      "6주",
		Level:         level,
		Skills:        skills,
		Prerequisites: []string{ModuleFoundation},
		Provider:      defaultProvider,
		Price:         88000,
	}
}

func portfolioModule() model.RoadmapModule {
	return model.RoadmapModule{
		ID:            ModulePortfolio,
		Title:         "포트폴리오 구축",
		EnglishTitle:  "Portfolio Development",
		Subtitle:      "Showcase Your Work & Skills",
		Description:   "학습한 내용을 바탕으로 포트폴리오를 작성합니다. 효과적인 포트폴리오 작성 방법을 학습합니다.",
		Duration:      "2주",
		Level:         model.LevelIntermediate,
		Skills:        []string{"Portfolio Development", "Documentation", "Presentation"},
		Prerequisites: []string{ModuleFoundation, ModuleProject},
		Provider:      defaultProvider,
		Price:         44000,
	}
}

func interviewModule() model.RoadmapModule {
	return model.RoadmapModule{
		ID:            ModuleInterview,
		Title:         "면접 준비 및 네트워킹",
		EnglishTitle:  "Interview Prep & Networking",
		Subtitle:      "Career Development & Community",
		Description:   "면접 스킬과 커뮤니티 활동을 통해 커리어를 확장합니다. 기술 면접과 인성 면접을 준비합니다.",
		Duration:      "3주",
		Level:         model.LevelAdvanced,
		Skills:        []string{"Interview Skills", "Networking", "Career Development"},
		Prerequisites: []string{ModuleFoundation, ModuleProject, ModulePortfolio},
		Provider:      defaultProvider,
		Price:         66000,
	}
}

// specializedModule describes a job-specific module. Level is filled in by
// the generator.
type specializedModule struct {
	spec model.Specialization
	// fixed pins the level regardless of the learner's base level.
	fixed  model.Level
	module model.RoadmapModule
}

var specializedModules = []specializedModule{
	{
		spec: model.SpecFrontend,
		module: model.RoadmapModule{
			ID:           "frontend-1",
			Title:        "React/Next.js 심화",
			EnglishTitle: "Advanced React & Next.js",
			Subtitle:     "Modern Frontend Development",
			Description:  "React Hooks, 상태 관리, Next.js의 서버 사이드 렌더링과 정적 생성 등을 심화 학습합니다.",
			Duration:     "6주",
			Skills:       []string{"React", "Next.js", "TypeScript", "State Management"},
			Price:        99000,
		},
	},
	{
		spec: model.SpecBackend,
		module: model.RoadmapModule{
			ID:           "backend-1",
			Title:        "API 설계 및 마이크로서비스",
			EnglishTitle: "API Design & Microservices",
			Subtitle:     "Backend Architecture",
			Description:  "RESTful API 설계, GraphQL, 마이크로서비스 아키텍처, 분산 시스템 등을 학습합니다.",
			Duration:     "8주",
			Skills:       []string{"API Design", "Microservices", "System Design", "Database Optimization"},
			Price:        120000,
		},
	},
	{
		spec: model.SpecData,
		module: model.RoadmapModule{
			ID:           "data-1",
			Title:        "데이터 분석 및 시각화",
			EnglishTitle: "Data Analysis & Visualization",
			Subtitle:     "Data Science Fundamentals",
			Description:  "Python을 활용한 데이터 분석, 머신러닝 기초, 데이터 시각화 등을 학습합니다.",
			Duration:     "10주",
			Skills:       []string{"Python", "Data Analysis", "Machine Learning", "Data Visualization"},
			Price:        150000,
		},
	},
	{
		spec:  model.SpecAIML,
		fixed: model.LevelAdvanced,
		module: model.RoadmapModule{
			ID:           "ai-1",
			Title:        "AI/ML 실무 프로젝트",
			EnglishTitle: "AI/ML Practical Projects",
			Subtitle:     "Machine Learning & Deep Learning",
			Description:  "실제 데이터셋을 활용한 머신러닝 프로젝트, 딥러닝 모델 구축, 모델 배포 등을 학습합니다.",
			Duration:     "12주",
			Skills:       []string{"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Model Deployment"},
			Price:        200000,
		},
	},
}

// defaultFoundationSkills and defaultProjectSkills fill the cold-start
// roadmap, which has no diagnosis to derive skills from.
var (
	defaultFoundationSkills = []string{"기본 프로그래밍", "데이터 구조", "알고리즘", "버전 관리", "기본 도구 사용"}
	defaultProjectSkills    = []string{"프로젝트 관리", "협업 도구", "코드 리뷰", "테스팅", "배포"}
)
