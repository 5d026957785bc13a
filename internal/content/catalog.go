package content

import "github.com/abhisek/careerpath/internal/model"

// fallbackModuleID is served for modules without their own material.
const fallbackModuleID = "1"

var catalog = map[string]ModuleContent{
	"1": {
		ModuleID:      "1",
		Title:         "기초 역량 강화",
		Description:   "목표 직무에 필요한 기본 기술과 개념을 학습합니다.",
		EstimatedTime: "4주",
		Level:         model.LevelBeginner,
		Sections: []Section{
			{
				ID:    "1-1",
				Title: "기초 개념 이해",
				Order: 1,
				Content: `목표 직무에 필요한 기본 개념들을 학습합니다.

1. 핵심 기술 스택
   - 프론트엔드: React, Vue, 또는 Angular
   - 백엔드: Node.js, Python, 또는 Java
   - 데이터베이스: SQL 및 NoSQL 데이터베이스 이해

2. 개발 환경 설정
   - IDE 선택 및 설정
   - 버전 관리 시스템 (Git) 활용
   - 패키지 관리자 사용법

3. 기본 프로그래밍 개념
   - 변수, 함수, 객체 지향 프로그래밍
   - 알고리즘과 자료구조 기초
   - 비동기 프로그래밍 이해`,
			},
			{
				ID:    "1-2",
				Title: "실습 프로젝트",
				Order: 2,
				Content: `이론을 바탕으로 간단한 프로젝트를 진행합니다.

프로젝트 예시:
- Todo 앱 만들기
- 간단한 API 서버 구축
- 데이터베이스 CRUD 구현

각 프로젝트는 단계별로 진행하며, 실무에서 자주 사용되는 패턴을 학습합니다.`,
			},
		},
	},
	"2": {
		ModuleID:      "2",
		Title:         "실무 프로젝트 경험",
		Description:   "실제 업무 환경과 유사한 프로젝트를 기획하고 진행합니다.",
		EstimatedTime: "6주",
		Level:         model.LevelIntermediate,
		Sections: []Section{
			{
				ID:    "2-1",
				Title: "실무 프로젝트 기획",
				Order: 1,
				Content: `실제 업무 환경과 유사한 프로젝트를 기획하고 진행합니다.

1. 프로젝트 선정
   - 기업의 실제 기술 스택 분석
   - 비즈니스 요구사항 이해
   - 기술적 도전 과제 설정

2. 팀 협업
   - Git 브랜치 전략
   - 코드 리뷰 프로세스
   - 애자일 방법론 적용`,
			},
			{
				ID:    "2-2",
				Title: "프로젝트 실행",
				Order: 2,
				Content: `프로젝트를 실제로 구현하고 배포합니다.

주요 단계:
- 요구사항 분석 및 설계
- 개발 및 테스트
- 배포 및 모니터링
- 피드백 수집 및 개선`,
			},
		},
	},
	"3": {
		ModuleID:      "3",
		Title:         "포트폴리오 구축",
		Description:   "효과적인 포트폴리오를 작성하는 방법을 학습합니다.",
		EstimatedTime: "2주",
		Level:         model.LevelIntermediate,
		Sections: []Section{
			{
				ID:    "3-1",
				Title: "포트폴리오 작성 가이드",
				Order: 1,
				Content: `효과적인 포트폴리오를 작성하는 방법을 학습합니다.

1. 프로젝트 소개
   - 문제 정의와 해결 과정
   - 사용한 기술 스택
   - 주요 성과와 배운 점

2. 코드 품질
   - 깔끔한 코드 작성
   - 문서화
   - 테스트 코드 작성`,
			},
		},
	},
	"4": {
		ModuleID:      "4",
		Title:         "면접 준비 및 네트워킹",
		Description:   "기술 면접과 인성 면접을 준비합니다.",
		EstimatedTime: "3주",
		Level:         model.LevelAdvanced,
		Sections: []Section{
			{
				ID:    "4-1",
				Title: "면접 준비",
				Order: 1,
				Content: `기술 면접과 인성 면접을 준비합니다.

1. 기술 면접
   - 알고리즘 문제 풀이
   - 시스템 설계 질문
   - 기술 스택 관련 질문

2. 인성 면접
   - 프로젝트 경험 설명
   - 팀워크 경험
   - 커리어 목표`,
			},
		},
	},
	"frontend-1": {
		ModuleID:      "frontend-1",
		Title:         "React/Next.js 심화",
		Description:   "React Hooks, 상태 관리, Next.js 렌더링 전략을 심화 학습합니다.",
		EstimatedTime: "6주",
		Level:         model.LevelAdvanced,
		Sections: []Section{
			{ID: "frontend-1-1", Title: "Hooks와 상태 관리", Order: 1, Content: "useState, useEffect, 커스텀 훅과 전역 상태 관리 도구의 선택 기준을 학습합니다."},
			{ID: "frontend-1-2", Title: "Next.js 렌더링", Order: 2, Content: "서버 사이드 렌더링과 정적 생성의 차이를 이해하고 페이지별로 적용합니다."},
		},
	},
	"backend-1": {
		ModuleID:      "backend-1",
		Title:         "API 설계 및 마이크로서비스",
		Description:   "RESTful API 설계와 마이크로서비스 아키텍처를 학습합니다.",
		EstimatedTime: "8주",
		Level:         model.LevelAdvanced,
		Sections: []Section{
			{ID: "backend-1-1", Title: "API 설계", Order: 1, Content: "리소스 모델링, 버전 관리, 오류 응답 설계와 GraphQL과의 비교를 다룹니다."},
			{ID: "backend-1-2", Title: "마이크로서비스", Order: 2, Content: "서비스 분리 기준, 서비스 간 통신, 분산 시스템의 일관성 문제를 학습합니다."},
		},
	},
	"data-1": {
		ModuleID:      "data-1",
		Title:         "데이터 분석 및 시각화",
		Description:   "Python 데이터 분석과 시각화를 학습합니다.",
		EstimatedTime: "10주",
		Level:         model.LevelAdvanced,
		Sections: []Section{
			{ID: "data-1-1", Title: "데이터 분석 기초", Order: 1, Content: "pandas로 데이터를 정제하고 탐색적 분석을 수행합니다."},
			{ID: "data-1-2", Title: "데이터 시각화", Order: 2, Content: "분석 결과를 차트와 대시보드로 전달하는 방법을 학습합니다."},
		},
	},
	"ai-1": {
		ModuleID:      "ai-1",
		Title:         "AI/ML 실무 프로젝트",
		Description:   "머신러닝 프로젝트와 모델 배포를 학습합니다.",
		EstimatedTime: "12주",
		Level:         model.LevelAdvanced,
		Sections: []Section{
			{ID: "ai-1-1", Title: "모델 구축", Order: 1, Content: "실제 데이터셋으로 머신러닝과 딥러닝 모델을 학습시키고 평가합니다."},
			{ID: "ai-1-2", Title: "모델 배포", Order: 2, Content: "학습된 모델을 서빙하고 운영 환경에서 모니터링합니다."},
		},
	},
}
