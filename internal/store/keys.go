package store

import "fmt"

// Storage keys. They match the keys the web client used, so exported data
// can be imported unchanged.
const (
	keyDiagnosisResults = "diagnosisResults"
	keyDiagnosisAnswers = "diagnosisAnswers"
	keyRoadmap          = "roadmap"
	keyLearningHistory  = "learningHistory"
	keyPortfolio        = "portfolio"
	keyCompanyProjects  = "companyProjects"
	keyCompanies        = "companies"
	keyUser             = "user"
	keyIsLoggedIn       = "isLoggedIn"
	keyLLMEvents        = "llmRequestEvents"
)

func moduleProgressKey(moduleID string) string {
	return fmt.Sprintf("module-%s-progress", moduleID)
}
