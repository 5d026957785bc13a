package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/careerpath/internal/model"
	"github.com/abhisek/careerpath/internal/roadmap"
	"github.com/abhisek/careerpath/internal/ui/components"
	"github.com/abhisek/careerpath/internal/ui/theme"
)

const barWidth = 48

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, theme.Title.Render(title))
}

func printField(w io.Writer, label, value string) {
	if value == "" {
		value = theme.Hint.Render("(없음)")
	}
	fmt.Fprintf(w, "%s %s\n", theme.Label.Render(label+":"), value)
}

func printHint(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, theme.Hint.Render(fmt.Sprintf(format, args...)))
}

func printDiagnosis(w io.Writer, r *model.DiagnosisResult) {
	printTitle(w, "진단 결과")
	printField(w, "현재 직무", r.CurrentJob)
	printField(w, "경력", r.Experience)
	printField(w, "목표 직무", r.TargetJob)
	printField(w, "부족한 역량", strings.Join(r.WeakAreas, ", "))
	printField(w, "주당 학습 시간", r.LearningHours)
	printField(w, "필요 역량", strings.Join(r.RequiredSkills, ", "))
}

func stateStyle(s roadmap.ModuleState) func(...string) string {
	switch s {
	case roadmap.StateCompleted:
		return theme.Done.Render
	case roadmap.StateAvailable:
		return theme.Open.Render
	default:
		return theme.Locked.Render
	}
}

func printRoadmap(w io.Writer, r *model.Roadmap) {
	printTitle(w, fmt.Sprintf("%s 로드맵", r.TargetJob))
	printHint(w, "%s · 생성 %s", r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintln(w)

	for _, st := range roadmap.ModuleStates(r) {
		m := st.Module
		render := stateStyle(st.State)
		fmt.Fprintf(w, "%s %s %s\n", st.State.Icon(), render(fmt.Sprintf("%d. %s", m.Order, m.Title)), theme.Subtitle.Render("["+m.ID+"]"))
		fmt.Fprintf(w, "   %s · %s · %s · %s\n", m.Level.Label(), m.Duration, m.Provider, m.Price)
		if len(m.Skills) > 0 {
			fmt.Fprintf(w, "   %s\n", theme.Subtitle.Render(strings.Join(m.Skills, ", ")))
		}
		if len(m.Prerequisites) > 0 && st.State == roadmap.StateLocked {
			fmt.Fprintf(w, "   %s\n", theme.Hint.Render("선수 모듈: "+strings.Join(m.Prerequisites, ", ")))
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, components.NewProgressBar("진행률", roadmap.Progress(r), true, barWidth).View())
}

func printHistory(w io.Writer, h model.LearningHistory) {
	status := theme.Open.Render("진행 중")
	if h.CompletedAt != nil {
		status = theme.Done.Render("완료 " + h.CompletedAt.Local().Format("2006-01-02"))
	}
	fmt.Fprintf(w, "%-28s %s  %s\n", h.ModuleTitle, components.NewProgressBar("", h.Progress, true, 30).View(), status)
	if len(h.SectionsCompleted) > 0 {
		fmt.Fprintf(w, "  %s\n", theme.Subtitle.Render("완료한 섹션: "+strings.Join(h.SectionsCompleted, ", ")))
	}
}

func printPortfolio(w io.Writer, p *model.Portfolio) {
	printTitle(w, fmt.Sprintf("%s 포트폴리오", p.Name))
	printField(w, "이메일", p.Email)
	printField(w, "목표 직무", p.TargetJob)
	fmt.Fprintln(w)

	printTitle(w, "역량")
	if len(p.Skills) == 0 {
		printHint(w, "아직 쌓인 역량이 없습니다.")
	}
	for _, s := range p.Skills {
		fmt.Fprintf(w, "%s %s\n", components.NewProgressBar(fmt.Sprintf("%-24s", s.Name), s.Level, true, barWidth).View(), theme.Hint.Render(string(s.Category)))
	}
	fmt.Fprintln(w)

	printTitle(w, "프로젝트")
	if len(p.Projects) == 0 {
		printHint(w, "완료한 프로젝트가 없습니다.")
	}
	for _, pr := range p.Projects {
		fmt.Fprintf(w, "• %s\n  %s\n", theme.Body.Render(pr.Title), theme.Subtitle.Render(strings.Join(pr.Technologies, ", ")))
	}
	fmt.Fprintln(w)

	printTitle(w, "교육 이력")
	if len(p.Education) == 0 {
		printHint(w, "완료한 모듈이 없습니다.")
	}
	for _, e := range p.Education {
		fmt.Fprintf(w, "• %s %s\n", e.Title, theme.Hint.Render(e.CompletedAt.Local().Format("2006-01-02")))
	}
}
