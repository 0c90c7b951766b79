package usecase

import (
	"math"

	"survey_backend/internal/feature/analytics/domain/entity"
	surveyentity "survey_backend/internal/feature/survey/domain/entity"
)

// roundPercent は小数第2位までの四捨五入を行います。
func roundPercent(v float64) float64 {
	return math.Round(v*100) / 100
}

// percentOf は part/total をパーセントに変換します。total が 0 の場合は 0 を返します。
func percentOf(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return roundPercent(float64(part) / float64(total) * 100)
}

// BuildTallyReport はサーベイと回答データから集計レポートを構築します。
// 外部呼び出しを一切行わない純粋な集計処理です。
func BuildTallyReport(survey *surveyentity.Survey, responses []surveyentity.Response, answers []surveyentity.Answer) entity.SurveyTallyReport {
	report := entity.SurveyTallyReport{
		SurveyID:        survey.ID,
		SurveyTitle:     survey.Title,
		TotalResponden:  len(responses),
		TotalPertanyaan: len(survey.Questions),
		Questions:       make([]entity.AnswerTally, 0, len(survey.Questions)),
	}

	type counts struct {
		setuju      int
		tidakSetuju int
	}
	byQuestion := make(map[uint]*counts, len(survey.Questions))
	for i := range survey.Questions {
		byQuestion[survey.Questions[i].ID] = &counts{}
	}

	for i := range answers {
		c, ok := byQuestion[answers[i].QuestionID]
		if !ok {
			// 設問が削除された後に残った回答は集計対象外
			continue
		}
		if answers[i].Answer {
			c.setuju++
		} else {
			c.tidakSetuju++
		}
	}

	for i := range survey.Questions {
		q := &survey.Questions[i]
		c := byQuestion[q.ID]
		total := c.setuju + c.tidakSetuju

		report.Questions = append(report.Questions, entity.AnswerTally{
			QuestionID:            q.ID,
			QuestionText:          q.QuestionText,
			Setuju:                c.setuju,
			TidakSetuju:           c.tidakSetuju,
			SetujuPercentage:      percentOf(c.setuju, total),
			TidakSetujuPercentage: percentOf(c.tidakSetuju, total),
		})

		report.TotalSetuju += c.setuju
		report.TotalTidakSetuju += c.tidakSetuju
	}

	totalAnswers := report.TotalSetuju + report.TotalTidakSetuju
	report.SetujuPercentage = percentOf(report.TotalSetuju, totalAnswers)
	report.TidakSetujuPercentage = percentOf(report.TotalTidakSetuju, totalAnswers)

	return report
}
