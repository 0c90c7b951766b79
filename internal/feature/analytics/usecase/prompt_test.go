package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"survey_backend/internal/feature/analytics/domain/entity"
)

func sampleReport() entity.SurveyTallyReport {
	return entity.SurveyTallyReport{
		SurveyID:        1,
		SurveyTitle:     "Survei Kepuasan",
		TotalResponden:  4,
		TotalPertanyaan: 1,
		Questions: []entity.AnswerTally{
			{
				QuestionID:            10,
				QuestionText:          "Apakah Anda puas dengan layanan?",
				Setuju:                3,
				TidakSetuju:           1,
				SetujuPercentage:      75,
				TidakSetujuPercentage: 25,
			},
		},
	}
}

func TestBuildSurveyPrompt(t *testing.T) {
	t.Run("same report always produces the same prompt", func(t *testing.T) {
		a := BuildSurveyPrompt(sampleReport())
		b := BuildSurveyPrompt(sampleReport())
		assert.Equal(t, a, b)
	})

	t.Run("prompt carries survey data and format markers", func(t *testing.T) {
		prompt := BuildSurveyPrompt(sampleReport())

		assert.Contains(t, prompt, "Judul: Survei Kepuasan\n")
		assert.Contains(t, prompt, "Total Responden: 4 orang\n")
		assert.Contains(t, prompt, "Total Pertanyaan: 1\n")
		assert.Contains(t, prompt, "[Pertanyaan 1]\n")
		assert.Contains(t, prompt, "Apakah Anda puas dengan layanan?\n")
		assert.Contains(t, prompt, "✓ Setuju        : 3 orang (75%)\n")
		assert.Contains(t, prompt, "✗ Tidak Setuju  : 1 orang (25%)\n")
		assert.Contains(t, prompt, "**SUMMARY:**\n")
		assert.Contains(t, prompt, "**INSIGHT:**\n")
		assert.True(t, strings.HasSuffix(prompt, "WAJIB gunakan format dengan marker **SUMMARY:** dan **INSIGHT:**"))
	})

	t.Run("fractional percentages keep two decimals without padding", func(t *testing.T) {
		report := sampleReport()
		report.Questions[0].SetujuPercentage = 66.67
		report.Questions[0].TidakSetujuPercentage = 33.33

		prompt := BuildSurveyPrompt(report)

		assert.Contains(t, prompt, "(66.67%)")
		assert.Contains(t, prompt, "(33.33%)")
	})

	t.Run("questions are numbered in order", func(t *testing.T) {
		report := sampleReport()
		report.Questions = append(report.Questions, entity.AnswerTally{
			QuestionID:   11,
			QuestionText: "Apakah Anda akan kembali?",
		})

		prompt := BuildSurveyPrompt(report)

		first := strings.Index(prompt, "[Pertanyaan 1]")
		second := strings.Index(prompt, "[Pertanyaan 2]")
		assert.True(t, first >= 0 && second > first)
	})
}
