package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"survey_backend/internal/feature/analytics/domain/entity"
)

const promptDivider = "══════════════════════════════════════\n"

// formatPercent はパーセント値を余計な末尾ゼロなしで文字列化します。
// 75.0 は "75"、66.67 は "66.67" になります。
func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// BuildSurveyPrompt は集計レポートから分析用プロンプトを組み立てます。
// 同じレポートからは常に同一のプロンプトが生成されます。
func BuildSurveyPrompt(report entity.SurveyTallyReport) string {
	var b strings.Builder

	b.WriteString("Anda adalah seorang analis survei profesional. Analisis hasil survei berikut secara mendalam:\n\n")
	b.WriteString(promptDivider)
	b.WriteString("INFORMASI SURVEI\n")
	b.WriteString(promptDivider)
	fmt.Fprintf(&b, "Judul: %s\n", report.SurveyTitle)
	fmt.Fprintf(&b, "Total Responden: %d orang\n", report.TotalResponden)
	fmt.Fprintf(&b, "Total Pertanyaan: %d\n\n", len(report.Questions))

	b.WriteString(promptDivider)
	b.WriteString("DETAIL HASIL PER PERTANYAAN\n")
	b.WriteString(promptDivider)

	for i, q := range report.Questions {
		fmt.Fprintf(&b, "\n[Pertanyaan %d]\n", i+1)
		fmt.Fprintf(&b, "%s\n", q.QuestionText)
		b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
		fmt.Fprintf(&b, "✓ Setuju        : %d orang (%s%%)\n", q.Setuju, formatPercent(q.SetujuPercentage))
		fmt.Fprintf(&b, "✗ Tidak Setuju  : %d orang (%s%%)\n", q.TidakSetuju, formatPercent(q.TidakSetujuPercentage))
	}

	b.WriteString("\n\n")
	b.WriteString(promptDivider)
	b.WriteString("TUGAS ANALISIS\n")
	b.WriteString(promptDivider)
	b.WriteString("Berdasarkan data survei di atas, berikan analisis dalam format berikut:\n\n")
	b.WriteString("**SUMMARY:**\n")
	b.WriteString("Buat ringkasan singkat (2-3 kalimat) tentang hasil survei. Sebutkan pola umum dari jawaban responden.\n\n")
	b.WriteString("**INSIGHT:**\n")
	b.WriteString("Berikan 3-4 poin insight mendalam dan rekomendasi aksi konkret. Fokus pada implikasi praktis.\n\n")
	b.WriteString("Gunakan bahasa Indonesia yang profesional. WAJIB gunakan format dengan marker **SUMMARY:** dan **INSIGHT:**")

	return b.String()
}
