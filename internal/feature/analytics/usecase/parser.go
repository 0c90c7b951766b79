package usecase

import (
	"regexp"
	"strings"

	"survey_backend/internal/feature/analytics/domain/entity"
)

// ナラティブが抽出できなかった場合の既定文。
const (
	FallbackSummary = "Hasil survei menunjukkan tingkat partisipasi yang baik dari responden."
	FallbackInsight = "Perlu dilakukan analisis lebih lanjut untuk mendapatkan insight yang lebih mendalam."
)

var (
	boldMarkerRe   = regexp.MustCompile(`\*\*`)
	summaryRe      = regexp.MustCompile(`(?is)SUMMARY[:\s]+(.+?)(?:INSIGHT:|$)`)
	insightRe      = regexp.MustCompile(`(?is)INSIGHT[:\s]+(.+)`)
	paragraphRe    = regexp.MustCompile(`\n\s*\n`)
	summaryLabelRe = regexp.MustCompile(`(?i)^(SUMMARY|Ringkasan)[:\s]*`)
	insightLabelRe = regexp.MustCompile(`(?i)^(INSIGHT|Rekomendasi)[:\s]*`)
)

// stripMarkup はマークダウンの強調記号を除去します。
func stripMarkup(s string) string {
	return boldMarkerRe.ReplaceAllString(s, "")
}

// extractMarked はSUMMARY・INSIGHTマーカーで区切られた本文を取り出します。
// 見つからなかった側は空文字列になります。
func extractMarked(s string) (summary, insight string) {
	if m := summaryRe.FindStringSubmatch(s); m != nil {
		summary = strings.TrimSpace(m[1])
	}
	if m := insightRe.FindStringSubmatch(s); m != nil {
		insight = strings.TrimSpace(m[1])
	}
	return summary, insight
}

// splitParagraphs は最初の空行でテキストを2分割します。
// 空行が無い場合は両方とも空文字列を返します。
func splitParagraphs(s string) (first, rest string) {
	parts := paragraphRe.Split(strings.TrimSpace(s), 2)
	if len(parts) < 2 {
		return "", ""
	}
	return parts[0], parts[1]
}

// stripLabel は行頭に残ったラベルを取り除いて前後の空白を削ります。
func stripLabel(re *regexp.Regexp, s string) string {
	return strings.TrimSpace(re.ReplaceAllString(s, ""))
}

// ParseNarrative はモデルの生成テキストからサマリーとインサイトを抽出します。
// マーカー抽出、空行分割、既定文の順でフォールバックするため必ず結果を返します。
func ParseNarrative(raw string) entity.NarrativeResult {
	cleaned := stripMarkup(raw)

	summary, insight := extractMarked(cleaned)

	// マーカーが無い場合は最初の空行でサマリーと本文に分ける
	if summary == "" || insight == "" {
		first, rest := splitParagraphs(cleaned)
		if first != "" && rest != "" {
			if summary == "" {
				summary = first
			}
			if insight == "" {
				insight = rest
			}
		}
	}

	summary = stripLabel(summaryLabelRe, summary)
	insight = stripLabel(insightLabelRe, insight)

	if summary == "" {
		summary = FallbackSummary
	}
	if insight == "" {
		insight = FallbackInsight
	}

	return entity.NarrativeResult{Summary: summary, Insight: insight}
}
