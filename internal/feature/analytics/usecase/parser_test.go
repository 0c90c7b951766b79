package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNarrative(t *testing.T) {
	t.Run("extracts summary and insight from marked response", func(t *testing.T) {
		raw := "**SUMMARY:**\nHasil survei menunjukkan kepuasan tinggi.\n\n**INSIGHT:**\n1. Pertahankan kualitas layanan.\n2. Tingkatkan fasilitas."

		got := ParseNarrative(raw)

		assert.Equal(t, "Hasil survei menunjukkan kepuasan tinggi.", got.Summary)
		assert.Equal(t, "1. Pertahankan kualitas layanan.\n2. Tingkatkan fasilitas.", got.Insight)
	})

	t.Run("inline markers on one line round-trip exactly", func(t *testing.T) {
		got := ParseNarrative("**SUMMARY:** X\n\n**INSIGHT:** Y")

		assert.Equal(t, "X", got.Summary)
		assert.Equal(t, "Y", got.Insight)
	})

	t.Run("markers are matched case-insensitively", func(t *testing.T) {
		raw := "Summary: mayoritas responden setuju.\n\nInsight: perlu tindak lanjut."

		got := ParseNarrative(raw)

		assert.Equal(t, "mayoritas responden setuju.", got.Summary)
		assert.Equal(t, "perlu tindak lanjut.", got.Insight)
	})

	t.Run("markdown bold markers are stripped", func(t *testing.T) {
		raw := "SUMMARY: hasil **sangat** positif.\n\nINSIGHT: fokus pada **retensi**."

		got := ParseNarrative(raw)

		assert.NotContains(t, got.Summary, "**")
		assert.NotContains(t, got.Insight, "**")
		assert.Equal(t, "hasil sangat positif.", got.Summary)
	})

	t.Run("falls back to paragraph split when markers are missing", func(t *testing.T) {
		raw := "Paragraf pertama tentang hasil.\n\nParagraf kedua tentang rekomendasi.\n\nParagraf ketiga."

		got := ParseNarrative(raw)

		assert.Equal(t, "Paragraf pertama tentang hasil.", got.Summary)
		assert.Equal(t, "Paragraf kedua tentang rekomendasi.\n\nParagraf ketiga.", got.Insight)
	})

	t.Run("single unmarked paragraph uses both default texts", func(t *testing.T) {
		got := ParseNarrative("Hanya satu paragraf tanpa marker apa pun.")

		assert.Equal(t, FallbackSummary, got.Summary)
		assert.Equal(t, FallbackInsight, got.Insight)
	})

	t.Run("empty response uses both default texts", func(t *testing.T) {
		got := ParseNarrative("")

		assert.Equal(t, FallbackSummary, got.Summary)
		assert.Equal(t, FallbackInsight, got.Insight)
	})

	t.Run("summary only falls back for insight", func(t *testing.T) {
		got := ParseNarrative("SUMMARY: responden puas dengan layanan.")

		assert.Equal(t, "responden puas dengan layanan.", got.Summary)
		assert.Equal(t, FallbackInsight, got.Insight)
	})

	t.Run("split tier returns nothing without a blank line", func(t *testing.T) {
		first, rest := splitParagraphs("satu baris saja")

		assert.Empty(t, first)
		assert.Empty(t, rest)
	})

	t.Run("marker tier leaves missing sections empty", func(t *testing.T) {
		summary, insight := extractMarked("SUMMARY: ada ringkasan saja.")

		assert.Equal(t, "ada ringkasan saja.", summary)
		assert.Empty(t, insight)
	})

	t.Run("leading label residue is stripped", func(t *testing.T) {
		raw := "Ringkasan: hasil cukup baik.\n\nRekomendasi: lanjutkan program."

		got := ParseNarrative(raw)

		assert.Equal(t, "hasil cukup baik.", got.Summary)
		assert.Equal(t, "lanjutkan program.", got.Insight)
	})
}
