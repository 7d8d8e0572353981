package service

import (
	"testing"

	"kakeibo/models"

	"github.com/stretchr/testify/assert"
)

func TestSuggestCategory(t *testing.T) {
	tests := []struct {
		name    string
		memo    string
		want    string
		wantHit bool
	}{
		{"コンビニは食費", "コンビニでお菓子", models.CategoryFood, true},
		{"スーパーは食費", "スーパーで買い物", models.CategoryFood, true},
		{"電車は交通費", "電車で移動", models.CategoryTransport, true},
		{"ドラッグストアは日用品", "ドラッグストアで洗剤", models.CategoryDailyGoods, true},
		{"映画は趣味・娯楽", "映画を観た", models.CategoryHobby, true},
		{"病院は医療費", "病院で診察", models.CategoryMedical, true},
		{"家賃は住居費", "今月の家賃", models.CategoryHousing, true},
		{"英字キーワードは大文字小文字を無視", "LUNCH at office", models.CategoryFood, true},
		{"該当キーワードなし", "よくわからない出費", "", false},
		{"空メモ", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SuggestCategory(tt.memo)
			assert.Equal(t, tt.wantHit, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggestCategory_PriorityOrder(t *testing.T) {
	// 複数の表に一致する場合は先に定義された表（食費）が勝つ
	got, ok := SuggestCategory("コンビニまでバスで行った")
	assert.True(t, ok)
	assert.Equal(t, models.CategoryFood, got)
}

func TestSuggestCategory_Deterministic(t *testing.T) {
	memo := "カフェで漫画を読んだ"
	first, ok1 := SuggestCategory(memo)
	second, ok2 := SuggestCategory(memo)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}
