package analytics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePoints() []Point {
	return []Point{
		{ID: Key{Day: 5, Month: 10, Year: 2024, Version: "1.0.0"}, Count: 3},
		{ID: Key{Day: 6, Month: 10, Year: 2024, Version: "1.1.0"}, Count: 7},
		{ID: Key{Day: 6, Month: 10, Year: 2024, Version: "1.0.0"}, Count: 1},
		{ID: Key{Day: 1, Month: 1, Year: 2025, Version: "11.0.0"}, Count: 2},
	}
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Januari", MonthName(1))
	assert.Equal(t, "Mei", MonthName(5))
	assert.Equal(t, "Desember", MonthName(12))
	assert.Equal(t, "13", MonthName(13))
	assert.Equal(t, "0", MonthName(0))
}

func TestLabel(t *testing.T) {
	p := Point{ID: Key{Day: 5, Month: 10, Year: 2024, Version: "1.0.0"}, Count: 3}
	assert.Equal(t, "(1.0.0) 5 Oktober 2024", Label(p))
}

func TestVersionOptions(t *testing.T) {
	assert.Equal(t, []string{AllVersions, "1.0.0", "1.1.0", "11.0.0"}, VersionOptions(samplePoints()))
	assert.Equal(t, []string{AllVersions}, VersionOptions(nil))
}

func TestFilter(t *testing.T) {
	bars := Bars(samplePoints())

	tests := []struct {
		name     string
		selected string
		want     []string
	}{
		{
			name:     "без фильтра",
			selected: "",
			want:     []string{"(1.0.0) 5 Oktober 2024", "(1.1.0) 6 Oktober 2024", "(1.0.0) 6 Oktober 2024", "(11.0.0) 1 Januari 2025"},
		},
		{
			name:     "Semua",
			selected: AllVersions,
			want:     []string{"(1.0.0) 5 Oktober 2024", "(1.1.0) 6 Oktober 2024", "(1.0.0) 6 Oktober 2024", "(11.0.0) 1 Januari 2025"},
		},
		{
			name:     "точная версия",
			selected: "1.0.0",
			want:     []string{"(1.0.0) 5 Oktober 2024", "(1.0.0) 6 Oktober 2024"},
		},
		{
			name:     "неизвестная версия",
			selected: "9.9.9",
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(bars, tt.selected)
			labels := make([]string, 0, len(got))
			for _, b := range got {
				labels = append(labels, b.Label)
			}
			assert.Equal(t, tt.want, labels)
		})
	}
}

func TestTotalAndMax(t *testing.T) {
	bars := Bars(samplePoints())
	assert.Equal(t, 13, Total(bars))
	assert.Equal(t, 7, MaxCount(bars))
	assert.Equal(t, 0, MaxCount(nil))
}

func TestResponse_DecodeBackendJSON(t *testing.T) {
	raw := `{"data":[{"_id":{"day":5,"month":10,"year":2024,"version":"1.0.0"},"count":3}]}`

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "1.0.0", resp.Data[0].ID.Version)
	assert.Equal(t, 3, resp.Data[0].Count)
}
