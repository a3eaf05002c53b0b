// Package presenter implements the list-presentation logic behind the public
// ranking view and the CSV export: free-text filtering, pagination, rank
// assignment, follower-count formatting, and CSV serialization.
//
// All functions are pure: they take the record sequence as input and never
// reorder it. The backing store supplies records pre-sorted by followers
// descending, and rank numbers are positions in that sequence.
package presenter

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/ranking-mk2/models"
)

// DefaultPageSize is the number of records shown per page on the public
// ranking view.
const DefaultPageSize = 10

// CSVFileName is the download filename offered for the CSV export.
const CSVFileName = "ranking-mk2-data.csv"

// csvHeader is the fixed header row of the CSV export.
var csvHeader = []string{"順位", "アカウント名", "フォロワー数", "エリア", "店舗名", "プロフィールURL"}

// Filter returns the subsequence of records matching query: a record matches
// when the query is a case-insensitive substring of its account name, area,
// or store name (logical OR). Empty optional fields never match. An empty
// query matches everything. Relative order is preserved.
func Filter(records []models.Ranking, query string) []models.Ranking {
	needle := strings.ToLower(query)

	filtered := make([]models.Ranking, 0, len(records))
	for _, record := range records {
		if matchesField(record.AccountName, needle) ||
			matchesField(record.Area, needle) ||
			matchesField(record.StoreName, needle) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

func matchesField(field, needle string) bool {
	if field == "" {
		return false
	}

	return strings.Contains(strings.ToLower(field), needle)
}

// TotalPages returns the number of pages needed to show count records at
// pageSize records per page. Zero records still occupy one (empty) page so
// that page numbers stay within [1, TotalPages].
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}

	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}

	return pages
}

// ClampPage clamps a requested 1-indexed page number to [1, TotalPages].
func ClampPage(page, count, pageSize int) int {
	if page < 1 {
		return 1
	}
	if totalPages := TotalPages(count, pageSize); page > totalPages {
		return totalPages
	}

	return page
}

// Paginate returns the 1-indexed page slice of records. Out-of-range page
// numbers are clamped to [1, TotalPages]; the last page may be partial.
// Concatenating all pages in order reproduces records exactly.
func Paginate(records []models.Ranking, page, pageSize int) []models.Ranking {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	page = ClampPage(page, len(records), pageSize)

	start := (page - 1) * pageSize
	if start >= len(records) {
		return []models.Ranking{}
	}

	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}

	return records[start:end]
}

// RankIconClass returns the marker class for a 1-indexed rank in the globally
// filtered-and-sorted sequence: the top three positions carry distinguished
// markers, every other position renders the plain ordinal (see RankLabel).
func RankIconClass(rank int) string {
	switch rank {
	case 1:
		return "rank-crown"
	case 2:
		return "rank-medal"
	case 3:
		return "rank-award"
	default:
		return ""
	}
}

// RankLabel returns the plain ordinal label ("#4", "#11", ...) for ranks
// beyond the top three, and an empty string for ranks 1-3, which render an
// icon instead.
func RankLabel(rank int) string {
	if rank <= 3 {
		return ""
	}

	return "#" + strconv.Itoa(rank)
}

// FormatFollowers renders a follower count for display:
//   - count >= 10,000 — value in units of 10,000 with one decimal place and
//     the "万" suffix;
//   - 1,000 <= count < 10,000 — value in units of 1,000 with one decimal
//     place and the "K" suffix;
//   - below 1,000 — the plain integer.
func FormatFollowers(count int64) string {
	switch {
	case count >= 10000:
		return strconv.FormatFloat(float64(count)/10000, 'f', 1, 64) + "万"
	case count >= 1000:
		return strconv.FormatFloat(float64(count)/1000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatInt(count, 10)
	}
}

// WriteCSV serializes the filtered record sequence: one header row, one row
// per record in sequence order with its 1-indexed rank in the first column.
// Every field is double-quote-wrapped (embedded quotes doubled), fields are
// joined by commas and rows by newlines. Absent optional fields render as
// empty strings. The whole filtered set is exported, not the current page.
func WriteCSV(records []models.Ranking) string {
	var b strings.Builder

	writeCSVRow(&b, csvHeader)
	for i, record := range records {
		b.WriteByte('\n')
		writeCSVRow(&b, []string{
			strconv.Itoa(i + 1),
			record.AccountName,
			strconv.FormatInt(record.Followers, 10),
			record.Area,
			record.StoreName,
			record.ProfileURL,
		})
	}

	return b.String()
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
}
