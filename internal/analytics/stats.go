package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/seodap/teacher-api/internal/models"
)

// QuestionStat aggregates the classified outcomes of one question across a
// record set.
type QuestionStat struct {
	Question      int
	Correct       int
	Incorrect     int
	Indeterminate int
	CorrectRate   float64
	IncorrectRate float64
}

// StudentSummary is one student's correct-answer count on their latest
// submission.
type StudentSummary struct {
	StudentID    string
	CorrectCount int
}

// Overview carries the dashboard headline numbers for a record set.
type Overview struct {
	Submissions  int
	Students     int
	CorrectTotal int
	LatestAt     *time.Time
}

// QuestionStats classifies every record's feedback for each requested
// question index and counts the outcomes. Rates are percentages over
// classified records only (indeterminate records are excluded from the
// denominator), rounded to one decimal place, and 0.0 when nothing
// classified. Question indices outside the submission schema are skipped
// rather than zero-filled. An empty record set yields an empty slice.
func QuestionStats(records []models.StudentSubmission, questions []int) []QuestionStat {
	stats := make([]QuestionStat, 0, len(questions))
	if len(records) == 0 {
		return stats
	}

	for _, q := range questions {
		if !lo.Contains(models.QuestionIndices(), q) {
			continue
		}
		stat := QuestionStat{Question: q}
		for _, record := range records {
			switch Classify(record.Feedback(q)) {
			case OutcomeCorrect:
				stat.Correct++
			case OutcomeIncorrect:
				stat.Incorrect++
			default:
				stat.Indeterminate++
			}
		}
		classified := stat.Correct + stat.Incorrect
		stat.CorrectRate = rate(stat.Correct, classified)
		stat.IncorrectRate = rate(stat.Incorrect, classified)
		stats = append(stats, stat)
	}
	return stats
}

// CorrectCount counts the questions of a single submission whose feedback
// classifies as correct.
func CorrectCount(record models.StudentSubmission) int {
	count := 0
	for _, q := range models.QuestionIndices() {
		if Classify(record.Feedback(q)) == OutcomeCorrect {
			count++
		}
	}
	return count
}

// SummarizeStudents reduces records to one row per distinct student: the
// correct-count of that student's most recent submission. When timestamps
// tie, the earlier-encountered record wins. Rows sort by CorrectCount
// descending, then StudentID ascending.
func SummarizeStudents(records []models.StudentSubmission) []StudentSummary {
	latest := make(map[string]models.StudentSubmission, len(records))
	for _, record := range records {
		current, seen := latest[record.StudentID]
		if !seen {
			latest[record.StudentID] = record
			continue
		}
		if record.CreatedAt.After(current.CreatedAt) {
			latest[record.StudentID] = record
		}
	}

	summaries := make([]StudentSummary, 0, len(latest))
	for studentID, record := range latest {
		summaries = append(summaries, StudentSummary{
			StudentID:    studentID,
			CorrectCount: CorrectCount(record),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].CorrectCount != summaries[j].CorrectCount {
			return summaries[i].CorrectCount > summaries[j].CorrectCount
		}
		return summaries[i].StudentID < summaries[j].StudentID
	})
	return summaries
}

// BuildOverview computes the headline numbers: submission count, distinct
// student count, total correct outcomes across every question, and the
// newest submission time (nil when records is empty).
func BuildOverview(records []models.StudentSubmission) Overview {
	overview := Overview{
		Submissions: len(records),
		Students: len(lo.UniqBy(records, func(r models.StudentSubmission) string {
			return r.StudentID
		})),
	}

	for _, record := range records {
		overview.CorrectTotal += CorrectCount(record)
		if overview.LatestAt == nil || record.CreatedAt.After(*overview.LatestAt) {
			createdAt := record.CreatedAt
			overview.LatestAt = &createdAt
		}
	}
	return overview
}

// rate is part over total as a percentage rounded to one decimal place,
// 0.0 when total is zero.
func rate(part, total int) float64 {
	if total == 0 {
		return 0.0
	}
	value := float64(part) / float64(total) * 100
	return math.Round(value*10) / 10
}
