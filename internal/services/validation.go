package services

import (
	"strconv"

	"joonbee_backend/internal/repositories"
	"joonbee_backend/pkg/apperrors"
)

// validQuestionCounts is the fixed set of draw sizes an interview accepts.
var validQuestionCounts = map[int]struct{}{2: {}, 4: {}, 6: {}, 8: {}, 10: {}}

// checkPage rejects zero and negative pages before any query runs.
func checkPage(page int) error {
	if page <= 0 {
		return apperrors.InvalidPage()
	}
	return nil
}

func checkSort(sort string) error {
	if sort != repositories.SortLatest && sort != repositories.SortLike {
		return apperrors.InvalidSort(sort)
	}
	return nil
}

func checkQuestionCount(count int) error {
	if _, ok := validQuestionCounts[count]; !ok {
		return apperrors.InvalidCount(strconv.Itoa(count))
	}
	return nil
}

// offsetFor converts a 1-based page to a query offset.
func offsetFor(page, pageSize int) int {
	return (page - 1) * pageSize
}
