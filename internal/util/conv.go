package util

import (
	"strconv"
)

// ParseGrade 解析年级参数，合法范围 1-11
func ParseGrade(s string) (int, error) {
	grade, err := strconv.Atoi(s)
	if err != nil || grade < 1 || grade > 11 {
		return 0, ErrInvalidGrade
	}
	return grade, nil
}
