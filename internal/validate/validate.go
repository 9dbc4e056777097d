// Package validate holds the field rules shared by the interactive create
// handlers and the CSV import pipelines, so both paths enforce identical
// constraints.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	telephonePattern = regexp.MustCompile(`^[+\d\s\-().]{10,30}$`)
	digitPattern     = regexp.MustCompile(`\d`)
)

// LocationDescription validates a location label (3-50 characters)
func LocationDescription(s string) error {
	return lengthBetween(s, 3, 50)
}

// SupplierDescription validates a supplier description (3-255 characters)
func SupplierDescription(s string) error {
	return lengthBetween(s, 3, 255)
}

// CategoryDescription validates a category label (3-100 characters)
func CategoryDescription(s string) error {
	return lengthBetween(s, 3, 100)
}

// AssetDescription validates an asset description (5-255 characters)
func AssetDescription(s string) error {
	return lengthBetween(s, 5, 255)
}

// Summary validates a job or schedule summary (at least 5 characters)
func Summary(s string) error {
	if utf8.RuneCountInString(strings.TrimSpace(s)) < 5 {
		return errors.New("Summary must be at least 5 characters")
	}
	return nil
}

// ScheduleDescription validates a job schedule description (at least 5 characters)
func ScheduleDescription(s string) error {
	if utf8.RuneCountInString(strings.TrimSpace(s)) < 5 {
		return errors.New("Description must be at least 5 characters")
	}
	return nil
}

// Email validates an optional email address
func Email(s string) error {
	if s == "" {
		return nil
	}
	if !emailPattern.MatchString(s) {
		return errors.New("Invalid email address")
	}
	return nil
}

// Telephone validates an optional phone number: permitted characters and
// 10-15 digits overall
func Telephone(s string) error {
	if s == "" {
		return nil
	}
	if !telephonePattern.MatchString(s) {
		return errors.New("Invalid telephone number format")
	}
	digits := len(digitPattern.FindAllString(s, -1))
	if digits < 10 || digits > 15 {
		return errors.New("Telephone must contain 10-15 digits")
	}
	return nil
}

// Address validates an optional address up to the given length
func Address(s string, max int) error {
	if s == "" {
		return nil
	}
	if utf8.RuneCountInString(s) > max {
		return fmt.Errorf("Max %d characters", max)
	}
	return nil
}

// RecurrenceInterval validates a positive integer interval
func RecurrenceInterval(n int) error {
	if n <= 0 {
		return errors.New("Must be a positive number")
	}
	return nil
}

// NoticeDays validates a non-negative notice period
func NoticeDays(n int) error {
	if n < 0 {
		return errors.New("Notice days cannot be negative")
	}
	return nil
}

func lengthBetween(s string, min, max int) error {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	if n < min {
		return fmt.Errorf("Min %d characters", min)
	}
	if n > max {
		return fmt.Errorf("Max %d characters", max)
	}
	return nil
}
