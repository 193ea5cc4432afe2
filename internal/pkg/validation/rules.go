package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Rank names and course titles
	AlphanumericPattern = `^[a-zA-Z0-9\s]*$`

	// Lecturer and student names
	PersonNamePattern = `^[a-zA-Z\s]*$`

	// Class location
	LocationPattern = `^[a-zA-Z0-9.\-\s]*$`

	// Semester code, e.g. 2031F
	SemesterCodePattern = `^[a-zA-Z0-9]*$`

	// Semester name, e.g. Fall (2031)
	SemesterNamePattern = `^[a-zA-Z0-9\-.)(\s]*$`

	// User login
	LoginPattern = `^[a-zA-Z0-9\s_]*$`

	// User password
	PasswordPattern = `^[a-zA-Z0-9\s._@#$%&*]*$`

	// Name validation max length
	NameMaxLength = 45

	// Semester code max length
	SemesterCodeMaxLength = 7

	// Semester name max length
	SemesterNameMaxLength = 30
)

// patternRule binds a validator tag to a pattern and the characters it admits.
type patternRule struct {
	Pattern     *regexp.Regexp
	Description string
}

// CompiledPatterns caches compiled regex patterns by validator tag
var CompiledPatterns = map[string]patternRule{
	"alphanum_space": {
		Pattern:     regexp.MustCompile(AlphanumericPattern),
		Description: "letters in range (a-z, A-Z), numbers from 0 to 9 and whitespaces",
	},
	"person_name": {
		Pattern:     regexp.MustCompile(PersonNamePattern),
		Description: "letters in range (a-z, A-Z) and whitespaces",
	},
	"location": {
		Pattern:     regexp.MustCompile(LocationPattern),
		Description: "letters in range (a-z, A-Z), numbers from 0 to 9, whitespaces and .- symbols",
	},
	"semester_code": {
		Pattern:     regexp.MustCompile(SemesterCodePattern),
		Description: "letters in range (a-z, A-Z) and numbers from 0 to 9",
	},
	"semester_name": {
		Pattern:     regexp.MustCompile(SemesterNamePattern),
		Description: "letters in range (a-z, A-Z), numbers from 0 to 9, whitespaces and .-)( symbols",
	},
	"login": {
		Pattern:     regexp.MustCompile(LoginPattern),
		Description: "letters in range (a-z, A-Z), numbers from 0 to 9, whitespaces and _ symbols",
	},
	"password": {
		Pattern:     regexp.MustCompile(PasswordPattern),
		Description: "letters in range (a-z, A-Z), numbers from 0 to 9, whitespaces and ._@#$%&* symbols",
	},
}
