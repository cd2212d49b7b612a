package project

import "errors"

var (
	ErrNoProjectsFound = errors.New("no projects found for this employee")
)
