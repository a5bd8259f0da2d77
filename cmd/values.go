package cmd

import (
	"fmt"
	"sort"
	"strings"
)

type directorKind int

const (
	noDirector directorKind = iota
	randomDirector
	pathfindDirector
)

var directorKinds = map[string]directorKind{
	"none":     noDirector,
	"random":   randomDirector,
	"pathfind": pathfindDirector,
}

type directorValue directorKind

func newDirectorValue(val directorKind, p *directorKind) *directorValue {
	*p = val
	return (*directorValue)(p)
}

func (kindVal *directorValue) String() string {
	for name, kind := range directorKinds {
		if kind == directorKind(*kindVal) {
			return name
		}
	}
	return fmt.Sprint(*kindVal)
}

func (kindVal *directorValue) Set(value string) error {
	if kind, isValid := directorKinds[value]; isValid {
		*kindVal = directorValue(kind)
		return nil
	}
	return fmt.Errorf("invalid director %q, expected one of %s", value, names(directorKinds))
}

func (kindVal *directorValue) Type() string {
	return "director"
}

type frontendKind int

const (
	windowFrontend frontendKind = iota
	terminalFrontend
)

var frontendKinds = map[string]frontendKind{
	"window":   windowFrontend,
	"terminal": terminalFrontend,
}

type frontendValue frontendKind

func newFrontendValue(val frontendKind, p *frontendKind) *frontendValue {
	*p = val
	return (*frontendValue)(p)
}

func (kindVal *frontendValue) String() string {
	for name, kind := range frontendKinds {
		if kind == frontendKind(*kindVal) {
			return name
		}
	}
	return fmt.Sprint(*kindVal)
}

func (kindVal *frontendValue) Set(value string) error {
	if kind, isValid := frontendKinds[value]; isValid {
		*kindVal = frontendValue(kind)
		return nil
	}
	return fmt.Errorf("invalid frontend %q, expected one of %s", value, names(frontendKinds))
}

func (kindVal *frontendValue) Type() string {
	return "frontend"
}

func names[K comparable](kinds map[string]K) string {
	keys := make([]string, 0, len(kinds))
	for name := range kinds {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
