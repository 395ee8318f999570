package rules

import (
	"fmt"
	"strings"
)

/*
SuffixReuse fires when two consecutive commands repeat the exact same
arguments after different command names, e.g. "ls a/b/c" then "cd a/b/c".
It suggests "!$" for the second command, but only when that is strictly
shorter than half the original, so the shortcut actually saves typing.
*/
func SuffixReuse(ctx *Context, window []string) bool {
	if len(window) != 2 {
		return false
	}
	first := strings.Fields(window[0])
	second := strings.Fields(window[1])
	if len(first) < 2 || len(second) < 2 {
		return false
	}
	if equalFields(first, second) || !equalFields(first[1:], second[1:]) {
		return false
	}
	replacement := second[0] + " !$"
	if 2*len(replacement) >= len(window[1]) {
		return false
	}
	ctx.Presenter.ShowCommand(window[0])
	ctx.Presenter.ShowCommand(window[1])
	ctx.Presenter.Tip(
		fmt.Sprintf("\"%s\" reuses the last argument of the previous command", replacement),
		len(second[0])+1,
	)
	return true
}

/*
Zless fires when a gzip extraction is immediately followed by paging the
extracted file; zless views the compressed file in one step.
*/
func Zless(ctx *Context, window []string) bool {
	if len(window) != 2 {
		return false
	}
	first := strings.Fields(window[0])
	second := strings.Fields(window[1])

	var archive string
	switch {
	case len(first) == 3 && first[0] == "gzip" && first[1] == "-d":
		archive = first[2]
	case len(first) == 2 && first[0] == "gunzip":
		archive = first[1]
	default:
		return false
	}
	if len(second) != 2 || second[0] != "less" {
		return false
	}
	extracted := strings.TrimSuffix(strings.TrimSuffix(archive, ".gzip"), ".gz")
	if extracted == archive || extracted != second[1] {
		return false
	}
	ctx.Presenter.ShowCommand(window[0])
	ctx.Presenter.ShowCommand(window[1])
	ctx.Presenter.Tip(
		fmt.Sprintf("\"zless %s\" views the compressed file without extracting it", archive),
		0,
	)
	return true
}

/*
MkdirChain fires on the mkdir/cd/mkdir pattern: creating a directory,
entering it, and creating another inside. "mkdir -p" builds the whole path
in one command.
*/
func MkdirChain(ctx *Context, window []string) bool {
	if len(window) != 3 {
		return false
	}
	first := strings.Fields(window[0])
	second := strings.Fields(window[1])
	third := strings.Fields(window[2])
	if len(first) != 2 || first[0] != "mkdir" {
		return false
	}
	if len(second) != 2 || second[0] != "cd" || second[1] != first[1] {
		return false
	}
	if len(third) < 2 || third[0] != "mkdir" {
		return false
	}
	for _, cmd := range window {
		ctx.Presenter.ShowCommand(cmd)
	}
	ctx.Presenter.Tip(
		fmt.Sprintf("\"mkdir -p %s/%s\" creates nested directories in one step", first[1], third[1]),
		0,
	)
	return true
}

func equalFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
