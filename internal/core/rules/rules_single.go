package rules

import (
	"fmt"
	"strings"
)

// Maximum ratio of suggested command length to original length for the
// rename suggestion to be worth printing.
const renameShortEnough = 0.80

// CDHome fires on commands that spell out a move to the home directory.
func CDHome(ctx *Context, cmd string) bool {
	switch cmd {
	case "cd ~", "cd ~/", "cd $HOME":
		ctx.Presenter.ShowCommand(cmd)
		ctx.Presenter.Tip(`"cd" is sufficient to move to your home directory`, 3)
		return true
	}
	return false
}

/*
RenameBraceExpansion suggests brace expansion for mv/cp commands whose two
arguments share a common prefix, e.g. "mv report_draft report_final" becomes
"mv report_{draft,final}". The longest common substring search is global,
but the rule only fires when that substring sits at offset 0 in both
arguments, and only when the rewrite saves enough typing.
*/
func RenameBraceExpansion(ctx *Context, cmd string) bool {
	tokens := strings.Fields(cmd)
	if len(tokens) != 3 {
		return false
	}
	prefix, arg1, arg2 := tokens[0], tokens[1], tokens[2]
	if prefix != "mv" && prefix != "cp" {
		return false
	}
	start1, start2, size := longestCommonSubstring(arg1, arg2)
	if size == 0 || start1 != 0 || start2 != 0 {
		return false
	}
	candidate := arg1[:size] + "{" + arg1[size:] + "," + arg2[size:] + "}"
	if float64(len(prefix)+len(candidate)) > renameShortEnough*float64(len(cmd)) {
		return false
	}
	ctx.Presenter.ShowCommand(cmd)
	ctx.Presenter.Info(
		fmt.Sprintf("It can be shorter to write \"%s %s\"", prefix, candidate),
		len(prefix)+1,
	)
	return true
}

/*
longestCommonSubstring returns the start offsets and length of the longest
common contiguous substring of a and b. Ties resolve to the earliest match
in a, then in b.
*/
func longestCommonSubstring(a, b string) (startA, startB, length int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] != b[j-1] {
				curr[j] = 0
				continue
			}
			curr[j] = prev[j-1] + 1
			if curr[j] > length {
				length = curr[j]
				startA = i - length
				startB = j - length
			}
		}
		prev, curr = curr, prev
	}
	return startA, startB, length
}
