package rules

/*
DefaultRegistry builds the stock rule set. Registration order determines
the order suggestions appear in the report, so it is fixed here rather
than derived from any map iteration. The returned registry is frozen.
*/
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.AddFavorite(AliasSuggestion)
	r.AddFavorite(HistoryIgnoreSuggestion)

	r.AddSingle(RenameBraceExpansion)
	r.AddSingle(CDHome)

	r.AddWindow(2, SuffixReuse)
	r.AddWindow(2, Zless)
	r.AddWindow(3, MkdirChain)

	r.AddVariable("HISTSIZE", HistSize)
	r.AddVariable("HISTFILESIZE", HistFileSize)
	r.AddVariable("HISTCONTROL", HistControl)
	r.AddVariable("SAVEHIST", SaveHist)

	r.Freeze()
	return r
}
