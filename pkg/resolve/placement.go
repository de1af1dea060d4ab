package resolve

// TabBehavior is the configured preference for where a resolved alias opens.
type TabBehavior string

const (
	TabBehaviorNew     TabBehavior = "newTab"
	TabBehaviorReplace TabBehavior = "replaceTab"
)

// TabContext is the navigation environment at decision time: the current
// tab's URL (empty when absent) and the configured behavior preference.
type TabContext struct {
	CurrentURL string
	Behavior   TabBehavior
}

// CommandKind says whether navigation replaces the current tab or opens a
// new one.
type CommandKind int

const (
	ReplaceCurrentTab CommandKind = iota
	OpenNewTab
)

// Command is a navigation instruction. The engine only decides; executing
// against the browser is the caller's job.
type Command struct {
	Kind CommandKind
	URL  string
}

// Place decides tab placement for a resolved match. Rules, first match wins:
//
//  1. A special or manager page in the current tab is always replaced,
//     whatever the match outcome or preference.
//  2. An unresolved query never replaces a real page: the cost of losing the
//     page is asymmetric with the benefit of saving a tab, so not-found
//     opens a new tab regardless of the replaceTab preference.
//  3. A found alias on an ordinary page honors the configured behavior.
//
// The URL on the returned command is the match target for found aliases and
// empty for not-found; callers substitute their creation page.
func Place(m MatchResult, ctx TabContext) Command {
	var target string
	if m.Kind == MatchFound {
		target = m.Target()
	}

	if IsSpecialPage(ctx.CurrentURL) || IsManagerPage(ctx.CurrentURL) {
		return Command{Kind: ReplaceCurrentTab, URL: target}
	}
	if m.Kind != MatchFound {
		return Command{Kind: OpenNewTab, URL: target}
	}
	if ctx.Behavior == TabBehaviorReplace {
		return Command{Kind: ReplaceCurrentTab, URL: target}
	}
	return Command{Kind: OpenNewTab, URL: target}
}
