package parser

import "github.com/quillc/quill-cc/pkg/syntax"

// backtracker snapshots the cursor and the diagnostic buffer so a
// speculative parse can be undone. Diagnostics emitted while
// speculating are discarded on backtrack, so a rejected interpretation
// leaves no trace.
type backtracker struct {
	p            *Parser
	savedIdx     syntax.TokenIndex
	savedReports int
}

func (p *Parser) snapshot() backtracker {
	return backtracker{p: p, savedIdx: p.cur.idx, savedReports: len(p.reports)}
}

// backtrack restores the cursor and truncates the diagnostics emitted
// since the snapshot
func (b backtracker) backtrack() {
	b.p.cur.idx = b.savedIdx
	b.p.reports = b.p.reports[:b.savedReports]
}
