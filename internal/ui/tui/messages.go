package tui

import "github.com/aalvaropc/datasplit/internal/domain"

type partitionedMsg struct {
	counts domain.Counts
}

type itemCopiedMsg struct {
	subset domain.Subset
}

type jobDoneMsg struct {
	report domain.SplitReport
	err    error
}
