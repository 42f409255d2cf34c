package application

import (
	"linksync/internal/domain"
	"linksync/internal/ports"
)

// LinkPair is one (source, derived) correspondence found while linking
type LinkPair struct {
	Source  ports.Node
	Derived ports.Node
	Record  domain.IdentityRecord
}

// PairSubtrees walks source and derived in document order, pairing children
// at equal indices. Positions where derived has no child are skipped, so a
// divergent clone leaves those descendants without a record.
func PairSubtrees(source, derived ports.Node, rootKey string) []LinkPair {
	var pairs []LinkPair
	pairSubtrees(source, derived, domain.RootPath, rootKey, &pairs)
	return pairs
}

func pairSubtrees(source, derived ports.Node, path domain.IndexPath, rootKey string, pairs *[]LinkPair) {
	*pairs = append(*pairs, LinkPair{
		Source:  source,
		Derived: derived,
		Record: domain.IdentityRecord{
			SourceID:  source.ID(),
			IndexPath: path,
			RootKey:   rootKey,
		},
	})

	if !source.HasChildren() || !derived.HasChildren() {
		return
	}
	sourceChildren := source.Children()
	derivedChildren := derived.Children()
	for i, child := range sourceChildren {
		if i >= len(derivedChildren) || derivedChildren[i] == nil {
			continue
		}
		pairSubtrees(child, derivedChildren[i], path.Child(i), rootKey, pairs)
	}
}
