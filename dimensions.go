package xbrl

// MemberSet is a set of concept ENames.
type MemberSet map[EName]bool

// FindAllOwnOrInheritedHasHypercubes returns the has-hypercube relationships
// whose primary is concept, or whose primary is an ancestor of concept along
// domain-member paths consecutive with the has-hypercube. A has-hypercube at
// primary P applies to every member of the domain-member network rooted at P
// in the has-hypercube's ELR, chained through effective target roles.
func (t *Taxonomy) FindAllOwnOrInheritedHasHypercubes(concept EName) []Relationship {
	var out []Relationship
	seen := make(map[Relationship]bool)
	appendHasHypercubes := func(primary EName, elr string, anyELR bool) {
		for _, hh := range t.FindOutgoing(primary, HasHypercube) {
			if !anyELR && hh.ELR != elr {
				continue
			}
			if !seen[hh] {
				seen[hh] = true
				out = append(out, hh)
			}
		}
	}

	appendHasHypercubes(concept, "", true)

	// Walk domain-member arcs upward; each frontier entry is the arc
	// immediately below the ancestor under consideration.
	visited := make(map[Relationship]bool)
	frontier := t.FindIncoming(concept, DomainMember)
	for len(frontier) > 0 {
		arc := frontier[0]
		frontier = frontier[1:]
		if visited[arc] {
			continue
		}
		visited[arc] = true

		ancestor := arc.SourceConcept
		appendHasHypercubes(ancestor, arc.ELR, false)
		for _, above := range t.FindIncoming(ancestor, DomainMember) {
			if above.IsFollowedBy(arc) {
				frontier = append(frontier, above)
			}
		}
	}
	return out
}

// FindAllUsableDimensionMembers enumerates the dimensional relationship set
// of one has-hypercube: each consecutive hypercube-dimension, then each
// consecutive dimension-domain, then all consecutive domain-member paths.
// The result maps each dimension to its usable members. A member is usable
// when the arc pointing at it carries xbrldt:usable="true" (the default);
// an unusable member still passes usability on to its own sub-tree.
func (t *Taxonomy) FindAllUsableDimensionMembers(hasHypercube Relationship) map[EName]MemberSet {
	result := make(map[EName]MemberSet)
	if hasHypercube.Kind != HasHypercube {
		return result
	}
	for _, hd := range t.FindOutgoing(hasHypercube.TargetConcept, HypercubeDimension) {
		if !hasHypercube.IsFollowedBy(hd) {
			continue
		}
		dimension := hd.TargetConcept
		members := result[dimension]
		if members == nil {
			members = make(MemberSet)
			result[dimension] = members
		}
		for _, dd := range t.FindOutgoing(dimension, DimensionDomain) {
			if !hd.IsFollowedBy(dd) {
				continue
			}
			t.collectUsableMembers(dd, members, make(map[Relationship]bool))
		}
	}
	return result
}

// collectUsableMembers records dd's target when usable and follows every
// consecutive domain-member arc, guarding against cycles per path start.
func (t *Taxonomy) collectUsableMembers(arc Relationship, members MemberSet, visited map[Relationship]bool) {
	if visited[arc] {
		return
	}
	visited[arc] = true
	member := arc.TargetConcept
	if arc.Usable() {
		members[member] = true
	}
	for _, next := range t.FindOutgoing(member, DomainMember) {
		if arc.IsFollowedBy(next) {
			t.collectUsableMembers(next, members, visited)
		}
	}
}

// FindDimensionDefault returns the dimension-default member of dimension in
// any ELR, if one is declared.
func (t *Taxonomy) FindDimensionDefault(dimension EName) (EName, bool) {
	defaults := t.FindOutgoing(dimension, DimensionDefault)
	if len(defaults) == 0 {
		return EName{}, false
	}
	return defaults[0].TargetConcept, true
}

// FindAllDimensionDefaults maps each dimension with a declared default to
// its default member; the first declaration in extraction order wins.
func (t *Taxonomy) FindAllDimensionDefaults() map[EName]EName {
	defaults := make(map[EName]EName)
	for _, rel := range t.FindAllRelationshipsOfKind(DimensionDefault) {
		if _, seen := defaults[rel.SourceConcept]; !seen {
			defaults[rel.SourceConcept] = rel.TargetConcept
		}
	}
	return defaults
}
