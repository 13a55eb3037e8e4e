// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package relation

import (
	"context"
	"fmt"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/tsv"
)

// NoParent is the father/mother value of a founder.
const NoParent = "0"

// Sex is the PED sex code.
type Sex string

const (
	SexUnknown Sex = "0"
	Male       Sex = "1"
	Female     Sex = "2"
)

// Affection is the PED phenotype code.  Values other than the constants below
// (e.g. "-9" or a quantitative trait) are kept verbatim.
type Affection string

const (
	AffectionUnknown Affection = "0"
	Unaffected       Affection = "1"
	Affected         Affection = "2"
)

// pedColumns is the number of mandatory PED columns.
const pedColumns = 6

// Member is one line of a pedigree.
type Member struct {
	Family    string
	Name      string
	Father    string
	Mother    string
	Sex       Sex
	Affection Affection
	// Files are the read files listed in the data columns.
	Files []string
}

// ParseMember parses the fields of one pedigree line.
func ParseMember(fields []string) (Member, error) {
	if len(fields) < pedColumns {
		return Member{}, fmt.Errorf("pedigree line needs at least %d fields, got %d: %q", pedColumns, len(fields), fields)
	}
	return Member{
		Family:    fields[0],
		Name:      fields[1],
		Father:    fields[2],
		Mother:    fields[3],
		Sex:       Sex(fields[4]),
		Affection: Affection(fields[5]),
		Files:     splitFiles(fields[pedColumns:]),
	}, nil
}

// HasFather reports whether the father is known.
func (m Member) HasFather() bool { return m.Father != NoParent }

// HasMother reports whether the mother is known.
func (m Member) HasMother() bool { return m.Mother != NoParent }

// IsIndex reports whether m has at least one known parent, i.e., whether m is
// checked against its parents.
func (m Member) IsIndex() bool { return m.HasFather() || m.HasMother() }

// NumParents returns the number of distinct known parents, 0, 1 or 2.
func (m Member) NumParents() int {
	switch {
	case m.HasFather() && m.HasMother() && m.Father != m.Mother:
		return 2
	case m.IsIndex():
		return 1
	}
	return 0
}

func (m Member) String() string {
	return fmt.Sprintf("Member(%s, %s, %s, %s, %s, %s)", m.Family, m.Name, m.Father, m.Mother, m.Sex, m.Affection)
}

// Pedigree is a parsed pedigree file.  Members are kept in file order.
type Pedigree struct {
	Members []Member
	byName  map[string]int
}

// NewPedigree indexes members by name.  Member names must be unique.
func NewPedigree(members []Member) (*Pedigree, error) {
	p := &Pedigree{Members: members, byName: make(map[string]int, len(members))}
	for i, m := range members {
		if _, ok := p.byName[m.Name]; ok {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("duplicate pedigree member %q", m.Name))
		}
		p.byName[m.Name] = i
	}
	return p, nil
}

// ReadPedigree parses a pedigree from r.  Path is used in error messages.
func ReadPedigree(r io.Reader, path string) (*Pedigree, error) {
	var members []Member
	err := scanTable(r, path, func(_ int, fields []string) error {
		m, err := ParseMember(fields)
		if err != nil {
			return err
		}
		members = append(members, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return NewPedigree(members)
}

// LoadPedigree reads a pedigree file.
func LoadPedigree(ctx context.Context, path string) (p *Pedigree, err error) {
	err = loadTable(ctx, path, func(r io.Reader) error {
		p, err = ReadPedigree(r, path)
		return err
	})
	return p, err
}

// Member looks up a member by name.
func (p *Pedigree) Member(name string) (Member, bool) {
	i, ok := p.byName[name]
	if !ok {
		return Member{}, false
	}
	return p.Members[i], true
}

// Index returns the members with at least one known parent, in file order.
func (p *Pedigree) Index() []Member {
	var index []Member
	for _, m := range p.Members {
		if m.IsIndex() {
			index = append(index, m)
		}
	}
	return index
}

// Names implements Graph.
func (p *Pedigree) Names() []string {
	names := make([]string, len(p.Members))
	for i, m := range p.Members {
		names[i] = m.Name
	}
	return names
}

// Files implements Graph.
func (p *Pedigree) Files(name string) []string {
	m, _ := p.Member(name)
	return m.Files
}

// Write prints the six mandatory columns of each member, tab-separated.
func (p *Pedigree) Write(w io.Writer) error {
	out := tsv.NewWriter(w)
	for _, m := range p.Members {
		out.WriteString(m.Family)
		out.WriteString(m.Name)
		out.WriteString(m.Father)
		out.WriteString(m.Mother)
		out.WriteString(string(m.Sex))
		out.WriteString(string(m.Affection))
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	return out.Flush()
}
