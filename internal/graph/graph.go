// Package graph indexes the known documents of a case and checks that
// cross-document references and structural expectations hold against it.
package graph

import (
	"strconv"
	"strings"

	"github.com/ppiankov/docket/internal/model"
)

// Node is one known document in the case corpus
type Node struct {
	ID      string
	Title   string
	Content string
	Year    int // 0 = unknown
}

// Criteria describes an approximate document lookup. Zero values are
// wildcards.
type Criteria struct {
	Year    int
	DocType string
}

// DocumentGraph is an in-memory index of known case documents. Instances
// are built fresh per analysis call and never shared across goroutines;
// the engine does not persist them.
type DocumentGraph struct {
	nodes []*Node
	byID  map[string]*Node
}

// NewDocumentGraph creates an empty graph
func NewDocumentGraph() *DocumentGraph {
	return &DocumentGraph{
		byID: make(map[string]*Node),
	}
}

// BuildGraph indexes a known-document set. Each document's year is
// inferred from the first 4-digit year in its title, falling back to its
// content.
func BuildGraph(known []model.Document) *DocumentGraph {
	g := NewDocumentGraph()
	for _, doc := range known {
		g.Add(doc)
	}
	return g
}

// Add indexes a document. A later document with the same ID replaces the
// earlier one.
func (g *DocumentGraph) Add(doc model.Document) {
	node := &Node{
		ID:      doc.ID,
		Title:   doc.Title,
		Content: doc.Content,
		Year:    inferYear(doc),
	}
	if existing, ok := g.byID[doc.ID]; ok {
		*existing = *node
		return
	}
	g.byID[doc.ID] = node
	g.nodes = append(g.nodes, node)
}

// Get returns the node with the given ID, or nil
func (g *DocumentGraph) Get(id string) *Node {
	return g.byID[id]
}

// Len returns the number of indexed documents
func (g *DocumentGraph) Len() int {
	return len(g.nodes)
}

// Find returns the first node matching the criteria, or nil. Matching is
// substring containment of the year/type token within the node's title or
// content: real filings rarely restate exhibit titles verbatim, so an
// exact-title lookup would miss nearly everything.
func (g *DocumentGraph) Find(criteria Criteria) *Node {
	for _, node := range g.nodes {
		if g.matches(node, criteria) {
			return node
		}
	}
	return nil
}

func (g *DocumentGraph) matches(node *Node, criteria Criteria) bool {
	if criteria.Year == 0 && criteria.DocType == "" {
		return false
	}

	if criteria.Year != 0 {
		yearToken := strconv.Itoa(criteria.Year)
		if node.Year != criteria.Year &&
			!strings.Contains(node.Title, yearToken) &&
			!strings.Contains(node.Content, yearToken) {
			return false
		}
	}

	if criteria.DocType != "" {
		typeToken := strings.ToLower(criteria.DocType)
		if !strings.Contains(strings.ToLower(node.Title), typeToken) &&
			!strings.Contains(strings.ToLower(node.Content), typeToken) {
			return false
		}
	}

	return true
}

// inferYear finds the first 4-digit year in a document's title, then its
// content
func inferYear(doc model.Document) int {
	for _, source := range []string{doc.Title, doc.Content} {
		for i := 0; i+4 <= len(source); i++ {
			if source[i] != '1' && source[i] != '2' {
				continue
			}
			year, err := strconv.Atoi(source[i : i+4])
			if err != nil {
				continue
			}
			if year >= 1900 && year <= 2099 && !digitAt(source, i-1) && !digitAt(source, i+4) {
				return year
			}
		}
	}
	return 0
}

func digitAt(s string, i int) bool {
	return i >= 0 && i < len(s) && s[i] >= '0' && s[i] <= '9'
}
