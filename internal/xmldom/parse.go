package xmldom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jacoelho/xbrl/internal/ename"
	"github.com/jacoelho/xbrl/internal/uris"
)

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// Parse builds a document from XML input. The supplied URI becomes both the
// document URI and the initial base URI for xml:base resolution.
func Parse(r io.Reader, uri string) (*Document, error) {
	doc := &Document{
		uri:  uri,
		byID: make(map[string]NodeID),
		root: InvalidNode,
	}

	decoder := xml.NewDecoder(r)

	type level struct {
		id       NodeID
		children []NodeID
		text     strings.Builder
	}
	var stack []*level
	rootClosed := false

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xml parse %s at offset %d: %w", uri, decoder.InputOffset(), err)
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, fmt.Errorf("xml parse %s: unexpected element %s after document end", uri, tok.Name.Local)
			}

			parent := InvalidNode
			parentScope := int32(-1)
			parentBase := uri
			elemIndex := int32(0)
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				parent = top.id
				parentScope = doc.nodes[parent].scope
				parentBase = doc.nodes[parent].baseURI
				elemIndex = int32(len(top.children))
			}

			scope := parentScope
			var decls []scopeDecl
			baseURI := parentBase
			attrsOff := int32(len(doc.attrs))
			id := NodeID(len(doc.nodes))

			for _, attr := range tok.Attr {
				switch {
				case attr.Name.Space == "xmlns":
					decls = append(decls, scopeDecl{prefix: attr.Name.Local, uri: ename.NamespaceURI(attr.Value)})
				case attr.Name.Space == "" && attr.Name.Local == "xmlns":
					decls = append(decls, scopeDecl{prefix: "", uri: ename.NamespaceURI(attr.Value)})
				case (attr.Name.Space == "xml" || attr.Name.Space == xmlNamespace) && attr.Name.Local == "base":
					baseURI = uris.Resolve(parentBase, attr.Value)
					doc.attrs = append(doc.attrs, Attr{
						Name:  ename.New(xmlNamespace, "base"),
						Value: attr.Value,
					})
				default:
					space := attr.Name.Space
					if space == "xml" {
						space = xmlNamespace
					}
					doc.attrs = append(doc.attrs, Attr{
						Name:  ename.New(space, attr.Name.Local),
						Value: attr.Value,
					})
					if space == "" && attr.Name.Local == "id" {
						if _, dup := doc.byID[attr.Value]; !dup {
							doc.byID[attr.Value] = id
						}
					}
				}
			}
			if len(decls) > 0 {
				scope = int32(len(doc.scopes))
				doc.scopes = append(doc.scopes, scopeFrame{parent: parentScope, decls: decls})
			}

			doc.nodes = append(doc.nodes, node{
				name:      ename.New(tok.Name.Space, tok.Name.Local),
				baseURI:   baseURI,
				attrsOff:  attrsOff,
				attrsLen:  int32(len(doc.attrs)) - attrsOff,
				parent:    parent,
				scope:     scope,
				elemIndex: elemIndex,
			})
			if parent == InvalidNode {
				doc.root = id
			} else {
				top := stack[len(stack)-1]
				top.children = append(top.children, id)
			}
			stack = append(stack, &level{id: id})

		case xml.EndElement:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n := &doc.nodes[top.id]
			n.childOff = int32(len(doc.children))
			n.childLen = int32(len(top.children))
			doc.children = append(doc.children, top.children...)
			n.text = top.text.String()
			if len(stack) == 0 {
				rootClosed = true
			}

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(tok)
			}
		}
	}

	if doc.root == InvalidNode {
		return nil, fmt.Errorf("xml parse %s: no root element", uri)
	}
	return doc, nil
}
