// Package jvsxml parses jbovlaste XML exports and extracts normalized
// per-language definitions from them. Pure functions: reader in, domain
// structs out. No network or filesystem access.
//
// Expected document shape:
//
//	<dictionary>
//	  <direction from="lojban" to="English">
//	    <valsi word="klama" type="gismu">
//	      <rafsi>kla</rafsi>
//	      <definition>$x_1$ comes/goes to ...</definition>
//	      <notes>...</notes>
//	    </valsi>
//	  </direction>
//	  <direction from="English" to="lojban">
//	    <nlword word="go" valsi="klama" place="1" sense="..."/>
//	  </direction>
//	</dictionary>
package jvsxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Valsi types found in the exports.
const (
	TypeGismu             = "gismu"
	TypeExperimentalGismu = "experimental gismu"
)

// XML deserialization types.

type xmlDictionary struct {
	XMLName    xml.Name       `xml:"dictionary"`
	Directions []xmlDirection `xml:"direction"`
}

type xmlDirection struct {
	From    string      `xml:"from,attr"`
	To      string      `xml:"to,attr"`
	Valsi   []xmlValsi  `xml:"valsi"`
	NLWords []xmlNLWord `xml:"nlword"`
}

type xmlValsi struct {
	Word        string   `xml:"word,attr"`
	Type        string   `xml:"type,attr"`
	Rafsi       []string `xml:"rafsi"`
	Definitions []string `xml:"definition"`
	Notes       []string `xml:"notes"`
}

type xmlNLWord struct {
	Word  string  `xml:"word,attr"`
	Valsi string  `xml:"valsi,attr"`
	Sense *string `xml:"sense,attr"`
	Place *string `xml:"place,attr"`
}

// Document is a parsed export.
type Document struct {
	valsi   []Valsi
	glosses map[string][]Gloss
}

// Valsi is one lexical entry of an export.
type Valsi struct {
	Word  string
	Type  string
	Rafsi []string

	definition *string
	notes      *string
}

// Definition returns the text of the first definition node.
func (v Valsi) Definition() (string, bool) {
	if v.definition == nil {
		return "", false
	}
	return *v.definition, true
}

// Notes returns the text of the first notes node.
func (v Valsi) Notes() (string, bool) {
	if v.notes == nil {
		return "", false
	}
	return *v.notes, true
}

// Gloss is a natural-language word pointing back at a valsi.
type Gloss struct {
	Word string

	sense *string
	place *string
}

// Sense returns the sense tag, if the gloss carries one.
func (g Gloss) Sense() (string, bool) {
	if g.sense == nil {
		return "", false
	}
	return *g.sense, true
}

// Place returns the place index, if the gloss carries one.
func (g Gloss) Place() (string, bool) {
	if g.place == nil {
		return "", false
	}
	return *g.place, true
}

// Parse decodes an export document.
func Parse(r io.Reader) (*Document, error) {
	var raw xmlDictionary
	dec := xml.NewDecoder(r)
	dec.Strict = true
	// Cached exports are always stored as UTF-8, whatever the prolog declares.
	dec.CharsetReader = func(_ string, in io.Reader) (io.Reader, error) { return in, nil }
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}

	doc := &Document{glosses: make(map[string][]Gloss)}

	for _, dir := range raw.Directions {
		for _, v := range dir.Valsi {
			doc.valsi = append(doc.valsi, Valsi{
				Word:       v.Word,
				Type:       v.Type,
				Rafsi:      cleanRafsi(v.Rafsi),
				definition: firstText(v.Definitions),
				notes:      firstText(v.Notes),
			})
		}
		for _, nl := range dir.NLWords {
			if nl.Valsi == "" {
				continue
			}
			doc.glosses[nl.Valsi] = append(doc.glosses[nl.Valsi], Gloss{
				Word:  nl.Word,
				sense: nl.Sense,
				place: nl.Place,
			})
		}
	}

	return doc, nil
}

// ValsiOfType returns every entry of the given type in document order.
func (d *Document) ValsiOfType(typ string) []Valsi {
	var out []Valsi
	for _, v := range d.valsi {
		if v.Type == typ {
			out = append(out, v)
		}
	}
	return out
}

// GlossesFor returns the glosses referencing word in document order.
func (d *Document) GlossesFor(word string) ([]Gloss, bool) {
	g, ok := d.glosses[word]
	return g, ok && len(g) > 0
}

// firstText returns the first node's text. An empty or whitespace-only
// node counts as absent.
func firstText(nodes []string) *string {
	if len(nodes) == 0 || strings.TrimSpace(nodes[0]) == "" {
		return nil
	}
	s := nodes[0]
	return &s
}

func cleanRafsi(rafsi []string) []string {
	var out []string
	for _, r := range rafsi {
		r = strings.TrimSpace(r)
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}
