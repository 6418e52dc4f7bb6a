/*
Package html extracts texts from HTML documents.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package html

import (
	"errors"
	"io"

	"github.com/npillmayer/sumtree/text"
	"golang.org/x/net/html"
)

// ErrNilNode is returned by InnerText for a missing node.
var ErrNilNode = errors.New("html: node is nil")

// InnerText creates a text from the textual content of an HTML element and
// all its descendents. It resembles
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that CSS rules hiding descendents are not respected.
// Content of <script> and <style> elements is skipped.
func InnerText(n *html.Node) (text.Text, error) {
	if n == nil {
		return text.Text{}, ErrNilNode
	}
	var txt text.Text
	err := collectText(n, &txt)
	return txt, err
}

// TextFromHTML creates a text from the textual content of an HTML fragment.
// It does no interpretation of layout and styling.
func TextFromHTML(input io.Reader) (text.Text, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return text.Text{}, err
	}
	var txt text.Text
	for _, n := range nodes {
		if err := collectText(n, &txt); err != nil {
			return text.Text{}, err
		}
	}
	return txt, nil
}

func collectText(n *html.Node, txt *text.Text) error {
	switch n.Type {
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return nil
		}
	case html.TextNode:
		frag, err := text.FromString(n.Data)
		if err != nil {
			return err
		}
		if *txt, err = txt.Concat(frag); err != nil {
			return err
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectText(c, txt); err != nil {
			return err
		}
	}
	return nil
}
