package content

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// The codec round-trips the block/span model through the HTML fragment
// subset the composer produces: p, strong/b, em/i, code, pre, ol, ul, li,
// blockquote, a, img, br. Unknown tags degrade to their text content; the
// host's renderer owns sanitization policy.

func parseFragment(fragment string) []Block {
	if strings.TrimSpace(fragment) == "" {
		return []Block{{Kind: BlockParagraph}}
	}

	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		// Treat unparseable input as opaque text rather than failing the edit.
		return []Block{{Kind: BlockParagraph, Spans: []Span{{Kind: SpanText, Text: fragment}}}}
	}

	p := &fragmentParser{}
	for _, n := range nodes {
		p.walk(n, parseState{})
	}
	p.flush()

	if len(p.blocks) == 0 {
		return []Block{{Kind: BlockParagraph}}
	}
	return p.blocks
}

type parseState struct {
	marks  MarkSet
	href   string
	kind   BlockKind
	inline bool
	inPre  bool
}

type fragmentParser struct {
	blocks []Block
	cur    *Block
}

func (p *fragmentParser) open(kind BlockKind) {
	p.flush()
	p.cur = &Block{Kind: kind}
}

func (p *fragmentParser) flush() {
	if p.cur == nil {
		return
	}
	p.cur.Spans = normalizeSpans(p.cur.Spans)
	p.blocks = append(p.blocks, *p.cur)
	p.cur = nil
}

func (p *fragmentParser) span(s Span, st parseState) {
	if p.cur == nil {
		p.cur = &Block{Kind: st.kind}
	}
	p.cur.Spans = append(p.cur.Spans, s)
}

func (p *fragmentParser) walk(n *html.Node, st parseState) {
	switch n.Type {
	case html.TextNode:
		text := n.Data
		if st.inPre {
			p.span(Span{Kind: SpanText, Text: text}, st)
			return
		}
		if !st.inline && strings.TrimSpace(text) == "" {
			// Inter-block formatting whitespace.
			return
		}
		text = strings.ReplaceAll(text, "\n", " ")
		sp := Span{Kind: SpanText, Text: text, Marks: st.marks}
		if st.href != "" {
			sp.Kind = SpanLink
			sp.Href = st.href
		}
		p.span(sp, st)

	case html.ElementNode:
		switch n.DataAtom {
		case atom.P, atom.Div:
			p.open(st.kind)
			st.inline = true
			p.walkChildren(n, st)
			p.flush()
		case atom.Blockquote:
			st.kind = BlockQuote
			if !hasBlockChild(n) {
				p.open(BlockQuote)
				st.inline = true
				p.walkChildren(n, st)
				p.flush()
				return
			}
			p.walkChildren(n, st)
		case atom.Ol:
			st.kind = BlockOrderedList
			p.walkChildren(n, st)
		case atom.Ul:
			st.kind = BlockUnorderedList
			p.walkChildren(n, st)
		case atom.Li:
			kind := st.kind
			if kind != BlockOrderedList && kind != BlockUnorderedList {
				kind = BlockUnorderedList
			}
			p.open(kind)
			st.kind = kind
			st.inline = true
			p.walkChildren(n, st)
			p.flush()
		case atom.Pre:
			p.open(BlockCode)
			st.kind = BlockCode
			st.inline = true
			st.inPre = true
			p.walkChildren(n, st)
			if p.cur != nil {
				trimTrailingNewline(p.cur)
			}
			p.flush()
		case atom.Br:
			kind := st.kind
			p.flush()
			p.cur = &Block{Kind: kind}
		case atom.Strong, atom.B:
			st.marks = st.marks.With(MarkBold)
			st.inline = true
			p.walkChildren(n, st)
		case atom.Em, atom.I:
			st.marks = st.marks.With(MarkItalic)
			st.inline = true
			p.walkChildren(n, st)
		case atom.Code:
			if !st.inPre {
				st.marks = st.marks.With(MarkCode)
			}
			st.inline = true
			p.walkChildren(n, st)
		case atom.A:
			if id := attrVal(n, "data-user-id"); id != "" {
				p.span(Span{Kind: SpanMention, Text: textContent(n), Marks: st.marks, UserID: id}, st)
				return
			}
			st.href = attrVal(n, "href")
			st.inline = true
			p.walkChildren(n, st)
		case atom.Img:
			p.span(Span{Kind: SpanImage, Src: attrVal(n, "src"), Text: attrVal(n, "alt")}, st)
		default:
			p.walkChildren(n, st)
		}
	}
}

func (p *fragmentParser) walkChildren(n *html.Node, st parseState) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c, st)
	}
}

func hasBlockChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.P, atom.Div, atom.Ol, atom.Ul, atom.Pre, atom.Blockquote:
			return true
		}
	}
	return false
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var rec func(*html.Node)
	rec = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			rec(c)
		}
	}
	rec(n)
	return sb.String()
}

func trimTrailingNewline(b *Block) {
	if len(b.Spans) == 0 {
		return
	}
	last := &b.Spans[len(b.Spans)-1]
	last.Text = strings.TrimSuffix(last.Text, "\n")
}

func renderFragment(blocks []Block) string {
	if len(blocks) == 0 {
		return ""
	}
	if len(blocks) == 1 && blocks[0].Kind == BlockParagraph && len(blocks[0].Spans) == 0 {
		return ""
	}

	var sb strings.Builder
	for i := 0; i < len(blocks); i++ {
		b := blocks[i]
		switch b.Kind {
		case BlockOrderedList, BlockUnorderedList:
			tag := "ol"
			if b.Kind == BlockUnorderedList {
				tag = "ul"
			}
			sb.WriteString("<" + tag + ">")
			for ; i < len(blocks) && blocks[i].Kind == b.Kind; i++ {
				sb.WriteString("<li>")
				renderSpans(&sb, blocks[i].Spans)
				sb.WriteString("</li>")
			}
			i--
			sb.WriteString("</" + tag + ">")
		case BlockQuote:
			sb.WriteString("<blockquote>")
			renderSpans(&sb, b.Spans)
			sb.WriteString("</blockquote>")
		case BlockCode:
			sb.WriteString("<pre><code>")
			for _, sp := range b.Spans {
				if sp.Kind != SpanImage {
					sb.WriteString(html.EscapeString(sp.Text))
				}
			}
			sb.WriteString("</code></pre>")
		default:
			sb.WriteString("<p>")
			renderSpans(&sb, b.Spans)
			sb.WriteString("</p>")
		}
	}
	return sb.String()
}

func renderSpans(sb *strings.Builder, spans []Span) {
	for _, sp := range spans {
		renderSpan(sb, sp)
	}
}

func renderSpan(sb *strings.Builder, sp Span) {
	switch sp.Kind {
	case SpanImage:
		sb.WriteString(`<img src="` + html.EscapeString(sp.Src) + `" alt="` + html.EscapeString(sp.Text) + `">`)
		return
	case SpanMention:
		sb.WriteString(`<a class="mention" data-user-id="` + html.EscapeString(sp.UserID) + `">`)
		writeMarked(sb, sp)
		sb.WriteString("</a>")
		return
	case SpanLink:
		sb.WriteString(`<a href="` + html.EscapeString(sp.Href) + `">`)
		writeMarked(sb, sp)
		sb.WriteString("</a>")
		return
	default:
		writeMarked(sb, sp)
	}
}

func writeMarked(sb *strings.Builder, sp Span) {
	var open, shut string
	if sp.Marks.Has(MarkBold) {
		open += "<strong>"
		shut = "</strong>" + shut
	}
	if sp.Marks.Has(MarkItalic) {
		open += "<em>"
		shut = "</em>" + shut
	}
	if sp.Marks.Has(MarkCode) {
		open += "<code>"
		shut = "</code>" + shut
	}
	sb.WriteString(open)
	sb.WriteString(html.EscapeString(sp.Text))
	sb.WriteString(shut)
}
