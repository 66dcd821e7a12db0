package wraptext_test

import (
	"bytes"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/arthur-debert/spanwrap/pkg/hast"
	"github.com/arthur-debert/spanwrap/pkg/testutil"
	"github.com/arthur-debert/spanwrap/pkg/wraptext"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_Examples(t *testing.T) {
	tests := []struct {
		name string
		in   hast.Node
		want hast.Node
	}{
		{
			name: "paragraph_with_text_and_em",
			in:   testutil.Root(testutil.P(testutil.T("hello "), testutil.El("em", testutil.T("world")))),
			want: testutil.Root(testutil.P(testutil.Span(testutil.T("hello ")), testutil.El("em", testutil.T("world")))),
		},
		{
			name: "single_text_child_unchanged",
			in:   testutil.Root(testutil.P(testutil.T("hello world"))),
			want: testutil.Root(testutil.P(testutil.T("hello world"))),
		},
		{
			name: "list_item_empty_text_and_br_unchanged",
			in:   testutil.Root(testutil.El("li", testutil.T(""), testutil.Br())),
			want: testutil.Root(testutil.El("li", testutil.T(""), testutil.Br())),
		},
		{
			name: "non_block_em_unchanged",
			in:   testutil.Root(testutil.El("em", testutil.T("a"), testutil.El("b", testutil.T("b")), testutil.T("c"))),
			want: testutil.Root(testutil.El("em", testutil.T("a"), testutil.El("b", testutil.T("b")), testutil.T("c"))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertTreeEqual(t, tt.want, wraptext.Wrap(tt.in))
		})
	}
}

func TestWrap_LeavesNonQualifyingBlocks(t *testing.T) {
	tests := []struct {
		name  string
		block *hast.Element
	}{
		{"single_element_child", testutil.P(testutil.El("em", testutil.T("x")))},
		{"single_br_child", testutil.P(testutil.Br())},
		{"single_whitespace_text", testutil.P(testutil.T("   "))},
		{"only_text_children", testutil.P(testutil.T("a"), testutil.T("b"))},
		{"text_and_line_breaks", testutil.El("td", testutil.T("line one"), testutil.Br(), testutil.T("line two"))},
		{"whitespace_text_and_element", testutil.El("h2", testutil.T("\n  "), testutil.El("code", testutil.T("x")))},
		{"elements_only", testutil.El("blockquote", testutil.El("p", testutil.T("a")), testutil.El("p", testutil.T("b")))},
		{"text_and_comment", testutil.El("th", testutil.T("a"), testutil.Comment("c"))},
		{"empty_block", testutil.El("figcaption")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := hast.Clone(tt.block)
			before := append([]hast.Node(nil), tt.block.Children...)

			wraptext.Wrap(testutil.Root(tt.block))

			testutil.AssertTreeEqual(t, want, tt.block)
			require.Len(t, tt.block.Children, len(before))
			for i := range before {
				assert.Same(t, before[i], tt.block.Children[i], "child %d replaced", i)
			}
		})
	}
}

func TestWrap_MixedContentMapping(t *testing.T) {
	first := testutil.T("Intro ")
	blank := testutil.T("  ")
	em := testutil.El("em", testutil.T("emphasis"))
	br := testutil.Br()
	comment := testutil.Comment("note")
	last := testutil.T(" tail")
	block := testutil.El("li", first, blank, em, br, comment, last)

	wraptext.Wrap(testutil.Root(block))

	require.Len(t, block.Children, 6)

	for _, idx := range []int{0, 5} {
		span, ok := block.Children[idx].(*hast.Element)
		require.True(t, ok, "child %d should be a wrapper", idx)
		assert.Equal(t, wraptext.WrapperTag, span.Tag)
		assert.Empty(t, span.Attrs)
		require.Len(t, span.Children, 1)
	}
	assert.Same(t, first, block.Children[0].(*hast.Element).Children[0])
	assert.Same(t, last, block.Children[5].(*hast.Element).Children[0])
	assert.Equal(t, "Intro ", first.Value, "text value must not change")

	assert.Same(t, blank, block.Children[1])
	assert.Same(t, em, block.Children[2])
	assert.Same(t, br, block.Children[3])
	assert.Same(t, comment, block.Children[4])
}

func TestWrap_AllBlockTags(t *testing.T) {
	for _, tag := range wraptext.BlockTags() {
		t.Run(tag, func(t *testing.T) {
			tree := testutil.Root(testutil.El(tag, testutil.T("a"), testutil.El("strong", testutil.T("b"))))
			wraptext.Wrap(tree)
			testutil.AssertTreeEqual(t, testutil.Root(testutil.El(tag, testutil.Span(testutil.T("a")), testutil.El("strong", testutil.T("b")))), tree)
		})
	}
}

func TestWrap_NonBlockElementsNeverMutated(t *testing.T) {
	tree := testutil.Root(
		testutil.El("div", testutil.T("a"), testutil.El("em", testutil.T("b"))),
		testutil.El("section", testutil.El("article", testutil.El("span", testutil.T("c"), testutil.El("a", testutil.T("d")), testutil.T("e")))),
		testutil.El("table", testutil.El("tr", testutil.T("x"), testutil.El("td", testutil.T("y")))),
	)
	want := hast.Clone(tree)

	wraptext.Wrap(tree)
	testutil.AssertTreeEqual(t, want, tree)
}

func TestWrap_NestedBlocksAtAnyDepth(t *testing.T) {
	tree := testutil.Root(
		testutil.El("div",
			testutil.El("ul",
				testutil.El("li",
					testutil.T("item "),
					testutil.El("p", testutil.T("para "), testutil.El("a", testutil.T("link"))),
				),
			),
		),
		testutil.El("blockquote", testutil.El("p", testutil.T("quote "), testutil.El("cite", testutil.T("who")))),
	)

	wraptext.Wrap(tree)

	want := testutil.Root(
		testutil.El("div",
			testutil.El("ul",
				testutil.El("li",
					testutil.Span(testutil.T("item ")),
					testutil.El("p", testutil.Span(testutil.T("para ")), testutil.El("a", testutil.T("link"))),
				),
			),
		),
		testutil.El("blockquote", testutil.El("p", testutil.Span(testutil.T("quote ")), testutil.El("cite", testutil.T("who")))),
	)
	testutil.AssertTreeEqual(t, want, tree)
}

func TestWrap_SecondPassIsNoop(t *testing.T) {
	tree := testutil.Root(
		testutil.P(testutil.T("a "), testutil.El("em", testutil.T("b")), testutil.T(" c")),
		testutil.El("h1", testutil.T("Title "), testutil.El("small", testutil.T("sub"))),
	)
	wraptext.Wrap(tree)
	once := hast.Clone(tree)

	wraptext.Wrap(tree)
	testutil.AssertTreeEqual(t, once, tree)
}

func TestWrap_ReturnsSameReference(t *testing.T) {
	tree := testutil.Root(testutil.P(testutil.T("x"), testutil.El("b", testutil.T("y"))))
	assert.Same(t, tree, wraptext.Wrap(tree))
}

func TestWrap_MalformedInput(t *testing.T) {
	var nilEl *hast.Element

	assert.NotPanics(t, func() {
		assert.Nil(t, wraptext.Wrap(nil))
	})

	t.Run("block_without_children", func(t *testing.T) {
		el := &hast.Element{Tag: "p"}
		wraptext.Wrap(testutil.Root(el))
		assert.Nil(t, el.Children)
	})

	t.Run("nil_children_entries", func(t *testing.T) {
		el := testutil.P(testutil.T("text"), nil, nilEl, testutil.El("em", testutil.T("x")))
		assert.NotPanics(t, func() { wraptext.Wrap(testutil.Root(el)) })
		require.Len(t, el.Children, 4)
		assert.True(t, hast.IsElement(el.Children[0], "span"))
		assert.Nil(t, el.Children[1])
		assert.Equal(t, hast.Node(nilEl), el.Children[2])
	})
}

func TestWrapHTML(t *testing.T) {
	root, err := hast.ParseHTML(strings.NewReader(
		`<p>hello <em>world</em></p><p>alone</p><ul><li>one<br>two</li><li>go <code>fmt</code> now</li></ul>`,
	), true)
	require.NoError(t, err)

	wraptext.Wrap(root)

	var buf bytes.Buffer
	require.NoError(t, hast.RenderHTML(&buf, root))
	assert.Equal(t,
		`<p><span>hello </span><em>world</em></p><p>alone</p><ul><li>one<br/>two</li><li><span>go </span><code>fmt</code><span> now</span></li></ul>`,
		buf.String())
}

func TestQualifies(t *testing.T) {
	tests := []struct {
		name     string
		children []hast.Node
		want     bool
	}{
		{"nil", nil, false},
		{"one_child", []hast.Node{testutil.T("x")}, false},
		{"text_and_element", []hast.Node{testutil.T("x"), testutil.El("em")}, true},
		{"element_then_text", []hast.Node{testutil.El("em"), testutil.T("x")}, true},
		{"text_and_br", []hast.Node{testutil.T("x"), testutil.Br()}, false},
		{"blank_text_and_element", []hast.Node{testutil.T(" \t\n"), testutil.El("em")}, false},
		{"text_and_other", []hast.Node{testutil.T("x"), testutil.Comment("c")}, false},
		{"text_br_and_element", []hast.Node{testutil.T("x"), testutil.Br(), testutil.El("img")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wraptext.Qualifies(tt.children))
		})
	}
}

func TestIsBlock(t *testing.T) {
	for _, tag := range []string{"p", "li", "h1", "h2", "h3", "h4", "h5", "h6", "td", "th", "blockquote", "figcaption"} {
		assert.True(t, wraptext.IsBlock(tag), tag)
	}
	for _, tag := range []string{"div", "span", "em", "ul", "table", "tr", "P", ""} {
		assert.False(t, wraptext.IsBlock(tag), tag)
	}
	assert.Len(t, wraptext.BlockTags(), 12)
}

func TestIsCandidate(t *testing.T) {
	var nilEl *hast.Element
	assert.True(t, wraptext.IsCandidate(testutil.P()))
	assert.False(t, wraptext.IsCandidate(testutil.El("div")))
	assert.False(t, wraptext.IsCandidate(testutil.T("p")))
	assert.False(t, wraptext.IsCandidate(nilEl))
	assert.False(t, wraptext.IsCandidate(nil))
}

func TestIsNonEmptyText_Whitespace(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"ascii spaces", " \t\n\r\f\v", false},
		{"no-break space", "\u00a0", false},
		{"ideographic space", "\u3000", false},
		{"line separator", "\u2028\u2029", false},
		{"byte order mark", "\uFEFF", false},
		{"bom around spaces", "\uFEFF \uFEFF", false},
		{"next line", "\u0085", true},
		{"zero width space", "\u200b", true},
		{"word", "  x  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wraptext.IsNonEmptyText(testutil.T(tt.value)))
		})
	}
}

func TestWrap_BlankRunes(t *testing.T) {
	tree := testutil.Root(
		testutil.P(testutil.T("\uFEFF"), testutil.El("em", testutil.T("a"))),
		testutil.P(testutil.T("\u0085"), testutil.El("em", testutil.T("b"))),
	)
	wraptext.Wrap(tree)

	testutil.AssertTreeEqual(t, testutil.Root(
		testutil.P(testutil.T("\uFEFF"), testutil.El("em", testutil.T("a"))),
		testutil.P(testutil.Span(testutil.T("\u0085")), testutil.El("em", testutil.T("b"))),
	), tree)
}

func TestWrap_NoOutput(t *testing.T) {
	var buf bytes.Buffer
	origLogger, origLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = origLogger
		zerolog.SetGlobalLevel(origLevel)
	})
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	tree := testutil.Root(testutil.P(testutil.T("hello "), testutil.El("em", testutil.T("world"))))
	wraptext.Wrap(tree)
	_, _ = wraptext.New(wraptext.WithPolicy(wraptext.PolicyUnconditional)).WrapCount(tree)

	assert.Empty(t, buf.String())
}

func TestUnconditionalPolicy(t *testing.T) {
	w := wraptext.New(wraptext.WithPolicy(wraptext.PolicyUnconditional))
	assert.Equal(t, wraptext.PolicyUnconditional, w.Policy())

	tree := testutil.Root(
		testutil.P(testutil.T("hello world")),
		testutil.El("li", testutil.T("one"), testutil.Br(), testutil.T("two")),
		testutil.El("td"),
	)
	w.Wrap(tree)

	want := testutil.Root(
		testutil.P(testutil.Span(testutil.T("hello world"))),
		testutil.El("li", testutil.Span(testutil.T("one")), testutil.Br(), testutil.Span(testutil.T("two"))),
		testutil.El("td"),
	)
	testutil.AssertTreeEqual(t, want, tree)
}

func TestWrapCount(t *testing.T) {
	tree := testutil.Root(
		testutil.P(testutil.T("a"), testutil.El("em", testutil.T("b")), testutil.T("c")),
		testutil.P(testutil.T("single")),
		testutil.El("li", testutil.T("x"), testutil.El("code", testutil.T("y"))),
	)

	blocks, wrapped := wraptext.New().WrapCount(tree)
	assert.Equal(t, 2, blocks)
	assert.Equal(t, 3, wrapped)
}

func TestParsePolicy(t *testing.T) {
	p, err := wraptext.ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, wraptext.PolicyGuarded, p)

	p, err = wraptext.ParsePolicy("unconditional")
	require.NoError(t, err)
	assert.Equal(t, wraptext.PolicyUnconditional, p)
	assert.Equal(t, "unconditional", p.String())

	_, err = wraptext.ParsePolicy("always")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Equal(t, "Policy(7)", wraptext.Policy(7).String())
}

// randomTree builds a tree mixing block and inline elements, text of
// varying blankness, line breaks and comments.
func randomTree(r *rand.Rand, depth int) []hast.Node {
	tags := []string{"p", "li", "h3", "td", "blockquote", "div", "em", "span", "ul", "br"}
	texts := []string{"", " ", "\n\t", "word", " spaced ", "x"}

	n := r.Intn(5)
	children := make([]hast.Node, 0, n)
	for i := 0; i < n; i++ {
		switch k := r.Intn(10); {
		case k < 4:
			children = append(children, testutil.T(texts[r.Intn(len(texts))]))
		case k < 5:
			children = append(children, testutil.Comment("c"))
		default:
			tag := tags[r.Intn(len(tags))]
			el := testutil.El(tag)
			if tag != "br" && depth > 0 {
				el.Children = randomTree(r, depth-1)
			}
			children = append(children, el)
		}
	}
	return children
}

func TestWrap_SlotInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		tree := testutil.Root(randomTree(r, 4)...)

		// Record every element's children before the pass.
		before := map[*hast.Element][]hast.Node{}
		hast.Visit(tree, hast.KindElement, func(n hast.Node) hast.VisitAction {
			el := n.(*hast.Element)
			before[el] = append([]hast.Node(nil), el.Children...)
			return hast.Continue
		})

		wraptext.Wrap(tree)

		for el, orig := range before {
			require.Len(t, el.Children, len(orig), "slot count changed for <%s>", el.Tag)

			rewritten := wraptext.IsBlock(el.Tag) && wraptext.Qualifies(orig)
			for j, c := range el.Children {
				if rewritten && wraptext.IsNonEmptyText(orig[j]) {
					span, ok := c.(*hast.Element)
					require.True(t, ok)
					require.Equal(t, wraptext.WrapperTag, span.Tag)
					require.Len(t, span.Children, 1)
					require.Same(t, orig[j], span.Children[0])
					continue
				}
				require.Same(t, orig[j], c, "<%s> child %d replaced", el.Tag, j)
			}
		}
	}
}

func TestWrap_DisjointTreesConcurrently(t *testing.T) {
	build := func() *hast.Root {
		return testutil.Root(
			testutil.P(testutil.T("a "), testutil.El("em", testutil.T("b"))),
			testutil.El("ul", testutil.El("li", testutil.T("x "), testutil.El("code", testutil.T("y")), testutil.T(" z"))),
		)
	}
	want := testutil.Root(
		testutil.P(testutil.Span(testutil.T("a ")), testutil.El("em", testutil.T("b"))),
		testutil.El("ul", testutil.El("li", testutil.Span(testutil.T("x ")), testutil.El("code", testutil.T("y")), testutil.Span(testutil.T(" z")))),
	)

	const n = 16
	trees := make([]*hast.Root, n)
	for i := range trees {
		trees[i] = build()
	}

	var wg sync.WaitGroup
	for _, tree := range trees {
		wg.Add(1)
		go func(tree *hast.Root) {
			defer wg.Done()
			wraptext.Wrap(tree)
		}(tree)
	}
	wg.Wait()

	for _, tree := range trees {
		testutil.AssertTreeEqual(t, want, tree)
	}
}
