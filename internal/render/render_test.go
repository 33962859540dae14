package render

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/crosswordbuilder/internal/model"
)

func jacobJohn(t *testing.T) *model.Board {
	t.Helper()
	board, err := model.NewBoard(map[model.Key]model.Entry{
		{Orientation: model.Down, X: 0, Y: 0}:   {Text: "jacob"},
		{Orientation: model.Across, X: 0, Y: 0}: {Text: "john", Clue: "A <name>"},
	})
	require.NoError(t, err)
	return board
}

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestText(t *testing.T) {
	want := strings.Join([]string{
		"+----+",
		"|JOHN|",
		"|A███|",
		"|C███|",
		"|O███|",
		"|B███|",
		"+----+",
		"Score: 2.500",
		"",
	}, "\n")
	assert.Equal(t, want, Text(jacobJohn(t)))
}

func TestTextEmptyBoard(t *testing.T) {
	assert.Equal(t, "++\n++\nScore: +Inf\n", Text(model.EmptyBoard()))
}

func TestNumberingSharesAnchor(t *testing.T) {
	board := jacobJohn(t)
	next, err := board.WithPlacement(model.PlacedWord{Orientation: model.Down, Anchor: model.Position{X: 2, Y: 0}, Text: "howl"})
	require.NoError(t, err)

	numbers := Numbering(next)
	assert.Equal(t, map[model.Position]int{
		{X: 0, Y: 0}: 1,
		{X: 2, Y: 0}: 2,
	}, numbers)

	across, down := Clues(next)
	require.Len(t, across, 1)
	require.Len(t, down, 2)
	assert.Equal(t, 1, down[0].Number)
	assert.Equal(t, "HOWL", down[1].Word.Text)
	assert.Equal(t, 2, down[1].Number)
}

func TestHTML(t *testing.T) {
	html, err := RenderHTML(context.Background(), "Names & more", jacobJohn(t))
	require.NoError(t, err)
	doc := parseHTML(t, html)

	assert.Equal(t, "Names & more", doc.Find("h2.title").Text())
	assert.Equal(t, 5, doc.Find("table.xword tr").Length())
	assert.Equal(t, 8, doc.Find("td.letter").Length())
	assert.Equal(t, 12, doc.Find("td.block").Length())
	assert.Equal(t, 1, doc.Find("span.num").Length())

	first := doc.Find("table.xword tr").First().Find("td").First()
	assert.Equal(t, "1J", first.Text())

	acrossClue := doc.Find(".clues.across li")
	require.Equal(t, 1, acrossClue.Length())
	assert.Equal(t, "A <name> (4)", acrossClue.Text())
	key, _ := acrossClue.Attr("data-key")
	assert.Equal(t, "across@0,0", key)

	assert.Equal(t, "JACOB (5)", doc.Find(".clues.down li").Text())
	assert.Equal(t, "Score: 2.500", doc.Find("p.score").Text())
}

func TestHTMLEmptyBoard(t *testing.T) {
	html, err := RenderHTML(context.Background(), "", model.EmptyBoard())
	require.NoError(t, err)
	doc := parseHTML(t, html)

	assert.Equal(t, 0, doc.Find("h2.title").Length())
	assert.Equal(t, 0, doc.Find("td").Length())
	assert.Equal(t, 0, doc.Find(".clues li").Length())
}

func TestHTMLCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RenderHTML(ctx, "x", jacobJohn(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFingerprint(t *testing.T) {
	a := jacobJohn(t)
	b, err := model.NewBoardFromWords(a.Words())
	require.NoError(t, err)

	assert.Len(t, Fingerprint(a), 64)
	assert.Equal(t, Fingerprint(a), Fingerprint(b))
	assert.Equal(t, `"`+Fingerprint(a)+`"`, ETag(a))

	withClue, err := model.NewBoard(map[model.Key]model.Entry{
		{Orientation: model.Down, X: 0, Y: 0}:   {Text: "jacob", Clue: "Patriarch"},
		{Orientation: model.Across, X: 0, Y: 0}: {Text: "john", Clue: "A <name>"},
	})
	require.NoError(t, err)
	assert.NotEqual(t, Fingerprint(a), Fingerprint(withClue))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(model.EmptyBoard()))
}

func TestPage(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Page("", jacobJohn(t)).Render(context.Background(), &sb))
	doc := parseHTML(t, sb.String())

	assert.Equal(t, "Crossword", doc.Find("head title").Text())
	assert.Equal(t, 1, doc.Find("body table.xword").Length())
	assert.Equal(t, 1, doc.Find("head style").Length())
}

func TestLayoutWrapsChildren(t *testing.T) {
	var sb strings.Builder
	ctx := templ.WithChildren(context.Background(), Puzzle("<b>Names</b>", jacobJohn(t)))
	require.NoError(t, Layout("Names").Render(ctx, &sb))
	doc := parseHTML(t, sb.String())

	assert.Equal(t, "Names", doc.Find("head title").Text())
	assert.Equal(t, "<b>Names</b>", doc.Find("body div.puzzle h2.title").Text())
	assert.Equal(t, 0, doc.Find("h2.title b").Length())
	assert.Equal(t, 2, doc.Find("body div.clues").Length())
}
