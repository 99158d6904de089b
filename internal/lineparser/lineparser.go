// Package lineparser implements the line element parser: the heart of
// word wrapping. Given a token stream, a cursor,
// a space configuration and a possibly-carried token, it emits one
// visual line's worth of render elements through a Handler and reports
// what (if anything) must start the next line.
package lineparser

import (
	"github.com/rivo/uniseg"

	"github.com/glyphbox/textbox/internal/cursor"
	"github.com/glyphbox/textbox/internal/space"
	"github.com/glyphbox/textbox/internal/token"
)

// Options configures how ParseLine handles leading/trailing whitespace,
// per the horizontal alignment policy in effect.
type Options struct {
	// StartingSpaces renders whitespace that would appear before the
	// first word on the line.
	StartingSpaces bool
	// EndingSpaces renders whitespace past what would trigger a wrap.
	EndingSpaces bool
}

// Result reports how a line's processing ended.
type Result struct {
	// EndedWithNewLine is true when a NewLine token terminated the line;
	// the driver adds paragraph spacing before the next one.
	EndedWithNewLine bool
}

// ParseLine consumes tokens from p (and, first, from carry) until one
// visual line's worth of content has been processed, driving handler for
// each render element and leaving the token that must start the next
// line (if any) in carry. It never allocates beyond what uniseg's
// grapheme iterator needs for a FirstWord prefix split.
func ParseLine(p *token.Parser, cur *cursor.Cursor, spaceConfig space.Config, carry *Carry, opts Options, handler Handler) Result {
	wordEmitted := false

	for {
		tok, fromCarry, ok := nextToken(p, carry)
		if !ok {
			return Result{}
		}

		// A CarriageReturn popped from the carry slot at the head of a
		// fresh invocation is consumed in place: reset x, keep going on
		// the same row. Any other encounter of CR/NewLine terminates.
		if fromCarry && tok.Kind == token.KindCarriageReturn {
			cur.CarriageReturn()
			continue
		}

		switch tok.Kind {
		case token.KindNewLine:
			return Result{EndedWithNewLine: true}

		case token.KindCarriageReturn:
			carry.Set(tok)
			return Result{}

		case token.KindWord:
			if done := handleWord(p, cur, spaceConfig, carry, handler, tok, &wordEmitted); done {
				return Result{}
			}

		case token.KindWhitespace:
			if done := handleWhitespace(p, cur, spaceConfig, carry, opts, handler, tok, wordEmitted); done {
				return Result{}
			}

		case token.KindBreak:
			if done := handleBreak(p, cur, carry, handler, tok); done {
				return Result{}
			}

		case token.KindTab:
			if done := handleTab(cur, handler); done {
				return Result{}
			}

		case token.KindSgr:
			handler.Sgr(tok.Sgr)

		case token.KindCursorMove:
			handleCursorMove(cur, handler, tok)
		}
	}
}

// nextToken returns the token to process: the carried token if one is
// waiting, otherwise the parser's next token. ok is false only when both
// are exhausted (end of input, nothing carried).
func nextToken(p *token.Parser, carry *Carry) (token.Token, bool, bool) {
	if tok, has := carry.Take(); has {
		return tok, true, true
	}
	tok, ok := p.Next()
	return tok, false, ok
}

func handleWord(p *token.Parser, cur *cursor.Cursor, spaceConfig space.Config, carry *Carry, handler Handler, tok token.Token, wordEmitted *bool) (wrapped bool) {
	width := handler.MeasureWidth(tok.Text)

	if cur.FitsInLine(width) {
		emitWord(cur, spaceConfig, handler, tok.Text, width)
		*wordEmitted = true
		return false
	}

	if !*wordEmitted {
		// FirstWord: the word is longer than the whole line. Emit the
		// widest prefix that fits and carry the rest — this is what
		// guarantees forward progress even on pathological input.
		prefix, rest := firstFittingPrefix(tok.Text, cur.Space(), handler.MeasureWidth)
		if prefix != "" {
			emitWord(cur, spaceConfig, handler, prefix, handler.MeasureWidth(prefix))
			*wordEmitted = true
		}
		if rest != "" {
			carry.Set(token.Word(rest))
		}
		return true
	}

	// Not the first word on the line and it doesn't fit: carry the
	// whole word and wrap.
	carry.Set(tok)
	return true
}

// emitWord splits a Word's text at internal NBSP boundaries: each
// non-NBSP run becomes PrintedCharacters, each NBSP becomes a single
// Space of width space_config.consume(1) — it renders as a space but
// never becomes a break opportunity.
func emitWord(cur *cursor.Cursor, spaceConfig space.Config, handler Handler, text string, totalWidth int) {
	const nbsp = ' '
	hasNBSP := false
	for _, r := range text {
		if r == nbsp {
			hasNBSP = true
			break
		}
	}
	if !hasNBSP {
		handler.PrintedCharacters(text)
		cur.AdvanceUnchecked(totalWidth)
		return
	}

	start := 0
	for i, r := range text {
		if r != nbsp {
			continue
		}
		if i > start {
			seg := text[start:i]
			w := handler.MeasureWidth(seg)
			handler.PrintedCharacters(seg)
			cur.AdvanceUnchecked(w)
		}
		w := spaceConfig.Consume(1)
		handler.Space(w, 1)
		cur.AdvanceUnchecked(w)
		start = i + 1
	}
	if start < len(text) {
		seg := text[start:]
		w := handler.MeasureWidth(seg)
		handler.PrintedCharacters(seg)
		cur.AdvanceUnchecked(w)
	}
}

// firstFittingPrefix returns the longest grapheme-cluster-aligned prefix
// of word whose measured width fits within maxWidth, and the remaining
// suffix. If not even the first grapheme cluster fits, it is forced
// through anyway to guarantee forward progress.
func firstFittingPrefix(word string, maxWidth int, measure func(string) int) (prefix, rest string) {
	if word == "" {
		return "", ""
	}

	bestEnd := 0
	gr := uniseg.NewGraphemes(word)
	end := 0
	first := true
	for gr.Next() {
		_, to := gr.Positions()
		end = to
		if measure(word[:end]) > maxWidth {
			if first {
				// Not even one cluster fits: force it through so the
				// line element parser always makes progress.
				bestEnd = end
			}
			break
		}
		bestEnd = end
		first = false
	}
	return word[:bestEnd], word[bestEnd:]
}

func handleWhitespace(p *token.Parser, cur *cursor.Cursor, spaceConfig space.Config, carry *Carry, opts Options, handler Handler, tok token.Token, wordEmitted bool) (wrapped bool) {
	n := tok.Count

	if !wordEmitted && !opts.StartingSpaces {
		return false
	}

	nextWidth, isWord := peekNextWordWidth(p, handler)
	spaceWidth := spaceConfig.PeekNextWidth(n)

	if isWord && cur.FitsInLine(spaceWidth+nextWidth) {
		w := spaceConfig.Consume(n)
		handler.Space(w, n)
		cur.AdvanceUnchecked(w)
		return false
	}

	if !isWord {
		// No word follows (tab, break, escape tail, end of input): still
		// clamp to what fits, using fittingSpaceCount as a wrap does — there is
		// no word to wrap for, but the cursor must not overflow either.
		k := fittingSpaceCount(cur, spaceConfig, n)
		if k > 0 {
			w := spaceConfig.Consume(k)
			handler.Space(w, k)
			cur.AdvanceUnchecked(w)
		}
		return false
	}

	if opts.EndingSpaces {
		k := fittingSpaceCount(cur, spaceConfig, n)
		if k > 0 {
			w := spaceConfig.Consume(k)
			handler.Space(w, k)
			cur.AdvanceUnchecked(w)
		}
		// One trailing space is eaten as the wrap point.
		if rest := n - k - 1; rest > 0 {
			carry.Set(tok.WithWhitespaceCount(rest))
		}
		return true
	}

	carry.Set(token.Break("", false))
	return true
}

// fittingSpaceCount returns the largest k in [0, n] such that k spaces
// still fit in the cursor's remaining line width.
func fittingSpaceCount(cur *cursor.Cursor, spaceConfig space.Config, n int) int {
	k := 0
	for k < n && cur.FitsInLine(spaceConfig.PeekNextWidth(k+1)) {
		k++
	}
	return k
}

// peekNextWordWidth non-destructively looks at the next token, used for
// the one-word break lookahead. Sgr and CursorMove tokens are transparent
// to the lookahead and are skipped; anything else that isn't a Word leaves
// the lookahead trivially satisfied (isWord=false).
func peekNextWordWidth(p *token.Parser, handler Handler) (width int, isWord bool) {
	clone := p.Clone()
	for {
		tok, ok := clone.Next()
		if !ok {
			return 0, false
		}
		switch tok.Kind {
		case token.KindSgr, token.KindCursorMove:
			continue
		case token.KindWord:
			return handler.MeasureWidth(tok.Text), true
		default:
			return 0, false
		}
	}
}

func handleBreak(p *token.Parser, cur *cursor.Cursor, carry *Carry, handler Handler, tok token.Token) (wrapped bool) {
	nextWidth, isWord := peekNextWordWidth(p, handler)
	if !isWord || cur.FitsInLine(nextWidth) {
		return false
	}
	if tok.HasBreakText && tok.BreakText != "" {
		w := handler.MeasureWidth(tok.BreakText)
		if cur.FitsInLine(w) {
			handler.PrintedCharacters(tok.BreakText)
			cur.AdvanceUnchecked(w)
		} else {
			// Doesn't fit on the line it would have ended: carry it as a
			// one-character word so it reappears at the start of the next.
			carry.Set(token.Word(tok.BreakText))
		}
	}
	return true
}

func handleTab(cur *cursor.Cursor, handler Handler) (wrapped bool) {
	stop := cur.NextTabWidth()
	if cur.FitsInLine(stop) {
		handler.Space(stop, 0)
		cur.AdvanceUnchecked(stop)
		return false
	}
	remaining := cur.Space()
	if remaining > 0 {
		handler.Space(remaining, 0)
		cur.AdvanceUnchecked(remaining)
	}
	return true
}

func handleCursorMove(cur *cursor.Cursor, handler Handler, tok token.Token) {
	spaceWidth := handler.SpaceWidth()
	if tok.CursorDx >= 0 {
		delta := tok.CursorDx * spaceWidth
		if !cur.FitsInLine(delta) {
			delta = cur.Space()
		}
		cur.AdvanceUnchecked(delta)
		handler.MoveCursor(delta)
		return
	}

	delta := -tok.CursorDx * spaceWidth
	if cur.Rewind(delta) {
		handler.MoveCursor(-delta)
		return
	}
	before := cur.Pos.X
	cur.CarriageReturn()
	handler.MoveCursor(cur.Pos.X - before)
}
