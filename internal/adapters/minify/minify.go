// Package minify compresses generated stylesheets.
package minify

import (
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/zerr"
)

// Compressor implements ports.Minifier on top of the tdewolff CSS lexer.
// It drops comments, whitespace that does not separate tokens and the last semicolon
// of every block. A comment leaves nothing behind unless the tokens around it would
// otherwise run together.
type Compressor struct{}

// New creates a Compressor.
func New() *Compressor {
	return &Compressor{}
}

// Compress returns the compressed form of src. Compressing the result again yields it unchanged.
func (c *Compressor) Compress(src string) (string, error) {
	if src == "" {
		return "", nil
	}

	lexer := css.NewLexer(parse.NewInputString(src))

	var sb strings.Builder
	sb.Grow(len(src))

	prev := css.EmptyToken
	var prevData []byte
	space, comment, semicolon := false, false, false

	for {
		tt, data := lexer.Next()

		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return "", zerr.Wrap(err, domain.ErrMinifyFailed.Error())
			}
			if semicolon {
				sb.WriteByte(';')
			}
			return sb.String(), nil
		case css.WhitespaceToken:
			space = true
			continue
		case css.CommentToken:
			comment = true
			continue
		case css.SemicolonToken:
			if prev != css.EmptyToken && prev != css.LeftBraceToken {
				semicolon = true
			}
			space, comment = false, false
			continue
		}

		if semicolon {
			if tt != css.RightBraceToken {
				sb.WriteByte(';')
				prev, prevData = css.SemicolonToken, nil
			}
			semicolon, space, comment = false, false, false
		}

		if prev != css.EmptyToken {
			if (space && spaceMatters(prev, prevData, tt, data)) || (comment && runsTogether(prev, tt)) {
				sb.WriteByte(' ')
			}
		}
		space, comment = false, false

		sb.Write(data)
		prev, prevData = tt, data
	}
}

// spaceMatters reports whether whitespace between two tokens must be kept.
// Whitespace before ":" and "(" is kept because it changes selector and media query meaning.
func spaceMatters(prev css.TokenType, prevData []byte, next css.TokenType, nextData []byte) bool {
	switch prev {
	case css.LeftBraceToken, css.RightBraceToken, css.SemicolonToken, css.CommaToken,
		css.ColonToken, css.LeftParenthesisToken, css.LeftBracketToken:
		return false
	case css.DelimToken:
		if isChildCombinator(prevData) {
			return false
		}
	}

	switch next {
	case css.LeftBraceToken, css.RightBraceToken, css.SemicolonToken, css.CommaToken,
		css.RightParenthesisToken, css.RightBracketToken:
		return false
	case css.DelimToken:
		if isChildCombinator(nextData) {
			return false
		}
	}

	return true
}

// runsTogether reports whether next would merge into prev when written without a separator,
// as in "1px" followed by "2px" or an identifier followed by another.
func runsTogether(prev, next css.TokenType) bool {
	switch prev {
	case css.IdentToken, css.HashToken, css.AtKeywordToken, css.NumberToken,
		css.DimensionToken, css.PercentageToken:
	default:
		return false
	}

	switch next {
	case css.IdentToken, css.FunctionToken, css.URLToken, css.NumberToken,
		css.DimensionToken, css.PercentageToken:
		return true
	}
	return false
}

func isChildCombinator(data []byte) bool {
	return len(data) == 1 && data[0] == '>'
}
