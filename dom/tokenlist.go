package dom

import (
	"fmt"
	"strings"
)

// TokenList is an ordered, duplicate-free set of tokens reflected onto a
// single attribute's text value, used for Element.ClassList. It stores
// nothing itself: every operation re-tokenizes the current attribute value
// and every mutation re-serializes it, so changes made through SetAttribute
// are visible to the next TokenList call and vice versa.
type TokenList struct {
	element  *Element
	attrName string
}

// newTokenList creates a TokenList bound to the given element attribute.
func newTokenList(element *Element, attrName string) *TokenList {
	return &TokenList{element: element, attrName: attrName}
}

// validateToken rejects the empty token (SyntaxError) and tokens containing
// ASCII whitespace (InvalidCharacterError).
func validateToken(token string) error {
	if token == "" {
		return ErrSyntax("the token provided must not be empty")
	}
	if strings.ContainsAny(token, " \t\n\r\f") {
		return ErrInvalidCharacter(fmt.Sprintf("the token %q contains whitespace, which is not valid in tokens", token))
	}
	return nil
}

// tokens returns the current token set: the attribute value split on
// whitespace runs, deduplicated preserving first occurrence.
func (tl *TokenList) tokens() []string {
	value := tl.element.GetAttribute(tl.attrName)
	if value == "" {
		return nil
	}
	fields := strings.Fields(value)
	seen := make(map[string]bool, len(fields))
	result := fields[:0]
	for _, token := range fields {
		if !seen[token] {
			seen[token] = true
			result = append(result, token)
		}
	}
	return result
}

// setTokens serializes the token set back to the attribute, joined by
// single spaces. An empty set leaves the attribute present with an empty
// value rather than deleting it; a previously absent attribute is only
// created when there is something to store.
func (tl *TokenList) setTokens(tokens []string) {
	if len(tokens) > 0 {
		tl.element.SetAttribute(tl.attrName, strings.Join(tokens, " "))
		return
	}
	if tl.element.HasAttribute(tl.attrName) {
		tl.element.SetAttribute(tl.attrName, "")
	}
}

// Length returns the number of tokens in the set.
func (tl *TokenList) Length() int {
	return len(tl.tokens())
}

// Item returns the token at the given index in first-occurrence order, or
// the empty string if out of bounds.
func (tl *TokenList) Item(index int) string {
	tokens := tl.tokens()
	if index < 0 || index >= len(tokens) {
		return ""
	}
	return tokens[index]
}

// Contains returns true if the set contains token. The match is exact and
// case-sensitive; invalid tokens are never contained.
func (tl *TokenList) Contains(token string) bool {
	if validateToken(token) != nil {
		return false
	}
	for _, t := range tl.tokens() {
		if t == token {
			return true
		}
	}
	return false
}

// Add appends each token that is not already present, preserving
// first-occurrence order, and re-serializes the attribute. It fails before
// any change if a token is empty or contains whitespace.
func (tl *TokenList) Add(tokens ...string) error {
	for _, token := range tokens {
		if err := validateToken(token); err != nil {
			return err
		}
	}
	current := tl.tokens()
	for _, token := range tokens {
		found := false
		for _, t := range current {
			if t == token {
				found = true
				break
			}
		}
		if !found {
			current = append(current, token)
		}
	}
	tl.setTokens(current)
	return nil
}

// Remove drops each matching token from the set and re-serializes the
// attribute. It fails before any change if a token is empty or contains
// whitespace.
func (tl *TokenList) Remove(tokens ...string) error {
	for _, token := range tokens {
		if err := validateToken(token); err != nil {
			return err
		}
	}
	drop := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		drop[token] = true
	}
	var result []string
	for _, t := range tl.tokens() {
		if !drop[t] {
			result = append(result, t)
		}
	}
	tl.setTokens(result)
	return nil
}

// Toggle removes token if present and adds it otherwise, returning whether
// the token is present after the operation. With force, the token is
// unconditionally added (true) or removed (false).
func (tl *TokenList) Toggle(token string, force ...bool) (bool, error) {
	if err := validateToken(token); err != nil {
		return false, err
	}
	contains := tl.Contains(token)
	want := !contains
	if len(force) > 0 {
		want = force[0]
	}
	if want && !contains {
		tl.Add(token)
	} else if !want && contains {
		tl.Remove(token)
	}
	return want, nil
}

// Replace substitutes newToken for the first occurrence of oldToken,
// returning whether oldToken was present. Later duplicates of newToken are
// dropped by the re-serialization.
func (tl *TokenList) Replace(oldToken, newToken string) (bool, error) {
	if err := validateToken(oldToken); err != nil {
		return false, err
	}
	if err := validateToken(newToken); err != nil {
		return false, err
	}
	// tokens() is already deduplicated, so each token occurs at most once.
	current := tl.tokens()
	idxOld, idxNew := -1, -1
	for i, t := range current {
		if t == oldToken {
			idxOld = i
		}
		if t == newToken {
			idxNew = i
		}
	}
	if idxOld == -1 {
		return false, nil
	}
	var result []string
	for i, t := range current {
		switch i {
		case idxOld:
			// newToken takes oldToken's slot unless it already occurs
			// earlier in the set.
			if idxNew == -1 || idxNew >= idxOld {
				result = append(result, newToken)
			}
		case idxNew:
			if idxNew < idxOld {
				result = append(result, t)
			}
		default:
			result = append(result, t)
		}
	}
	tl.setTokens(result)
	return true, nil
}

// Value returns the raw attribute value backing the set.
func (tl *TokenList) Value() string {
	return tl.element.GetAttribute(tl.attrName)
}

// SetValue replaces the raw attribute value.
func (tl *TokenList) SetValue(value string) {
	tl.element.SetAttribute(tl.attrName, value)
}

// String returns the raw attribute value, same as Value.
func (tl *TokenList) String() string {
	return tl.Value()
}

// ForEach calls fn for each token with its index.
func (tl *TokenList) ForEach(fn func(token string, index int)) {
	for i, token := range tl.tokens() {
		fn(token, i)
	}
}
