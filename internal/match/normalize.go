package match

import (
	"strings"
	"unicode"
)

// sideAliases folds the usual side markers onto one token.
var sideAliases = map[string]string{
	"l":     "left",
	"left":  "left",
	"r":     "right",
	"right": "right",
}

// NormalizeBoneName normalizes a bone name for fuzzy matching.
// The normalization pipeline:
// 1. Drop a rig namespace ("mixamorig:LeftArm" -> "LeftArm").
// 2. Tokenize on separators and CamelCase boundaries.
// 3. Case-fold tokens to lower.
// 4. Fold side markers (L, Left, R, Right) and move them to the front.
func NormalizeBoneName(s string) string {
	return strings.Join(TokenizeBoneName(s), "")
}

// TokenizeBoneName returns the normalized tokens of a bone name, side first.
// Examples:
//   - "UpperArm.L" -> ["left", "upper", "arm"]
//   - "mixamorig:LeftUpperArm" -> ["left", "upper", "arm"]
//   - "J_Bip_R_Hand" -> ["right", "j", "bip", "hand"]
func TokenizeBoneName(s string) []string {
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		s = s[i+1:]
	}

	var side string

	var tokens []string

	for _, tok := range tokenizeCamelCase(s) {
		tok = strings.ToLower(tok)

		if alias, ok := sideAliases[tok]; ok && side == "" {
			side = alias
			continue
		}

		tokens = append(tokens, tok)
	}

	if side != "" {
		tokens = append([]string{side}, tokens...)
	}

	return tokens
}

// tokenizeCamelCase splits a CamelCase or separated name into tokens.
// Examples:
//   - "LeftUpperArm" -> ["Left", "Upper", "Arm"]
//   - "upper_arm.L" -> ["upper", "arm", "L"]
//   - "HeadTop_End" -> ["Head", "Top", "End"]
//   - "Spine01" -> ["Spine01"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator returns true for the separators common in rig naming.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if isSeparator(prev) {
		return false
	}

	// "upperArm" -> split before 'A'
	if unicode.IsUpper(r) && !unicode.IsUpper(prev) {
		return true
	}

	// "IKTarget" -> "IK" + "Target"
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return unicode.IsUpper(r) && unicode.IsUpper(prev) && hasNextLower
}
