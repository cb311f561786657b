package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/guttosm/yard-service/internal/domain/model"
)

// locationRe matches a normalized location code. The tier marker accepts T
// as a legacy alias for H; historical data uses both.
var locationRe = regexp.MustCompile(`^S(\d+)R(\d+)[HT](\d+)$`)

// locationSeparators are the characters ignored between location tokens.
const locationSeparators = "-. "

// LocationParseError reports a location code that failed to parse. It is a
// recoverable value: callers classify the container as unlocated instead of
// aborting the resolution.
type LocationParseError struct {
	Code   string
	Reason string
}

// Error implements the error interface.
func (e *LocationParseError) Error() string {
	return fmt.Sprintf("invalid location code %q: %s", e.Code, e.Reason)
}

// ParseLocationCode decodes a container location code into its coordinates.
// The accepted grammar is S<digits>[-]R<digits>[-](H|T)<digits>,
// case-insensitive, with separators optional anywhere between tokens.
// Leading zeros are accepted on all three numbers ("S07" reads as stack 7).
// Malformed or non-positive input returns a *LocationParseError, never a
// panic and never a default position.
func ParseLocationCode(code string) (model.Location, error) {
	normalized := strings.Map(func(r rune) rune {
		if strings.ContainsRune(locationSeparators, r) {
			return -1
		}
		return r
	}, strings.ToUpper(code))

	if normalized == "" {
		return model.Location{}, &LocationParseError{Code: code, Reason: "empty code"}
	}

	m := locationRe.FindStringSubmatch(normalized)
	if m == nil {
		return model.Location{}, &LocationParseError{Code: code, Reason: "does not match S<stack>R<row>H<tier>"}
	}

	stack, err := strconv.Atoi(m[1])
	if err != nil {
		return model.Location{}, &LocationParseError{Code: code, Reason: "stack number out of range"}
	}
	row, err := strconv.Atoi(m[2])
	if err != nil {
		return model.Location{}, &LocationParseError{Code: code, Reason: "row number out of range"}
	}
	tier, err := strconv.Atoi(m[3])
	if err != nil {
		return model.Location{}, &LocationParseError{Code: code, Reason: "tier number out of range"}
	}

	loc := model.Location{StackNumber: stack, Row: row, Tier: tier}
	if !loc.IsValid() {
		return model.Location{}, &LocationParseError{Code: code, Reason: "coordinates must be positive"}
	}

	return loc, nil
}

// FormatLocationCode encodes coordinates into the canonical code form:
// hyphen-separated, unpadded, with the H tier marker ("S7-R2-H3"). It is the
// left inverse of ParseLocationCode for every valid location.
func FormatLocationCode(loc model.Location) string {
	return fmt.Sprintf("S%d-R%d-H%d", loc.StackNumber, loc.Row, loc.Tier)
}
