package tennis

import (
	"fmt"
	"strings"
)

// ParsePoints parses a sequence of point winners. Tokens are "1", "2",
// "p1" or "p2" in any case, separated by whitespace or commas. A token
// made only of the digits 1 and 2, like "1122", is read one point per
// digit.
func ParsePoints(points_str string) ([]Player, error) {
	fields := strings.FieldsFunc(points_str, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	var points []Player
	for _, field := range fields {
		switch token := strings.ToLower(field); token {
		case "p1":
			points = append(points, P1)
		case "p2":
			points = append(points, P2)
		default:
			if strings.Trim(token, "12") != "" {
				return nil, fmt.Errorf("parse points: invalid token %q", field)
			}

			for _, digit := range token {
				points = append(points, Player(digit-'1'))
			}
		}
	}

	return points, nil
}

// FormatPoints is the inverse of ParsePoints, writing one digit per point.
func FormatPoints(points []Player) string {
	var builder strings.Builder
	for _, player := range points {
		builder.WriteByte('1' + byte(player&1))
	}

	return builder.String()
}
