package table

import (
	"strconv"
)

// Detect classifies a raw field into a Value.
//
// A token wrapped in a pair of double quotes has exactly one leading and one
// trailing quote removed; no escape processing is done. The remaining text is
// an Integer when it consists of digits with an optional leading sign, a
// Float when it additionally contains a single '.', and a String otherwise.
// Empty text is a String.
//
// A token that looks numeric but cannot be converted (overflow, or a sign or
// dot with no digits) yields a *NumberError.
func Detect(token string) (Value, error) {
	if len(token) >= 2 && token[0] == '"' && token[len(token)-1] == '"' {
		token = token[1 : len(token)-1]
	}
	if token == "" {
		return StringValue(token), nil
	}

	isFloat := false
	for i := 0; i < len(token); i++ {
		ch := token[i]
		switch {
		case '0' <= ch && ch <= '9':
		case ch == '.':
			if isFloat {
				return StringValue(token), nil
			}
			isFloat = true
		case i == 0 && (ch == '+' || ch == '-'):
		default:
			return StringValue(token), nil
		}
	}

	if isFloat {
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return Value{}, &NumberError{Token: token, Kind: KindFloat, Err: err}
		}
		return FloatValue(f), nil
	}

	i, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return Value{}, &NumberError{Token: token, Kind: KindInteger, Err: err}
	}
	return IntegerValue(i), nil
}
